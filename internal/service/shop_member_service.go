package service

import (
	"context"
	"errors"

	"challengeHub/internal/models"
	"challengeHub/internal/repository"
)

type ShopMemberService interface {
	Create(ctx context.Context, ownerID, userID int64) (*models.ShopMember, error)
	ListMine(ctx context.Context, ownerID int64) ([]models.ShopMemberView, error)
	Delete(ctx context.Context, adminID, userID int64) error
	ActivateSelf(ctx context.Context, userID int64) (*models.ShopMember, error)
}

type shopMemberService struct {
	memberRepo repository.ShopMemberRepository
	userRepo   repository.UserRepository
}

func NewShopMemberService(memberRepo repository.ShopMemberRepository, userRepo repository.UserRepository) ShopMemberService {
	return &shopMemberService{
		memberRepo: memberRepo,
		userRepo:   userRepo,
	}
}

const alreadyMemberMessage = "User is already a member of this shop"

func (s *shopMemberService) ownedShop(ctx context.Context, ownerID int64) (*models.Shop, error) {
	shop, err := s.memberRepo.GetShopByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, forbiddenError("You do not own a shop")
		}
		return nil, translate("get shop", err, "")
	}
	return shop, nil
}

// Create adds a pending, non-admin member to the caller's shop.
func (s *shopMemberService) Create(ctx context.Context, ownerID, userID int64) (*models.ShopMember, error) {
	if userID <= 0 {
		return nil, validationError("user_id is required")
	}

	shop, err := s.ownedShop(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetUserByID(ctx, userID); err != nil {
		return nil, translate("get user", err, "User not found")
	}

	_, err = s.memberRepo.GetMember(ctx, shop.ID, userID)
	switch {
	case err == nil:
		return nil, conflictError(alreadyMemberMessage)
	case !errors.Is(err, repository.ErrNotFound):
		return nil, translate("get shop member", err, "")
	}

	member := &models.ShopMember{ShopID: shop.ID, UserID: userID}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflictError(alreadyMemberMessage)
		}
		return nil, translate("create shop member", err, "")
	}

	return member, nil
}

func (s *shopMemberService) ListMine(ctx context.Context, ownerID int64) ([]models.ShopMemberView, error) {
	shop, err := s.ownedShop(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	members, err := s.memberRepo.ListByShop(ctx, shop.ID)
	if err != nil {
		return nil, translate("list shop members", err, "")
	}

	return members, nil
}

// Delete removes a member from the shop the caller administers.
func (s *shopMemberService) Delete(ctx context.Context, adminID, userID int64) error {
	admin, err := s.memberRepo.GetAdminMembership(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return forbiddenError("Only shop admins can remove members")
		}
		return translate("get shop admin", err, "")
	}

	if userID == adminID {
		return validationError("You cannot remove yourself from the shop")
	}

	if err := s.memberRepo.Delete(ctx, admin.ShopID, userID); err != nil {
		return translate("delete shop member", err, "Member not found in your shop")
	}

	return nil
}

func (s *shopMemberService) ActivateSelf(ctx context.Context, userID int64) (*models.ShopMember, error) {
	member, err := s.memberRepo.GetMembershipByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, forbiddenError("You are not a member of any shop")
		}
		return nil, translate("get shop member", err, "")
	}

	if member.IsAdmin {
		return nil, forbiddenError("Shop admins cannot activate themselves")
	}
	if member.IsActive {
		return nil, validationError("Membership is already active")
	}

	if err := s.memberRepo.Activate(ctx, member.ID); err != nil {
		return nil, translate("activate shop member", err, "Membership not found")
	}
	member.IsActive = true

	return member, nil
}
