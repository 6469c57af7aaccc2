package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"challengeHub/internal/models"

	"github.com/jmoiron/sqlx"
)

type shopMemberRepository struct {
	db *sqlx.DB
}

func NewShopMemberRepository(db *sqlx.DB) ShopMemberRepository {
	return &shopMemberRepository{db: db}
}

func (r *shopMemberRepository) GetShopByOwner(ctx context.Context, ownerID int64) (*models.Shop, error) {
	var shop models.Shop
	err := r.db.GetContext(ctx, &shop, `SELECT * FROM shops WHERE owner_id = $1`, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: shop of owner %d", ErrNotFound, ownerID)
		}
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}

	return &shop, nil
}

func (r *shopMemberRepository) GetMember(ctx context.Context, shopID, userID int64) (*models.ShopMember, error) {
	return r.getOne(ctx, `SELECT * FROM shop_members WHERE shop_id = $1 AND user_id = $2`, shopID, userID)
}

// GetMembershipByUser returns the oldest membership of the user.
func (r *shopMemberRepository) GetMembershipByUser(ctx context.Context, userID int64) (*models.ShopMember, error) {
	return r.getOne(ctx, `SELECT * FROM shop_members WHERE user_id = $1 ORDER BY id LIMIT 1`, userID)
}

func (r *shopMemberRepository) GetAdminMembership(ctx context.Context, userID int64) (*models.ShopMember, error) {
	return r.getOne(ctx, `SELECT * FROM shop_members WHERE user_id = $1 AND is_admin ORDER BY id LIMIT 1`, userID)
}

func (r *shopMemberRepository) getOne(ctx context.Context, query string, args ...interface{}) (*models.ShopMember, error) {
	var member models.ShopMember
	if err := r.db.GetContext(ctx, &member, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: shop member", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get shop member: %w", err)
	}

	return &member, nil
}

func (r *shopMemberRepository) Create(ctx context.Context, member *models.ShopMember) error {
	query := `
		INSERT INTO shop_members (shop_id, user_id, is_admin, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRowxContext(ctx, query, member.ShopID, member.UserID, member.IsAdmin, member.IsActive).
		Scan(&member.ID, &member.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: member %d of shop %d", ErrDuplicate, member.UserID, member.ShopID)
		}
		return fmt.Errorf("failed to create shop member: %w", err)
	}

	return nil
}

func (r *shopMemberRepository) ListByShop(ctx context.Context, shopID int64) ([]models.ShopMemberView, error) {
	query := `
		SELECT m.id, m.shop_id, m.user_id, m.is_admin, m.is_active, m.created_at,
			u.id AS "user.id", u.username AS "user.username", u.email AS "user.email",
			u.full_name AS "user.full_name", u.avatar AS "user.avatar"
		FROM shop_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.shop_id = $1
		ORDER BY m.id
	`

	members := []models.ShopMemberView{}
	if err := r.db.SelectContext(ctx, &members, query, shopID); err != nil {
		return nil, fmt.Errorf("failed to list shop members: %w", err)
	}

	return members, nil
}

func (r *shopMemberRepository) Delete(ctx context.Context, shopID, userID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM shop_members WHERE shop_id = $1 AND user_id = $2`, shopID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete shop member: %w", err)
	}

	return checkAffected(result, fmt.Errorf("%w: member %d of shop %d", ErrNotFound, userID, shopID))
}

func (r *shopMemberRepository) Activate(ctx context.Context, memberID int64) error {
	result, err := r.db.ExecContext(ctx, `UPDATE shop_members SET is_active = TRUE WHERE id = $1`, memberID)
	if err != nil {
		return fmt.Errorf("failed to activate shop member: %w", err)
	}

	return checkAffected(result, fmt.Errorf("%w: shop member %d", ErrNotFound, memberID))
}
