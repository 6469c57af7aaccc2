package service

import (
	"context"
	"testing"

	"challengeHub/internal/models"
	"challengeHub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestShopMemberService_Create(t *testing.T) {
	shop := &models.Shop{ID: 4, OwnerID: 1, Name: "Ink Supply"}

	tests := []struct {
		name      string
		userID    int64
		mockSetup func(*MockShopMemberRepository, *MockUserRepository)
		wantErr   error
		wantMsg   string
	}{
		{
			name:   "Success",
			userID: 9,
			mockSetup: func(members *MockShopMemberRepository, users *MockUserRepository) {
				members.On("GetShopByOwner", mock.Anything, int64(1)).Return(shop, nil)
				users.On("GetUserByID", mock.Anything, int64(9)).Return(&models.User{ID: 9}, nil)
				members.On("GetMember", mock.Anything, int64(4), int64(9)).Return(nil, repository.ErrNotFound)
				members.On("Create", mock.Anything, mock.MatchedBy(func(m *models.ShopMember) bool {
					return m.ShopID == 4 && m.UserID == 9 && !m.IsAdmin && !m.IsActive
				})).Return(nil)
			},
		},
		{
			name:   "Caller owns no shop",
			userID: 9,
			mockSetup: func(members *MockShopMemberRepository, users *MockUserRepository) {
				members.On("GetShopByOwner", mock.Anything, int64(1)).Return(nil, repository.ErrNotFound)
			},
			wantErr: ErrForbidden,
			wantMsg: "You do not own a shop",
		},
		{
			name:   "Unknown user",
			userID: 9,
			mockSetup: func(members *MockShopMemberRepository, users *MockUserRepository) {
				members.On("GetShopByOwner", mock.Anything, int64(1)).Return(shop, nil)
				users.On("GetUserByID", mock.Anything, int64(9)).Return(nil, repository.ErrNotFound)
			},
			wantErr: ErrNotFound,
			wantMsg: "User not found",
		},
		{
			name:   "Already a member",
			userID: 9,
			mockSetup: func(members *MockShopMemberRepository, users *MockUserRepository) {
				members.On("GetShopByOwner", mock.Anything, int64(1)).Return(shop, nil)
				users.On("GetUserByID", mock.Anything, int64(9)).Return(&models.User{ID: 9}, nil)
				members.On("GetMember", mock.Anything, int64(4), int64(9)).Return(&models.ShopMember{ID: 2}, nil)
			},
			wantErr: ErrConflict,
			wantMsg: alreadyMemberMessage,
		},
		{
			name:      "Missing user id",
			userID:    0,
			mockSetup: func(members *MockShopMemberRepository, users *MockUserRepository) {},
			wantErr:   ErrValidation,
			wantMsg:   "user_id is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			members := new(MockShopMemberRepository)
			users := new(MockUserRepository)
			tt.mockSetup(members, users)

			svc := NewShopMemberService(members, users)
			member, err := svc.Create(context.Background(), 1, tt.userID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				var svcErr *Error
				require.ErrorAs(t, err, &svcErr)
				assert.Equal(t, tt.wantMsg, svcErr.Message)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(9), member.UserID)
			}

			members.AssertExpectations(t)
			users.AssertExpectations(t)
		})
	}
}

func TestShopMemberService_Delete(t *testing.T) {
	admin := &models.ShopMember{ID: 1, ShopID: 4, UserID: 1, IsAdmin: true, IsActive: true}

	tests := []struct {
		name      string
		userID    int64
		mockSetup func(*MockShopMemberRepository)
		wantErr   error
	}{
		{
			name:   "Success",
			userID: 9,
			mockSetup: func(members *MockShopMemberRepository) {
				members.On("GetAdminMembership", mock.Anything, int64(1)).Return(admin, nil)
				members.On("Delete", mock.Anything, int64(4), int64(9)).Return(nil)
			},
		},
		{
			name:   "Not an admin",
			userID: 9,
			mockSetup: func(members *MockShopMemberRepository) {
				members.On("GetAdminMembership", mock.Anything, int64(1)).Return(nil, repository.ErrNotFound)
			},
			wantErr: ErrForbidden,
		},
		{
			name:   "Removing self",
			userID: 1,
			mockSetup: func(members *MockShopMemberRepository) {
				members.On("GetAdminMembership", mock.Anything, int64(1)).Return(admin, nil)
			},
			wantErr: ErrValidation,
		},
		{
			name:   "Member of another shop",
			userID: 9,
			mockSetup: func(members *MockShopMemberRepository) {
				members.On("GetAdminMembership", mock.Anything, int64(1)).Return(admin, nil)
				members.On("Delete", mock.Anything, int64(4), int64(9)).Return(repository.ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			members := new(MockShopMemberRepository)
			tt.mockSetup(members)

			svc := NewShopMemberService(members, new(MockUserRepository))
			err := svc.Delete(context.Background(), 1, tt.userID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			members.AssertExpectations(t)
		})
	}
}

func TestShopMemberService_ActivateSelf(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(*MockShopMemberRepository)
		wantErr   error
	}{
		{
			name: "Success",
			mockSetup: func(members *MockShopMemberRepository) {
				members.On("GetMembershipByUser", mock.Anything, int64(9)).
					Return(&models.ShopMember{ID: 3, ShopID: 4, UserID: 9}, nil)
				members.On("Activate", mock.Anything, int64(3)).Return(nil)
			},
		},
		{
			name: "No membership",
			mockSetup: func(members *MockShopMemberRepository) {
				members.On("GetMembershipByUser", mock.Anything, int64(9)).Return(nil, repository.ErrNotFound)
			},
			wantErr: ErrForbidden,
		},
		{
			name: "Admin cannot activate",
			mockSetup: func(members *MockShopMemberRepository) {
				members.On("GetMembershipByUser", mock.Anything, int64(9)).
					Return(&models.ShopMember{ID: 3, UserID: 9, IsAdmin: true}, nil)
			},
			wantErr: ErrForbidden,
		},
		{
			name: "Already active",
			mockSetup: func(members *MockShopMemberRepository) {
				members.On("GetMembershipByUser", mock.Anything, int64(9)).
					Return(&models.ShopMember{ID: 3, UserID: 9, IsActive: true}, nil)
			},
			wantErr: ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			members := new(MockShopMemberRepository)
			tt.mockSetup(members)

			svc := NewShopMemberService(members, new(MockUserRepository))
			member, err := svc.ActivateSelf(context.Background(), 9)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.True(t, member.IsActive)
			}
			members.AssertExpectations(t)
		})
	}
}
