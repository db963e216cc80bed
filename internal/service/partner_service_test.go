package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/locacare/backend/internal/apperrors"
	"github.com/locacare/backend/internal/mocks/repository_mocks"
	"github.com/locacare/backend/internal/models"
)

func TestPartnerService_CreatePartner(t *testing.T) {
	tests := []struct {
		name       string
		input      CreatePartnerInput
		setupMocks func(repo *repository_mocks.MockUserRepository)
		check      func(t *testing.T, got *models.User)
		wantErr    error
	}{
		{
			name: "partner created with explicit rate",
			input: CreatePartnerInput{
				Email:    "Maria@Clinic.com ",
				Password: "secret",
				Name:     "Maria",
				Code:     "maria10",
				Rate:     15,
			},
			setupMocks: func(repo *repository_mocks.MockUserRepository) {
				repo.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *models.User) error {
						assert.Equal(t, "maria@clinic.com", u.Email)
						assert.Equal(t, models.RolePartner, u.Role)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret")))
						u.ID = 21
						return nil
					})
				repo.EXPECT().AssignReferralCode(gomock.Any(), int64(21), "MARIA10", 15.0).Return(nil)
			},
			check: func(t *testing.T, got *models.User) {
				require.NotNil(t, got.ReferralCode)
				assert.Equal(t, "MARIA10", *got.ReferralCode)
				assert.Equal(t, 15.0, got.Rate)
			},
		},
		{
			name: "zero rate falls back to default",
			input: CreatePartnerInput{
				Email:    "joao@clinic.com",
				Password: "secret",
				Name:     "João",
				Code:     "JOAO",
			},
			setupMocks: func(repo *repository_mocks.MockUserRepository) {
				repo.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *models.User) error {
						u.ID = 22
						return nil
					})
				repo.EXPECT().AssignReferralCode(gomock.Any(), int64(22), "JOAO", 10.0).Return(nil)
			},
			check: func(t *testing.T, got *models.User) {
				assert.Equal(t, 10.0, got.Rate)
			},
		},
		{
			name: "code collision compensates by deleting the user",
			input: CreatePartnerInput{
				Email:    "ana@clinic.com",
				Password: "secret",
				Name:     "Ana",
				Code:     "MARIA10",
			},
			setupMocks: func(repo *repository_mocks.MockUserRepository) {
				repo.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *models.User) error {
						u.ID = 23
						return nil
					})
				repo.EXPECT().
					AssignReferralCode(gomock.Any(), int64(23), "MARIA10", 10.0).
					Return(apperrors.ErrReferralCodeTaken)
				repo.EXPECT().DeleteUser(gomock.Any(), int64(23)).Return(nil)
			},
			wantErr: apperrors.ErrReferralCodeTaken,
		},
		{
			name: "missing email rejected",
			input: CreatePartnerInput{
				Password: "secret",
				Name:     "Ana",
				Code:     "ANA",
			},
			setupMocks: func(repo *repository_mocks.MockUserRepository) {},
			wantErr:    apperrors.ErrInvalidRequest,
		},
		{
			name: "invalid referral code rejected",
			input: CreatePartnerInput{
				Email:    "ana@clinic.com",
				Password: "secret",
				Name:     "Ana",
				Code:     "ANA CLINIC",
			},
			setupMocks: func(repo *repository_mocks.MockUserRepository) {},
			wantErr:    apperrors.ErrInvalidReferral,
		},
		{
			name: "rate above 100 rejected",
			input: CreatePartnerInput{
				Email:    "ana@clinic.com",
				Password: "secret",
				Name:     "Ana",
				Code:     "ANA",
				Rate:     120,
			},
			setupMocks: func(repo *repository_mocks.MockUserRepository) {},
			wantErr:    apperrors.ErrInvalidRequest,
		},
		{
			name: "duplicate email surfaced from first phase",
			input: CreatePartnerInput{
				Email:    "maria@clinic.com",
				Password: "secret",
				Name:     "Maria",
				Code:     "MARIA10",
			},
			setupMocks: func(repo *repository_mocks.MockUserRepository) {
				repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(apperrors.ErrUserAlreadyExists)
			},
			wantErr: apperrors.ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := repository_mocks.NewMockUserRepository(ctrl)
			tt.setupMocks(repo)

			svc := NewPartnerService(repo, 10)
			got, err := svc.CreatePartner(context.Background(), tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got)
			tt.check(t, got)
		})
	}
}

func TestPartnerService_ListPartners(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository_mocks.NewMockUserRepository(ctrl)
	code := "MARIA10"
	repo.EXPECT().ListPartners(gomock.Any()).Return([]models.User{
		{ID: 21, Email: "maria@clinic.com", Role: models.RolePartner, ReferralCode: &code, Rate: 15},
	}, nil)

	svc := NewPartnerService(repo, 10)
	got, err := svc.ListPartners(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "maria@clinic.com", got[0].Email)
}
