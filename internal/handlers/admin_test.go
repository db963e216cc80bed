package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locacare/backend/internal/apperrors"
	"github.com/locacare/backend/internal/authz"
	"github.com/locacare/backend/internal/mocks/service_mocks"
	"github.com/locacare/backend/internal/models"
	"github.com/locacare/backend/internal/service"
)

func TestCreatePartner(t *testing.T) {
	tests := []struct {
		name       string
		actor      authz.Actor
		body       string
		setupMocks func(partnerSvc *service_mocks.MockPartnerService)
		wantStatus int
	}{
		{
			name:  "admin creates a partner",
			actor: authz.Actor{UserID: 1, Role: models.RoleAdmin},
			body:  `{"email": "maria@clinic.com", "password": "secret", "name": "Maria", "referral_code": "MARIA10", "commission_rate": 15}`,
			setupMocks: func(partnerSvc *service_mocks.MockPartnerService) {
				code := "MARIA10"
				partnerSvc.EXPECT().
					CreatePartner(gomock.Any(), service.CreatePartnerInput{
						Email:    "maria@clinic.com",
						Password: "secret",
						Name:     "Maria",
						Code:     "MARIA10",
						Rate:     15,
					}).
					Return(&models.User{
						ID: 21, Email: "maria@clinic.com", Password: "hash",
						Role: models.RolePartner, ReferralCode: &code, Rate: 15,
					}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:  "taken referral code conflicts",
			actor: authz.Actor{UserID: 1, Role: models.RoleAdmin},
			body:  `{"email": "ana@clinic.com", "password": "secret", "name": "Ana", "referral_code": "MARIA10"}`,
			setupMocks: func(partnerSvc *service_mocks.MockPartnerService) {
				partnerSvc.EXPECT().
					CreatePartner(gomock.Any(), gomock.Any()).
					Return(nil, apperrors.ErrReferralCodeTaken)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:  "invalid referral code rejected",
			actor: authz.Actor{UserID: 1, Role: models.RoleAdmin},
			body:  `{"email": "ana@clinic.com", "password": "secret", "name": "Ana", "referral_code": "BAD CODE"}`,
			setupMocks: func(partnerSvc *service_mocks.MockPartnerService) {
				partnerSvc.EXPECT().
					CreatePartner(gomock.Any(), gomock.Any()).
					Return(nil, apperrors.ErrInvalidReferral)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "staff cannot create partners",
			actor:      authz.Actor{UserID: 2, Role: models.RoleStaff},
			body:       `{"email": "x@y.z", "password": "p", "name": "X", "referral_code": "X"}`,
			setupMocks: func(partnerSvc *service_mocks.MockPartnerService) {},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, partnerSvc, _, _ := newTestHandler(t)
			tt.setupMocks(partnerSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/admin/partners", bytes.NewBufferString(tt.body))
			req = withActor(req, tt.actor)
			rec := httptest.NewRecorder()

			h.CreatePartner(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusCreated {
				var got models.User
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Empty(t, got.Password)
				require.NotNil(t, got.ReferralCode)
				assert.Equal(t, "MARIA10", *got.ReferralCode)
			}
		})
	}
}

func TestUpdatePassword(t *testing.T) {
	tests := []struct {
		name       string
		actor      authz.Actor
		targetID   string
		body       string
		setupMocks func(userSvc *service_mocks.MockUserService)
		wantStatus int
	}{
		{
			name:     "admin resets any password",
			actor:    authz.Actor{UserID: 1, Role: models.RoleAdmin},
			targetID: "5",
			body:     `{"password": "newsecret"}`,
			setupMocks: func(userSvc *service_mocks.MockUserService) {
				userSvc.EXPECT().UpdatePassword(gomock.Any(), int64(5), "newsecret").Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:     "user changes own password",
			actor:    authz.Actor{UserID: 5, Role: models.RolePartner},
			targetID: "5",
			body:     `{"password": "newsecret"}`,
			setupMocks: func(userSvc *service_mocks.MockUserService) {
				userSvc.EXPECT().UpdatePassword(gomock.Any(), int64(5), "newsecret").Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "user cannot change someone else's password",
			actor:      authz.Actor{UserID: 5, Role: models.RolePartner},
			targetID:   "6",
			body:       `{"password": "newsecret"}`,
			setupMocks: func(userSvc *service_mocks.MockUserService) {},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "empty password rejected",
			actor:      authz.Actor{UserID: 1, Role: models.RoleAdmin},
			targetID:   "5",
			body:       `{"password": ""}`,
			setupMocks: func(userSvc *service_mocks.MockUserService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:     "unknown user",
			actor:    authz.Actor{UserID: 1, Role: models.RoleAdmin},
			targetID: "999",
			body:     `{"password": "newsecret"}`,
			setupMocks: func(userSvc *service_mocks.MockUserService) {
				userSvc.EXPECT().
					UpdatePassword(gomock.Any(), int64(999), "newsecret").
					Return(apperrors.ErrUserNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, userSvc, _, _, _ := newTestHandler(t)
			tt.setupMocks(userSvc)

			req := httptest.NewRequest(http.MethodPut, "/api/admin/users/"+tt.targetID+"/password", bytes.NewBufferString(tt.body))
			req = withActor(req, tt.actor)
			req = withURLParam(req, "id", tt.targetID)
			rec := httptest.NewRecorder()

			h.UpdatePassword(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestDeleteUser(t *testing.T) {
	t.Run("admin deletes a user", func(t *testing.T) {
		h, userSvc, _, _, _ := newTestHandler(t)
		userSvc.EXPECT().DeleteUser(gomock.Any(), int64(5)).Return(nil)

		req := withActor(httptest.NewRequest(http.MethodDelete, "/api/admin/users/5", nil),
			authz.Actor{UserID: 1, Role: models.RoleAdmin})
		req = withURLParam(req, "id", "5")
		rec := httptest.NewRecorder()

		h.DeleteUser(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("staff cannot delete users", func(t *testing.T) {
		h, _, _, _, _ := newTestHandler(t)

		req := withActor(httptest.NewRequest(http.MethodDelete, "/api/admin/users/5", nil),
			authz.Actor{UserID: 2, Role: models.RoleStaff})
		req = withURLParam(req, "id", "5")
		rec := httptest.NewRecorder()

		h.DeleteUser(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
