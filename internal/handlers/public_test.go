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
	"github.com/locacare/backend/internal/mocks/service_mocks"
	"github.com/locacare/backend/internal/models"
	"github.com/locacare/backend/internal/service"
)

func TestCreateLead(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMocks func(rentalSvc *service_mocks.MockRentalService)
		wantStatus int
	}{
		{
			name: "lead accepted without authentication",
			body: `{"full_name": "Ana Souza", "whatsapp_phone": "11988887777", "city": "São Paulo", "referral_code": "MARIA10"}`,
			setupMocks: func(rentalSvc *service_mocks.MockRentalService) {
				rentalSvc.EXPECT().
					CreateLead(gomock.Any(), service.LeadInput{
						FullName:      "Ana Souza",
						WhatsappPhone: "11988887777",
						City:          "São Paulo",
						ReferralCode:  "MARIA10",
					}).
					Return(&models.Rental{PublicID: "r-1", Status: models.StatusLead}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "invalid contact data unprocessable",
			body: `{"full_name": "A", "whatsapp_phone": "1", "city": "X"}`,
			setupMocks: func(rentalSvc *service_mocks.MockRentalService) {
				rentalSvc.EXPECT().
					CreateLead(gomock.Any(), gomock.Any()).
					Return(nil, apperrors.ErrInvalidLeadInput)
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "unknown plan unprocessable",
			body: `{"full_name": "Ana Souza", "whatsapp_phone": "11988887777", "city": "São Paulo", "plan_id": 99}`,
			setupMocks: func(rentalSvc *service_mocks.MockRentalService) {
				rentalSvc.EXPECT().
					CreateLead(gomock.Any(), gomock.Any()).
					Return(nil, apperrors.ErrPlanNotFound)
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "malformed body",
			body:       `{`,
			setupMocks: func(rentalSvc *service_mocks.MockRentalService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, _, rentalSvc, _ := newTestHandler(t)
			tt.setupMocks(rentalSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/public/leads", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			h.CreateLead(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusCreated {
				var resp struct {
					ID     string `json:"id"`
					Status string `json:"status"`
				}
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, "r-1", resp.ID)
				assert.Equal(t, "lead", resp.Status)
			}
		})
	}
}
