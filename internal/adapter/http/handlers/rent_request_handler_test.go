package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"splitnest/internal/adapter/http/handlers/mocks"
	"splitnest/internal/adapter/http/middleware"
	"splitnest/internal/domain/entities"
	"splitnest/internal/usecase"
)

func newRequestRouter(h *RentRequestHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api", middleware.Identity())
	api.PUT("/houses/:house_id/rent-configuration", h.SetRentConfiguration)
	api.GET("/houses/:house_id/rent-allocation-request", h.GetRequest)
	api.POST("/houses/:house_id/rent-allocation-request/claim", h.ClaimRequest)
	return r
}

func TestRentRequestHandler_SetRentConfiguration(t *testing.T) {
	t.Run("missing identity header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewRentRequestHandler(mocks.NewMockIRentConfigUseCase(ctrl), nil)
		r := newRequestRouter(h)

		req := httptest.NewRequest(http.MethodPut, "/api/houses/house-1/rent-configuration", bytes.NewBufferString(`{"monthly_rent_amount":2900,"rent_due_day":5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewRentRequestHandler(mocks.NewMockIRentConfigUseCase(ctrl), nil)
		r := newRequestRouter(h)

		req := httptest.NewRequest(http.MethodPut, "/api/houses/house-1/rent-configuration", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.UserIDHeader, "landlord-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("non positive amount rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewRentRequestHandler(mocks.NewMockIRentConfigUseCase(ctrl), nil)
		r := newRequestRouter(h)

		req := httptest.NewRequest(http.MethodPut, "/api/houses/house-1/rent-configuration", bytes.NewBufferString(`{"monthly_rent_amount":0,"rent_due_day":5}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.UserIDHeader, "landlord-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("request in progress maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRentConfigUseCase(ctrl)
		h := NewRentRequestHandler(uc, nil)
		r := newRequestRouter(h)

		uc.EXPECT().SetConfiguration(gomock.Any(), "house-1", gomock.Any(), 5).Return(entities.RentAllocationRequest{}, usecase.ErrRequestInProgress)

		req := httptest.NewRequest(http.MethodPut, "/api/houses/house-1/rent-configuration", bytes.NewBufferString(`{"monthly_rent_amount":2900,"rent_due_day":5}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.UserIDHeader, "landlord-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("creates pending request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRentConfigUseCase(ctrl)
		h := NewRentRequestHandler(uc, nil)
		r := newRequestRouter(h)

		uc.EXPECT().SetConfiguration(gomock.Any(), "house-1", gomock.Any(), 5).DoAndReturn(
			func(_ context.Context, _ string, amount decimal.Decimal, _ int) (entities.RentAllocationRequest, error) {
				if !amount.Equal(decimal.RequireFromString("2900")) {
					t.Fatalf("unexpected amount: %s", amount)
				}
				return entities.RentAllocationRequest{
					ID: "req-1", HouseID: "house-1", MonthlyRentAmount: amount, RentDueDay: 5,
					Status: entities.RequestStatusPending,
				}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPut, "/api/houses/house-1/rent-configuration", bytes.NewBufferString(`{"monthly_rent_amount":2900,"rent_due_day":5}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.UserIDHeader, "landlord-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["status"] != "pending" {
			t.Fatalf("expected pending status, got %v", body["status"])
		}
	})
}

func TestRentRequestHandler_GetRequest(t *testing.T) {
	t.Run("nothing pending maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRentConfigUseCase(ctrl)
		h := NewRentRequestHandler(uc, nil)
		r := newRequestRouter(h)

		uc.EXPECT().GetRequestByHouseID(gomock.Any(), "house-1").Return(entities.RentAllocationRequest{}, usecase.ErrRequestNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/houses/house-1/rent-allocation-request", nil)
		req.Header.Set(middleware.UserIDHeader, "alice")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestRentRequestHandler_ClaimRequest(t *testing.T) {
	t.Run("claim success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewRentRequestHandler(nil, uc)
		r := newRequestRouter(h)

		uc.EXPECT().Claim(gomock.Any(), "house-1", "alice").Return(entities.RentAllocationRequest{
			ID: "req-1", HouseID: "house-1", Status: entities.RequestStatusClaimed, ClaimedBy: "alice",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/houses/house-1/rent-allocation-request/claim", nil)
		req.Header.Set(middleware.UserIDHeader, "alice")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["claimed_by"] != "alice" {
			t.Fatalf("expected claimed_by alice, got %v", body["claimed_by"])
		}
	})

	t.Run("lost race maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewRentRequestHandler(nil, uc)
		r := newRequestRouter(h)

		uc.EXPECT().Claim(gomock.Any(), "house-1", "bob").Return(entities.RentAllocationRequest{}, usecase.ErrClaimConflict)

		req := httptest.NewRequest(http.MethodPost, "/api/houses/house-1/rent-allocation-request/claim", nil)
		req.Header.Set(middleware.UserIDHeader, "bob")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["code"] != "CLAIM_CONFLICT" {
			t.Fatalf("expected CLAIM_CONFLICT, got %v", body["code"])
		}
	})

	t.Run("non member maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewRentRequestHandler(nil, uc)
		r := newRequestRouter(h)

		uc.EXPECT().Claim(gomock.Any(), "house-1", "mallory").Return(entities.RentAllocationRequest{}, usecase.ErrNotHouseMember)

		req := httptest.NewRequest(http.MethodPost, "/api/houses/house-1/rent-allocation-request/claim", nil)
		req.Header.Set(middleware.UserIDHeader, "mallory")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}
