package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"splitnest/internal/adapter/http/handlers/mocks"
	"splitnest/internal/adapter/http/middleware"
	"splitnest/internal/domain/allocation"
	"splitnest/internal/domain/entities"
	"splitnest/internal/usecase"
)

func newProposalRouter(h *RentProposalHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api", middleware.Identity())
	api.POST("/houses/:house_id/rent-proposals", h.CreateDraft)
	api.GET("/houses/:house_id/rent-proposals", h.ListProposals)
	api.GET("/houses/:house_id/rent-proposals/active", h.GetActiveProposal)
	api.GET("/rent-proposals/:id", h.GetProposal)
	api.PUT("/rent-proposals/:id", h.UpdateDraft)
	api.DELETE("/rent-proposals/:id", h.DeleteDraft)
	api.POST("/rent-proposals/:id/submit", h.SubmitProposal)
	return r
}

func TestRentProposalHandler_CreateDraft(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewRentProposalHandler(mocks.NewMockIDraftUseCase(ctrl), nil)
		r := newProposalRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/api/houses/house-1/rent-proposals", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.UserIDHeader, "alice")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty allocation set rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewRentProposalHandler(mocks.NewMockIDraftUseCase(ctrl), nil)
		r := newProposalRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/api/houses/house-1/rent-proposals", bytes.NewBufferString(`{"allocations":[]}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.UserIDHeader, "alice")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("second active proposal maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		h := NewRentProposalHandler(uc, nil)
		r := newProposalRouter(h)

		uc.EXPECT().CreateDraft(gomock.Any(), "house-1", "alice", gomock.Any()).Return(usecase.DraftResult{}, usecase.ErrActiveProposalExists)

		req := httptest.NewRequest(http.MethodPost, "/api/houses/house-1/rent-proposals", bytes.NewBufferString(`{"allocations":[{"user_id":"alice","amount":1000}]}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.UserIDHeader, "alice")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("claim required maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		h := NewRentProposalHandler(uc, nil)
		r := newProposalRouter(h)

		uc.EXPECT().CreateDraft(gomock.Any(), "house-1", "alice", gomock.Any()).Return(usecase.DraftResult{}, usecase.ErrRequestNotClaimed)

		req := httptest.NewRequest(http.MethodPost, "/api/houses/house-1/rent-proposals", bytes.NewBufferString(`{"allocations":[{"user_id":"alice","amount":1000}]}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.UserIDHeader, "alice")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("create success returns remainder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		h := NewRentProposalHandler(uc, nil)
		r := newProposalRouter(h)

		uc.EXPECT().CreateDraft(gomock.Any(), "house-1", "alice", gomock.Any()).Return(usecase.DraftResult{
			Proposal: entities.RentProposal{
				ID: "prop-1", HouseID: "house-1", CreatedBy: "alice", Status: entities.ProposalStatusDraft,
				Allocations: []entities.Allocation{
					{UserID: "alice", Amount: decimal.RequireFromString("1000.00"), ApprovalStatus: entities.ApprovalStatusPending},
				},
			},
			Remaining: decimal.RequireFromString("1900.00"),
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/houses/house-1/rent-proposals", bytes.NewBufferString(`{"allocations":[{"user_id":"alice","amount":1000}]}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.UserIDHeader, "alice")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["remaining"] != 1900.0 {
			t.Fatalf("expected remaining 1900, got %v", body["remaining"])
		}
		if body["status"] != "draft" {
			t.Fatalf("expected draft status, got %v", body["status"])
		}
	})
}

func TestRentProposalHandler_UpdateDraft(t *testing.T) {
	t.Run("non creator maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		h := NewRentProposalHandler(uc, nil)
		r := newProposalRouter(h)

		uc.EXPECT().UpdateDraft(gomock.Any(), "prop-1", "bob", gomock.Any()).Return(usecase.DraftResult{}, usecase.ErrNotProposalCreator)

		req := httptest.NewRequest(http.MethodPut, "/api/rent-proposals/prop-1", bytes.NewBufferString(`{"allocations":[{"user_id":"bob","amount":1000}]}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.UserIDHeader, "bob")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("submitted proposal maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		h := NewRentProposalHandler(uc, nil)
		r := newProposalRouter(h)

		uc.EXPECT().UpdateDraft(gomock.Any(), "prop-1", "alice", gomock.Any()).Return(usecase.DraftResult{}, usecase.ErrProposalNotDraft)

		req := httptest.NewRequest(http.MethodPut, "/api/rent-proposals/prop-1", bytes.NewBufferString(`{"allocations":[{"user_id":"alice","amount":1000}]}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.UserIDHeader, "alice")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestRentProposalHandler_DeleteDraft(t *testing.T) {
	t.Run("delete success returns 204", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		h := NewRentProposalHandler(uc, nil)
		r := newProposalRouter(h)

		uc.EXPECT().DeleteDraft(gomock.Any(), "prop-1", "alice").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/rent-proposals/prop-1", nil)
		req.Header.Set(middleware.UserIDHeader, "alice")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("unknown proposal maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		h := NewRentProposalHandler(uc, nil)
		r := newProposalRouter(h)

		uc.EXPECT().DeleteDraft(gomock.Any(), "prop-9", "alice").Return(usecase.ErrProposalNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/api/rent-proposals/prop-9", nil)
		req.Header.Set(middleware.UserIDHeader, "alice")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestRentProposalHandler_SubmitProposal(t *testing.T) {
	t.Run("sum mismatch maps to 422 with difference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)
		h := NewRentProposalHandler(nil, uc)
		r := newProposalRouter(h)

		uc.EXPECT().Submit(gomock.Any(), "prop-1", "alice").Return(entities.RentProposal{}, &allocation.MismatchError{
			Difference: decimal.RequireFromString("66.66"),
		})

		req := httptest.NewRequest(http.MethodPost, "/api/rent-proposals/prop-1/submit", nil)
		req.Header.Set(middleware.UserIDHeader, "alice")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["code"] != "ALLOCATION_MISMATCH" {
			t.Fatalf("expected ALLOCATION_MISMATCH, got %v", body["code"])
		}
		details, ok := body["details"].(map[string]any)
		if !ok || details["difference"] != 66.66 {
			t.Fatalf("expected difference detail, got %v", body["details"])
		}
	})

	t.Run("submit success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)
		h := NewRentProposalHandler(nil, uc)
		r := newProposalRouter(h)

		uc.EXPECT().Submit(gomock.Any(), "prop-1", "alice").Return(entities.RentProposal{
			ID: "prop-1", HouseID: "house-1", CreatedBy: "alice", Status: entities.ProposalStatusSubmitted,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/rent-proposals/prop-1/submit", nil)
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
		if body["status"] != "submitted" {
			t.Fatalf("expected submitted status, got %v", body["status"])
		}
	})
}

func TestRentProposalHandler_GetActiveProposal(t *testing.T) {
	t.Run("no active proposal maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		h := NewRentProposalHandler(uc, nil)
		r := newProposalRouter(h)

		uc.EXPECT().GetActiveByHouseID(gomock.Any(), "house-1").Return(entities.RentProposal{}, usecase.ErrProposalNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/houses/house-1/rent-proposals/active", nil)
		req.Header.Set(middleware.UserIDHeader, "alice")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
