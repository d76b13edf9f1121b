package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"splitnest/internal/adapter/http/handlers/mocks"
	"splitnest/internal/adapter/http/middleware"
	"splitnest/internal/domain/entities"
	"splitnest/internal/usecase"
)

func newHouseRouter(h *HouseHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api", middleware.Identity())
	api.GET("/houses/:house_id", h.GetHouse)
	api.GET("/users/me/houses", h.ListMyHouses)
	return r
}

func TestHouseHandler_GetHouse(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIHouseUseCase(ctrl)
		h := NewHouseHandler(uc)
		r := newHouseRouter(h)

		uc.EXPECT().GetByID(gomock.Any(), "house-1").Return(entities.House{
			ID: "house-1", Name: "Elm St", MemberIDs: []string{"alice", "bob"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/houses/house-1", nil)
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
		if body["name"] != "Elm St" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIHouseUseCase(ctrl)
		h := NewHouseHandler(uc)
		r := newHouseRouter(h)

		uc.EXPECT().GetByID(gomock.Any(), "house-9").Return(entities.House{}, usecase.ErrHouseNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/houses/house-9", nil)
		req.Header.Set(middleware.UserIDHeader, "alice")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestHouseHandler_ListMyHouses(t *testing.T) {
	t.Run("lists caller's houses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIHouseUseCase(ctrl)
		h := NewHouseHandler(uc)
		r := newHouseRouter(h)

		uc.EXPECT().ListMine(gomock.Any(), "alice").Return([]entities.House{
			{ID: "house-1", Name: "Elm St"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/users/me/houses", nil)
		req.Header.Set(middleware.UserIDHeader, "alice")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(body) != 1 || body[0]["id"] != "house-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
