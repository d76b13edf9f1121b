package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"splitnest/internal/adapter/http/dto/response"
	"splitnest/internal/adapter/http/middleware"
	"splitnest/internal/usecase"
)

// HouseHandler serves the read-only house directory.

type HouseHandler struct {
	usecase usecase.IHouseUseCase
}

func NewHouseHandler(uc usecase.IHouseUseCase) *HouseHandler {
	return &HouseHandler{usecase: uc}
}

func (h *HouseHandler) GetHouse(c *gin.Context) {
	house, err := h.usecase.GetByID(c.Request.Context(), c.Param("house_id"))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromHouse(house))
}

// ListMyHouses returns the houses the caller is a member of.
func (h *HouseHandler) ListMyHouses(c *gin.Context) {
	houses, err := h.usecase.ListMine(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromHouses(houses))
}
