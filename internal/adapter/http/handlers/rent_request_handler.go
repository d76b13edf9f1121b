package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"splitnest/internal/adapter/http/dto/request"
	"splitnest/internal/adapter/http/dto/response"
	"splitnest/internal/adapter/http/middleware"
	"splitnest/internal/usecase"
)

// RentRequestHandler handles the rent allocation request lifecycle: the
// landlord declaring rent (which opens a pending request) and tenants
// claiming the exclusive drafting right.

type RentRequestHandler struct {
	configUseCase usecase.IRentConfigUseCase
	claimUseCase  usecase.IClaimUseCase
}

func NewRentRequestHandler(configUC usecase.IRentConfigUseCase, claimUC usecase.IClaimUseCase) *RentRequestHandler {
	return &RentRequestHandler{configUseCase: configUC, claimUseCase: claimUC}
}

// SetRentConfiguration declares (or re-declares) the house's monthly rent
// and opens a fresh pending allocation request.
func (h *RentRequestHandler) SetRentConfiguration(c *gin.Context) {
	var payload request.RentConfigurationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	req, err := h.configUseCase.SetConfiguration(c.Request.Context(), c.Param("house_id"), payload.ResolveAmount(), payload.RentDueDay)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromRentRequest(req))
}

// GetRequest returns the house's current allocation request; 404 means
// "nothing pending", a normal state for the client.
func (h *RentRequestHandler) GetRequest(c *gin.Context) {
	req, err := h.configUseCase.GetRequestByHouseID(c.Request.Context(), c.Param("house_id"))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRentRequest(req))
}

// ClaimRequest grants the caller the exclusive drafting right; a lost race
// surfaces as 409.
func (h *RentRequestHandler) ClaimRequest(c *gin.Context) {
	req, err := h.claimUseCase.Claim(c.Request.Context(), c.Param("house_id"), middleware.CurrentUserID(c))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRentRequest(req))
}
