package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"splitnest/internal/adapter/http/dto/request"
	"splitnest/internal/adapter/http/dto/response"
	"splitnest/internal/adapter/http/middleware"
	"splitnest/internal/usecase"
)

// RentApprovalHandler records member decisions on submitted proposals and
// serves the approval-scoped views.

type RentApprovalHandler struct {
	usecase usecase.IApprovalUseCase
}

func NewRentApprovalHandler(uc usecase.IApprovalUseCase) *RentApprovalHandler {
	return &RentApprovalHandler{usecase: uc}
}

func (h *RentApprovalHandler) Approve(c *gin.Context) {
	p, err := h.usecase.Approve(c.Request.Context(), c.Param("id"), middleware.CurrentUserID(c))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRentProposal(p))
}

func (h *RentApprovalHandler) Decline(c *gin.Context) {
	// The body is optional: decline works with or without a reason.
	var payload request.DeclineRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
			return
		}
	}

	p, err := h.usecase.Decline(c.Request.Context(), c.Param("id"), middleware.CurrentUserID(c), payload.Reason)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRentProposal(p))
}

// GetApprovalView returns the proposal scoped for the deciding member.
func (h *RentApprovalHandler) GetApprovalView(c *gin.Context) {
	p, mine, err := h.usecase.GetForApprover(c.Request.Context(), c.Param("id"), middleware.CurrentUserID(c))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromApprovalView(p, mine))
}

// ListPending returns the allocations awaiting the caller's decision
// across all their houses.
func (h *RentApprovalHandler) ListPending(c *gin.Context) {
	pending, err := h.usecase.ListPendingForUser(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPendingApprovals(pending))
}
