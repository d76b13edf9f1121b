package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"splitnest/internal/adapter/http/dto/request"
	"splitnest/internal/adapter/http/dto/response"
	"splitnest/internal/adapter/http/middleware"
	"splitnest/internal/usecase"
)

// RentProposalHandler handles the draft lifecycle and submission: create,
// edit and delete a draft allocation set, and the one-way freeze into a
// votable proposal.

type RentProposalHandler struct {
	draftUseCase      usecase.IDraftUseCase
	submissionUseCase usecase.ISubmissionUseCase
}

func NewRentProposalHandler(draftUC usecase.IDraftUseCase, submissionUC usecase.ISubmissionUseCase) *RentProposalHandler {
	return &RentProposalHandler{draftUseCase: draftUC, submissionUseCase: submissionUC}
}

func (h *RentProposalHandler) CreateDraft(c *gin.Context) {
	var payload request.RentProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	res, err := h.draftUseCase.CreateDraft(c.Request.Context(), c.Param("house_id"), middleware.CurrentUserID(c), payload.ResolveAllocations())
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromDraftResult(res))
}

func (h *RentProposalHandler) UpdateDraft(c *gin.Context) {
	var payload request.RentProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	res, err := h.draftUseCase.UpdateDraft(c.Request.Context(), c.Param("id"), middleware.CurrentUserID(c), payload.ResolveAllocations())
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDraftResult(res))
}

func (h *RentProposalHandler) DeleteDraft(c *gin.Context) {
	if err := h.draftUseCase.DeleteDraft(c.Request.Context(), c.Param("id"), middleware.CurrentUserID(c)); err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// SubmitProposal freezes the draft into a votable proposal; the allocation
// sum and member set are hard preconditions here.
func (h *RentProposalHandler) SubmitProposal(c *gin.Context) {
	p, err := h.submissionUseCase.Submit(c.Request.Context(), c.Param("id"), middleware.CurrentUserID(c))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRentProposal(p))
}

func (h *RentProposalHandler) GetProposal(c *gin.Context) {
	p, err := h.draftUseCase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRentProposal(p))
}

// GetActiveProposal returns the house's draft or submitted proposal; 404
// means no proposal is underway.
func (h *RentProposalHandler) GetActiveProposal(c *gin.Context) {
	p, err := h.draftUseCase.GetActiveByHouseID(c.Request.Context(), c.Param("house_id"))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRentProposal(p))
}

func (h *RentProposalHandler) ListProposals(c *gin.Context) {
	ps, err := h.draftUseCase.ListByHouseID(c.Request.Context(), c.Param("house_id"))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRentProposals(ps))
}
