package handlers

import (
	"errors"
	"net/http"

	"splitnest/internal/domain/allocation"
	"splitnest/internal/usecase"
	"splitnest/pkg"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)

// mapWorkflowError translates usecase and validator errors into the HTTP
// error taxonomy: 409 for lost races and duplicate active state, 422 for
// state-machine and validation rejections, 404 for "nothing pending".
func mapWorkflowError(err error) *pkg.AppError {
	var mismatch *allocation.MismatchError
	if errors.As(err, &mismatch) {
		return pkg.NewDomainError("ALLOCATION_MISMATCH", mismatch.Error(), err, http.StatusUnprocessableEntity).
			WithDetails(map[string]any{"difference": mismatch.Difference.InexactFloat64()})
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidHouseID),
		errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidProposalID),
		errors.Is(err, usecase.ErrInvalidRentAmount),
		errors.Is(err, usecase.ErrInvalidRentDueDay):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)

	case errors.Is(err, allocation.ErrNegativeAmount),
		errors.Is(err, allocation.ErrDuplicateMember):
		return pkg.NewDomainError("INVALID_ALLOCATIONS", err.Error(), err, http.StatusBadRequest)

	case errors.Is(err, allocation.ErrMissingMembers),
		errors.Is(err, allocation.ErrUnknownMembers):
		return pkg.NewDomainError("MEMBER_SET_MISMATCH", err.Error(), err, http.StatusUnprocessableEntity)

	case errors.Is(err, usecase.ErrClaimConflict):
		return pkg.NewDomainError("CLAIM_CONFLICT", "Someone else already claimed this request", err, http.StatusConflict)

	case errors.Is(err, usecase.ErrActiveProposalExists),
		errors.Is(err, usecase.ErrRequestInProgress):
		return pkg.NewDomainError("ALREADY_EXISTS", "An active proposal or request already exists for this house", err, http.StatusConflict)

	case errors.Is(err, usecase.ErrProposalNotDraft),
		errors.Is(err, usecase.ErrProposalNotOpen),
		errors.Is(err, usecase.ErrAlreadyResponded),
		errors.Is(err, usecase.ErrRequestNotClaimed):
		return pkg.NewDomainError("INVALID_STATE", err.Error(), err, http.StatusUnprocessableEntity)

	case errors.Is(err, usecase.ErrNotProposalCreator),
		errors.Is(err, usecase.ErrNotHouseMember),
		errors.Is(err, usecase.ErrNoAllocationForUser):
		return pkg.NewDomainError("FORBIDDEN", err.Error(), err, http.StatusForbidden)

	case errors.Is(err, usecase.ErrHouseNotFound),
		errors.Is(err, usecase.ErrRequestNotFound),
		errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainError("NOT_FOUND", err.Error(), err, http.StatusNotFound)

	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
