package api

import (
	"net/http"

	"lendit/internal/handler/httperr"
	"lendit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortDomainError translates use case sentinels into HTTP responses.
// Ownership violations on approval map to not-found rather than
// forbidden, so non-owners cannot discover which bookings exist.
func abortDomainError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	case errs.Is(err, errs.ErrItemNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
	case errs.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errs.Is(err, errs.ErrBookerIsOwner):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User is owner", nil)
	case errs.Is(err, errs.ErrItemUnavailable):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Item not available", nil)
	case errs.Is(err, errs.ErrStatusAlreadyDecided):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.Is(err, errs.ErrCommentNotAllowed):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "User has no finished booking for this item", nil)
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.Is(err, errs.ErrDuplicateEmail):
		httperr.AbortWithError(c, http.StatusConflict, err, "Email already registered", nil)
	case errs.Is(err, errs.ErrUnknownState):
		// Unknown state filters surface as a server error; clients of
		// the original API depend on this status.
		httperr.AbortWithError(c, http.StatusInternalServerError, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
