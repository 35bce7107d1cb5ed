package services

import (
	"errors"
	"net/http"

	"scoup/pkg/apperr"

	"gorm.io/gorm"
)

// Errors controllers render as (code, status, message).
var (
	ErrUserNotFound   = apperr.NotFound("NOT_FOUND_USER", "user not found")
	ErrCafeNotFound   = apperr.NotFound("NOT_FOUND_CAFE", "cafe not found")
	ErrMenuNotFound   = apperr.NotFound("NOT_FOUND_MENU", "menu not found")
	ErrOrderNotFound  = apperr.NotFound("NOT_FOUND_ORDER", "order not found")
	ErrEventNotFound  = apperr.NotFound("NOT_FOUND_EVENT", "event not found")
	ErrCouponNotFound = apperr.NotFound("NOT_FOUND_COUPON", "coupon not found")

	ErrDuplicateCafe     = apperr.Conflict("DUPLICATE_CAFE", "cafe already added")
	ErrDuplicateCafeName = apperr.Conflict("DUPLICATE_CAFE_NAME", "cafe name already exists")

	ErrNotAdmin = apperr.Forbidden("NOT_ADMIN", "admin permission required")

	ErrEmptyUpdate = apperr.New("BAD_REQUEST", http.StatusBadRequest, "nothing to update")
)

// notFound swaps a missing-record error for the domain error.
func notFound(err, target error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}
	return err
}
