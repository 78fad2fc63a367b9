package utils

import "errors"

// Common application errors used across services.
var (
	ErrOrderNotFound    = errors.New("ORDER_NOT_FOUND")
	ErrUpdateInFlight   = errors.New("UPDATE_IN_FLIGHT")
	ErrAlreadyCancelled = errors.New("ORDER_ALREADY_CANCELLED")
	ErrNotRefundable    = errors.New("PAYMENT_NOT_REFUNDABLE")
	ErrInvalidStatus    = errors.New("INVALID_ORDER_STATUS")
	ErrInvalidStock     = errors.New("INVALID_STOCK_QUANTITY")
	ErrMissingFile      = errors.New("MISSING_FILE")
)
