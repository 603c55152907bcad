package service

import "errors"

// Errors surfaced by the transaction operations. The HTTP layer maps them to
// response codes; they propagate unchanged from the point of detection.
var (
	ErrInsufficientBalance = errors.New("insufficient balance for outcome transaction")
	ErrNotFound            = errors.New("transaction not found")
)
