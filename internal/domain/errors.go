package domain

import "errors"

// Failures detected inside the purchase transaction by conditional updates
// (affected-row checks), shared between repository and service layers.
var (
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrBalanceNotFound     = errors.New("balance not found")
)
