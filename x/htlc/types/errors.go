package types

import (
	errorsmod "cosmossdk.io/errors"
)

var (
	// creation validation
	ErrInvalidHashLock = errorsmod.Register(ModuleName, 2, "invalid hash lock")
	ErrInvalidDeadline = errorsmod.Register(ModuleName, 3, "deadline must be in the future")
	ErrInvalidAmount   = errorsmod.Register(ModuleName, 4, "amount must be greater than zero")
	ErrInvalidAsset    = errorsmod.Register(ModuleName, 5, "invalid asset")

	// state
	ErrSwapExists   = errorsmod.Register(ModuleName, 6, "swap already exists")
	ErrSwapNotFound = errorsmod.Register(ModuleName, 7, "swap not found")
	ErrSwapNotOpen  = errorsmod.Register(ModuleName, 8, "swap is not open")

	// authorization
	ErrUnauthorized = errorsmod.Register(ModuleName, 9, "caller lacks required role")

	// payment
	ErrNoPayment      = errorsmod.Register(ModuleName, 10, "no payment found")
	ErrInvalidPayment = errorsmod.Register(ModuleName, 11, "incorrect payment amount")

	// cryptography
	ErrInvalidPreimage = errorsmod.Register(ModuleName, 12, "invalid preimage")

	// token funding notification
	ErrTokenMismatch = errorsmod.Register(ModuleName, 13, "wrong token contract or amount")

	// timing
	ErrDeadlinePassed     = errorsmod.Register(ModuleName, 14, "deadline has passed")
	ErrDeadlineNotReached = errorsmod.Register(ModuleName, 15, "deadline not reached")
)
