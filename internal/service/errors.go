package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

var (
	ErrMissingFields     = fmt.Errorf("missing fields: %w", ErrValidation)
	ErrInvalidTType      = fmt.Errorf("t_type must be DR or CR: %w", ErrValidation)
	ErrInvalidDate       = fmt.Errorf("invalid date: %w", ErrValidation)
	ErrInvalidStock      = fmt.Errorf("stock must be a whole number of units: %w", ErrValidation)
	ErrProductNotFound   = fmt.Errorf("product not found: %w", ErrNotFound)
	ErrServiceNotFound   = fmt.Errorf("service not found: %w", ErrNotFound)
	ErrInsufficientStock = fmt.Errorf("not enough stock: %w", ErrConflict)
)
