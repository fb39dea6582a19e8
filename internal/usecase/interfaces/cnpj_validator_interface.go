package interfaces

import (
	"context"
	"errors"
	"fmt"
)

//go:generate mockgen -source=cnpj_validator_interface.go -destination=mocks/mock_cnpj_validator.go -package=mock_interfaces

var (
	// ErrCnpjFormat means the input did not normalize to 14 digits. The
	// adapter fails fast on it, before any network call.
	ErrCnpjFormat = errors.New("cnpj must have 14 digits")

	// ErrCnpjNotFoundOrInvalid means the registry answered and rejected the
	// number.
	ErrCnpjNotFoundOrInvalid = errors.New("cnpj invalid or not found")

	// ErrCnpjRateLimited means the registry throttled us; callers surface it
	// as "service temporarily unavailable".
	ErrCnpjRateLimited = errors.New("cnpj registry rate limited")
)

// RegistryError covers every other registry failure (unreachable, unexpected
// status, malformed body). Callers treat it as transient.
type RegistryError struct {
	StatusCode int
	Message    string
}

func (e *RegistryError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("cnpj registry error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("cnpj registry error: %s", e.Message)
}

// ICnpjValidator is the contract the core depends on for business-registry
// lookups. Validate normalizes rawCnpj by stripping non-digits, then returns
// the registry payload when the number is valid, or one of ErrCnpjFormat,
// ErrCnpjNotFoundOrInvalid, ErrCnpjRateLimited, or *RegistryError.
type ICnpjValidator interface {
	Validate(ctx context.Context, rawCnpj string) (map[string]interface{}, error)
}
