package domain

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrNoVariants is returned when a product has nothing purchasable.
	ErrNoVariants = errors.New("product has no variants")
	// ErrMissingVariant is returned when an add-to-cart request names no variant.
	ErrMissingVariant = errors.New("variant id required")
	// ErrInvalidQuantity is returned for negative line quantities.
	ErrInvalidQuantity = errors.New("quantity must be positive")
	// ErrUpstream wraps transport and GraphQL failures from the storefront API.
	ErrUpstream = errors.New("storefront api request failed")
)

// UserError is a validation message reported by the storefront API alongside
// an otherwise successful mutation response.
type UserError struct {
	Field   []string `json:"field,omitempty" yaml:"field,omitempty"`
	Message string   `json:"message" yaml:"message"`
}

// ValidationError carries the userErrors of a rejected mutation.
type ValidationError struct {
	UserErrors []UserError
}

func (e *ValidationError) Error() string {
	if len(e.UserErrors) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(e.UserErrors))
	for _, ue := range e.UserErrors {
		if len(ue.Field) > 0 {
			msgs = append(msgs, strings.Join(ue.Field, ".")+": "+ue.Message)
			continue
		}
		msgs = append(msgs, ue.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
