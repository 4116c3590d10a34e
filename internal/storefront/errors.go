package storefront

import (
	"fmt"
	"strings"

	"storefront/internal/domain"
)

// GraphQLError is one entry of a top-level "errors" array.
type GraphQLError struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

// ResponseError reports a request the API answered but did not fulfil: a
// non-2xx status, top-level GraphQL errors, or a payload missing its data.
type ResponseError struct {
	Operation  string
	StatusCode int
	Errors     []GraphQLError
	Detail     string
}

func (e *ResponseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s", e.Operation)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, ": status %d", e.StatusCode)
	}
	if len(e.Errors) > 0 {
		msgs := make([]string, 0, len(e.Errors))
		for _, ge := range e.Errors {
			msgs = append(msgs, ge.Message)
		}
		fmt.Fprintf(&b, ": %s", strings.Join(msgs, "; "))
	}
	if e.Detail != "" {
		fmt.Fprintf(&b, ": %s", e.Detail)
	}
	return b.String()
}

func (e *ResponseError) Unwrap() error { return domain.ErrUpstream }
