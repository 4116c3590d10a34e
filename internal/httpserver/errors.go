package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
)

const (
	msgAddFailed   = "Failed to add product to cart"
	msgFetchFailed = "Failed to fetch products"
)

// cartErrorStatus maps an add-to-cart failure to a status and a public
// message. Anything not recognised is a generic failure.
func cartErrorStatus(err error) (int, string) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return http.StatusUnprocessableEntity, "The store rejected the cart update"
	case errors.Is(err, domain.ErrMissingVariant), errors.Is(err, domain.ErrInvalidQuantity), errors.Is(err, domain.ErrNoVariants):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusBadGateway, msgAddFailed
	}
}

func writeCartError(c *gin.Context, err error) {
	status, msg := cartErrorStatus(err)
	body := gin.H{"message": msg}
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		body["userErrors"] = vErr.UserErrors
	}
	c.JSON(status, body)
}
