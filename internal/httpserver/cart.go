package httpserver

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront/internal/domain"
	productsvc "storefront/internal/service/product"
)

type addLineRequest struct {
	VariantID string `json:"variantId" form:"variantId"`
	Quantity  int    `json:"quantity" form:"quantity"`
}

type addLineResponse struct {
	Cart    *domain.Cart `json:"cart"`
	Message string       `json:"message"`
}

type cartResponse struct {
	CartID string `json:"cartId,omitempty"`
	State  string `json:"state"`
}

func (h *handlers) addLine(c *gin.Context) {
	var req addLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	cart, err := h.carts.AddLine(c.Request.Context(), sessionID(c), req.VariantID, req.Quantity)
	if err != nil {
		_ = c.Error(err)
		writeCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, addLineResponse{Cart: cart, Message: "Product added to cart!"})
}

// addLineForm serves the "Add Product" form: it adds the product's first
// variant and always redirects back to the catalog with the outcome in the
// status query parameter.
func (h *handlers) addLineForm(c *gin.Context) {
	ctx := c.Request.Context()
	productID := strings.TrimSpace(c.PostForm("productId"))
	if productID == "" {
		c.Redirect(http.StatusSeeOther, "/?status=failed")
		return
	}
	quantity := 1
	if raw := strings.TrimSpace(c.PostForm("quantity")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/?status=failed")
			return
		}
		quantity = n
	}

	product, err := h.products.Get(ctx, productID)
	if err != nil {
		h.logger.Warn("add product: lookup failed", zap.String("product_id", productID), zap.Error(err))
		_ = c.Error(err)
		c.Redirect(http.StatusSeeOther, "/?status=failed")
		return
	}
	variantID, err := productsvc.FirstVariantID(*product)
	if err != nil {
		h.logger.Warn("add product: nothing to add", zap.String("product_id", productID), zap.Error(err))
		_ = c.Error(err)
		c.Redirect(http.StatusSeeOther, "/?status=failed")
		return
	}

	_, err = h.carts.AddLine(ctx, sessionID(c), variantID, quantity)
	if err != nil {
		_ = c.Error(err)
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			c.Redirect(http.StatusSeeOther, "/?status=rejected")
			return
		}
		c.Redirect(http.StatusSeeOther, "/?status=failed")
		return
	}
	c.Redirect(http.StatusSeeOther, "/?status=added")
}

func (h *handlers) getCart(c *gin.Context) {
	ctx := c.Request.Context()
	sid := sessionID(c)
	state, err := h.carts.State(ctx, sid)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to load cart"})
		return
	}
	resp := cartResponse{State: state.String()}
	if id, err := h.carts.CartID(ctx, sid); err == nil {
		resp.CartID = id
	} else if !errors.Is(err, domain.ErrNotFound) {
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to load cart"})
		return
	}
	c.JSON(http.StatusOK, resp)
}
