package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront/internal/domain"
)

type productsResponse struct {
	Products []domain.Product `json:"products"`
}

func (h *handlers) listProducts(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		h.logger.Error("error while fetching products", zap.String("request_id", c.GetString(ctxKeyRequestID)), zap.Error(err))
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, gin.H{"message": msgFetchFailed})
		return
	}
	c.JSON(http.StatusOK, productsResponse{Products: products})
}

// indexPage renders the catalog. A failed fetch renders an empty catalog.
func (h *handlers) indexPage(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		h.logger.Error("error while fetching products", zap.String("request_id", c.GetString(ctxKeyRequestID)), zap.Error(err))
		_ = c.Error(err)
		products = nil
	}
	c.HTML(http.StatusOK, "index.html.tmpl", buildIndexPage(products, c.Query("status")))
}
