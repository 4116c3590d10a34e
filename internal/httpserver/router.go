package httpserver

import (
	"context"
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront/internal/domain"
	cartsvc "storefront/internal/service/cart"
)

type productService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
}

type cartService interface {
	AddLine(ctx context.Context, sessionID, variantID string, quantity int) (*domain.Cart, error)
	CartID(ctx context.Context, sessionID string) (string, error)
	State(ctx context.Context, sessionID string) (cartsvc.State, error)
}

type sessionCodec interface {
	Issue() (sessionID, token string)
	Decode(token string) (string, error)
}

type readinessChecker interface {
	Ping(ctx context.Context) error
}

// Deps are the collaborators the router needs.
type Deps struct {
	ProductSvc     productService
	CartSvc        cartService
	Sessions       sessionCodec
	SessionStore   readinessChecker
	CookieName     string
	CookieSecure   bool
	AllowedOrigins []string
}

func (d Deps) validate() error {
	switch {
	case d.ProductSvc == nil:
		return errors.New("product service required")
	case d.CartSvc == nil:
		return errors.New("cart service required")
	case d.Sessions == nil:
		return errors.New("session codec required")
	}
	return nil
}

// buildRouter wires routes for the storefront.
func buildRouter(logger *zap.Logger, deps Deps) (*gin.Engine, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	cookieName := deps.CookieName
	if cookieName == "" {
		cookieName = defaultCookieName
	}

	tmpl, err := template.New("").ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestID(), requestLogger(logger), gin.Recovery())
	router.SetHTMLTemplate(tmpl)

	if len(deps.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     deps.AllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", headerRequestID},
			ExposeHeaders:    []string{"Content-Length", headerRequestID},
			AllowCredentials: true,
		}))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.SessionStore))

	h := &handlers{
		products: deps.ProductSvc,
		carts:    deps.CartSvc,
		logger:   logger,
	}

	shop := router.Group("/", sessionMiddleware(deps.Sessions, cookieName, deps.CookieSecure))
	shop.GET("/", h.indexPage)
	shop.POST("/cart/lines", h.addLineForm)

	api := router.Group("/api", sessionMiddleware(deps.Sessions, cookieName, deps.CookieSecure))
	api.GET("/products", h.listProducts)
	api.GET("/cart", h.getCart)
	api.POST("/cart/lines", h.addLine)

	return router, nil
}

type handlers struct {
	products productService
	carts    cartService
	logger   *zap.Logger
}
