package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"storefront/internal/domain"
	"storefront/internal/logging"
	"storefront/internal/storefront"
)

// State is where a browsing session sits in the cart lifecycle.
type State int

const (
	NoCart State = iota
	CartPending
	HasCart
)

func (s State) String() string {
	switch s {
	case NoCart:
		return "NoCart"
	case CartPending:
		return "CartPending"
	case HasCart:
		return "HasCart"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type cartAPI interface {
	CreateCart(ctx context.Context) (string, error)
	AddCartLines(ctx context.Context, cartID string, lines []storefront.CartLineInput) (*storefront.Cart, error)
}

type sessionStore interface {
	Get(ctx context.Context, sessionID string) (string, error)
	Bind(ctx context.Context, sessionID, cartID string) (string, error)
}

// Manager owns the cart id of each browsing session. The first add-to-cart of
// a session creates the cart; concurrent first adds share one creation.
type Manager struct {
	api     cartAPI
	store   sessionStore
	logger  *zap.Logger
	creates singleflight.Group

	mu      sync.Mutex
	pending map[string]struct{}
}

func New(api cartAPI, store sessionStore, logger *zap.Logger) *Manager {
	return &Manager{
		api:     api,
		store:   store,
		logger:  logging.OrNop(logger),
		pending: make(map[string]struct{}),
	}
}

// AddLine adds quantity units of variantID to the session's cart, creating the
// cart first when the session has none. A quantity of 0 means 1.
//
// Creating the cart and adding the line are independent outcomes: when the
// add fails after a successful create, the new cart id stays stored.
func (m *Manager) AddLine(ctx context.Context, sessionID, variantID string, quantity int) (*domain.Cart, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, errors.New("session id required")
	}
	variantID = strings.TrimSpace(variantID)
	if variantID == "" {
		return nil, domain.ErrMissingVariant
	}
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}

	log := m.logger.With(zap.String("session_id", sessionID), zap.String("variant_id", variantID))

	cartID, err := m.ensureCart(ctx, sessionID)
	if err != nil {
		log.Error("failed to resolve cart", zap.Error(err))
		return nil, err
	}

	cart, err := m.api.AddCartLines(ctx, cartID, []storefront.CartLineInput{{
		MerchandiseID: variantID,
		Quantity:      quantity,
	}})
	if err != nil {
		log.Error("failed to add line to cart", zap.String("cart_id", cartID), zap.Error(err))
		return nil, fmt.Errorf("add line to cart: %w", err)
	}

	log.Info("cart updated", zap.String("cart_id", cart.ID), zap.Int("lines", len(cart.Lines.Edges)))
	return toDomainCart(cart), nil
}

// CartID returns the cart id stored for the session, or domain.ErrNotFound.
func (m *Manager) CartID(ctx context.Context, sessionID string) (string, error) {
	return m.store.Get(ctx, sessionID)
}

func (m *Manager) State(ctx context.Context, sessionID string) (State, error) {
	if m.isPending(sessionID) {
		return CartPending, nil
	}
	_, err := m.store.Get(ctx, sessionID)
	switch {
	case err == nil:
		return HasCart, nil
	case errors.Is(err, domain.ErrNotFound):
		return NoCart, nil
	default:
		return NoCart, err
	}
}

func (m *Manager) ensureCart(ctx context.Context, sessionID string) (string, error) {
	cartID, err := m.store.Get(ctx, sessionID)
	if err == nil {
		return cartID, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return "", fmt.Errorf("load cart id: %w", err)
	}

	// The shared creation must not die with whichever caller started it.
	detached := context.WithoutCancel(ctx)
	ch := m.creates.DoChan(sessionID, func() (any, error) {
		return m.createCart(detached, sessionID)
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (m *Manager) createCart(ctx context.Context, sessionID string) (string, error) {
	// A creation that finished between the caller's lookup and this flight
	// has already stored an id.
	if cartID, err := m.store.Get(ctx, sessionID); err == nil {
		return cartID, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return "", fmt.Errorf("load cart id: %w", err)
	}

	m.setPending(sessionID, true)
	defer m.setPending(sessionID, false)

	cartID, err := m.api.CreateCart(ctx)
	if err != nil {
		return "", fmt.Errorf("create cart: %w", err)
	}
	bound, err := m.store.Bind(ctx, sessionID, cartID)
	if err != nil {
		m.logger.Error("cart created but id not stored",
			zap.String("session_id", sessionID), zap.String("cart_id", cartID), zap.Error(err))
		return "", fmt.Errorf("store cart id: %w", err)
	}
	if bound != cartID {
		// Another process bound this session first; its cart is the session's cart.
		m.logger.Warn("session already bound, discarding new cart",
			zap.String("session_id", sessionID), zap.String("cart_id", bound), zap.String("discarded_cart_id", cartID))
		return bound, nil
	}
	m.logger.Info("cart created", zap.String("session_id", sessionID), zap.String("cart_id", cartID))
	return cartID, nil
}

func (m *Manager) setPending(sessionID string, on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if on {
		m.pending[sessionID] = struct{}{}
		return
	}
	delete(m.pending, sessionID)
}

func (m *Manager) isPending(sessionID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.pending[sessionID]
	return ok
}

func toDomainCart(c *storefront.Cart) *domain.Cart {
	lines := make([]domain.CartLine, 0, len(c.Lines.Edges))
	for _, edge := range c.Lines.Edges {
		lines = append(lines, domain.CartLine{
			ID:               edge.Node.ID,
			Quantity:         edge.Node.Quantity,
			MerchandiseID:    edge.Node.Merchandise.ID,
			MerchandiseTitle: edge.Node.Merchandise.Title,
		})
	}
	return &domain.Cart{
		ID:          c.ID,
		CheckoutURL: c.CheckoutURL,
		Lines:       lines,
	}
}
