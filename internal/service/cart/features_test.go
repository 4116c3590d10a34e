package cart

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cucumber/godog"

	"storefront/internal/domain"
	sessionrepo "storefront/internal/repository/session"
)

type cartFeatureContext struct {
	api       *stubAPI
	store     sessionrepo.Repository
	manager   *Manager
	sessionID string
	err       error
}

func (c *cartFeatureContext) reset() {
	c.api = &stubAPI{}
	c.store = sessionrepo.NewMemory(time.Hour)
	c.manager = New(c.api, c.store, nil)
	c.sessionID = ""
	c.err = nil
}

func (c *cartFeatureContext) aFreshBrowsingSession(id string) error {
	c.sessionID = id
	return nil
}

func (c *cartFeatureContext) theStorefrontWillCreateCart(id string) error {
	c.api.createIDs = append(c.api.createIDs, id)
	return nil
}

func (c *cartFeatureContext) creatingCartsFails() error {
	c.api.createErr = fmt.Errorf("cartCreate: %w", domain.ErrUpstream)
	return nil
}

func (c *cartFeatureContext) addingLinesFails() error {
	c.api.addErr = fmt.Errorf("cartLinesAdd: %w", domain.ErrUpstream)
	return nil
}

func (c *cartFeatureContext) theStorefrontRejectsLinesWith(msg string) error {
	c.api.addErr = &domain.ValidationError{UserErrors: []domain.UserError{{Field: []string{"lines"}, Message: msg}}}
	return nil
}

func (c *cartFeatureContext) theShopperAddsVariantWithQuantity(variantID string, qty int) error {
	_, c.err = c.manager.AddLine(context.Background(), c.sessionID, variantID, qty)
	return nil
}

func (c *cartFeatureContext) cartsShouldHaveBeenCreated(n int) error {
	if creates, _ := c.api.counts(); creates != n {
		return fmt.Errorf("expected %d creates, got %d", n, creates)
	}
	return nil
}

func (c *cartFeatureContext) lineAddsShouldHaveBeenSentToCart(n int, cartID string) error {
	if _, adds := c.api.counts(); adds != n {
		return fmt.Errorf("expected %d adds, got %d", n, adds)
	}
	if c.api.lastAddCart != cartID {
		return fmt.Errorf("expected adds to target %q, got %q", cartID, c.api.lastAddCart)
	}
	return nil
}

func (c *cartFeatureContext) theSessionShouldHoldCart(cartID string) error {
	got, err := c.manager.CartID(context.Background(), c.sessionID)
	if err != nil {
		return fmt.Errorf("expected stored cart, got error %v", err)
	}
	if got != cartID {
		return fmt.Errorf("expected cart %q, got %q", cartID, got)
	}
	return nil
}

func (c *cartFeatureContext) theSessionShouldHoldNoCart() error {
	state, err := c.manager.State(context.Background(), c.sessionID)
	if err != nil {
		return err
	}
	if state != NoCart {
		return fmt.Errorf("expected NoCart, got %s", state)
	}
	return nil
}

func (c *cartFeatureContext) theAddShouldFail() error {
	if c.err == nil {
		return errors.New("expected add to fail but it succeeded")
	}
	return nil
}

func (c *cartFeatureContext) theAddShouldFailWithValidationMessage(msg string) error {
	var vErr *domain.ValidationError
	if !errors.As(c.err, &vErr) {
		return fmt.Errorf("expected ValidationError, got %v", c.err)
	}
	for _, ue := range vErr.UserErrors {
		if ue.Message == msg {
			return nil
		}
	}
	return fmt.Errorf("message %q not found in %+v", msg, vErr.UserErrors)
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &cartFeatureContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.Step(`^a fresh browsing session "([^"]*)"$`, tc.aFreshBrowsingSession)
	ctx.Step(`^the storefront will create cart "([^"]*)"$`, tc.theStorefrontWillCreateCart)
	ctx.Step(`^creating carts fails$`, tc.creatingCartsFails)
	ctx.Step(`^adding lines fails$`, tc.addingLinesFails)
	ctx.Step(`^the storefront rejects lines with "([^"]*)"$`, tc.theStorefrontRejectsLinesWith)

	ctx.Step(`^the shopper adds variant "([^"]*)" with quantity (\d+)$`, tc.theShopperAddsVariantWithQuantity)

	ctx.Step(`^(\d+) carts? should have been created$`, tc.cartsShouldHaveBeenCreated)
	ctx.Step(`^(\d+) line adds? should have been sent to cart "([^"]*)"$`, tc.lineAddsShouldHaveBeenSentToCart)
	ctx.Step(`^the session should hold cart "([^"]*)"$`, tc.theSessionShouldHoldCart)
	ctx.Step(`^the session should hold no cart$`, tc.theSessionShouldHoldNoCart)
	ctx.Step(`^the add should fail$`, tc.theAddShouldFail)
	ctx.Step(`^the add should fail with validation message "([^"]*)"$`, tc.theAddShouldFailWithValidationMessage)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../../../features/cart_session.feature"},
			TestingT: t,
		},
	}
	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
