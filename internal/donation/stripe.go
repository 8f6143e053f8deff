package donation

import (
	"fmt"

	stripe "github.com/stripe/stripe-go/v84"
	"github.com/stripe/stripe-go/v84/client"

	"github.com/Shree2124/ngostream-backend/config"
)

// CheckoutClient abstracts the payment provider's checkout-session API so
// the confirmation flow can be tested without network calls.
type CheckoutClient interface {
	CreateSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	RetrieveSession(sessionID string) (*stripe.CheckoutSession, error)
}

type stripeClient struct {
	api *client.API
}

// NewStripeClient builds a checkout client bound to the configured secret key.
func NewStripeClient(cfg *config.Config) CheckoutClient {
	api := &client.API{}
	api.Init(cfg.StripeSecretKey, nil)
	return &stripeClient{api: api}
}

func (s *stripeClient) CreateSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	sess, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe session creation failed: %w", err)
	}
	return sess, nil
}

func (s *stripeClient) RetrieveSession(sessionID string) (*stripe.CheckoutSession, error) {
	sess, err := s.api.CheckoutSessions.Get(sessionID, nil)
	if err != nil {
		return nil, fmt.Errorf("stripe session fetch failed: %w", err)
	}
	return sess, nil
}
