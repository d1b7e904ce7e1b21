// Package paylink generates hosted checkout links for online payments.
package paylink

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"
)

// Checkout identifies a group reservation payment to collect.
type Checkout struct {
	GroupID     int64
	AmountCents int64
	PayerName   string
}

// Generator produces a URL a customer can follow to settle a reservation.
type Generator interface {
	CheckoutLink(ctx context.Context, c Checkout) (string, error)
}

// HostedGenerator builds links against a hosted checkout page, tagging each
// with a unique reference so gateway callbacks can be matched back.
type HostedGenerator struct {
	BaseURL string
}

func NewHostedGenerator(baseURL string) *HostedGenerator {
	return &HostedGenerator{BaseURL: baseURL}
}

func (g *HostedGenerator) CheckoutLink(_ context.Context, c Checkout) (string, error) {
	base, err := url.Parse(g.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid checkout base URL: %w", err)
	}

	q := base.Query()
	q.Set("group", fmt.Sprintf("%d", c.GroupID))
	q.Set("amount", fmt.Sprintf("%d", c.AmountCents))
	q.Set("ref", uuid.New().String())
	if c.PayerName != "" {
		q.Set("payer", c.PayerName)
	}
	base.RawQuery = q.Encode()
	return base.String(), nil
}
