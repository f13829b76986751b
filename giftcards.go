package tebex

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tebexkit/client-go/internal/api"
)

// GiftCards is the gift cards API.
type GiftCards struct {
	api *api.Client
}

// GiftCard is a webstore gift card.
type GiftCard struct {
	ID      int             `json:"id"`
	Code    string          `json:"code"`
	Balance GiftCardBalance `json:"balance"`
	Note    string          `json:"note"`
	Void    bool            `json:"void"`
}

// GiftCardBalance is the balance of a gift card.
type GiftCardBalance struct {
	Starting  decimal.Decimal `json:"starting"`
	Remaining decimal.Decimal `json:"remaining"`
	Currency  string          `json:"currency"`
}

// CreateGiftCardParams describes a new gift card.
type CreateGiftCardParams struct {
	Amount decimal.Decimal
	// ExpiresAt is optional; the zero time means no expiry.
	ExpiresAt time.Time
	Note      string
}

// All returns every gift card on the account.
func (g *GiftCards) All(ctx context.Context) ([]GiftCard, error) {
	return api.Execute(ctx, g.api, api.Request{Path: api.GiftCards.Path()}, enveloped(shapeGiftCard))
}

// Retrieve returns a gift card by id.
func (g *GiftCards) Retrieve(ctx context.Context, id int) (*GiftCard, error) {
	if err := requireID("gift card id", id); err != nil {
		return nil, err
	}
	return g.one(ctx, api.Request{Path: api.GiftCard.Path(id)})
}

// Create issues a new gift card.
func (g *GiftCards) Create(ctx context.Context, params CreateGiftCardParams) (*GiftCard, error) {
	body := api.CreateGiftCardRequest{Amount: params.Amount, Note: params.Note}
	if !params.ExpiresAt.IsZero() {
		body.ExpiresAt = params.ExpiresAt.UTC().Format("2006-01-02 15:04:05")
	}
	return g.one(ctx, api.Request{
		Method: http.MethodPost,
		Path:   api.GiftCards.Path(),
		Body:   body,
	})
}

// Void voids a gift card and returns its final state.
func (g *GiftCards) Void(ctx context.Context, id int) (*GiftCard, error) {
	if err := requireID("gift card id", id); err != nil {
		return nil, err
	}
	return g.one(ctx, api.Request{Method: http.MethodDelete, Path: api.GiftCard.Path(id)})
}

// TopUp adds amount to the balance of a gift card.
func (g *GiftCards) TopUp(ctx context.Context, id int, amount decimal.Decimal) (*GiftCard, error) {
	if err := requireID("gift card id", id); err != nil {
		return nil, err
	}
	return g.one(ctx, api.Request{
		Method: http.MethodPut,
		Path:   api.GiftCard.Path(id),
		Body:   api.TopUpGiftCardRequest{Amount: amount},
	})
}

func (g *GiftCards) one(ctx context.Context, req api.Request) (*GiftCard, error) {
	card, err := api.Execute(ctx, g.api, req, singleEnveloped(shapeGiftCard))
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func shapeGiftCard(w api.GiftCardDTO) GiftCard {
	return GiftCard{
		ID:   int(w.ID),
		Code: w.Code,
		Balance: GiftCardBalance{
			Starting:  w.Balance.Starting.Decimal,
			Remaining: w.Balance.Remaining.Decimal,
			Currency:  w.Balance.Currency,
		},
		Note: string(w.Note),
		Void: bool(w.Void),
	}
}
