package tebex

import (
	"context"
	"net/http"
	"time"

	"github.com/tebexkit/client-go/internal/api"
)

// Checkout is the checkout API.
type Checkout struct {
	api *api.Client
}

// CheckoutCart is a checkout link for a single package.
type CheckoutCart struct {
	URL     string    `json:"url"`
	Expires time.Time `json:"expires"`
}

// Create creates a checkout URL for packageID on behalf of username.
func (c *Checkout) Create(ctx context.Context, packageID int, username string) (*CheckoutCart, error) {
	cart, err := api.Execute(ctx, c.api, api.Request{
		Method: http.MethodPost,
		Path:   api.Checkout.Path(),
		Body:   api.CheckoutRequest{PackageID: packageID, Username: username},
	}, single(func(w api.CheckoutDTO) CheckoutCart {
		return CheckoutCart{URL: w.URL, Expires: w.Expires.Time}
	}))
	if err != nil {
		return nil, err
	}
	return &cart, nil
}
