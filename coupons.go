package tebex

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tebexkit/client-go/internal/api"
)

// Coupons is the coupons data API.
type Coupons struct {
	api *api.Client
}

// Coupon is a coupon code.
type Coupon struct {
	ID         int             `json:"id"`
	Code       string          `json:"code"`
	Effective  Effective       `json:"effective"`
	Discount   Discount        `json:"discount"`
	Expire     CouponExpire    `json:"expire"`
	BasketType string          `json:"basketType"`
	StartDate  time.Time       `json:"startDate"`
	UserLimit  int             `json:"userLimit"`
	Minimum    decimal.Decimal `json:"minimum"`
	Username   string          `json:"username"`
	Note       string          `json:"note"`
}

// CouponExpire describes when a coupon stops being redeemable.
type CouponExpire struct {
	RedeemUnlimited bool      `json:"redeemUnlimited"`
	ExpireNever     bool      `json:"expireNever"`
	Limit           int       `json:"limit"`
	Date            time.Time `json:"date"`
}

// DiscountApplicationMethod selects how a coupon discount is applied.
type DiscountApplicationMethod int

const (
	// ApplyToEachPackage applies the discount to each package. This is the default.
	ApplyToEachPackage DiscountApplicationMethod = 0
	// ApplyToBasketBeforeSales applies the discount to the basket before sales.
	ApplyToBasketBeforeSales DiscountApplicationMethod = 1
	// ApplyToBasketAfterSales applies the discount to the basket after sales.
	ApplyToBasketAfterSales DiscountApplicationMethod = 2
)

// CreateCouponParams describes a new coupon. Values are sent as given;
// the API decides which combinations are valid.
type CreateCouponParams struct {
	Code string
	// EffectiveOn is "package", "category" or "cart".
	EffectiveOn string
	// Packages is used when EffectiveOn is "package".
	Packages []int
	// Categories is used when EffectiveOn is "category".
	Categories []int
	// DiscountType is "percentage" or "value".
	DiscountType              string
	DiscountAmount            decimal.Decimal
	DiscountPercentage        decimal.Decimal
	DiscountApplicationMethod DiscountApplicationMethod
	RedeemUnlimited           bool
	ExpireNever               bool
	// ExpireLimit is used when RedeemUnlimited is false.
	ExpireLimit int
	// ExpireDate is formatted yyyy-mm-dd.
	ExpireDate string
	// StartDate is formatted yyyy-mm-dd.
	StartDate string
	// BasketType is "single", "subscription" or "both".
	BasketType string
	// Minimum is the basket value required before the coupon can be redeemed.
	Minimum  decimal.Decimal
	Username string
	Note     string
}

// All returns the coupons on the account.
func (c *Coupons) All(ctx context.Context) ([]Coupon, error) {
	return api.Execute(ctx, c.api, api.Request{Path: api.Coupons.Path()}, enveloped(shapeCoupon))
}

// Retrieve returns a coupon by id.
func (c *Coupons) Retrieve(ctx context.Context, id int) (*Coupon, error) {
	if err := requireID("coupon id", id); err != nil {
		return nil, err
	}
	coupon, err := api.Execute(ctx, c.api, api.Request{Path: api.Coupon.Path(id)}, singleEnveloped(shapeCoupon))
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

// Create creates a coupon.
func (c *Coupons) Create(ctx context.Context, params CreateCouponParams) (*Coupon, error) {
	body := api.CreateCouponRequest{
		Code:                      params.Code,
		EffectiveOn:               params.EffectiveOn,
		Packages:                  params.Packages,
		Categories:                params.Categories,
		DiscountType:              params.DiscountType,
		DiscountAmount:            params.DiscountAmount,
		DiscountPercentage:        params.DiscountPercentage,
		DiscountApplicationMethod: int(params.DiscountApplicationMethod),
		RedeemUnlimited:           params.RedeemUnlimited,
		ExpireNever:               params.ExpireNever,
		ExpireLimit:               params.ExpireLimit,
		ExpireDate:                params.ExpireDate,
		StartDate:                 params.StartDate,
		BasketType:                params.BasketType,
		Minimum:                   params.Minimum,
		Username:                  params.Username,
		Note:                      params.Note,
	}
	coupon, err := api.Execute(ctx, c.api, api.Request{
		Method: http.MethodPost,
		Path:   api.Coupons.Path(),
		Body:   body,
	}, singleEnveloped(shapeCoupon))
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

// Delete deletes a coupon by id.
func (c *Coupons) Delete(ctx context.Context, id int) error {
	if err := requireID("coupon id", id); err != nil {
		return err
	}
	_, err := api.Execute(ctx, c.api, api.Request{
		Method: http.MethodDelete,
		Path:   api.Coupon.Path(id),
	}, api.Discard)
	return err
}

func shapeCoupon(w api.CouponDTO) Coupon {
	return Coupon{
		ID:        int(w.ID),
		Code:      w.Code,
		Effective: shapeEffective(w.Effective),
		Discount:  shapeDiscount(w.Discount),
		Expire: CouponExpire{
			RedeemUnlimited: bool(w.Expire.RedeemUnlimited),
			ExpireNever:     bool(w.Expire.ExpireNever),
			Limit:           int(w.Expire.Limit),
			Date:            w.Expire.Date.Time,
		},
		BasketType: w.BasketType,
		StartDate:  w.StartDate.Time,
		UserLimit:  int(w.UserLimit),
		Minimum:    w.Minimum.Decimal,
		Username:   string(w.Username),
		Note:       string(w.Note),
	}
}
