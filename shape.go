package tebex

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tebexkit/client-go/internal/api"
	"github.com/tebexkit/client-go/internal/apierrors"
)

// Currency identifies a currency.
type Currency struct {
	ISO4217 string `json:"iso4217"`
	Symbol  string `json:"symbol"`
}

// PlayerRef is the short player reference attached to payments and
// queued commands. UUID is a Minecraft UUID (with or without dashes) or a
// platform account id such as a Steam64 id, depending on the game.
type PlayerRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	UUID string `json:"uuid"`
}

// MinecraftUUID parses UUID as a Minecraft UUID. Both the dashed and the
// 32-digit form are accepted.
func (p PlayerRef) MinecraftUUID() (uuid.UUID, error) {
	return uuid.Parse(p.UUID)
}

// SimplePackage is an {id, name} package reference.
type SimplePackage struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Effective describes what a sale or coupon applies to.
type Effective struct {
	// Type is "package", "category" or "cart".
	Type       string `json:"type"`
	Packages   []int  `json:"packages"`
	Categories []int  `json:"categories"`
}

// Discount describes a sale or coupon discount.
type Discount struct {
	// Type is "percentage" or "value".
	Type       string          `json:"type"`
	Percentage decimal.Decimal `json:"percentage"`
	Value      decimal.Decimal `json:"value"`
}

func shapeCurrency(c api.CurrencyDTO) Currency {
	return Currency{ISO4217: c.ISO4217, Symbol: c.Symbol}
}

func shapePlayerRef(p api.PlayerDTO) PlayerRef {
	return PlayerRef{ID: int(p.ID), Name: p.Name, UUID: string(p.UUID)}
}

func shapeRef(r api.RefDTO) SimplePackage {
	return SimplePackage{ID: int(r.ID), Name: r.Name}
}

func shapeEffective(e api.EffectiveDTO) Effective {
	return Effective{
		Type:       e.Type,
		Packages:   ints(e.Packages),
		Categories: ints(e.Categories),
	}
}

func shapeDiscount(d api.DiscountDTO) Discount {
	return Discount{Type: d.Type, Percentage: d.Percentage.Decimal, Value: d.Value.Decimal}
}

func ints(in []api.Int) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}

// mapSlice shapes every element; the output always has len(in) elements.
func mapSlice[W, T any](in []W, shape func(W) T) []T {
	out := make([]T, len(in))
	for i, w := range in {
		out[i] = shape(w)
	}
	return out
}

// infallible lifts a shaping function that cannot fail.
func infallible[W, T any](shape func(W) T) func(W) (T, error) {
	return func(w W) (T, error) {
		return shape(w), nil
	}
}

// list decodes a bare JSON array and shapes each element.
func list[W, T any](shape func(W) T) api.Transform[[]T] {
	return api.Decode(func(w []W) ([]T, error) {
		return mapSlice(w, shape), nil
	})
}

// enveloped decodes a {"data": [...]} response and shapes each element.
func enveloped[W, T any](shape func(W) T) api.Transform[[]T] {
	return api.Decode(func(w api.Envelope[[]W]) ([]T, error) {
		return mapSlice(w.Data, shape), nil
	})
}

// single decodes a bare JSON object.
func single[W, T any](shape func(W) T) api.Transform[T] {
	return api.Decode(infallible(shape))
}

// singleEnveloped decodes a {"data": {...}} response.
func singleEnveloped[W, T any](shape func(W) T) api.Transform[T] {
	return api.Decode(func(w api.Envelope[W]) (T, error) {
		return shape(w.Data), nil
	})
}

// requireString rejects an empty or blank identifier before any request is made.
func requireString(what, value string) error {
	if strings.TrimSpace(value) == "" {
		return apierrors.MissingParameter(what)
	}
	return nil
}

// requireID rejects a non-positive numeric identifier before any request is
// made. Upstream ids are positive, and 0 is the zero value an unset id has.
func requireID(what string, id int) error {
	if id <= 0 {
		return apierrors.MissingParameter(what)
	}
	return nil
}
