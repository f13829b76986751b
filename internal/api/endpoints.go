package api

import (
	"fmt"
	"net/url"
)

type endpointKind int

const (
	fixedEndpoint endpointKind = iota
	templatedEndpoint
)

// Endpoint is either a fixed path or a path template that takes a fixed
// number of parameters.
type Endpoint struct {
	kind   endpointKind
	format string
	arity  int
}

// Fixed returns an endpoint whose path never changes.
func Fixed(path string) Endpoint {
	return Endpoint{kind: fixedEndpoint, format: path}
}

// Templated returns an endpoint whose path is produced by substituting
// arity parameters into format, one per %s verb.
func Templated(format string, arity int) Endpoint {
	return Endpoint{kind: templatedEndpoint, format: format, arity: arity}
}

// Path resolves the endpoint. Fixed endpoints ignore params. Templated
// endpoints path-escape and substitute the first arity params; extra params
// are ignored and missing ones are substituted as empty strings.
func (e Endpoint) Path(params ...any) string {
	switch e.kind {
	case templatedEndpoint:
		args := make([]any, e.arity)
		for i := range args {
			if i < len(params) {
				args[i] = url.PathEscape(fmt.Sprint(params[i]))
			} else {
				args[i] = ""
			}
		}
		return fmt.Sprintf(e.format, args...)
	default:
		return e.format
	}
}

// Endpoint table for the plugin API.
var (
	Information     = Fixed("/information")
	Queue           = Fixed("/queue")
	OfflineCommands = Fixed("/queue/offline-commands")
	OnlineCommands  = Templated("/queue/online-commands/%s", 1)
	DeleteCommands  = Fixed("/queue")
	Listing         = Fixed("/listing")
	Packages        = Fixed("/packages")
	Package         = Templated("/package/%s", 1)
	UpdatePackage   = Templated("/package/%s", 1)
	CommunityGoals  = Fixed("/community_goals")
	CommunityGoal   = Templated("/community_goals/%s", 1)
	Payments        = Fixed("/payments")
	Payment         = Templated("/payments/%s", 1)
	PaymentFields   = Templated("/payments/fields/%s", 1)
	CreatePayment   = Fixed("/payments")
	UpdatePayment   = Templated("/payments/%s", 1)
	PaymentNote     = Templated("/payments/%s/note", 1)
	Checkout        = Fixed("/checkout")
	GiftCards       = Fixed("/gift-cards")
	GiftCard        = Templated("/gift-cards/%s", 1)
	Coupons         = Fixed("/coupons")
	Coupon          = Templated("/coupons/%s", 1)
	Bans            = Fixed("/bans")
	Sales           = Fixed("/sales")
	Player          = Templated("/user/%s", 1)
	PlayerPackages  = Templated("/player/%s/packages", 1) // live API path, not /user/{id}/packages
)
