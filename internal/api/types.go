package api

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Wire types mirror the plugin API's snake_case JSON. They are decoded by
// the resource modules and never exposed to callers.

// CurrencyDTO is the currency object embedded in several responses.
type CurrencyDTO struct {
	ISO4217 string `json:"iso_4217"`
	Symbol  string `json:"symbol"`
}

// PlayerDTO is the short player reference used by payments and the queue.
type PlayerDTO struct {
	ID   Int    `json:"id"`
	Name string `json:"name"`
	UUID String `json:"uuid"`
}

// RefDTO is an {id, name} pair.
type RefDTO struct {
	ID   Int    `json:"id"`
	Name string `json:"name"`
}

// PackageDTO represents an element of GET /packages and GET /package/{id}.
type PackageDTO struct {
	ID                Int      `json:"id"`
	Name              string   `json:"name"`
	Image             String   `json:"image"`
	Price             Decimal  `json:"price"`
	ExpiryLength      Int      `json:"expiry_length"`
	ExpiryPeriod      string   `json:"expiry_period"`
	Type              string   `json:"type"`
	Category          RefDTO   `json:"category"`
	GlobalLimit       Int      `json:"global_limit"`
	GlobalLimitPeriod string   `json:"global_limit_period"`
	UserLimit         Int      `json:"user_limit"`
	UserLimitPeriod   string   `json:"user_limit_period"`
	Servers           []RefDTO `json:"servers"`
	RequiredPackages  []Int    `json:"required_packages"`
	RequireAny        Bool     `json:"require_any"`
	CreateGiftcard    Bool     `json:"create_giftcard"`
	ShowUntil         UnixTime `json:"show_until"`
	GUIItem           String   `json:"gui_item"`
	Disabled          Bool     `json:"disabled"`
	DisableQuantity   Bool     `json:"disable_quantity"`
	CustomPrice       Bool     `json:"custom_price"`
	ChooseServer      Bool     `json:"choose_server"`
	LimitExpires      Bool     `json:"limit_expires"`
	InheritCommands   Bool     `json:"inherit_commands"`
	VariableGiftcard  Bool     `json:"variable_giftcard"`
}

// ListingDTO represents the GET /listing response.
type ListingDTO struct {
	Categories []ListingCategoryDTO `json:"categories"`
}

// ListingCategoryDTO is a category of the listing. Subcategories share the shape.
type ListingCategoryDTO struct {
	ID                Int                  `json:"id"`
	Order             Int                  `json:"order"`
	Name              string               `json:"name"`
	OnlySubcategories Bool                 `json:"only_subcategories"`
	GUIItem           String               `json:"gui_item"`
	Subcategories     []ListingCategoryDTO `json:"subcategories"`
	Packages          []ListingPackageDTO  `json:"packages"`
}

// ListingPackageDTO is a package of the listing.
type ListingPackageDTO struct {
	ID      Int     `json:"id"`
	Order   Int     `json:"order"`
	Name    string  `json:"name"`
	Price   Decimal `json:"price"`
	Image   String  `json:"image"`
	GUIItem String  `json:"gui_item"`
	Sale    struct {
		Active   Bool    `json:"active"`
		Discount Decimal `json:"discount"`
	} `json:"sale"`
}

// PaymentPackageDTO is a package line of a transaction.
type PaymentPackageDTO struct {
	ID       Int    `json:"id"`
	Name     string `json:"name"`
	Quantity Int    `json:"quantity"`
}

// PaymentDTO represents GET /payments elements and GET /payments/{txn}.
type PaymentDTO struct {
	ID       Int                 `json:"id"`
	Amount   Decimal             `json:"amount"`
	Status   string              `json:"status"`
	Date     Time                `json:"date"`
	Currency CurrencyDTO         `json:"currency"`
	Player   PlayerDTO           `json:"player"`
	Packages []PaymentPackageDTO `json:"packages"`
}

// PaymentPageDTO represents GET /payments?paged=N.
type PaymentPageDTO struct {
	Total       Int          `json:"total"`
	PerPage     Int          `json:"per_page"`
	CurrentPage Int          `json:"current_page"`
	LastPage    Int          `json:"last_page"`
	NextPageURL String       `json:"next_page_url"`
	PrevPageURL String       `json:"prev_page_url"`
	From        Int          `json:"from"`
	To          Int          `json:"to"`
	Data        []PaymentDTO `json:"data"`
}

// PaymentFieldDTO represents an element of GET /payments/fields/{pkg}.
type PaymentFieldDTO struct {
	Name        string           `json:"name"`
	Type        string           `json:"type"`
	Rules       String           `json:"rules"`
	Message     String           `json:"message"`
	Description String           `json:"description"`
	Options     []map[string]any `json:"options"`
}

// CreatePaymentRequest is the POST /payments body.
type CreatePaymentRequest struct {
	IGN      string                 `json:"ign"`
	Price    decimal.Decimal        `json:"price"`
	Packages []CreatePaymentPackage `json:"packages"`
	Note     string                 `json:"note,omitempty"`
}

// CreatePaymentPackage is a package line of CreatePaymentRequest.
type CreatePaymentPackage struct {
	ID      int               `json:"id"`
	Options map[string]string `json:"options,omitempty"`
}

// UpdatePaymentRequest is the PUT /payments/{txn} body.
type UpdatePaymentRequest struct {
	Username string `json:"username,omitempty"`
	Status   string `json:"status,omitempty"`
}

// NoteRequest is the POST /payments/{txn}/note body.
type NoteRequest struct {
	Note string `json:"note"`
}

// PlayerInfoDTO represents GET /user/{id}.
type PlayerInfoDTO struct {
	Player struct {
		ID               String          `json:"id"`
		CreatedAt        Time            `json:"created_at"`
		UpdatedAt        Time            `json:"updated_at"`
		CacheExpire      Time            `json:"cache_expire"`
		Username         string          `json:"username"`
		Meta             json.RawMessage `json:"meta"`
		PluginUsernameID Int             `json:"plugin_username_id"`
	} `json:"player"`
	BanCount       Int                `json:"banCount"`
	ChargebackRate Decimal            `json:"chargebackRate"`
	Payments       []PlayerPaymentDTO `json:"payments"`
	PurchaseTotals Totals             `json:"purchaseTotals"`
}

// PlayerPaymentDTO is a payment in the player lookup.
type PlayerPaymentDTO struct {
	TxnID    string   `json:"txn_id"`
	Time     UnixTime `json:"time"`
	Price    Decimal  `json:"price"`
	Currency string   `json:"currency"`
	Status   Int      `json:"status"`
}

// PlayerPurchaseDTO represents an element of GET /player/{id}/packages.
type PlayerPurchaseDTO struct {
	TxnID    string `json:"txn_id"`
	Date     Time   `json:"date"`
	Quantity Int    `json:"quantity"`
	Package  RefDTO `json:"package"`
}

// InformationDTO represents GET /information.
type InformationDTO struct {
	Account struct {
		ID         Int         `json:"id"`
		Domain     string      `json:"domain"`
		Name       string      `json:"name"`
		Currency   CurrencyDTO `json:"currency"`
		OnlineMode Bool        `json:"online_mode"`
		GameType   string      `json:"game_type"`
		LogEvents  Bool        `json:"log_events"`
	} `json:"account"`
	Server RefDTO `json:"server"`
}

// CommunityGoalDTO represents GET /community_goals elements and GET /community_goals/{id}.
type CommunityGoalDTO struct {
	ID            Int     `json:"id"`
	CreatedAt     Time    `json:"created_at"`
	UpdatedAt     Time    `json:"updated_at"`
	Account       Int     `json:"account"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Image         String  `json:"image"`
	Target        Decimal `json:"target"`
	Current       Decimal `json:"current"`
	Repeatable    Bool    `json:"repeatable"`
	LastAchieved  Time    `json:"last_achieved"`
	TimesAchieved Int     `json:"times_achieved"`
	Status        string  `json:"status"`
	Sale          Int     `json:"sale"`
}

// EffectiveDTO describes what a sale or coupon applies to.
type EffectiveDTO struct {
	Type       string `json:"type"`
	Packages   []Int  `json:"packages"`
	Categories []Int  `json:"categories"`
}

// DiscountDTO describes a sale or coupon discount.
type DiscountDTO struct {
	Type       string  `json:"type"`
	Percentage Decimal `json:"percentage"`
	Value      Decimal `json:"value"`
}

// SaleDTO represents an element of GET /sales.
type SaleDTO struct {
	ID        Int          `json:"id"`
	Effective EffectiveDTO `json:"effective"`
	Discount  DiscountDTO  `json:"discount"`
	Start     UnixTime     `json:"start"`
	Expire    UnixTime     `json:"expire"`
	Order     Int          `json:"order"`
}

// CouponDTO represents a coupon in GET/POST /coupons responses.
type CouponDTO struct {
	ID        Int          `json:"id"`
	Code      string       `json:"code"`
	Effective EffectiveDTO `json:"effective"`
	Discount  DiscountDTO  `json:"discount"`
	Expire    struct {
		RedeemUnlimited Bool `json:"redeem_unlimited"`
		ExpireNever     Bool `json:"expire_never"`
		Limit           Int  `json:"limit"`
		Date            Time `json:"date"`
	} `json:"expire"`
	BasketType string  `json:"basket_type"`
	StartDate  Time    `json:"start_date"`
	UserLimit  Int     `json:"user_limit"`
	Minimum    Decimal `json:"minimum"`
	Username   String  `json:"username"`
	Note       String  `json:"note"`
}

// CreateCouponRequest is the POST /coupons body.
type CreateCouponRequest struct {
	Code                      string          `json:"code"`
	EffectiveOn               string          `json:"effective_on"`
	Packages                  []int           `json:"packages"`
	Categories                []int           `json:"categories"`
	DiscountType              string          `json:"discount_type"`
	DiscountAmount            decimal.Decimal `json:"discount_amount"`
	DiscountPercentage        decimal.Decimal `json:"discount_percentage"`
	DiscountApplicationMethod int             `json:"discount_application_method"`
	RedeemUnlimited           bool            `json:"redeem_unlimited"`
	ExpireNever               bool            `json:"expire_never"`
	ExpireLimit               int             `json:"expire_limit"`
	ExpireDate                string          `json:"expire_date"`
	StartDate                 string          `json:"start_date"`
	BasketType                string          `json:"basket_type"`
	Minimum                   decimal.Decimal `json:"minimum"`
	Username                  string          `json:"username"`
	Note                      string          `json:"note"`
}

// CheckoutRequest is the POST /checkout body.
type CheckoutRequest struct {
	PackageID int    `json:"package_id"`
	Username  string `json:"username"`
}

// CheckoutDTO represents the POST /checkout response.
type CheckoutDTO struct {
	URL     string `json:"url"`
	Expires Time   `json:"expires"`
}

// UpdatePackageRequest is the PUT /package/{id} body.
type UpdatePackageRequest struct {
	Disabled *bool            `json:"disabled,omitempty"`
	Name     string           `json:"name,omitempty"`
	Price    *decimal.Decimal `json:"price,omitempty"`
}

// GiftCardDTO represents a gift card in /gift-cards responses.
type GiftCardDTO struct {
	ID      Int    `json:"id"`
	Code    string `json:"code"`
	Balance struct {
		Starting  Decimal `json:"starting"`
		Remaining Decimal `json:"remaining"`
		Currency  string  `json:"currency"`
	} `json:"balance"`
	Note String `json:"note"`
	Void Bool   `json:"void"`
}

// CreateGiftCardRequest is the POST /gift-cards body.
type CreateGiftCardRequest struct {
	ExpiresAt string          `json:"expires_at,omitempty"`
	Note      string          `json:"note,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
}

// TopUpGiftCardRequest is the PUT /gift-cards/{id} body.
type TopUpGiftCardRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// BanDTO represents a ban in /bans responses.
type BanDTO struct {
	ID           Int    `json:"id"`
	Time         Time   `json:"time"`
	IP           String `json:"ip"`
	PaymentEmail String `json:"payment_email"`
	Reason       String `json:"reason"`
	User         struct {
		IGN  string `json:"ign"`
		UUID String `json:"uuid"`
	} `json:"user"`
}

// CreateBanRequest is the POST /bans body.
type CreateBanRequest struct {
	Reason string `json:"reason,omitempty"`
	IP     string `json:"ip,omitempty"`
	User   string `json:"user"`
}

// DuePlayersDTO represents GET /queue.
type DuePlayersDTO struct {
	Meta struct {
		ExecuteOffline Bool `json:"execute_offline"`
		NextCheck      Int  `json:"next_check"`
		More           Bool `json:"more"`
	} `json:"meta"`
	Players []PlayerDTO `json:"players"`
}

// CommandDTO is a queued command.
type CommandDTO struct {
	ID         Int    `json:"id"`
	Command    string `json:"command"`
	Payment    Int    `json:"payment"`
	Package    Int    `json:"package"`
	Conditions struct {
		Delay Int `json:"delay"`
		Slots Int `json:"slots"`
	} `json:"conditions"`
	Player *PlayerDTO `json:"player,omitempty"`
}

// OfflineCommandsDTO represents GET /queue/offline-commands.
type OfflineCommandsDTO struct {
	Meta struct {
		Limited Bool `json:"limited"`
	} `json:"meta"`
	Commands []CommandDTO `json:"commands"`
}

// OnlineCommandsDTO represents GET /queue/online-commands/{id}.
type OnlineCommandsDTO struct {
	Player   PlayerDTO    `json:"player"`
	Commands []CommandDTO `json:"commands"`
}
