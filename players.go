package tebex

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tebexkit/client-go/internal/api"
)

// Players is the players data API.
type Players struct {
	api *api.Client
}

// PlayerInfo is the player lookup available on Ultimate plans and above.
type PlayerInfo struct {
	Player         PlayerProfile              `json:"player"`
	BanCount       int                        `json:"banCount"`
	ChargebackRate decimal.Decimal            `json:"chargebackRate"`
	Payments       []PlayerPayment            `json:"payments"`
	PurchaseTotals map[string]decimal.Decimal `json:"purchaseTotals"`
}

// PlayerProfile is the player record of a lookup.
type PlayerProfile struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	CacheExpire time.Time `json:"cacheExpire"`
	Username    string    `json:"username"`
	// Meta is the decoded player metadata, or nil when there is none.
	Meta             any `json:"meta"`
	PluginUsernameID int `json:"pluginUsernameId"`
}

// MinecraftUUID parses the profile id as a Minecraft UUID.
func (p PlayerProfile) MinecraftUUID() (uuid.UUID, error) {
	return uuid.Parse(p.ID)
}

// PlayerPayment is a payment made by the player.
type PlayerPayment struct {
	TransactionID string          `json:"transactionId"`
	Time          time.Time       `json:"time"`
	Price         decimal.Decimal `json:"price"`
	Currency      string          `json:"currency"`
	Status        int             `json:"status"`
}

// PlayerPurchase is a package the player currently owns.
type PlayerPurchase struct {
	TransactionID string        `json:"transactionId"`
	Date          time.Time     `json:"date"`
	Quantity      int           `json:"quantity"`
	Package       SimplePackage `json:"package"`
}

// Retrieve looks up a player by UUID or username.
func (p *Players) Retrieve(ctx context.Context, user string) (*PlayerInfo, error) {
	if err := requireString("user id", user); err != nil {
		return nil, err
	}
	info, err := api.Execute(ctx, p.api, api.Request{Path: api.Player.Path(user)}, api.Decode(shapePlayerInfo))
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// Packages returns the active packages of a player, given by UUID or username.
func (p *Players) Packages(ctx context.Context, user string) ([]PlayerPurchase, error) {
	if err := requireString("user id", user); err != nil {
		return nil, err
	}
	return api.Execute(ctx, p.api, api.Request{Path: api.PlayerPackages.Path(user)}, list(shapePlayerPurchase))
}

// shapePlayerInfo fails when the embedded metadata is not valid JSON.
func shapePlayerInfo(w api.PlayerInfoDTO) (PlayerInfo, error) {
	meta, err := api.DecodeEmbedded(w.Player.Meta)
	if err != nil {
		return PlayerInfo{}, err
	}

	totals := make(map[string]decimal.Decimal, len(w.PurchaseTotals))
	for currency, amount := range w.PurchaseTotals {
		totals[currency] = amount
	}

	return PlayerInfo{
		Player: PlayerProfile{
			ID:               string(w.Player.ID),
			CreatedAt:        w.Player.CreatedAt.Time,
			UpdatedAt:        w.Player.UpdatedAt.Time,
			CacheExpire:      w.Player.CacheExpire.Time,
			Username:         w.Player.Username,
			Meta:             meta,
			PluginUsernameID: int(w.Player.PluginUsernameID),
		},
		BanCount:       int(w.BanCount),
		ChargebackRate: w.ChargebackRate.Decimal,
		Payments:       mapSlice(w.Payments, shapePlayerPayment),
		PurchaseTotals: totals,
	}, nil
}

func shapePlayerPayment(w api.PlayerPaymentDTO) PlayerPayment {
	return PlayerPayment{
		TransactionID: w.TxnID,
		Time:          w.Time.Time,
		Price:         w.Price.Decimal,
		Currency:      w.Currency,
		Status:        int(w.Status),
	}
}

func shapePlayerPurchase(w api.PlayerPurchaseDTO) PlayerPurchase {
	return PlayerPurchase{
		TransactionID: w.TxnID,
		Date:          w.Date.Time,
		Quantity:      int(w.Quantity),
		Package:       shapeRef(w.Package),
	}
}
