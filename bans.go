package tebex

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tebexkit/client-go/internal/api"
)

// Bans is the bans API.
type Bans struct {
	api *api.Client
}

// Ban is a ban preventing a player from purchasing.
type Ban struct {
	ID           int       `json:"id"`
	Time         time.Time `json:"time"`
	IP           string    `json:"ip"`
	PaymentEmail string    `json:"paymentEmail"`
	Reason       string    `json:"reason"`
	User         BanUser   `json:"user"`
}

// BanUser is the banned player.
type BanUser struct {
	IGN  string `json:"ign"`
	UUID string `json:"uuid"`
}

// MinecraftUUID parses UUID as a Minecraft UUID.
func (u BanUser) MinecraftUUID() (uuid.UUID, error) {
	return uuid.Parse(u.UUID)
}

// CreateBanParams describes a new ban.
type CreateBanParams struct {
	// User is the username or UUID to ban.
	User   string
	Reason string
	IP     string
}

// All returns every ban on the account.
func (b *Bans) All(ctx context.Context) ([]Ban, error) {
	return api.Execute(ctx, b.api, api.Request{Path: api.Bans.Path()}, enveloped(shapeBan))
}

// Create bans a player.
func (b *Bans) Create(ctx context.Context, params CreateBanParams) (*Ban, error) {
	if err := requireString("user id", params.User); err != nil {
		return nil, err
	}
	ban, err := api.Execute(ctx, b.api, api.Request{
		Method: http.MethodPost,
		Path:   api.Bans.Path(),
		Body:   api.CreateBanRequest{Reason: params.Reason, IP: params.IP, User: params.User},
	}, singleEnveloped(shapeBan))
	if err != nil {
		return nil, err
	}
	return &ban, nil
}

func shapeBan(w api.BanDTO) Ban {
	return Ban{
		ID:           int(w.ID),
		Time:         w.Time.Time,
		IP:           string(w.IP),
		PaymentEmail: string(w.PaymentEmail),
		Reason:       string(w.Reason),
		User:         BanUser{IGN: w.User.IGN, UUID: string(w.User.UUID)},
	}
}
