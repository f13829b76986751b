package tebex

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tebexkit/client-go/internal/api"
)

// Server is the webstore/server data API.
type Server struct {
	api *api.Client
}

// WebstoreInformation describes the authenticated account and server.
type WebstoreInformation struct {
	Account WebstoreAccount `json:"account"`
	Server  GameServer      `json:"server"`
}

// WebstoreAccount is the webstore owning the secret key.
type WebstoreAccount struct {
	ID         int      `json:"id"`
	Domain     string   `json:"domain"`
	Name       string   `json:"name"`
	Currency   Currency `json:"currency"`
	OnlineMode bool     `json:"onlineMode"`
	GameType   string   `json:"gameType"`
	LogEvents  bool     `json:"logEvents"`
}

// GameServer is the game server the secret key belongs to.
type GameServer struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CommunityGoal is a community goal.
type CommunityGoal struct {
	ID          int             `json:"id"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	Account     int             `json:"account"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Target      decimal.Decimal `json:"target"`
	Current     decimal.Decimal `json:"current"`
	Repeatable  bool            `json:"repeatable"`
	// LastAchieved is zero if the goal was never reached.
	LastAchieved  time.Time `json:"lastAchieved"`
	TimesAchieved int       `json:"timesAchieved"`
	Status        string    `json:"status"`
	Sale          int       `json:"sale"`
}

// Progress returns Current as a fraction of Target, or zero for a zero target.
func (g *CommunityGoal) Progress() decimal.Decimal {
	if g.Target.IsZero() {
		return decimal.Zero
	}
	return g.Current.Div(g.Target)
}

// Sale is an active sale.
type Sale struct {
	ID        int       `json:"id"`
	Effective Effective `json:"effective"`
	Discount  Discount  `json:"discount"`
	Start     time.Time `json:"start"`
	Expire    time.Time `json:"expire"`
	Order     int       `json:"order"`
}

// Information returns general information about the authenticated
// account and server.
func (s *Server) Information(ctx context.Context) (*WebstoreInformation, error) {
	info, err := api.Execute(ctx, s.api, api.Request{Path: api.Information.Path()}, single(shapeInformation))
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// CommunityGoals returns all community goals on the account.
func (s *Server) CommunityGoals(ctx context.Context) ([]CommunityGoal, error) {
	return api.Execute(ctx, s.api, api.Request{Path: api.CommunityGoals.Path()}, list(shapeCommunityGoal))
}

// CommunityGoal returns a single community goal.
func (s *Server) CommunityGoal(ctx context.Context, id int) (*CommunityGoal, error) {
	if err := requireID("community goal id", id); err != nil {
		return nil, err
	}
	goal, err := api.Execute(ctx, s.api, api.Request{Path: api.CommunityGoal.Path(id)}, single(shapeCommunityGoal))
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// Sales returns all active sales on the account.
func (s *Server) Sales(ctx context.Context) ([]Sale, error) {
	return api.Execute(ctx, s.api, api.Request{Path: api.Sales.Path()}, enveloped(shapeSale))
}

func shapeInformation(w api.InformationDTO) WebstoreInformation {
	return WebstoreInformation{
		Account: WebstoreAccount{
			ID:         int(w.Account.ID),
			Domain:     w.Account.Domain,
			Name:       w.Account.Name,
			Currency:   shapeCurrency(w.Account.Currency),
			OnlineMode: bool(w.Account.OnlineMode),
			GameType:   w.Account.GameType,
			LogEvents:  bool(w.Account.LogEvents),
		},
		Server: GameServer{ID: int(w.Server.ID), Name: w.Server.Name},
	}
}

func shapeCommunityGoal(w api.CommunityGoalDTO) CommunityGoal {
	return CommunityGoal{
		ID:            int(w.ID),
		CreatedAt:     w.CreatedAt.Time,
		UpdatedAt:     w.UpdatedAt.Time,
		Account:       int(w.Account),
		Name:          w.Name,
		Description:   w.Description,
		Image:         string(w.Image),
		Target:        w.Target.Decimal,
		Current:       w.Current.Decimal,
		Repeatable:    bool(w.Repeatable),
		LastAchieved:  w.LastAchieved.Time,
		TimesAchieved: int(w.TimesAchieved),
		Status:        w.Status,
		Sale:          int(w.Sale),
	}
}

func shapeSale(w api.SaleDTO) Sale {
	return Sale{
		ID:        int(w.ID),
		Effective: shapeEffective(w.Effective),
		Discount:  shapeDiscount(w.Discount),
		Start:     w.Start.Time,
		Expire:    w.Expire.Time,
		Order:     int(w.Order),
	}
}
