package tebex

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tebexkit/client-go/internal/api"
)

// Payments is the payments data API.
type Payments struct {
	api *api.Client
}

// Payment is a payment as listed by All.
type Payment struct {
	ID       int             `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Date     time.Time       `json:"date"`
	Currency Currency        `json:"currency"`
	Player   PlayerRef       `json:"player"`
}

// Transaction is a single payment looked up by transaction id.
type Transaction struct {
	ID       int                  `json:"id"`
	Amount   decimal.Decimal      `json:"amount"`
	Status   string               `json:"status"`
	Date     time.Time            `json:"date"`
	Currency Currency             `json:"currency"`
	Player   PlayerRef            `json:"player"`
	Packages []TransactionPackage `json:"packages"`
}

// TransactionPackage is a package bought in a transaction.
type TransactionPackage struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// PaymentPage is one page of the paginated payment list.
type PaymentPage struct {
	Total       int       `json:"total"`
	PerPage     int       `json:"perPage"`
	CurrentPage int       `json:"currentPage"`
	LastPage    int       `json:"lastPage"`
	NextPageURL string    `json:"nextPageUrl"`
	PrevPageURL string    `json:"prevPageUrl"`
	From        int       `json:"from"`
	To          int       `json:"to"`
	Payments    []Payment `json:"payments"`
}

// HasNext reports whether another page follows this one.
func (p *PaymentPage) HasNext() bool {
	return p.CurrentPage < p.LastPage
}

// PaymentField is a custom field a package asks for at checkout.
type PaymentField struct {
	Name        string           `json:"name"`
	Type        string           `json:"type"`
	Rules       string           `json:"rules"`
	Message     string           `json:"message"`
	Description string           `json:"description"`
	Options     []map[string]any `json:"options"`
}

// CreatePaymentParams describes a manual payment.
type CreatePaymentParams struct {
	// Username is the in-game name the payment is for.
	Username string
	Price    decimal.Decimal
	Packages []PaymentPackage
	Note     string
}

// PaymentPackage is a package line of a manual payment. Options holds the
// package's custom field values keyed by field name.
type PaymentPackage struct {
	ID      int
	Options map[string]string
}

// UpdatePaymentParams changes a payment. Empty fields are left unchanged.
type UpdatePaymentParams struct {
	Username string
	// Status is "complete" or "chargeback".
	Status string
}

// All returns the latest payments, up to 100. When limit is non-nil it is
// passed to the API as-is.
func (p *Payments) All(ctx context.Context, limit *int) ([]Payment, error) {
	req := api.Request{Path: api.Payments.Path()}
	if limit != nil {
		req.Query = url.Values{"limit": {strconv.Itoa(*limit)}}
	}
	return api.Execute(ctx, p.api, req, list(shapePayment))
}

// Page returns one page of all payments, starting at page 1.
func (p *Payments) Page(ctx context.Context, page int) (*PaymentPage, error) {
	if err := requireID("page number", page); err != nil {
		return nil, err
	}
	result, err := api.Execute(ctx, p.api, api.Request{
		Path:  api.Payments.Path(),
		Query: url.Values{"paged": {strconv.Itoa(page)}},
	}, single(shapePaymentPage))
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Retrieve returns the payment with the given transaction id, such as
// "tbx-12345678".
func (p *Payments) Retrieve(ctx context.Context, transactionID string) (*Transaction, error) {
	if err := requireString("transaction id", transactionID); err != nil {
		return nil, err
	}
	txn, err := api.Execute(ctx, p.api, api.Request{Path: api.Payment.Path(transactionID)}, single(shapeTransaction))
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// Fields returns the custom fields the given package requires.
func (p *Payments) Fields(ctx context.Context, packageID int) ([]PaymentField, error) {
	if err := requireID("package id", packageID); err != nil {
		return nil, err
	}
	return api.Execute(ctx, p.api, api.Request{Path: api.PaymentFields.Path(packageID)}, list(shapePaymentField))
}

// Create records a manual payment.
func (p *Payments) Create(ctx context.Context, params CreatePaymentParams) error {
	pkgs := make([]api.CreatePaymentPackage, len(params.Packages))
	for i, pkg := range params.Packages {
		pkgs[i] = api.CreatePaymentPackage{ID: pkg.ID, Options: pkg.Options}
	}
	_, err := api.Execute(ctx, p.api, api.Request{
		Method: http.MethodPost,
		Path:   api.CreatePayment.Path(),
		Body: api.CreatePaymentRequest{
			IGN:      params.Username,
			Price:    params.Price,
			Packages: pkgs,
			Note:     params.Note,
		},
	}, api.Discard)
	return err
}

// Update changes the username or status of a payment.
func (p *Payments) Update(ctx context.Context, transactionID string, params UpdatePaymentParams) error {
	if err := requireString("transaction id", transactionID); err != nil {
		return err
	}
	_, err := api.Execute(ctx, p.api, api.Request{
		Method: http.MethodPut,
		Path:   api.UpdatePayment.Path(transactionID),
		Body:   api.UpdatePaymentRequest{Username: params.Username, Status: params.Status},
	}, api.Discard)
	return err
}

// AddNote attaches a note to a payment.
func (p *Payments) AddNote(ctx context.Context, transactionID, note string) error {
	if err := requireString("transaction id", transactionID); err != nil {
		return err
	}
	_, err := api.Execute(ctx, p.api, api.Request{
		Method: http.MethodPost,
		Path:   api.PaymentNote.Path(transactionID),
		Body:   api.NoteRequest{Note: note},
	}, api.Discard)
	return err
}

func shapePayment(w api.PaymentDTO) Payment {
	return Payment{
		ID:       int(w.ID),
		Amount:   w.Amount.Decimal,
		Date:     w.Date.Time,
		Currency: shapeCurrency(w.Currency),
		Player:   shapePlayerRef(w.Player),
	}
}

func shapeTransaction(w api.PaymentDTO) Transaction {
	return Transaction{
		ID:       int(w.ID),
		Amount:   w.Amount.Decimal,
		Status:   w.Status,
		Date:     w.Date.Time,
		Currency: shapeCurrency(w.Currency),
		Player:   shapePlayerRef(w.Player),
		Packages: mapSlice(w.Packages, func(p api.PaymentPackageDTO) TransactionPackage {
			return TransactionPackage{ID: int(p.ID), Name: p.Name, Quantity: int(p.Quantity)}
		}),
	}
}

func shapePaymentPage(w api.PaymentPageDTO) PaymentPage {
	return PaymentPage{
		Total:       int(w.Total),
		PerPage:     int(w.PerPage),
		CurrentPage: int(w.CurrentPage),
		LastPage:    int(w.LastPage),
		NextPageURL: string(w.NextPageURL),
		PrevPageURL: string(w.PrevPageURL),
		From:        int(w.From),
		To:          int(w.To),
		Payments:    mapSlice(w.Data, shapePayment),
	}
}

func shapePaymentField(w api.PaymentFieldDTO) PaymentField {
	return PaymentField{
		Name:        w.Name,
		Type:        w.Type,
		Rules:       string(w.Rules),
		Message:     string(w.Message),
		Description: string(w.Description),
		Options:     w.Options,
	}
}
