//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"

	tebex "github.com/tebexkit/client-go"
)

var (
	secretKey string
	baseURL   string
)

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	secretKey = os.Getenv("TEBEX_SECRET_KEY")
	baseURL = os.Getenv("TEBEX_BASE_URL")

	if secretKey == "" {
		os.Stderr.WriteString("Skipping integration tests: TEBEX_SECRET_KEY not set\n")
		os.Exit(0)
	}

	os.Stderr.WriteString("Running integration tests...\n")
	if baseURL != "" {
		os.Stderr.WriteString("API URL: " + baseURL + "\n")
	}

	os.Exit(m.Run())
}

func newClient(t *testing.T) *tebex.Client {
	t.Helper()

	opts := []tebex.Option{tebex.WithTimeout(30 * time.Second)}
	if baseURL != "" {
		opts = append(opts, tebex.WithBaseURL(baseURL))
	}

	client, err := tebex.New(secretKey, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client
}

// These tests only read from the webstore.

func TestIntegration_Information(t *testing.T) {
	client := newClient(t)

	info, err := client.Server.Information(context.Background())
	if err != nil {
		t.Fatalf("Information() error = %v", err)
	}
	if info.Account.ID == 0 {
		t.Error("Account.ID is zero")
	}
	if info.Account.Currency.ISO4217 == "" {
		t.Error("Account.Currency.ISO4217 is empty")
	}
	t.Logf("Webstore %q, server %q", info.Account.Name, info.Server.Name)
}

func TestIntegration_ListingAndPackages(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	listing, err := client.Packages.Listing(ctx)
	if err != nil {
		t.Fatalf("Listing() error = %v", err)
	}
	for _, category := range listing.Categories {
		for i := 1; i < len(category.Packages); i++ {
			if category.Packages[i-1].Order > category.Packages[i].Order {
				t.Errorf("category %q packages are not sorted by order", category.Name)
			}
		}
	}

	pkgs, err := client.Packages.All(ctx)
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	t.Logf("Found %d package(s)", len(pkgs))
	if len(pkgs) == 0 {
		return
	}

	pkg, err := client.Packages.Retrieve(ctx, pkgs[0].ID)
	if err != nil {
		t.Fatalf("Retrieve(%d) error = %v", pkgs[0].ID, err)
	}
	if pkg.ID != pkgs[0].ID {
		t.Errorf("Retrieve().ID = %d, want %d", pkg.ID, pkgs[0].ID)
	}
}

func TestIntegration_Payments(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	limit := 3
	payments, err := client.Payments.All(ctx, &limit)
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(payments) > limit {
		t.Errorf("All() returned %d payments, want at most %d", len(payments), limit)
	}

	page, err := client.Payments.Page(ctx, 1)
	if err != nil {
		t.Fatalf("Page(1) error = %v", err)
	}
	if page.CurrentPage != 1 {
		t.Errorf("CurrentPage = %d, want 1", page.CurrentPage)
	}
}

func TestIntegration_ServerData(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	if _, err := client.Server.CommunityGoals(ctx); err != nil {
		t.Errorf("CommunityGoals() error = %v", err)
	}
	if _, err := client.Server.Sales(ctx); err != nil {
		t.Errorf("Sales() error = %v", err)
	}
	if _, err := client.Coupons.All(ctx); err != nil {
		t.Errorf("Coupons.All() error = %v", err)
	}
	if _, err := client.Bans.All(ctx); err != nil {
		t.Errorf("Bans.All() error = %v", err)
	}
}

func TestIntegration_Queue(t *testing.T) {
	client := newClient(t)

	due, err := client.Queue.DuePlayers(context.Background())
	if err != nil {
		t.Fatalf("DuePlayers() error = %v", err)
	}
	if due.Meta.NextCheck <= 0 {
		t.Errorf("NextCheck = %v, want positive", due.Meta.NextCheck)
	}
}

func TestIntegration_UnknownTransaction(t *testing.T) {
	client := newClient(t)

	_, err := client.Payments.Retrieve(context.Background(), "tbx-does-not-exist")
	if !errors.Is(err, tebex.ErrInvalidRequest) {
		t.Fatalf("Retrieve() error = %v, want ErrInvalidRequest", err)
	}
	var apiErr *tebex.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Retrieve() error = %T, want APIError in chain", err)
	}
}

func TestIntegration_InvalidSecretKey(t *testing.T) {
	opts := []tebex.Option{}
	if baseURL != "" {
		opts = append(opts, tebex.WithBaseURL(baseURL))
	}
	client, err := tebex.New("not-a-real-key", opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = client.Server.Information(context.Background())
	if !errors.Is(err, tebex.ErrUnauthorized) {
		t.Errorf("Information() error = %v, want ErrUnauthorized", err)
	}
}
