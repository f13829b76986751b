package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	tebex "github.com/tebexkit/client-go"
)

// Config holds the streams the helper writes to.
type Config struct {
	Stdout io.Writer
	Stderr io.Writer
	// EnvFile is loaded before flags are read, when it exists.
	EnvFile string
}

// DefaultConfig returns a Config wired to the process streams.
func DefaultConfig() Config {
	return Config{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		EnvFile: ".env",
	}
}

func run(args []string, cfg Config) error {
	cmd := newRootCmd(cfg)
	cmd.SetArgs(args[1:])
	cmd.SetOut(cfg.Stdout)
	cmd.SetErr(cfg.Stderr)
	return cmd.Execute()
}

// helper carries the state shared by every subcommand.
type helper struct {
	cfg    Config
	v      *viper.Viper
	client *tebex.Client
	logger *zap.Logger
}

func newRootCmd(cfg Config) *cobra.Command {
	h := &helper{cfg: cfg, v: viper.New()}

	root := &cobra.Command{
		Use:          "testhelper",
		Short:        "Call the Tebex plugin API and print the shaped result as JSON",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return h.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if h.logger != nil {
				_ = h.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.String("secret-key", "", "webstore secret key (env TEBEX_SECRET_KEY)")
	flags.String("base-url", "", "plugin API base URL (env TEBEX_BASE_URL)")
	flags.Duration("timeout", 0, "per-request timeout (env TEBEX_TIMEOUT)")
	flags.Bool("verbose", false, "log requests to stderr")
	_ = h.v.BindPFlag("secret_key", flags.Lookup("secret-key"))
	_ = h.v.BindPFlag("base_url", flags.Lookup("base-url"))
	_ = h.v.BindPFlag("timeout", flags.Lookup("timeout"))
	_ = h.v.BindPFlag("verbose", flags.Lookup("verbose"))

	root.AddCommand(
		h.informationCmd(),
		h.listingCmd(),
		h.packagesCmd(),
		h.paymentsCmd(),
		h.playerCmd(),
		h.goalsCmd(),
		h.salesCmd(),
		h.couponsCmd(),
		h.giftCardsCmd(),
		h.bansCmd(),
		h.queueCmd(),
		h.checkoutCmd(),
	)
	return root
}

func (h *helper) setup() error {
	if h.cfg.EnvFile != "" {
		if _, err := os.Stat(h.cfg.EnvFile); err == nil {
			if err := godotenv.Load(h.cfg.EnvFile); err != nil {
				return fmt.Errorf("load %s: %w", h.cfg.EnvFile, err)
			}
		}
	}

	h.v.SetEnvPrefix("tebex")
	h.v.AutomaticEnv()

	opts := []tebex.Option{}
	if baseURL := h.v.GetString("base_url"); baseURL != "" {
		opts = append(opts, tebex.WithBaseURL(baseURL))
	}
	if timeout := h.v.GetDuration("timeout"); timeout > 0 {
		opts = append(opts, tebex.WithTimeout(timeout))
	}
	if h.v.GetBool("verbose") {
		h.logger = zap.New(zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(h.cfg.Stderr),
			zap.DebugLevel,
		))
		opts = append(opts, tebex.WithLogger(h.logger))
	}

	client, err := tebex.New(h.v.GetString("secret_key"), opts...)
	if err != nil {
		return err
	}
	h.client = client
	return nil
}

func (h *helper) print(v any) error {
	enc := json.NewEncoder(h.cfg.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// call runs fn with a bounded context and prints its result.
func call[T any](cmd *cobra.Command, h *helper, fn func(ctx context.Context) (T, error)) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()

	result, err := fn(ctx)
	if err != nil {
		return err
	}
	return h.print(result)
}

func parseID(what, arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", what, arg)
	}
	return id, nil
}

func (h *helper) informationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "information",
		Short: "Show the webstore and server the key belongs to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return call(cmd, h, h.client.Server.Information)
		},
	}
}

func (h *helper) listingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "listing",
		Short: "Show the in-game listing with sale prices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return call(cmd, h, h.client.Packages.Listing)
		},
	}
}

func (h *helper) packagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "packages [id]",
		Short: "List packages, or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return call(cmd, h, h.client.Packages.All)
			}
			id, err := parseID("package id", args[0])
			if err != nil {
				return err
			}
			return call(cmd, h, func(ctx context.Context) (*tebex.Package, error) {
				return h.client.Packages.Retrieve(ctx, id)
			})
		},
	}
}

func (h *helper) paymentsCmd() *cobra.Command {
	var limit, page int
	cmd := &cobra.Command{
		Use:   "payments [transaction-id]",
		Short: "List recent payments, or show one transaction",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case len(args) == 1:
				return call(cmd, h, func(ctx context.Context) (*tebex.Transaction, error) {
					return h.client.Payments.Retrieve(ctx, args[0])
				})
			case page > 0:
				return call(cmd, h, func(ctx context.Context) (*tebex.PaymentPage, error) {
					return h.client.Payments.Page(ctx, page)
				})
			}
			var lim *int
			if cmd.Flags().Changed("limit") {
				lim = &limit
			}
			return call(cmd, h, func(ctx context.Context) ([]tebex.Payment, error) {
				return h.client.Payments.All(ctx, lim)
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of payments")
	cmd.Flags().IntVar(&page, "page", 0, "fetch one page of all payments")
	return cmd
}

func (h *helper) playerCmd() *cobra.Command {
	var packages bool
	cmd := &cobra.Command{
		Use:   "player <uuid-or-username>",
		Short: "Look up a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if packages {
				return call(cmd, h, func(ctx context.Context) ([]tebex.PlayerPurchase, error) {
					return h.client.Players.Packages(ctx, args[0])
				})
			}
			return call(cmd, h, func(ctx context.Context) (*tebex.PlayerInfo, error) {
				return h.client.Players.Retrieve(ctx, args[0])
			})
		},
	}
	cmd.Flags().BoolVar(&packages, "packages", false, "show active packages instead of the profile")
	return cmd
}

func (h *helper) goalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "goals [id]",
		Short: "List community goals, or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return call(cmd, h, h.client.Server.CommunityGoals)
			}
			id, err := parseID("community goal id", args[0])
			if err != nil {
				return err
			}
			return call(cmd, h, func(ctx context.Context) (*tebex.CommunityGoal, error) {
				return h.client.Server.CommunityGoal(ctx, id)
			})
		},
	}
}

func (h *helper) salesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sales",
		Short: "List active sales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return call(cmd, h, h.client.Server.Sales)
		},
	}
}

func (h *helper) couponsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "coupons [id]",
		Short: "List coupons, or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return call(cmd, h, h.client.Coupons.All)
			}
			id, err := parseID("coupon id", args[0])
			if err != nil {
				return err
			}
			return call(cmd, h, func(ctx context.Context) (*tebex.Coupon, error) {
				return h.client.Coupons.Retrieve(ctx, id)
			})
		},
	}
}

func (h *helper) giftCardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "giftcards [id]",
		Short: "List gift cards, or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return call(cmd, h, h.client.GiftCards.All)
			}
			id, err := parseID("gift card id", args[0])
			if err != nil {
				return err
			}
			return call(cmd, h, func(ctx context.Context) (*tebex.GiftCard, error) {
				return h.client.GiftCards.Retrieve(ctx, id)
			})
		},
	}
}

func (h *helper) bansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bans",
		Short: "List bans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return call(cmd, h, h.client.Bans.All)
		},
	}
}

func (h *helper) queueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Show players with pending commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return call(cmd, h, h.client.Queue.DuePlayers)
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "offline",
		Short: "Show pending offline commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return call(cmd, h, h.client.Queue.OfflineCommands)
		},
	}, &cobra.Command{
		Use:   "online <player-id>",
		Short: "Show pending commands for an online player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("player id", args[0])
			if err != nil {
				return err
			}
			return call(cmd, h, func(ctx context.Context) (*tebex.OnlineCommands, error) {
				return h.client.Queue.OnlineCommands(ctx, id)
			})
		},
	}, &cobra.Command{
		Use:   "ack <command-id>...",
		Short: "Delete executed commands from the queue",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int, 0, len(args))
			for _, arg := range args {
				id, err := parseID("command id", arg)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}
			return call(cmd, h, func(ctx context.Context) (map[string]bool, error) {
				if err := h.client.Queue.DeleteCommands(ctx, ids); err != nil {
					return nil, err
				}
				return map[string]bool{"success": true}, nil
			})
		},
	})
	return cmd
}

func (h *helper) checkoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkout <package-id> <username>",
		Short: "Create a checkout link",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("package id", args[0])
			if err != nil {
				return err
			}
			username := strings.TrimSpace(args[1])
			return call(cmd, h, func(ctx context.Context) (*tebex.CheckoutCart, error) {
				return h.client.Checkout.Create(ctx, id, username)
			})
		},
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
