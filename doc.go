// Package tebex provides a Go client for the Tebex plugin API, the
// server-side API of a Tebex webstore.
//
// Each call is a single authenticated HTTP round trip. Responses are
// reshaped into Go records: dates become time.Time, money becomes
// decimal.Decimal, and records marshal back to JSON with camelCase keys.
//
// Basic usage:
//
//	client, err := tebex.New(os.Getenv("TEBEX_SECRET_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	listing, err := client.Packages.Listing(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, category := range listing.Categories {
//	    for _, pkg := range category.Packages {
//	        fmt.Println(pkg.Name, pkg.DiscountedPrice)
//	    }
//	}
//
// Every failure is an *Error. Use errors.Is with ErrInvalidRequest to catch
// any failed call, ErrMissingParameter for arguments rejected before a
// request was sent, and ErrNotFound or ErrUnauthorized for specific
// upstream statuses. Calls are never retried.
//
// # Command queue
//
// A game server plugin drains its command queue with Queue.Watch, which
// checks the queue on the interval the webstore asks for, hands each due
// command to a CommandHandler, and acknowledges the ones that succeed:
//
//	err := client.Queue.Watch(ctx, func(ctx context.Context, cmd tebex.QueuedCommand) error {
//	    return dispatch(cmd.Command)
//	}, tebex.WithOnlinePlayers(isOnline))
package tebex
