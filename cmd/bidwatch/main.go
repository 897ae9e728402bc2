// Command bidwatch follows the bids of one project live.
//
//	bidwatch login <token>
//	bidwatch logout
//	bidwatch watch [-status pending] [-sort amount] [-order desc] <project-id>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"skillswap/internal/biddingerrors"
	"skillswap/internal/bidstore"
	"skillswap/internal/config"
	"skillswap/internal/gateway"
	"skillswap/internal/models"
	"skillswap/internal/realtime"
	"skillswap/utils"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		utils.Error("bidwatch failed", map[string]any{
			"error":  err.Error(),
			"notice": biddingerrors.UserMessage(err),
		})
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	utils.SetLevel(cfg.LogLevel)
	tokens := gateway.NewFileTokenStore(cfg.TokenFile)

	if len(args) == 0 {
		return errors.New("usage: bidwatch login <token> | logout | watch [flags] <project-id>")
	}

	switch args[0] {
	case "login":
		if len(args) != 2 {
			return errors.New("usage: bidwatch login <token>")
		}
		return tokens.Save(args[1])
	case "logout":
		return tokens.Clear()
	case "watch":
		return watch(cfg, tokens, args[1:])
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func watch(cfg config.Config, tokens *gateway.FileTokenStore, args []string) error {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	status := fs.String("status", "", "only show bids in this status")
	sortField := fs.String("sort", string(bidstore.SortByCreatedAt), "field to sort by")
	order := fs.String("order", string(bidstore.Ascending), "asc or desc")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: bidwatch watch [flags] <project-id>")
	}
	projectID := fs.Arg(0)

	filter := models.BidStatus(*status)
	if filter != bidstore.AllStatuses && !filter.Valid() {
		return fmt.Errorf("%w: unknown status %q", biddingerrors.ErrValidation, *status)
	}

	client, err := gateway.NewClient(cfg.APIBaseURL, tokens, gateway.WithTimeout(cfg.RequestTimeout))
	if err != nil {
		return err
	}
	channel, err := watchChannel(cfg)
	if err != nil {
		return err
	}
	defer channel.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := bidstore.New(client)
	detach := store.Attach(channel)
	defer detach()

	show := func(reason string) {
		view := store.FilterAndSort(filter, bidstore.SortField(*sortField), bidstore.SortOrder(*order))
		rows := make([]string, 0, len(view))
		for _, b := range view {
			rows = append(rows, fmt.Sprintf("%s %s %.2f %dd %s", b.ID, b.Status, b.Amount, b.DeliveryTime, b.FreelancerID))
		}
		utils.Info("bids", map[string]any{
			"project_id": projectID,
			"reason":     reason,
			"count":      len(view),
			"bids":       rows,
		})
	}

	// registered after Attach so the store has merged before the view is printed
	for _, kind := range []realtime.Kind{
		realtime.KindNewBid,
		realtime.KindBidStatusUpdated,
		realtime.KindCounterOfferReceived,
		realtime.KindCounterOfferAccepted,
	} {
		id := channel.Subscribe(kind, func(ev realtime.Event) { show(string(ev.Kind())) })
		defer channel.Unsubscribe(kind, id)
	}

	if err := channel.JoinProjectRoom(ctx, projectID); err != nil {
		return err
	}
	defer channel.LeaveProjectRoom(context.Background(), projectID)

	if err := store.Load(ctx, projectID); err != nil {
		return err
	}
	show("loaded")

	<-ctx.Done()
	return nil
}

// watchChannel connects to the service's broadcasts. A watcher runs in its own
// process, so it always uses Redis whatever REALTIME_TRANSPORT says.
func watchChannel(cfg config.Config) (*realtime.Channel, error) {
	if realtime.ProcessLocal(cfg.RealtimeTransport) {
		utils.Warn("ignoring process-local realtime transport, watching over redis", map[string]any{
			"transport": cfg.RealtimeTransport,
			"redis_url": cfg.RedisURL,
		})
	}
	return realtime.NewChannelFor(realtime.TransportRedis, cfg.RedisURL)
}
