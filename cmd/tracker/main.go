package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"flightwatch-service/internal/client"
	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/internal/infrastructure/config"
	"flightwatch-service/internal/infrastructure/persistence"
	"flightwatch-service/internal/infrastructure/session"
	"flightwatch-service/pkg/logger"
)

const (
	exitOK           = 0
	exitInvalidInput = 10
	exitNotFound     = 20
	exitTransport    = 30
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitInvalidInput)
	}

	cfg, err := config.LoadTrackerConfig()
	if err != nil {
		fail(err)
	}
	log := logger.New(logger.Options{Level: cfg.LogLevel, Console: true})
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		fail(err)
	}
	sess := client.NewSession(store)
	api := client.NewAPIClient(cfg.APIBaseURL, nil)

	switch os.Args[1] {
	case "track":
		runTrack(ctx, os.Args[2:], cfg, api, sess, log)
	case "resume":
		runResume(ctx, cfg, api, sess, log)
	case "stop":
		runStop(ctx, sess)
	case "refund":
		runRefund(ctx, os.Args[2:], api, sess)
	default:
		printUsage()
		os.Exit(exitInvalidInput)
	}
}

func openStore(ctx context.Context, cfg *config.TrackerConfig) (session.Store, error) {
	if cfg.SessionStore != "redis" {
		return session.NewFileStore(cfg.SessionFile), nil
	}
	rdb, err := persistence.NewRedisClient(ctx, persistence.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, err
	}
	return session.NewRedisStore(rdb, "tracker"), nil
}

func runTrack(ctx context.Context, args []string, cfg *config.TrackerConfig, api *client.APIClient, sess *client.Session, log logger.Logger) {
	fs := flag.NewFlagSet("track", flag.ExitOnError)
	interval := fs.Duration("interval", cfg.PollInterval, "poll interval")
	if err := fs.Parse(args); err != nil {
		fail(err)
	}
	pnrs := fs.Args()
	if len(pnrs) == 0 {
		fail(entity.NewValidationError("pnr", "at least one PNR is required"))
	}

	// the last PNR given becomes the one resumed next time
	if err := sess.Track(ctx, pnrs[len(pnrs)-1]); err != nil {
		log.Warn("Failed to save session", "error", err)
	}
	track(ctx, pnrs, *interval, api, sess, log)
}

func runResume(ctx context.Context, cfg *config.TrackerConfig, api *client.APIClient, sess *client.Session, log logger.Logger) {
	pnr, err := sess.Load(ctx)
	if err != nil {
		fail(err)
	}
	if pnr == "" {
		fail(entity.NewValidationError("pnr", "no tracked PNR in session"))
	}
	track(ctx, []string{pnr}, cfg.PollInterval, api, sess, log)
}

func runStop(ctx context.Context, sess *client.Session) {
	if err := sess.Clear(ctx); err != nil {
		fail(err)
	}
	fmt.Println("Tracking stopped")
	os.Exit(exitOK)
}

// track polls every pnr until interrupted
func track(ctx context.Context, pnrs []string, interval time.Duration, api *client.APIClient, sess *client.Session, log logger.Logger) {
	tracker := client.NewTracker(api, newConsoleSink(os.Stdout), sess, interval, log)
	for _, pnr := range pnrs {
		tracker.Start(ctx, pnr)
	}

	<-ctx.Done()
	tracker.StopAll()
	os.Exit(exitOK)
}

func runRefund(ctx context.Context, args []string, api *client.APIClient, sess *client.Session) {
	fs := flag.NewFlagSet("refund", flag.ExitOnError)
	form := client.RefundForm{}
	fs.StringVar(&form.PNR, "pnr", "", "booking reference")
	fs.StringVar(&form.Name, "name", "", "passenger name")
	fs.StringVar(&form.AirportCode, "airport", "", "departure airport code")
	fs.StringVar(&form.FlightID, "flight", "", "flight id")
	fs.StringVar(&form.PassengerID, "passenger-id", "", "passenger id, defaults to the PNR")
	fs.StringVar(&form.UPIID, "upi", "", "UPI id for the payout")
	payout := fs.String("payout", string(entity.PayoutUPI), "payout channel: upi or original")
	fs.StringVar(&form.Amount, "amount", "", "claimed amount, defaults to the standard refund")
	fs.StringVar(&form.Reason, "reason", "", "reason")
	if err := fs.Parse(args); err != nil {
		fail(err)
	}
	form.PayoutChannel = entity.PayoutChannel(strings.ToLower(*payout))

	if requested, err := sess.RefundRequested(ctx, form.PNR); err == nil && requested {
		fmt.Fprintf(os.Stderr, "A refund was already requested for %s; submitting again\n", strings.ToUpper(form.PNR))
	}

	req, err := api.SubmitRefund(ctx, form)
	if err != nil {
		fail(err)
	}
	if err := sess.MarkRefundRequested(ctx, req.PNR); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
	}
	printJSON(req)
	os.Exit(exitOK)
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}

func fail(err error) {
	code := exitTransport
	switch {
	case entity.IsValidation(err):
		code = exitInvalidInput
	case errors.Is(err, entity.ErrNotFound):
		code = exitNotFound
	}
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(code)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: tracker <track|resume|stop|refund> [flags]")
	fmt.Fprintln(os.Stderr, "  track [-interval 10s] PNR...   poll notifications for one or more PNRs")
	fmt.Fprintln(os.Stderr, "  resume                         track the last tracked PNR")
	fmt.Fprintln(os.Stderr, "  stop                           forget the last tracked PNR")
	fmt.Fprintln(os.Stderr, "  refund -pnr P -name N -upi U   submit a refund request")
}
