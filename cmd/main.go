package main

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"dispatch-move-logger/internal/config"
	"dispatch-move-logger/internal/emailprocessor"
	imapclient "dispatch-move-logger/internal/imap"
	"dispatch-move-logger/internal/logging"
	"dispatch-move-logger/internal/models"
	"dispatch-move-logger/internal/routes"
	"dispatch-move-logger/internal/sink"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var imapFailureCount atomic.Int32

const failureSleepDuration = 30 * time.Minute

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		logging.Log.Fatalf("Error reading configuration file: %v", err)
	}

	logging.Log.Infof("Starting dispatch move logger, refresh every %s", cfg.Email.RefreshTime)

	store, err := sink.Open(cfg.Database.Path)
	if err != nil {
		logging.Log.Fatalf("Error opening job log: %v", err)
	}
	defer func() { _ = store.Close() }()

	planner := routes.NewClient(cfg.Routes)

	if cfg.Metrics.Listen != "" {
		go serveMetrics(cfg.Metrics.Listen)
	}

	for {
		fetchAndProcessEmails(cfg, store, planner)
		time.Sleep(cfg.Email.RefreshTime)
	}
}

func serveMetrics(listen string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	logging.Log.Infof("Serving metrics on %s", listen)
	if err := http.ListenAndServe(listen, mux); err != nil {
		logging.Log.Errorf("Metrics server error: %v", err)
	}
}

// fetchAndProcessEmails connects to the IMAP server, retrieves unseen emails, and processes them
func fetchAndProcessEmails(cfg *models.Config, store sink.Store, planner routes.Planner) {
	client := imapclient.NewStandardClient()

	// Connect
	if err := client.Connect(cfg.Email.Imap); err != nil {
		handleIMAPFailure(err)
		return
	}
	defer func(client *imapclient.StandardClient) {
		_ = client.Close()
	}(client)

	// Reset failure count on successful connection
	imapFailureCount.Store(0)

	// Login
	if err := client.Login(cfg.Email.Login, cfg.Email.Password); err != nil {
		logging.Log.Errorf("Login error: %v", err)
		return
	}

	// Select mailbox
	if err := client.SelectMailbox(cfg.Email.MailBox); err != nil {
		logging.Log.Errorf("Folder selection error: %v", err)
		return
	}

	// List unseen emails within the validity window
	uids, err := client.ListUnseenUIDs(cfg.Email.ValidityWindow)
	if err != nil {
		logging.Log.Errorf("Error searching for recent emails: %v", err)
		return
	}

	if len(uids) == 0 {
		return
	}

	processor := emailprocessor.NewProcessor(client, store, planner, cfg)

	ctx := context.Background()
	for _, uid := range uids {
		if err := processor.ProcessEmail(ctx, uid); err != nil {
			logging.Log.Errorf("Error processing email UID %d: %v", uid, err)
		}
	}
}

// handleIMAPFailure increments the failure count and implements an exponential backoff strategy
func handleIMAPFailure(err error) {
	failures := imapFailureCount.Add(1)
	logging.Log.Errorf("IMAP connection error: %v", err)

	if failures >= 5 {
		base := 5 * time.Minute
		maxSteps := int32(10)

		n := failures - 5
		if n > maxSteps {
			n = maxSteps
		}

		backoff := base * time.Duration(1<<n)
		if backoff > failureSleepDuration {
			backoff = failureSleepDuration
		}

		logging.Log.Warnf("IMAP failed %d times, waiting %s before next attempt", failures, backoff)
		time.Sleep(backoff)
	}
}
