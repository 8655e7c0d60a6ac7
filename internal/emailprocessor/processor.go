package emailprocessor

import (
	"context"
	"strings"
	"time"

	"dispatch-move-logger/internal/extract"
	imapclient "dispatch-move-logger/internal/imap"
	"dispatch-move-logger/internal/logging"
	"dispatch-move-logger/internal/mailparse"
	"dispatch-move-logger/internal/metrics"
	"dispatch-move-logger/internal/models"
	"dispatch-move-logger/internal/routes"
	"dispatch-move-logger/internal/sink"

	"github.com/sirupsen/logrus"
)

type Processor struct {
	imapClient     imapclient.Client
	store          sink.Store
	planner        routes.Planner
	allowedSenders []string
	validityWindow time.Duration
}

// NewProcessor creates a Processor wiring the email source, the job log
// sink and the route planner together.
func NewProcessor(imapClient imapclient.Client, store sink.Store, planner routes.Planner, cfg *models.Config) *Processor {
	return &Processor{
		imapClient:     imapClient,
		store:          store,
		planner:        planner,
		allowedSenders: cfg.AllowedSenders,
		validityWindow: cfg.Email.ValidityWindow,
	}
}

// ProcessEmail orchestrates the complete workflow for one message:
// fetch → parse → handle (filter, extract, enrich, persist) → mark as seen
func (p *Processor) ProcessEmail(ctx context.Context, uid uint32) error {
	msg, err := p.imapClient.FetchMessage(uid)
	if err != nil {
		metrics.EmailsProcessedTotal.WithLabelValues("error").Inc()
		return err
	}

	email, err := mailparse.Parse(msg)
	if err != nil {
		logging.Log.WithField("trace_id", "unknown").Errorf("Error parsing email UID %d: %v", uid, err)
		metrics.EmailsProcessedTotal.WithLabelValues("error").Inc()
		return err
	}

	handled, err := p.HandleEmail(ctx, email)
	if err != nil {
		return err
	}

	// Mark as seen only when the email was actually handled; filtered
	// emails stay unseen until they age out of the validity window.
	if handled {
		if err := p.imapClient.MarkSeen(uid); err != nil {
			logging.Log.WithField("trace_id", email.TraceID).Errorf("Error marking message UID %d as seen: %v", uid, err)
		}
	}

	return nil
}

// HandleEmail filters one parsed email, extracts its moves, and persists
// them. It returns true when the email was accepted for processing,
// whether or not any new records were written.
func (p *Processor) HandleEmail(ctx context.Context, email *models.Email) (bool, error) {
	locallog := logging.Log.WithField("trace_id", email.TraceID)

	if !p.isSenderAllowed(email.From) {
		locallog.Infof("Email received from %s, skip ...", email.From)
		metrics.EmailsProcessedTotal.WithLabelValues("skipped_sender").Inc()
		return false, nil
	}

	if !p.isEmailValid(email) {
		locallog.Infof("Message %s is older than %v (date: %v), skipping", email.MessageID, p.validityWindow, email.InternalDate)
		metrics.EmailsProcessedTotal.WithLabelValues("skipped_stale").Inc()
		return false, nil
	}

	moves := extract.Extract(email.BodyText)
	metrics.MovesExtractedTotal.Add(float64(len(moves)))

	// Zero moves from an accepted scheduling email is a human-visible
	// warning, not a silent drop: persist a placeholder row.
	if len(moves) == 0 {
		locallog.Warnf("No moves extracted from email %q, logging placeholder", email.Subject)
		moves = []models.Move{{}}
	}

	for _, move := range moves {
		if err := p.persistMove(ctx, email, move, locallog); err != nil {
			locallog.Errorf("Error persisting move from %s: %v", email.MessageID, err)
		}
	}

	metrics.EmailsProcessedTotal.WithLabelValues("handled").Inc()
	return true, nil
}

// persistMove enriches one move and appends it to the job log unless its
// dedupe identity already exists.
func (p *Processor) persistMove(ctx context.Context, email *models.Email, move models.Move, locallog *logrus.Entry) error {
	key := sink.DedupeKey(email.MessageID, move)

	exists, err := p.store.Exists(ctx, key)
	if err != nil {
		return err
	}
	if exists {
		metrics.DedupTotal.WithLabelValues("hit").Inc()
		locallog.Infof("Move already logged (%s), skipping", key)
		return nil
	}
	metrics.DedupTotal.WithLabelValues("miss").Inc()

	record := &models.Record{
		JobRef:        sink.NewJobRef(),
		SourceEmailID: email.MessageID,
		Move:          move,
		VehicleLabel:  extract.VehicleLabel(move.Counts),
		Route:         p.lookupRoute(ctx, move),
		Subject:       email.Subject,
		ReceivedAt:    email.InternalDate,
		DedupeKey:     key,
	}

	if err := p.store.Insert(ctx, record); err != nil {
		return err
	}

	locallog.Infof("Logged move %s (%s %s, %s -> %s)", record.JobRef,
		move.Date, move.Time, move.Origin, move.Destination)
	return nil
}

// lookupRoute resolves the route for a move when the pair is eligible.
// Failures degrade to the zero route and never block persistence.
func (p *Processor) lookupRoute(ctx context.Context, move models.Move) models.Route {
	if !routes.Eligible(move.Origin, move.Destination) {
		metrics.RouteLookupsTotal.WithLabelValues("skipped").Inc()
		return models.Route{}
	}
	route := p.planner.Lookup(ctx, move.Origin, move.Destination)
	if route == (models.Route{}) {
		metrics.RouteLookupsTotal.WithLabelValues("empty").Inc()
		return route
	}
	metrics.RouteLookupsTotal.WithLabelValues("ok").Inc()
	return route
}

func (p *Processor) isSenderAllowed(from string) bool {
	for _, sender := range p.allowedSenders {
		if strings.EqualFold(sender, from) {
			return true
		}
	}
	return false
}

// isEmailValid checks if email is within the validity window
func (p *Processor) isEmailValid(email *models.Email) bool {
	return p.isEmailValidAt(email, time.Now())
}

// isEmailValidAt allows testing with a fixed "now" time for deterministic unit tests
func (p *Processor) isEmailValidAt(email *models.Email, now time.Time) bool {
	if email.InternalDate.IsZero() {
		return true
	}

	cutoff := now.Add(-p.validityWindow)
	return !email.InternalDate.Before(cutoff)
}
