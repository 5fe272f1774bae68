package overbid

import (
	"context"
	"log/slog"

	"faabwatch/lib/scrapers/yahoo"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/overbid")

// Fetcher retrieves the two transaction pages for a league.
type Fetcher interface {
	FetchContested(ctx context.Context) (*goquery.Document, error)
	FetchAdds(ctx context.Context) (*goquery.Document, error)
}

// Store is the durable log of every transaction ever processed.
type Store interface {
	LoadAll(ctx context.Context) ([]yahoo.Transaction, error)
	Append(ctx context.Context, records []yahoo.Transaction) error
}

// Notifier delivers a single rendered message to the league's channel.
type Notifier interface {
	Post(ctx context.Context, text string) error
}

type Service struct {
	fetcher   Fetcher
	store     Store
	notifier  Notifier
	threshold int
}

func NewService(fetcher Fetcher, store Store, notifier Notifier, threshold int) Service {
	return Service{
		fetcher:   fetcher,
		store:     store,
		notifier:  notifier,
		threshold: threshold,
	}
}

// Run executes one collection pass: scrape both feeds, merge them,
// diff against the log, persist the batch and notify on anything
// notable.
//
// Persistence happens once, after the diff. A crash after messages go
// out but before the append leaves the log unchanged, so the same
// transactions may be notified again on the next pass. Overlapping
// passes race on the log with last-writer-wins semantics; the job is
// meant to be run from a single periodic scheduler.
func (s Service) Run(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()

	doc, err := s.fetcher.FetchContested(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	contested, err := yahoo.ParseContested(ctx, doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	seen := make(map[string]bool, len(contested))
	for _, t := range contested {
		seen[t.ID] = true
	}

	doc, err = s.fetcher.FetchAdds(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	uncontested, err := yahoo.ParseAdds(ctx, doc, seen)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	merged := append(contested, uncontested...)

	previous, err := s.store.LoadAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	fresh := newSince(previous, merged)

	err = s.store.Append(ctx, merged)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	sentences := FindNotable(fresh, s.threshold)

	sent := 0
	for _, sentence := range sentences {
		err := s.notifier.Post(ctx, sentence)
		if err != nil {
			// a transient failure on one message should not
			// suppress the rest of the batch
			slog.ErrorContext(ctx, "failed to deliver notification", "err", err)
			span.RecordError(err)
			continue
		}
		sent++
	}

	span.SetAttributes(
		attribute.Int("scraped", len(merged)),
		attribute.Int("new", len(fresh)),
		attribute.Int("notable", len(sentences)),
		attribute.Int("sent", sent),
	)
	slog.InfoContext(ctx, "collection pass complete",
		"scraped", len(merged),
		"new", len(fresh),
		"notable", len(sentences),
		"sent", sent,
	)
	return nil
}

// newSince keeps the records whose id was not yet in the log when this
// pass started.
func newSince(previous, merged []yahoo.Transaction) []yahoo.Transaction {
	known := make(map[string]bool, len(previous))
	for _, t := range previous {
		known[t.ID] = true
	}

	var fresh []yahoo.Transaction
	for _, t := range merged {
		if !known[t.ID] {
			fresh = append(fresh, t)
		}
	}
	return fresh
}
