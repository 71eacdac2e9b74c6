// Package runner orchestrates contact discovery end to end: crawl a site,
// extract the best address, optionally send the outreach message, and
// produce one record per site.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mailprobe/mailprobe/internal/crawler"
	"github.com/mailprobe/mailprobe/internal/extract"
	"github.com/mailprobe/mailprobe/internal/logger"
	"github.com/mailprobe/mailprobe/internal/mailer"
	"github.com/mailprobe/mailprobe/internal/storage"
)

// SiteCrawler fetches a usable page for a site.
type SiteCrawler interface {
	Crawl(ctx context.Context, site string) crawler.Result
}

// Config holds run-wide settings.
type Config struct {
	Subject    string
	Body       string
	SendEmails bool
	Delay      time.Duration // pacing between sites
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Subject:    mailer.DefaultSubject,
		Body:       mailer.DefaultBody,
		SendEmails: true,
		Delay:      time.Second,
	}
}

// Runner processes company sites sequentially.
type Runner struct {
	crawler SiteCrawler
	sender  mailer.Sender // nil disables sending
	config  Config
	runID   string
}

// New creates a Runner. A nil sender turns the run into discovery-only:
// found addresses are recorded but nothing is sent.
func New(c SiteCrawler, sender mailer.Sender, cfg Config) *Runner {
	if cfg.Subject == "" {
		cfg.Subject = mailer.DefaultSubject
	}
	if cfg.Body == "" {
		cfg.Body = mailer.DefaultBody
	}
	return &Runner{
		crawler: c,
		sender:  sender,
		config:  cfg,
		runID:   uuid.New().String(),
	}
}

// RunID returns this run's identifier, shared by all its records.
func (r *Runner) RunID() string {
	return r.runID
}

// ProcessSite handles one site. All failure modes land in the record's
// status and error fields; this never returns an error.
func (r *Runner) ProcessSite(ctx context.Context, site string) storage.Record {
	record := storage.Record{
		RunID:     r.runID,
		Company:   site,
		URL:       crawler.NormalizeSite(site),
		Status:    storage.StatusError,
		Timestamp: time.Now(),
	}
	if r.sender != nil {
		record.Sender = r.sender.From()
	}

	logger.Info("processing site", "site", site)

	crawled := r.crawler.Crawl(ctx, site)
	if !crawled.OK {
		record.Status = storage.StatusCrawlFailed
		record.Error = fmt.Sprintf("crawl failed: %v", crawled.Err)
		logger.Warn("crawl failed", "site", site, "error", crawled.Err)
		return record
	}
	record.URL = crawled.FinalURL

	extractor := extract.New(site)
	emails := extractor.Extract(crawled.HTML)
	if len(emails) == 0 {
		record.Status = storage.StatusNoEmail
		record.Error = "no email addresses found"
		logger.Warn("no emails found", "site", site, "url", crawled.FinalURL)
		return record
	}

	best := emails[0]
	record.Email = best
	logger.Info("found email",
		"site", site,
		"email", best,
		"candidates", len(emails),
		"domain_related", extractor.DomainRelated(best))

	if !r.config.SendEmails || r.sender == nil {
		record.Status = storage.StatusFoundNotSent
		return record
	}

	outcome := r.sender.Send(ctx, mailer.Message{
		To:      best,
		Subject: r.config.Subject,
		Body:    r.config.Body,
	})
	if outcome.Sent {
		record.Status = storage.StatusSent
		record.MessageID = outcome.MessageID
		logger.Info("email sent", "site", site, "to", best, "message_id", outcome.MessageID)
	} else {
		record.Status = storage.StatusSendFailed
		record.Error = fmt.Sprintf("send failed: %v", outcome.Err)
		logger.Error("send failed", "site", site, "to", best, "error", outcome.Err)
	}

	return record
}

// ProcessAll handles sites in order with a pacing delay between them (not
// after the last). Context cancellation stops the run early; records for
// the sites already processed are returned.
func (r *Runner) ProcessAll(ctx context.Context, sites []string) []storage.Record {
	records := make([]storage.Record, 0, len(sites))

	logger.Info("run starting", "run_id", r.runID, "sites", len(sites))

	for i, site := range sites {
		logger.Info("progress", "current", i+1, "total", len(sites), "site", site)

		records = append(records, r.ProcessSite(ctx, site))

		if i < len(sites)-1 && r.config.Delay > 0 {
			select {
			case <-ctx.Done():
				logger.Warn("run cancelled", "processed", len(records), "total", len(sites))
				return records
			case <-time.After(r.config.Delay):
			}
		}
	}

	return records
}
