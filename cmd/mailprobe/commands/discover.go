package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mailprobe/mailprobe/internal/crawler"
	"github.com/mailprobe/mailprobe/internal/fetcher"
	"github.com/mailprobe/mailprobe/internal/logger"
	"github.com/mailprobe/mailprobe/internal/mailer"
	"github.com/mailprobe/mailprobe/internal/runner"
	"github.com/mailprobe/mailprobe/internal/storage"
)

// discoverConfig is the fully-assembled run configuration, validated
// before any collaborator is built.
type discoverConfig struct {
	Sites       []string      `validate:"required,min=1"`
	Credentials string        `validate:"required_if=Send true"`
	Token       string        `validate:"required_if=Send true"`
	Send        bool
	Subject     string        `validate:"required"`
	Body        string        `validate:"required"`
	Format      string        `validate:"oneof=csv xlsx sqlite jsonl yaml all"`
	OutputDir   string        `validate:"required"`
	FetchMode   string        `validate:"oneof=static dynamic auto"`
	Timeout     time.Duration `validate:"gt=0"`
	Delay       time.Duration `validate:"gte=0"`
	MaxBodySize int           `validate:"gte=0"`
}

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Find contact emails for company sites and optionally reach out",
	Long: `Crawl each site (trying common contact-page paths), extract the
highest-priority contact address, send the outreach message unless
--no-send is given, and persist one record per site.

Examples:
  # Single site, no sending
  mailprobe discover -u "https://example-corp.com" --no-send

  # Sites from a text file (one per line, # comments) or CSV first column
  mailprobe discover -f sites.txt

  # Headless-browser fetching for JS-heavy sites
  mailprobe discover -f sites.txt --fetch-mode dynamic`,
	RunE: runDiscover,
}

func init() {
	rootCmd.AddCommand(discoverCmd)

	flags := discoverCmd.Flags()

	// Site inputs
	flags.StringSliceP("url", "u", nil, "site URL(s) to process (can be repeated)")
	flags.StringP("file", "f", "", "file containing site URLs (text or CSV)")

	// Sending
	flags.String("credentials", "credentials.json", "path to Gmail OAuth2 client secrets")
	flags.String("token", "token.json", "path to cached Gmail OAuth2 token")
	flags.Bool("no-send", false, "extract emails but do not send anything")
	flags.String("subject", mailer.DefaultSubject, "outreach subject line")
	flags.String("body-file", "", "file containing the outreach body (default: built-in template)")

	// Output
	flags.String("format", "all", "output format: csv, xlsx, sqlite, jsonl, yaml, all")
	flags.StringP("output-dir", "o", "results", "directory for result files")

	// Fetching
	flags.String("fetch-mode", "static", "fetch mode: static, dynamic, auto")
	flags.Duration("timeout", 30*time.Second, "per-request timeout")
	flags.Duration("delay", time.Second, "pacing delay between sites")
	flags.String("max-body-size", "5MB", "response body cap (e.g. 500KB, 5MB, 0=unlimited)")
	flags.Bool("no-contact-pages", false, "only fetch the given URL, skip contact-page guesses")

	_ = viper.BindPFlag("credentials", flags.Lookup("credentials"))
	_ = viper.BindPFlag("token", flags.Lookup("token"))
	_ = viper.BindPFlag("subject", flags.Lookup("subject"))
	_ = viper.BindPFlag("format", flags.Lookup("format"))
	_ = viper.BindPFlag("output_dir", flags.Lookup("output-dir"))
}

func runDiscover(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Collect sites from flags and file, order-preserving dedup.
	urls, _ := cmd.Flags().GetStringSlice("url")
	sites := append([]string{}, urls...)

	if file, _ := cmd.Flags().GetString("file"); file != "" {
		fromFile, err := loadSites(file)
		if err != nil {
			logError("failed to load sites from %s: %v", file, err)
			return err
		}
		sites = append(sites, fromFile...)
	}
	sites = dedupeSites(sites)

	if len(sites) == 0 {
		return cmd.Help()
	}

	noSend, _ := cmd.Flags().GetBool("no-send")

	body := mailer.DefaultBody
	if bodyFile, _ := cmd.Flags().GetString("body-file"); bodyFile != "" {
		data, err := os.ReadFile(bodyFile)
		if err != nil {
			logError("failed to read body file: %v", err)
			return err
		}
		body = string(data)
	}

	maxBodySizeStr, _ := cmd.Flags().GetString("max-body-size")
	var maxBodySize int
	if strings.TrimSpace(maxBodySizeStr) != "" && maxBodySizeStr != "0" {
		parsed, err := humanize.ParseBytes(maxBodySizeStr)
		if err != nil {
			logError("invalid max-body-size %q: %v", maxBodySizeStr, err)
			return err
		}
		maxBodySize = int(parsed)
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	delay, _ := cmd.Flags().GetDuration("delay")
	fetchMode, _ := cmd.Flags().GetString("fetch-mode")

	cfg := discoverConfig{
		Sites:       sites,
		Credentials: viper.GetString("credentials"),
		Token:       viper.GetString("token"),
		Send:        !noSend,
		Subject:     viper.GetString("subject"),
		Body:        body,
		Format:      viper.GetString("format"),
		OutputDir:   viper.GetString("output_dir"),
		FetchMode:   fetchMode,
		Timeout:     timeout,
		Delay:       delay,
		MaxBodySize: maxBodySize,
	}

	if err := validator.New().Struct(cfg); err != nil {
		logError("invalid configuration: %v", err)
		return err
	}

	return run(ctx, cmd, cfg)
}

func run(ctx context.Context, cmd *cobra.Command, cfg discoverConfig) error {
	fetchCfg := fetcher.DefaultConfig()
	fetchCfg.Timeout = cfg.Timeout
	if cfg.MaxBodySize > 0 {
		fetchCfg.MaxBodySize = cfg.MaxBodySize
	}

	f, err := fetcher.New(fetcher.Mode(cfg.FetchMode), fetchCfg)
	if err != nil {
		logError("failed to create fetcher: %v", err)
		return err
	}
	defer f.Close()

	var sender mailer.Sender
	if cfg.Send {
		gmail, err := mailer.NewGmailSender(ctx, cfg.Credentials, cfg.Token)
		if err != nil {
			logError("failed to initialize Gmail sender: %v", err)
			return err
		}
		sender = gmail
		logger.Info("gmail authenticated", "sender", gmail.From())
	} else {
		logger.Info("sending disabled, discovery only")
	}

	noContactPages, _ := cmd.Flags().GetBool("no-contact-pages")

	r := runner.New(
		crawler.New(f, !noContactPages),
		sender,
		runner.Config{
			Subject:    cfg.Subject,
			Body:       cfg.Body,
			SendEmails: cfg.Send,
			Delay:      cfg.Delay,
		},
	)

	records := r.ProcessAll(ctx, cfg.Sites)

	stores, err := storage.New(cfg.OutputDir, storage.Format(cfg.Format))
	if err != nil {
		logError("failed to prepare output: %v", err)
		return err
	}
	paths, err := storage.WriteAll(stores, records)
	if err != nil {
		logError("failed to write results: %v", err)
		return err
	}

	printSummary(runner.Summarize(records), paths)

	return nil
}

// printSummary renders the end-of-run report. Per-site failures are part
// of a normal run and do not affect the exit code.
func printSummary(s runner.Summary, paths map[string]string) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)

	fmt.Println()
	bold.Println("PROCESSING SUMMARY")
	fmt.Printf("  Total sites:      %d\n", s.Total)
	green.Printf("  Sent:             %d\n", s.Sent)
	if s.FoundNotSent > 0 {
		green.Printf("  Found (not sent): %d\n", s.FoundNotSent)
	}
	yellow.Printf("  No email found:   %d\n", s.NoEmail)
	red.Printf("  Crawl failed:     %d\n", s.CrawlFailed)
	if s.SendFailed > 0 {
		red.Printf("  Send failed:      %d\n", s.SendFailed)
	}
	if s.Errors > 0 {
		red.Printf("  Errors:           %d\n", s.Errors)
	}

	fmt.Println("\nResults saved to:")
	for name, path := range paths {
		fmt.Printf("  %-7s %s\n", strings.ToUpper(name)+":", path)
	}
}
