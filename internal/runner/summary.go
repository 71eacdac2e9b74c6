package runner

import "github.com/mailprobe/mailprobe/internal/storage"

// Summary aggregates record statuses for end-of-run reporting.
type Summary struct {
	Total        int
	Sent         int
	SendFailed   int
	FoundNotSent int
	NoEmail      int
	CrawlFailed  int
	Errors       int
}

// Summarize counts records per status bucket.
func Summarize(records []storage.Record) Summary {
	s := Summary{Total: len(records)}
	for _, record := range records {
		switch record.Status {
		case storage.StatusSent:
			s.Sent++
		case storage.StatusSendFailed:
			s.SendFailed++
		case storage.StatusFoundNotSent:
			s.FoundNotSent++
		case storage.StatusNoEmail:
			s.NoEmail++
		case storage.StatusCrawlFailed:
			s.CrawlFailed++
		default:
			s.Errors++
		}
	}
	return s
}
