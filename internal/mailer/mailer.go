// Package mailer sends outreach messages. Delivery failures are values
// carried in an Outcome, not panics, so callers branch on structured
// results.
package mailer

import "context"

// Message represents an email to be sent.
type Message struct {
	To      string
	Subject string
	Body    string // plain text
}

// Outcome reports the result of one delivery attempt.
type Outcome struct {
	Sent      bool
	MessageID string
	Err       error
}

// Sender abstracts the mail provider for DI and testing.
type Sender interface {
	// Send delivers a message and reports the outcome.
	Send(ctx context.Context, msg Message) Outcome

	// From returns the authenticated sender address.
	From() string
}

// DefaultSubject is the subject line used when none is configured.
const DefaultSubject = "Quick Collaboration Inquiry"

// DefaultBody is the outreach template used when no body file is given.
const DefaultBody = `Hi,

I hope you're doing well. I came across your work and was really
impressed. I'm reaching out to see if there's an opportunity to
collaborate, volunteer, or contribute on a project basis.

I have experience in data engineering, automation, and analytics, and
I'd be happy to offer support wherever needed.

Thanks`
