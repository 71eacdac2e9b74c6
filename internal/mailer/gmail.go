package mailer

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/mailprobe/mailprobe/internal/logger"
)

const sendRetries = 3

// GmailSender delivers messages through the Gmail API using an OAuth2
// installed-app credential.
type GmailSender struct {
	service *gmail.Service
	sender  string
}

// NewGmailSender authenticates against the Gmail API. credentialsFile is
// the OAuth2 client secrets JSON from the Google Cloud console; tokenFile
// caches the user token across runs. When no cached token exists the
// authorization URL is printed and the auth code is read from stdin.
func NewGmailSender(ctx context.Context, credentialsFile, tokenFile string) (*GmailSender, error) {
	secrets, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	config, err := google.ConfigFromJSON(secrets, gmail.GmailSendScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse client secrets: %w", err)
	}

	token, err := tokenFromFile(tokenFile)
	if err != nil {
		token, err = tokenFromWeb(ctx, config)
		if err != nil {
			return nil, err
		}
		if err := saveToken(tokenFile, token); err != nil {
			logger.Warn("could not cache OAuth token", "path", tokenFile, "error", err)
		}
	}

	service, err := gmail.NewService(ctx,
		option.WithTokenSource(config.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to build Gmail service: %w", err)
	}

	s := &GmailSender{service: service}

	profile, err := service.Users.GetProfile("me").Do()
	if err != nil {
		logger.Warn("could not resolve sender address", "error", err)
	} else {
		s.sender = profile.EmailAddress
	}

	return s, nil
}

// From returns the authenticated sender address, or "" when the profile
// lookup failed.
func (s *GmailSender) From() string {
	return s.sender
}

// Send delivers a message, retrying transient API failures. Client-side
// errors (400, 401, 403) are terminal on first sight.
func (s *GmailSender) Send(ctx context.Context, msg Message) Outcome {
	raw := encodeMessage(msg)

	var lastErr error
	for attempt := 1; attempt <= sendRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return Outcome{Err: err}
		}

		sent, err := s.service.Users.Messages.Send("me", &gmail.Message{Raw: raw}).
			Context(ctx).Do()
		if err == nil {
			logger.Debug("message sent", "to", msg.To, "message_id", sent.Id)
			return Outcome{Sent: true, MessageID: sent.Id}
		}

		lastErr = err
		if apiErr, ok := err.(*googleapi.Error); ok {
			switch apiErr.Code {
			case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
				return Outcome{Err: fmt.Errorf("gmail api error: %w", apiErr)}
			}
		}

		logger.Debug("send attempt failed", "to", msg.To, "attempt", attempt, "error", err)
	}

	return Outcome{Err: fmt.Errorf("send failed after %d attempts: %w", sendRetries, lastErr)}
}

// encodeMessage builds the RFC 2822 message and base64url-encodes it the
// way the Gmail API expects raw payloads.
func encodeMessage(msg Message) string {
	rfc2822 := fmt.Sprintf(
		"To: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s",
		msg.To, msg.Subject, msg.Body)
	return base64.URLEncoding.EncodeToString([]byte(rfc2822))
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	token := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(token); err != nil {
		return nil, fmt.Errorf("failed to decode token file: %w", err)
	}
	return token, nil
}

func tokenFromWeb(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error) {
	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Open the following URL in a browser, authorize the app, then paste the code:\n%s\n> ", authURL)

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		return nil, fmt.Errorf("failed to read authorization code: %w", err)
	}

	token, err := config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return token, nil
}

func saveToken(path string, token *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(token)
}
