package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNew_UnknownMode(t *testing.T) {
	if _, err := New(Mode("bogus"), DefaultConfig()); err == nil {
		t.Error("New() with unknown mode: want error")
	}
}

func TestNew_Static(t *testing.T) {
	f, err := New(ModeStatic, DefaultConfig())
	if err != nil {
		t.Fatalf("New(static) error: %v", err)
	}
	defer f.Close()

	if f.Type() != "static" {
		t.Errorf("Type() = %q, want %q", f.Type(), "static")
	}
}

func TestStaticFetcher_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><head><title>Acme Corp</title></head>` +
			`<body><p>contact@acme.io</p></body></html>`))
	}))
	defer srv.Close()

	f := NewStaticFetcher(DefaultConfig())
	defer f.Close()

	content, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if content.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", content.StatusCode)
	}
	if content.Title != "Acme Corp" {
		t.Errorf("Title = %q, want %q", content.Title, "Acme Corp")
	}
	if content.HTML == "" {
		t.Error("HTML is empty")
	}
	if content.FinalURL == "" {
		t.Error("FinalURL is empty")
	}
}

func TestStaticFetcher_Fetch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := NewStaticFetcher(DefaultConfig())
	defer f.Close()

	content, err := f.Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("Fetch() of 500 page: want error")
	}
	if content.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", content.StatusCode)
	}
}

func TestStaticFetcher_Fetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.Timeout = 50 * time.Millisecond
	f := NewStaticFetcher(cfg)
	defer f.Close()

	if _, err := f.Fetch(context.Background(), srv.URL); err == nil {
		t.Error("Fetch() past timeout: want error")
	}
}

func TestNeedsJavaScript(t *testing.T) {
	tests := []struct {
		name string
		html string
		want bool
	}{
		{"react root", `<html><body><div id="root"></div></body></html>`, true},
		{"next root", `<html><body><div id="__next"></div></body></html>`, true},
		{"noscript warning", `<body><noscript>Please enable JavaScript</noscript></body>`, true},
		{"plain page", `<html><body><p>Welcome to Acme. contact@acme.io</p></body></html>`, false},
		{"harmless noscript", `<body><noscript><img src="pixel.gif"></noscript><p>hi</p></body>`, false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := needsJavaScript(tt.html); got != tt.want {
				t.Errorf("needsJavaScript() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractTitle_Malformed(t *testing.T) {
	if got := extractTitle("<title>Half open"); got != "Half open" {
		t.Errorf("extractTitle() = %q, want %q", got, "Half open")
	}
}
