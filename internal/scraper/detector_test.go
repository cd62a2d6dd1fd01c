package scraper

import "testing"

func TestNewFetcher_UnknownMode(t *testing.T) {
	_, err := NewFetcher(FetchMode("turbo"), DefaultFetcherConfig())
	if err == nil {
		t.Error("expected error for unknown fetch mode")
	}
}

func TestNewFetcher_Static(t *testing.T) {
	f, err := NewFetcher(FetchModeStatic, DefaultFetcherConfig())
	if err != nil {
		t.Fatalf("NewFetcher() error = %v", err)
	}
	defer f.Close()

	if f.Type() != "static" {
		t.Errorf("Type() = %q, want %q", f.Type(), "static")
	}
}

func TestNeedsJavaScript(t *testing.T) {
	tests := []struct {
		name    string
		content PageContent
		want    bool
	}{
		{
			name:    "react_root",
			content: PageContent{HTML: `<html><body><div id="root"></div></body></html>`},
			want:    true,
		},
		{
			name:    "nextjs_shell",
			content: PageContent{HTML: `<html><body><div id="__next"></div></body></html>`},
			want:    true,
		},
		{
			name: "sparse_page_with_loading_hint",
			content: PageContent{
				HTML: `<html><body><p>Loading...</p></body></html>`,
				Text: "Loading...",
			},
			want: true,
		},
		{
			name: "ordinary_server_rendered_menu",
			content: PageContent{
				HTML: `<html><body><div class="menu"><p>Vegan burger $5.99</p></div></body></html>`,
				Text: "Vegan burger $5.99 and a long enough page body that it does not look like an SPA shell waiting on script execution",
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := needsJavaScript(tt.content); got != tt.want {
				t.Errorf("needsJavaScript() = %v, want %v", got, tt.want)
			}
		})
	}
}
