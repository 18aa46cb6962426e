package urlutil

import (
	"net/url"
	"testing"
)

func TestValidate(t *testing.T) {
	valid := []string{
		"http://example.com",
		"https://example.com/path",
	}
	for _, u := range valid {
		if err := ValidateURL(u); err != nil {
			t.Fatalf("expected valid, got error: %v", err)
		}
	}

	invalid := []string{"ftp://example.com", "//example.com", "http:///", "/relative/path"}
	for _, u := range invalid {
		if err := ValidateURL(u); err == nil {
			t.Fatalf("expected invalid for %s", u)
		}
	}
}

func TestResolve(t *testing.T) {
	base, _ := url.Parse("https://example.com/docs/index.html")

	tests := []struct {
		href string
		want string
	}{
		{"/about", "https://example.com/about"},
		{"page2.html", "https://example.com/docs/page2.html"},
		{"../up", "https://example.com/up"},
		{"https://other.org/x", "https://other.org/x"},
		{"//cdn.example.com/a.png", "https://cdn.example.com/a.png"},
		{"?q=1", "https://example.com/docs/index.html?q=1"},
		{"  /trimmed  ", "https://example.com/trimmed"},
	}

	for _, tt := range tests {
		t.Run(tt.href, func(t *testing.T) {
			got, ok := Resolve(base, tt.href)
			if !ok {
				t.Fatalf("Resolve(%q) failed", tt.href)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.href, got, tt.want)
			}
		})
	}
}

func TestResolve_Idempotent(t *testing.T) {
	bases := []string{
		"https://example.com",
		"https://example.com/a/b/",
		"http://example.com:8080/x?y=z",
	}
	hrefs := []string{"", "/", "c", "./c/../d", "../../e", "#frag", "?q=1", "/a/./b/../c", "http://other.net/p/../q"}

	for _, b := range bases {
		base, _ := url.Parse(b)
		for _, h := range hrefs {
			once, ok := Resolve(base, h)
			if !ok {
				t.Fatalf("Resolve(%q, %q) failed", b, h)
			}
			twice, ok := Resolve(base, once)
			if !ok {
				t.Fatalf("Resolve(%q, %q) failed", b, once)
			}
			if once != twice {
				t.Errorf("not idempotent for base %q href %q: %q then %q", b, h, once, twice)
			}
		}
	}
}

func TestResolve_Unparseable(t *testing.T) {
	base, _ := url.Parse("https://example.com")
	if _, ok := Resolve(base, "http://[::1"); ok {
		t.Error("expected unparseable href to be rejected")
	}
}

func TestSameHost(t *testing.T) {
	base, _ := url.Parse("https://example.com/start")

	tests := []struct {
		url  string
		same bool
	}{
		{"https://example.com/other", true},
		{"http://example.com/", true},
		{"https://example.com:8443/", false},
		{"https://sub.example.com/", false},
		{"https://other.org/", false},
	}

	for _, tt := range tests {
		if got := SameHost(base, tt.url); got != tt.same {
			t.Errorf("SameHost(%q) = %v, want %v", tt.url, got, tt.same)
		}
	}
}
