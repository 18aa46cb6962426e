package headers

import (
	"net/http"
	"reflect"
	"testing"
)

func TestParseHeaders(t *testing.T) {
	in := []string{"user-agent: Bot", "Accept: text/html", "X-Token: a:b"}
	out, err := ParseHeaders(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := map[string]string{"User-Agent": "Bot", "Accept": "text/html", "X-Token": "a:b"}
	if !reflect.DeepEqual(out, expected) {
		t.Fatalf("unexpected parse result: %#v", out)
	}
}

func TestParseHeaders_Malformed(t *testing.T) {
	for _, bad := range []string{"BadHeader", ": novalue"} {
		if _, err := ParseHeaders([]string{bad}); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestApply(t *testing.T) {
	h := http.Header{}
	h.Set("Accept", "*/*")
	Apply(h, map[string]string{"Accept": "text/html", "X-Custom": "1"})
	if h.Get("Accept") != "text/html" || h.Get("X-Custom") != "1" {
		t.Fatalf("unexpected headers: %v", h)
	}
}
