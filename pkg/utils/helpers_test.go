package utils

import (
	"strings"
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"+91 98765-43210": "919876543210",
		"98765 43210":     "9876543210",
		"":                "",
		"n/a":             "",
	}
	for in, want := range cases {
		if got := NormalizePhone(in); got != want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestReplaceQueryParams(t *testing.T) {
	query, args := ReplaceQueryParams("UPDATE shops SET name = :name WHERE id = :id", map[string]interface{}{
		"name": "Sharma Store",
		"id":   "s1",
	})

	if len(args) != 2 {
		t.Fatalf("got %d args, want 2", len(args))
	}
	for _, placeholder := range []string{":name", ":id"} {
		if strings.Contains(query, placeholder) {
			t.Errorf("placeholder %s left in query %q", placeholder, query)
		}
	}
}

func TestCompactSQL(t *testing.T) {
	got := CompactSQL("\n\tSELECT *\n\tFROM shops\n")
	if got != "SELECT * FROM shops" {
		t.Errorf("CompactSQL = %q", got)
	}
}
