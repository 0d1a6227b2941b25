package record_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/goliatone/go-outputfield/pkg/record"
)

func TestGetDistinguishesAbsentFromNull(t *testing.T) {
	rec := record.Record{
		"Amount":   42,
		"Discount": nil,
	}

	if got := rec.Get("Amount"); !got.IsPresent() || got.IsNull() || got.Raw() != 42 {
		t.Fatalf("expected present 42, got %v", got)
	}
	if got := rec.Get("Discount"); !got.IsPresent() || !got.IsNull() {
		t.Fatalf("expected present null, got %v", got)
	}
	if got := rec.Get("Missing"); got.IsPresent() {
		t.Fatalf("expected absent, got %v", got)
	}

	var empty record.Record
	if got := empty.Get("Amount"); got.IsPresent() {
		t.Fatalf("nil record should yield absent, got %v", got)
	}
}

func TestNestedPath(t *testing.T) {
	rec := record.Record{
		"Account": map[string]any{
			"Name": "Acme",
			"Owner": record.Record{
				"Name": "Jo",
			},
		},
		"Account.Owner": map[string]any{"Name": "exact"},
		"Broken":        "not a record",
		"Empty":         nil,
	}

	tests := []struct {
		name   string
		path   string
		want   string
		wantOK bool
	}{
		{name: "direct", path: "Account", want: "Acme", wantOK: true},
		{name: "exact key wins", path: "Account.Owner", want: "exact", wantOK: true},
		{name: "missing", path: "Contact", wantOK: false},
		{name: "not record shaped", path: "Broken", wantOK: false},
		{name: "null entry", path: "Empty", wantOK: false},
		{name: "empty segment", path: "Account..Owner", wantOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			nested, ok := rec.NestedPath(tc.path)
			if ok != tc.wantOK {
				t.Fatalf("ok mismatch: got %v want %v", ok, tc.wantOK)
			}
			if !ok {
				return
			}
			if got := nested.Get("Name").Raw(); got != tc.want {
				t.Fatalf("name mismatch: got %v want %q", got, tc.want)
			}
		})
	}
}

func TestNestedPathWalksDottedSegments(t *testing.T) {
	rec := record.Record{
		"Opportunity": map[string]any{
			"Account": map[string]any{"Name": "Globex"},
		},
	}

	nested, ok := rec.NestedPath("Opportunity.Account")
	if !ok {
		t.Fatalf("expected dotted path to resolve")
	}
	if got := nested.Get("Name").Raw(); got != "Globex" {
		t.Fatalf("expected Globex, got %v", got)
	}
}

func TestValueEqual(t *testing.T) {
	if !record.Absent().Equal(record.Value{}) {
		t.Fatalf("absent values should be equal")
	}
	if record.Absent().Equal(record.Present(nil)) {
		t.Fatalf("absent and null must differ")
	}
	if !record.Present(42).Equal(record.Present(42)) {
		t.Fatalf("equal scalars should compare equal")
	}
	left := record.Present(map[string]any{"Name": "Acme"})
	right := record.Present(map[string]any{"Name": "Acme"})
	if !left.Equal(right) {
		t.Fatalf("equal nested maps should compare equal")
	}
	if left.Equal(record.Present(map[string]any{"Name": "Other"})) {
		t.Fatalf("different nested maps should not compare equal")
	}
}

func TestValueEqualWithoutJSONEncoding(t *testing.T) {
	events := make(chan string)
	left := record.Present(map[string]any{"Name": "Acme", "events": events})
	right := record.Present(map[string]any{"Name": "Acme", "events": events})
	if !left.Equal(right) {
		t.Fatalf("identical values holding a channel should compare equal")
	}
	other := record.Present(map[string]any{"Name": "Acme", "events": make(chan string)})
	if left.Equal(other) {
		t.Fatalf("values holding different channels should not compare equal")
	}
}

func TestDecodeKeepsNumbers(t *testing.T) {
	rec, err := record.Decode(strings.NewReader(`{"Amount": 42, "Account": {"Name": "Acme"}}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := rec.Get("Amount").Raw(); got != json.Number("42") {
		t.Fatalf("expected json.Number 42, got %#v", got)
	}
	if _, ok := rec.Nested("Account"); !ok {
		t.Fatalf("expected nested account record")
	}
}

func TestDecodeNullAndErrors(t *testing.T) {
	rec, err := record.Parse([]byte("null"))
	if err != nil {
		t.Fatalf("parse null: %v", err)
	}
	if rec != nil {
		t.Fatalf("expected nil record for null payload, got %v", rec)
	}

	if _, err := record.Parse([]byte("  ")); err == nil {
		t.Fatalf("expected error for empty payload")
	}
	if _, err := record.Parse([]byte(`[1, 2]`)); err == nil {
		t.Fatalf("expected error for non-object payload")
	}
}
