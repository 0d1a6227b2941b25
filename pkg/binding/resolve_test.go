package binding_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-outputfield/pkg/binding"
	"github.com/goliatone/go-outputfield/pkg/record"
)

func accountReference() binding.FieldMetadata {
	return binding.FieldMetadata{
		Name:                  "AccountId",
		DisplayType:           binding.DisplayTypeReference,
		RelationshipName:      "Account",
		RelationshipNameField: "Name",
	}
}

func TestResolveMetadata(t *testing.T) {
	tests := []struct {
		name string
		meta binding.FieldMetadata
		rec  record.Record
		want binding.MetadataResult
	}{
		{
			name: "reference resolves parent name",
			meta: accountReference(),
			rec:  record.Record{"Account": map[string]any{"Name": "Acme Corp"}},
			want: binding.MetadataResult{
				DisplayType:      binding.DisplayTypeReference,
				ParentRecordName: record.Present("Acme Corp"),
				ParentResolved:   true,
			},
		},
		{
			name: "nil record only copies display type",
			meta: accountReference(),
			rec:  nil,
			want: binding.MetadataResult{DisplayType: binding.DisplayTypeReference},
		},
		{
			name: "related record not loaded",
			meta: accountReference(),
			rec:  record.Record{"AccountId": "001"},
			want: binding.MetadataResult{DisplayType: binding.DisplayTypeReference},
		},
		{
			name: "related record null",
			meta: accountReference(),
			rec:  record.Record{"Account": nil},
			want: binding.MetadataResult{DisplayType: binding.DisplayTypeReference},
		},
		{
			name: "related record lacks name field",
			meta: accountReference(),
			rec:  record.Record{"Account": map[string]any{"Id": "001"}},
			want: binding.MetadataResult{DisplayType: binding.DisplayTypeReference},
		},
		{
			name: "present but null name is resolved",
			meta: accountReference(),
			rec:  record.Record{"Account": record.Record{"Name": nil}},
			want: binding.MetadataResult{
				DisplayType:      binding.DisplayTypeReference,
				ParentRecordName: record.Present(nil),
				ParentResolved:   true,
			},
		},
		{
			name: "dotted relationship path",
			meta: binding.FieldMetadata{
				DisplayType:           binding.DisplayTypeReference,
				RelationshipName:      "Opportunity.Account",
				RelationshipNameField: "Name",
			},
			rec: record.Record{
				"Opportunity": map[string]any{
					"Account": map[string]any{"Name": "Globex"},
				},
			},
			want: binding.MetadataResult{
				DisplayType:      binding.DisplayTypeReference,
				ParentRecordName: record.Present("Globex"),
				ParentResolved:   true,
			},
		},
		{
			name: "non reference field",
			meta: binding.FieldMetadata{DisplayType: binding.DisplayTypeCurrency},
			rec:  record.Record{"Amount": 42},
			want: binding.MetadataResult{DisplayType: binding.DisplayTypeCurrency},
		},
		{
			name: "unknown display type passes through",
			meta: binding.FieldMetadata{DisplayType: "geolocation"},
			rec:  record.Record{},
			want: binding.MetadataResult{DisplayType: "geolocation"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := binding.ResolveMetadata(tc.meta, tc.rec)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("result mismatch (-want +got):\n%s", diff)
			}
			if got.DisplayType != tc.meta.DisplayType {
				t.Fatalf("display type must mirror metadata: got %q want %q", got.DisplayType, tc.meta.DisplayType)
			}
		})
	}
}

func TestSyncValue(t *testing.T) {
	tests := []struct {
		name      string
		rec       record.Record
		fieldName string
		want      binding.ValueResult
	}{
		{
			name:      "present value",
			rec:       record.Record{"Amount": 42},
			fieldName: "Amount",
			want:      binding.ValueResult{FieldValue: record.Present(42), Updated: true},
		},
		{
			name:      "present null",
			rec:       record.Record{"Amount": nil},
			fieldName: "Amount",
			want:      binding.ValueResult{FieldValue: record.Present(nil), Updated: true},
		},
		{
			name:      "nil record",
			rec:       nil,
			fieldName: "Amount",
			want:      binding.ValueResult{},
		},
		{
			name:      "missing key",
			rec:       record.Record{"Name": "Deal"},
			fieldName: "Amount",
			want:      binding.ValueResult{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := binding.SyncValue(tc.rec, tc.fieldName)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveAndSyncAreIdempotent(t *testing.T) {
	meta := accountReference()
	rec := record.Record{
		"AccountId": "001",
		"Account":   map[string]any{"Name": "Acme"},
	}

	first := binding.ResolveMetadata(meta, rec)
	second := binding.ResolveMetadata(meta, rec)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("resolve not idempotent (-first +second):\n%s", diff)
	}

	firstValue := binding.SyncValue(rec, "AccountId")
	secondValue := binding.SyncValue(rec, "AccountId")
	if diff := cmp.Diff(firstValue, secondValue); diff != "" {
		t.Fatalf("sync not idempotent (-first +second):\n%s", diff)
	}
}

func TestNormalizeDisplayType(t *testing.T) {
	if got := binding.NormalizeDisplayType("  REFERENCE "); got != binding.DisplayTypeReference {
		t.Fatalf("expected reference, got %q", got)
	}
	if !binding.DisplayTypeCurrency.Known() {
		t.Fatalf("currency should be a known display type")
	}
	if binding.NormalizeDisplayType("geolocation").Known() {
		t.Fatalf("geolocation should not be a known display type")
	}
}
