package binding

import "github.com/goliatone/go-outputfield/pkg/record"

// ResolveMetadata derives the display type and, for reference fields, the
// parent record name. The display type is always copied from meta. The parent
// name is resolved only when rec holds a non-null related record under
// RelationshipName that has an own RelationshipNameField entry.
func ResolveMetadata(meta FieldMetadata, rec record.Record) MetadataResult {
	result := MetadataResult{DisplayType: meta.DisplayType}

	if rec == nil || !meta.IsReference() {
		return result
	}

	parent, ok := rec.NestedPath(meta.RelationshipName)
	if !ok {
		return result
	}

	name := parent.Get(meta.RelationshipNameField)
	if !name.IsPresent() {
		return result
	}

	result.ParentRecordName = name
	result.ParentResolved = true
	return result
}

// SyncValue reads the bound field from rec. A present-but-null entry is
// propagated as null; a nil record or missing entry yields no update.
func SyncValue(rec record.Record, fieldName string) ValueResult {
	if rec == nil {
		return ValueResult{}
	}

	value := rec.Get(fieldName)
	if !value.IsPresent() {
		return ValueResult{}
	}
	return ValueResult{FieldValue: value, Updated: true}
}
