package binding

import (
	"strings"

	"github.com/goliatone/go-outputfield/pkg/record"
)

// DisplayType is the presentation kind reported by the field schema.
type DisplayType string

const (
	DisplayTypeString        DisplayType = "string"
	DisplayTypeTextArea      DisplayType = "textarea"
	DisplayTypeReference     DisplayType = "reference"
	DisplayTypeDate          DisplayType = "date"
	DisplayTypeDateTime      DisplayType = "datetime"
	DisplayTypeTime          DisplayType = "time"
	DisplayTypeInteger       DisplayType = "integer"
	DisplayTypeDouble        DisplayType = "double"
	DisplayTypeCurrency      DisplayType = "currency"
	DisplayTypePercent       DisplayType = "percent"
	DisplayTypeBoolean       DisplayType = "boolean"
	DisplayTypePicklist      DisplayType = "picklist"
	DisplayTypeMultiPicklist DisplayType = "multipicklist"
	DisplayTypeEmail         DisplayType = "email"
	DisplayTypePhone         DisplayType = "phone"
	DisplayTypeURL           DisplayType = "url"
	DisplayTypeID            DisplayType = "id"
)

var knownDisplayTypes = map[DisplayType]struct{}{
	DisplayTypeString:        {},
	DisplayTypeTextArea:      {},
	DisplayTypeReference:     {},
	DisplayTypeDate:          {},
	DisplayTypeDateTime:      {},
	DisplayTypeTime:          {},
	DisplayTypeInteger:       {},
	DisplayTypeDouble:        {},
	DisplayTypeCurrency:      {},
	DisplayTypePercent:       {},
	DisplayTypeBoolean:       {},
	DisplayTypePicklist:      {},
	DisplayTypeMultiPicklist: {},
	DisplayTypeEmail:         {},
	DisplayTypePhone:         {},
	DisplayTypeURL:           {},
	DisplayTypeID:            {},
}

// Known reports whether t is one of the built-in display types.
func (t DisplayType) Known() bool {
	_, ok := knownDisplayTypes[t]
	return ok
}

// NormalizeDisplayType lower-cases and trims a raw display type. Unknown
// values are preserved so custom host types still flow through.
func NormalizeDisplayType(raw string) DisplayType {
	return DisplayType(strings.ToLower(strings.TrimSpace(raw)))
}

// FieldMetadata describes one record field. RelationshipName and
// RelationshipNameField are empty for fields that are not references.
type FieldMetadata struct {
	Name                  string      `json:"name,omitempty" yaml:"name,omitempty"`
	Label                 string      `json:"label,omitempty" yaml:"label,omitempty"`
	DisplayType           DisplayType `json:"displayType" yaml:"displayType"`
	RelationshipName      string      `json:"relationshipName,omitempty" yaml:"relationshipName,omitempty"`
	RelationshipNameField string      `json:"relationshipNameField,omitempty" yaml:"relationshipNameField,omitempty"`
}

// IsReference reports whether the metadata carries a relationship linkage.
func (m FieldMetadata) IsReference() bool {
	return m.RelationshipName != "" && m.RelationshipNameField != ""
}

// MetadataResult carries the presentation attributes derived from metadata
// and the current record. ParentResolved is false when the related record or
// its name entry was not available.
type MetadataResult struct {
	DisplayType      DisplayType  `json:"displayType"`
	ParentRecordName record.Value `json:"parentRecordName"`
	ParentResolved   bool         `json:"parentResolved"`
}

// ValueResult carries the bound field value. Updated is false when the record
// was nil or held no entry for the field.
type ValueResult struct {
	FieldValue record.Value `json:"fieldValue"`
	Updated    bool         `json:"updated"`
}
