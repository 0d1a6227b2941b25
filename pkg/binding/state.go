package binding

import "github.com/goliatone/go-outputfield/pkg/record"

// State is the component state owned by the host adapter. The first three
// fields are inputs; the rest are outputs the host reflects into its view.
// Absent output Values mean "never set".
type State struct {
	FieldMetadata FieldMetadata `json:"fieldMetadata"`
	Record        record.Record `json:"record"`
	FieldName     string        `json:"fieldName"`

	DisplayType      DisplayType  `json:"displayType"`
	ParentRecordName record.Value `json:"parentRecordName"`
	FieldValue       record.Value `json:"fieldValue"`
}

// Changes reports which outputs a merge touched.
type Changes struct {
	DisplayTypeChanged      bool `json:"displayTypeChanged"`
	ParentRecordNameUpdated bool `json:"parentRecordNameUpdated"`
	ParentRecordNameCleared bool `json:"parentRecordNameCleared"`
	FieldValueUpdated       bool `json:"fieldValueUpdated"`
	FieldValueCleared       bool `json:"fieldValueCleared"`
}

// Any reports whether at least one output changed.
func (c Changes) Any() bool {
	return c.DisplayTypeChanged ||
		c.ParentRecordNameUpdated || c.ParentRecordNameCleared ||
		c.FieldValueUpdated || c.FieldValueCleared
}

func (c Changes) merge(other Changes) Changes {
	return Changes{
		DisplayTypeChanged:      c.DisplayTypeChanged || other.DisplayTypeChanged,
		ParentRecordNameUpdated: c.ParentRecordNameUpdated || other.ParentRecordNameUpdated,
		ParentRecordNameCleared: c.ParentRecordNameCleared || other.ParentRecordNameCleared,
		FieldValueUpdated:       c.FieldValueUpdated || other.FieldValueUpdated,
		FieldValueCleared:       c.FieldValueCleared || other.FieldValueCleared,
	}
}

// ApplyMetadata merges a MetadataResult into the state. DisplayType is always
// written. ParentRecordName is written when resolved; on a miss it is kept
// under KeepStale and reset to absent under ClearOnMiss. Update flags are set
// only when the stored value actually differs.
func (s *State) ApplyMetadata(result MetadataResult, policy ResetPolicy) Changes {
	var changes Changes
	if s == nil {
		return changes
	}

	if s.DisplayType != result.DisplayType {
		changes.DisplayTypeChanged = true
	}
	s.DisplayType = result.DisplayType

	switch {
	case result.ParentResolved:
		if !s.ParentRecordName.Equal(result.ParentRecordName) {
			changes.ParentRecordNameUpdated = true
		}
		s.ParentRecordName = result.ParentRecordName
	case policy == ClearOnMiss && s.ParentRecordName.IsPresent():
		s.ParentRecordName = record.Absent()
		changes.ParentRecordNameCleared = true
	}

	return changes
}

// ApplyValue merges a ValueResult into the state using the same rules as
// ApplyMetadata.
func (s *State) ApplyValue(result ValueResult, policy ResetPolicy) Changes {
	var changes Changes
	if s == nil {
		return changes
	}

	switch {
	case result.Updated:
		if !s.FieldValue.Equal(result.FieldValue) {
			changes.FieldValueUpdated = true
		}
		s.FieldValue = result.FieldValue
	case policy == ClearOnMiss && s.FieldValue.IsPresent():
		s.FieldValue = record.Absent()
		changes.FieldValueCleared = true
	}

	return changes
}
