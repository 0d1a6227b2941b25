package binding

import (
	"github.com/sirupsen/logrus"
)

// Event identifies the host notification that triggered a binder run.
type Event string

const (
	EventInit                 Event = "init"
	EventFieldMetadataChanged Event = "fieldMetadataChanged"
	EventRecordChanged        Event = "recordChanged"
	EventFieldNameChanged     Event = "fieldNameChanged"
)

// Outcome summarises a Handle call. Handled is false for unknown events.
type Outcome struct {
	Event   Event `json:"event"`
	Handled bool  `json:"handled"`
	Changes
}

// Binder runs the metadata and value handlers against host-owned state. It
// holds only configuration, so a single Binder can serve many components.
type Binder struct {
	policy ResetPolicy
	logger logrus.FieldLogger
}

// New constructs a Binder. Without options it keeps stale outputs on a miss
// and does not log.
func New(opts ...Option) *Binder {
	b := &Binder{policy: KeepStale}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// Policy returns the configured reset policy.
func (b *Binder) Policy() ResetPolicy {
	if b == nil {
		return KeepStale
	}
	return b.policy
}

// Handle dispatches a host event. Record changes refresh both the metadata
// attributes and the bound value.
func (b *Binder) Handle(state *State, event Event) Outcome {
	outcome := Outcome{Event: event}

	switch event {
	case EventInit, EventFieldMetadataChanged:
		outcome.Changes = b.resolve(state, event)
	case EventRecordChanged:
		outcome.Changes = b.resolve(state, event).merge(b.synchronize(state, event))
	case EventFieldNameChanged:
		outcome.Changes = b.synchronize(state, event)
	default:
		b.debug(logrus.Fields{"event": string(event)}, "binding: ignoring unknown event")
		return outcome
	}

	outcome.Handled = true
	return outcome
}

// Resolve runs the metadata handler on its own.
func (b *Binder) Resolve(state *State) Outcome {
	return Outcome{
		Event:   EventFieldMetadataChanged,
		Handled: true,
		Changes: b.resolve(state, EventFieldMetadataChanged),
	}
}

// Synchronize runs the value handler on its own.
func (b *Binder) Synchronize(state *State) Outcome {
	return Outcome{
		Event:   EventFieldNameChanged,
		Handled: true,
		Changes: b.synchronize(state, EventFieldNameChanged),
	}
}

func (b *Binder) resolve(state *State, event Event) Changes {
	if state == nil {
		return Changes{}
	}

	meta := state.FieldMetadata
	result := ResolveMetadata(meta, state.Record)
	if !meta.DisplayType.Known() {
		b.debug(logrus.Fields{
			"event":       string(event),
			"field":       state.FieldName,
			"displayType": string(meta.DisplayType),
		}, "binding: unknown display type")
	}
	if meta.IsReference() && !result.ParentResolved {
		b.debug(logrus.Fields{
			"event":        string(event),
			"field":        state.FieldName,
			"relationship": meta.RelationshipName,
			"nameField":    meta.RelationshipNameField,
			"recordLoaded": state.Record != nil,
		}, "binding: parent record name not available")
	}
	return state.ApplyMetadata(result, b.Policy())
}

func (b *Binder) synchronize(state *State, event Event) Changes {
	if state == nil {
		return Changes{}
	}

	result := SyncValue(state.Record, state.FieldName)
	if !result.Updated {
		b.debug(logrus.Fields{
			"event":        string(event),
			"field":        state.FieldName,
			"recordLoaded": state.Record != nil,
		}, "binding: field value not available")
	}
	return state.ApplyValue(result, b.Policy())
}

func (b *Binder) debug(fields logrus.Fields, msg string) {
	if b == nil || b.logger == nil {
		return
	}
	b.logger.WithFields(fields).Debug(msg)
}
