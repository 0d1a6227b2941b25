// Package binding keeps an output field in step with its record. Two pure
// functions do the work: ResolveMetadata copies the display type from the
// field schema and, for reference fields, reads the related record's display
// name; SyncValue reads the bound field's current value. Both return small
// result structs and never touch shared state.
//
// State and Binder adapt those results to a host component: the host calls
// Binder.Handle with the notification it received ("record changed",
// "field metadata changed", ...) and reflects the updated State into its
// view. Lookups that miss leave previous outputs untouched unless the binder
// is built with WithResetPolicy(ClearOnMiss). Handle reports which outputs
// changed so callers can tell "not loaded yet" apart from an update.
package binding
