// Package record models the record-shaped values bound to an output field.
// Lookups return a Value that keeps "no own entry" apart from "entry holding
// null", so callers never have to inspect map shapes themselves. Related
// records are nested maps keyed by relationship name and can be reached with
// NestedPath using either the exact key or a dotted path such as
// "Opportunity.Account".
package record
