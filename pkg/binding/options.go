package binding

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/sirupsen/logrus"
)

// ResetPolicy decides what happens to an output when its lookup misses.
type ResetPolicy int

const (
	// KeepStale leaves the previous output in place ("last known good").
	KeepStale ResetPolicy = iota
	// ClearOnMiss resets the output to absent.
	ClearOnMiss
)

func (p ResetPolicy) String() string {
	switch p {
	case KeepStale:
		return "keep"
	case ClearOnMiss:
		return "clear"
	default:
		return fmt.Sprintf("ResetPolicy(%d)", int(p))
	}
}

// ParseResetPolicy maps "keep"/"clear" (case-insensitive) to a policy. An
// empty string selects KeepStale.
func ParseResetPolicy(raw string) (ResetPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "keep", "stale":
		return KeepStale, nil
	case "clear":
		return ClearOnMiss, nil
	default:
		return KeepStale, fmt.Errorf("binding: unknown reset policy %q", raw)
	}
}

// Option customises a Binder.
type Option func(*Binder)

// WithResetPolicy selects the miss behaviour for ParentRecordName and
// FieldValue.
func WithResetPolicy(policy ResetPolicy) Option {
	return func(b *Binder) {
		b.policy = policy
	}
}

// WithLogger attaches a logger that receives Debug entries for skipped
// lookups and unknown display types. Nil, including a typed nil such as
// (*logrus.Logger)(nil), keeps the binder silent.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(b *Binder) {
		if isNilLogger(logger) {
			b.logger = nil
			return
		}
		b.logger = logger
	}
}

func isNilLogger(logger logrus.FieldLogger) bool {
	if logger == nil {
		return true
	}
	value := reflect.ValueOf(logger)
	switch value.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return value.IsNil()
	default:
		return false
	}
}
