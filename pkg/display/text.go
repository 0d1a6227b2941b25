package display

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-outputfield/pkg/binding"
	"github.com/goliatone/go-outputfield/pkg/record"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// Text renders v as plain text for a presentation slot of type t. Absent and
// null values render as an empty string. The result is safe to embed in
// markup: tags are stripped and special characters escaped.
func Text(v record.Value, t binding.DisplayType) string {
	if !v.IsPresent() || v.IsNull() {
		return ""
	}
	return Sanitize(format(v.Raw(), t))
}

// Sanitize strips markup from s using a strict policy and escapes what is
// left, so "Ben & Jerry" becomes "Ben &amp; Jerry".
func Sanitize(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(sanitizer().Sanitize(trimmed))
}

func sanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

func format(raw any, t binding.DisplayType) string {
	switch t {
	case binding.DisplayTypePercent:
		if number, ok := numberText(raw); ok {
			return number + "%"
		}
	case binding.DisplayTypeCurrency, binding.DisplayTypeDouble, binding.DisplayTypeInteger:
		if number, ok := numberText(raw); ok {
			return number
		}
	case binding.DisplayTypeMultiPicklist:
		if str, ok := raw.(string); ok {
			return joinPicklist(strings.Split(str, ";"))
		}
		if values, ok := raw.([]any); ok {
			parts := make([]string, 0, len(values))
			for _, value := range values {
				parts = append(parts, fmt.Sprint(value))
			}
			return joinPicklist(parts)
		}
	}
	return formatScalar(raw)
}

func formatScalar(raw any) string {
	switch value := raw.(type) {
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case json.Number:
		return value.String()
	case float64:
		return formatNumber(value)
	case float32:
		return formatNumber(float64(value))
	case map[string]any, record.Record, []any:
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprint(value)
		}
		return string(encoded)
	default:
		return fmt.Sprint(value)
	}
}

func formatNumber(value float64) string {
	if math.Trunc(value) == value && math.Abs(value) < 1e15 {
		return strconv.FormatFloat(value, 'f', 0, 64)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// numberText formats integers and decimal literals without a float64 round
// trip so values above 2^53 keep every digit. Only real floats and exponent
// notation go through formatNumber.
func numberText(raw any) (string, bool) {
	switch value := raw.(type) {
	case int:
		return strconv.FormatInt(int64(value), 10), true
	case int8:
		return strconv.FormatInt(int64(value), 10), true
	case int16:
		return strconv.FormatInt(int64(value), 10), true
	case int32:
		return strconv.FormatInt(int64(value), 10), true
	case int64:
		return strconv.FormatInt(value, 10), true
	case uint:
		return strconv.FormatUint(uint64(value), 10), true
	case uint8:
		return strconv.FormatUint(uint64(value), 10), true
	case uint16:
		return strconv.FormatUint(uint64(value), 10), true
	case uint32:
		return strconv.FormatUint(uint64(value), 10), true
	case uint64:
		return strconv.FormatUint(value, 10), true
	case float32:
		return formatNumber(float64(value)), true
	case float64:
		return formatNumber(value), true
	case json.Number:
		return decimalText(value.String())
	case string:
		return decimalText(strings.TrimSpace(value))
	default:
		return "", false
	}
}

var plainDecimal = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

func decimalText(literal string) (string, bool) {
	if literal == "" {
		return "", false
	}
	if n, err := strconv.ParseInt(literal, 10, 64); err == nil {
		return strconv.FormatInt(n, 10), true
	}
	if plainDecimal.MatchString(literal) {
		return literal, true
	}
	parsed, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return "", false
	}
	return formatNumber(parsed), true
}

func joinPicklist(values []string) string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return strings.Join(out, ", ")
}
