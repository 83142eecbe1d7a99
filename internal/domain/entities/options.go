package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// Options holds gateway credentials (set once per adapter) and per-call parameters
// such as order_id or 3-D secure data.
type Options map[string]any

// Require checks that every key is present, in order, and reports the first one missing.
// Only presence is checked, not the value itself.
func (o Options) Require(keys ...string) error {
	for _, k := range keys {
		if !o.Has(k) {
			return &ConfigurationError{Key: k}
		}
	}
	return nil
}

// Has reports whether key is present with a non-nil value.
func (o Options) Has(key string) bool {
	v, ok := o[key]
	return ok && v != nil
}

// HasAny reports whether at least one of the keys is present.
func (o Options) HasAny(keys ...string) bool {
	for _, k := range keys {
		if o.Has(k) {
			return true
		}
	}
	return false
}

// String returns the value of key rendered as text, or "" when absent.
func (o Options) String(key string) string {
	v, ok := o[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Bool interprets key as a flag; "1", "true", "yes", "on" and "test" are true.
func (o Options) Bool(key string) bool {
	v, ok := o[key]
	if !ok || v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	switch strings.ToLower(strings.TrimSpace(o.String(key))) {
	case "1", "true", "yes", "on", "test":
		return true
	}
	if b, err := strconv.ParseBool(o.String(key)); err == nil {
		return b
	}
	return false
}

// Merge returns a new Options with the entries of other overriding o.
func (o Options) Merge(other Options) Options {
	out := make(Options, len(o)+len(other))
	for k, v := range o {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}
