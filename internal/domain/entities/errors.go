package entities

import (
	"errors"
	"fmt"
)

// Failure kinds surfaced by the gateway pipeline. Callers branch on them with errors.Is;
// business declines are never errors, they come back as Response{Success: false}.
var (
	ErrConfiguration    = errors.New("configuration error")
	ErrUnsupportedValue = errors.New("unsupported value")
	ErrTransport        = errors.New("transport error")
	ErrParse            = errors.New("parse error")
)

// ConfigurationError reports a required credential or per-call option that is absent.
type ConfigurationError struct {
	Key string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: missing required option %q", e.Key)
}

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// UnsupportedValueError reports a value missing from an adapter mapping table
// (currency, enrollment flag, card brand, ...).
type UnsupportedValueError struct {
	Kind  string
	Value string
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("unsupported %s: %q", e.Kind, e.Value)
}

func (e *UnsupportedValueError) Is(target error) bool { return target == ErrUnsupportedValue }

// TransportError wraps a failed round trip to a gateway.
type TransportError struct {
	Gateway string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s transport error: %v", e.Gateway, e.Err)
}

func (e *TransportError) Is(target error) bool { return target == ErrTransport }
func (e *TransportError) Unwrap() error        { return e.Err }

// ParseError reports a gateway reply that does not have the expected shape.
type ParseError struct {
	Gateway string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s parse error: %v", e.Gateway, e.Err)
}

func (e *ParseError) Is(target error) bool { return target == ErrParse }
func (e *ParseError) Unwrap() error        { return e.Err }
