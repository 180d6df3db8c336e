// internal/errors/errors.go
package appErrors

import (
    "errors"
    "fmt"
)

// FailureKind classifies why the provider path was abandoned.
type FailureKind string

const (
    ConfigurationAbsent FailureKind = "configuration_absent"
    TransportFailure    FailureKind = "transport_failure"
    TimeoutExceeded     FailureKind = "timeout_exceeded"
    SchemaViolation     FailureKind = "schema_violation"
    MalformedPayload    FailureKind = "malformed_payload"
    // CallerCanceled means the caller gave up before the provider answered.
    CallerCanceled FailureKind = "caller_canceled"
)

// GenerationError carries the failure kind and the underlying cause.
// It never leaves the generator; it is recorded for observability only.
type GenerationError struct {
    Kind    FailureKind
    Cause   error
    Payload string
}

func (e *GenerationError) Error() string {
    if e.Cause == nil {
        return string(e.Kind)
    }
    return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
}

func (e *GenerationError) Unwrap() error {
    return e.Cause
}

func NewConfigurationAbsent() error {
    return &GenerationError{Kind: ConfigurationAbsent, Cause: errors.New("no provider credential configured")}
}

func NewTransportFailure(cause error) error {
    return &GenerationError{Kind: TransportFailure, Cause: cause}
}

func NewTimeoutExceeded(cause error) error {
    return &GenerationError{Kind: TimeoutExceeded, Cause: cause}
}

func NewCallerCanceled(cause error) error {
    return &GenerationError{Kind: CallerCanceled, Cause: cause}
}

func NewSchemaViolation(cause error, payload string) error {
    return &GenerationError{Kind: SchemaViolation, Cause: cause, Payload: payload}
}

func NewMalformedPayload(cause error, payload string) error {
    return &GenerationError{Kind: MalformedPayload, Cause: cause, Payload: payload}
}

// KindOf returns the failure kind of err, or "" when err is not a GenerationError.
func KindOf(err error) FailureKind {
    var ge *GenerationError
    if errors.As(err, &ge) {
        return ge.Kind
    }
    return ""
}
