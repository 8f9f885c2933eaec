// Package errors provides the structured error envelope used at package
// boundaries: domain errors surfaced by the kernel and I/O failures from the
// link driver and the CLI's input reader are wrapped into an ErrorEnvelope
// before they reach the CLI. Configuration loading returns plain errors.
package errors

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/foundrylink/namelink/telemetry"
)

// Severity classifies how serious an error envelope is.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// SeverityLevel maps severity names to numeric levels for comparisons.
var SeverityLevel = map[Severity]int{
	SeverityInfo:     0,
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

// Error codes an envelope can carry. The link package and the CLI raise
// CodeDomain and CodeIO; nothing in this module raises CodeResource.
const (
	CodeDomain   = "DOMAIN_ERROR"
	CodeIO       = "IO_ERROR"
	CodeResource = "RESOURCE_ERROR"
)

// ErrorEnvelope is the structured error carried across package boundaries
// and surfaced by the CLI.
type ErrorEnvelope struct {
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Timestamp string                 `json:"timestamp"`
	Severity  Severity               `json:"severity,omitempty"`
	ExitCode  *int                   `json:"exit_code,omitempty"`

	CorrelationID string                 `json:"correlation_id,omitempty"`
	Context       map[string]interface{} `json:"context,omitempty"`
	Original      interface{}            `json:"original,omitempty"`
}

// NewErrorEnvelope creates a new error envelope with required fields and
// records the wrap in the process-wide telemetry counters, regardless of
// which error code it carries.
func NewErrorEnvelope(code, message string) *ErrorEnvelope {
	telemetry.Global.IncErrorEnvelopesTotal()
	return &ErrorEnvelope{
		Code:          code,
		Message:       message,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		CorrelationID: GenerateCorrelationID(),
	}
}

// WithSeverity attaches a severity level. An unrecognised severity is
// coerced to SeverityInfo.
func (e *ErrorEnvelope) WithSeverity(severity Severity) *ErrorEnvelope {
	if _, ok := SeverityLevel[severity]; !ok {
		severity = SeverityInfo
	}
	e.Severity = severity
	return e
}

// WithExitCode attaches the process exit code this error should produce.
func (e *ErrorEnvelope) WithExitCode(code int) *ErrorEnvelope {
	e.ExitCode = &code
	return e
}

// WithContext attaches structured diagnostic context.
func (e *ErrorEnvelope) WithContext(context map[string]interface{}) *ErrorEnvelope {
	e.Context = context
	return e
}

// WithOriginal attaches the wrapped error's message.
func (e *ErrorEnvelope) WithOriginal(original error) *ErrorEnvelope {
	if original != nil {
		e.Original = original.Error()
	}
	return e
}

// Error implements the error interface.
func (e *ErrorEnvelope) Error() string {
	severity := e.Severity
	if severity == "" {
		severity = SeverityInfo
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, severity, e.Message)
}

// MarshalJSON ensures the envelope serialises as a plain object rather than
// recursing through the Error method.
func (e *ErrorEnvelope) MarshalJSON() ([]byte, error) {
	type Alias ErrorEnvelope
	return json.Marshal((*Alias)(e))
}

// GenerateCorrelationID creates a new UUID for correlating an error across
// logs and output.
func GenerateCorrelationID() string {
	return uuid.New().String()
}
