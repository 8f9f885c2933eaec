package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewErrorEnvelope(t *testing.T) {
	envelope := NewErrorEnvelope(CodeDomain, "This is a test error")

	assert.Equal(t, CodeDomain, envelope.Code)
	assert.Equal(t, "This is a test error", envelope.Message)
	assert.NotEmpty(t, envelope.Timestamp)
	assert.NotEmpty(t, envelope.CorrelationID)

	_, err := time.Parse(time.RFC3339, envelope.Timestamp)
	assert.NoError(t, err)
}

func TestErrorEnvelopeWithSeverity(t *testing.T) {
	envelope := NewErrorEnvelope(CodeIO, "test").WithSeverity(SeverityHigh)
	assert.Equal(t, SeverityHigh, envelope.Severity)
}

func TestErrorEnvelopeWithSeverity_InvalidDefaultsToInfo(t *testing.T) {
	envelope := NewErrorEnvelope(CodeIO, "test").WithSeverity(Severity("bogus"))
	assert.Equal(t, SeverityInfo, envelope.Severity)
}

func TestErrorEnvelopeWithExitCode(t *testing.T) {
	envelope := NewErrorEnvelope(CodeIO, "test").WithExitCode(42)
	require.NotNil(t, envelope.ExitCode)
	assert.Equal(t, 42, *envelope.ExitCode)
}

func TestErrorEnvelopeWithContext(t *testing.T) {
	context := map[string]interface{}{"component": "kernel", "candidate_index": 3}
	envelope := NewErrorEnvelope(CodeDomain, "test").WithContext(context)
	assert.Equal(t, context, envelope.Context)
}

func TestErrorEnvelopeWithOriginal(t *testing.T) {
	original := assert.AnError
	envelope := NewErrorEnvelope(CodeIO, "test").WithOriginal(original)
	assert.Equal(t, original.Error(), envelope.Original)
}

func TestErrorEnvelopeError(t *testing.T) {
	envelope := NewErrorEnvelope(CodeDomain, "bad candidate").WithSeverity(SeverityCritical)
	expected := fmt.Sprintf("[%s] critical: bad candidate", CodeDomain)
	assert.Equal(t, expected, envelope.Error())
}

func TestErrorEnvelopeErrorWithNoSeverity(t *testing.T) {
	envelope := NewErrorEnvelope(CodeDomain, "test message")
	expected := fmt.Sprintf("[%s] info: test message", CodeDomain)
	assert.Equal(t, expected, envelope.Error())
}

func TestErrorEnvelopeJSONSerialization(t *testing.T) {
	envelope := NewErrorEnvelope(CodeResource, "test message").
		WithSeverity(SeverityHigh).
		WithContext(map[string]interface{}{"key": "value"})

	data, err := json.Marshal(envelope)
	require.NoError(t, err)

	var unmarshaled ErrorEnvelope
	require.NoError(t, json.Unmarshal(data, &unmarshaled))

	assert.Equal(t, envelope.Code, unmarshaled.Code)
	assert.Equal(t, envelope.Message, unmarshaled.Message)
	assert.Equal(t, envelope.Severity, unmarshaled.Severity)
	assert.Equal(t, envelope.CorrelationID, unmarshaled.CorrelationID)
	assert.Equal(t, envelope.Context, unmarshaled.Context)
}

func TestGenerateCorrelationID(t *testing.T) {
	id1 := GenerateCorrelationID()
	id2 := GenerateCorrelationID()

	assert.NotEmpty(t, id1)
	assert.NotEqual(t, id1, id2)
	assert.Len(t, id1, 36)
}

func TestSeverityLevelMapping(t *testing.T) {
	tests := []struct {
		severity Severity
		level    int
	}{
		{SeverityInfo, 0},
		{SeverityLow, 1},
		{SeverityMedium, 2},
		{SeverityHigh, 3},
		{SeverityCritical, 4},
	}

	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			assert.Equal(t, tt.level, SeverityLevel[tt.severity])
		})
	}
}

func TestBackwardCompatibleWithStandardErrors(t *testing.T) {
	stdErr := errors.New("standard error")
	wrapped := fmt.Errorf("wrapped: %w", stdErr)
	assert.ErrorIs(t, wrapped, stdErr)

	envelope := NewErrorEnvelope(CodeIO, "io failure").WithOriginal(wrapped)
	assert.Equal(t, wrapped.Error(), envelope.Original)
}
