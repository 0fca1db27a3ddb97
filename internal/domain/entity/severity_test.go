package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverity_String(t *testing.T) {
	testCases := []struct {
		name     string
		level    Severity
		expected string
	}{
		{"Low", SeverityLow, "LOW"},
		{"Medium", SeverityMedium, "MEDIUM"},
		{"High", SeverityHigh, "HIGH"},
		{"Out of range", Severity(42), "UNKNOWN"},
		{"Negative", Severity(-1), "UNKNOWN"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.level.String())
		})
	}
}

func TestSeverity_Ordering(t *testing.T) {
	assert.True(t, SeverityLow < SeverityMedium)
	assert.True(t, SeverityMedium < SeverityHigh)

	assert.True(t, SeverityLow.Below(SeverityMedium))
	assert.False(t, SeverityMedium.Below(SeverityMedium), "Equal severity is not below the threshold")
	assert.False(t, SeverityHigh.Below(SeverityLow))
}

func TestParseSeverity(t *testing.T) {
	testCases := []struct {
		input    string
		expected Severity
	}{
		{"LOW", SeverityLow},
		{"MEDIUM", SeverityMedium},
		{"HIGH", SeverityHigh},
		{"NOTICE", SeverityLow},
		{"INFO", SeverityLow},
		{"IMPORTANT", SeverityMedium},
		{"WARNING", SeverityMedium},
		{"PRIORITY", SeverityHigh},
		{"ERROR", SeverityHigh},
		{"garbage", SeverityMedium},
		{"", SeverityMedium},
		{"low", SeverityMedium},
		{" HIGH", SeverityMedium},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseSeverity(tc.input))
		})
	}
}

func TestParseSeverity_RoundTrip(t *testing.T) {
	for _, level := range []Severity{SeverityLow, SeverityMedium, SeverityHigh} {
		assert.Equal(t, level, ParseSeverity(level.String()))
		assert.True(t, level.IsValid())
	}
	assert.False(t, Severity(3).IsValid())
}

func TestIsSeverityToken(t *testing.T) {
	assert.True(t, IsSeverityToken("LOW"))
	assert.True(t, IsSeverityToken("MEDIUM"))
	assert.True(t, IsSeverityToken("HIGH"))

	assert.False(t, IsSeverityToken("ERROR"), "Synonyms are not level tokens")
	assert.False(t, IsSeverityToken("high"))
	assert.False(t, IsSeverityToken(""))
}

func TestNewLogRecord(t *testing.T) {
	record := NewLogRecord("disk almost full", SeverityHigh)

	assert.Equal(t, "disk almost full", record.Message)
	assert.Equal(t, SeverityHigh, record.Level)
	assert.False(t, record.IsEmpty())
	assert.True(t, LogRecord{}.IsEmpty())
}
