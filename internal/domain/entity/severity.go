package entity

// Severity represents the importance of a log record.
// Values are totally ordered: SeverityLow < SeverityMedium < SeverityHigh.
type Severity int

const (
	// SeverityLow for routine, informational records
	SeverityLow Severity = iota
	// SeverityMedium for records worth attention; also the default threshold
	SeverityMedium
	// SeverityHigh for records that must not be missed
	SeverityHigh
)

// DefaultSeverity is used for the threshold when none is given and for unrecognized names
const DefaultSeverity = SeverityMedium

// severityNames holds the canonical name for each severity, indexed by value
var severityNames = [...]string{
	SeverityLow:    "LOW",
	SeverityMedium: "MEDIUM",
	SeverityHigh:   "HIGH",
}

// severityAliases maps every accepted spelling to its severity
var severityAliases = map[string]Severity{
	"LOW":       SeverityLow,
	"MEDIUM":    SeverityMedium,
	"HIGH":      SeverityHigh,
	"NOTICE":    SeverityLow,
	"INFO":      SeverityLow,
	"IMPORTANT": SeverityMedium,
	"WARNING":   SeverityMedium,
	"PRIORITY":  SeverityHigh,
	"ERROR":     SeverityHigh,
}

// String returns the canonical name of the severity
func (s Severity) String() string {
	if !s.IsValid() {
		return "UNKNOWN"
	}
	return severityNames[s]
}

// IsValid reports whether s is one of the defined severities
func (s Severity) IsValid() bool {
	return s >= SeverityLow && s <= SeverityHigh
}

// Below reports whether s is strictly less severe than threshold
func (s Severity) Below(threshold Severity) bool {
	return s < threshold
}

// ParseSeverity maps text to a severity.
// Canonical names and their synonyms are matched exactly (case-sensitive);
// anything else resolves to DefaultSeverity. Parsing never fails.
func ParseSeverity(text string) Severity {
	if s, ok := severityAliases[text]; ok {
		return s
	}
	return DefaultSeverity
}

// IsSeverityToken reports whether text is exactly one of the canonical names.
// Synonyms are not tokens: a message ending in "ERROR" keeps that word.
func IsSeverityToken(text string) bool {
	for _, name := range severityNames {
		if text == name {
			return true
		}
	}
	return false
}
