package diag

// Severity orders diagnostics from least to most serious.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	// SevError marks a file as unreadable; such files are never linted.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	}
	return "unknown"
}

// SarifLevel maps the severity onto the SARIF result level vocabulary.
func (s Severity) SarifLevel() string {
	switch s {
	case SevInfo:
		return "note"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	}
	return "none"
}
