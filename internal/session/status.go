package session

import "time"

// Severity classifies an operation outcome for display.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityError
)

// Glyph returns the status line marker for the severity.
func (s Severity) Glyph() string {
	switch s {
	case SeveritySuccess:
		return "✅"
	case SeverityError:
		return "❌"
	default:
		return "ℹ️"
	}
}

const (
	statusTTL    = 3 * time.Second
	readyMessage = "Ready"
)

// Status holds the single most-recent operation outcome. A non-empty message
// expires once its age exceeds statusTTL; expiry is observed lazily on read,
// there is no background timer.
type Status struct {
	message  string
	severity Severity
	setAt    time.Time
	now      func() time.Time
}

func NewStatus() *Status {
	return &Status{now: time.Now}
}

// Set overwrites the current status and resets its age.
func (s *Status) Set(message string, severity Severity) {
	s.message = message
	s.severity = severity
	s.setAt = s.now()
}

// CurrentOrDefault returns the stored status, first reverting to the default
// ("Ready", Info) when the stored message has expired. Repeated reads within
// the same tick are idempotent.
func (s *Status) CurrentOrDefault() (string, Severity) {
	if s.message != "" && s.now().Sub(s.setAt) > statusTTL {
		s.message = ""
		s.severity = SeverityInfo
	}
	if s.message == "" {
		return readyMessage, SeverityInfo
	}
	return s.message, s.severity
}
