// Package diag is the shared diagnostic-reporting channel for non-fatal
// runtime conditions. Backend failures never propagate as errors out of the
// hardware layer; they are reported here and the caller continues with a
// documented degraded value.
package diag

import "log/slog"

// Kind classifies a reported diagnostic.
type Kind int

const (
	// KindPolicyMismatch: configuration requests a mechanism the backend
	// cannot honor; processing continues unaffected.
	KindPolicyMismatch Kind = iota
	// KindEnumerationFailure: device-count query failed; the backend
	// degrades to zero devices.
	KindEnumerationFailure
	// KindPropertyQueryFailure: per-device property fetch failed; the
	// device keeps a zeroed snapshot.
	KindPropertyQueryFailure
	// KindDriverQueryFailure: driver-version fetch failed.
	KindDriverQueryFailure
	// KindInvalidIndex: caller requested a device index at or beyond the
	// enumerated count.
	KindInvalidIndex
)

func (k Kind) String() string {
	switch k {
	case KindPolicyMismatch:
		return "policy_mismatch"
	case KindEnumerationFailure:
		return "enumeration_failure"
	case KindPropertyQueryFailure:
		return "property_query_failure"
	case KindDriverQueryFailure:
		return "driver_query_failure"
	case KindInvalidIndex:
		return "invalid_index"
	default:
		return "unknown"
	}
}

// Report is one non-fatal diagnostic.
type Report struct {
	Kind    Kind
	Origin  string // component that reported, e.g. "hardware.Manager"
	Message string
	Code    int  // raw backend status code, 0 when not applicable
	HasCode bool // distinguishes code 0 from "no code attached"
}

// Reporter consumes diagnostics. Implementations must be safe for
// concurrent use.
type Reporter interface {
	Report(r Report)
}

// LogReporter routes diagnostics to the default slog logger.
type LogReporter struct{}

// NewLogReporter returns the slog-backed reporter used in production.
func NewLogReporter() *LogReporter {
	return &LogReporter{}
}

func (l *LogReporter) Report(r Report) {
	observeReport(r)
	if r.HasCode {
		slog.Warn(r.Message, "origin", r.Origin, "kind", r.Kind.String(), "code", r.Code)
		return
	}
	slog.Warn(r.Message, "origin", r.Origin, "kind", r.Kind.String())
}

// Warn reports a diagnostic with no backend status code attached.
func Warn(rep Reporter, kind Kind, origin, message string) {
	rep.Report(Report{Kind: kind, Origin: origin, Message: message})
}

// WarnCode reports a diagnostic carrying a raw backend status code.
func WarnCode(rep Reporter, kind Kind, origin, message string, code int) {
	rep.Report(Report{Kind: kind, Origin: origin, Message: message, Code: code, HasCode: true})
}
