package ping

import "fmt"

// Reason identifies which structural element of ping output was missing or invalid
type Reason int

const (
	ReasonEmptyInput Reason = iota + 1
	ReasonMissingHeader
	ReasonMissingPacketSummary
	ReasonMissingRTTSummary
	ReasonInconsistentCounts
)

func (r Reason) String() string {
	switch r {
	case ReasonEmptyInput:
		return "empty_input"
	case ReasonMissingHeader:
		return "missing_header"
	case ReasonMissingPacketSummary:
		return "missing_packet_summary"
	case ReasonMissingRTTSummary:
		return "missing_rtt_summary"
	case ReasonInconsistentCounts:
		return "inconsistent_counts"
	default:
		return "unknown"
	}
}

// ParseError is returned when ping output does not have the expected structure.
// Errors with the same Reason match each other under errors.Is.
type ParseError struct {
	Reason Reason
	Detail string
}

func (e *ParseError) Error() string {
	return "ping parse: " + e.Detail
}

func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Reason == e.Reason
}

var (
	ErrEmptyInput           = &ParseError{Reason: ReasonEmptyInput, Detail: "empty ping output"}
	ErrMissingHeader        = &ParseError{Reason: ReasonMissingHeader, Detail: "missing ping statistics header"}
	ErrMissingPacketSummary = &ParseError{Reason: ReasonMissingPacketSummary, Detail: "missing packets summary line"}
	ErrMissingRTTSummary    = &ParseError{Reason: ReasonMissingRTTSummary, Detail: "missing rtt stats line despite receiving replies"}
	ErrInconsistentCounts   = &ParseError{Reason: ReasonInconsistentCounts, Detail: "received count exceeds transmitted count"}
)

func newParseError(reason Reason, format string, args ...interface{}) *ParseError {
	return &ParseError{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}
