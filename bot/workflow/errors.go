package workflow

// Rejection reasons. They never reach the user directly, only pick the
// re-prompt text and feed the step statistics.
const (
	ReasonBadDate        = "bad-date-format"
	ReasonOutOfRange     = "out-of-range"
	ReasonNotInChoiceSet = "not-in-choice-set"
	ReasonEmptyText      = "empty-text"
	ReasonTooLong        = "too-long"
	ReasonBadPhone       = "bad-phone"
)

// ValidationError describes why an answer was rejected. Key names the
// localized message shown when re-prompting.
type ValidationError struct {
	Reason string
	Key    string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func Invalid(reason, key string) *ValidationError {
	return &ValidationError{Reason: reason, Key: key}
}
