package enums

// SubmissionState tracks an order submission through its lifecycle. Every
// submission that passes validation reaches Confirmed; notification outcome
// never blocks the transition.
type SubmissionState string

const (
	SubmissionStateIdle       SubmissionState = "idle"
	SubmissionStateValidating SubmissionState = "validating"
	SubmissionStateSubmitting SubmissionState = "submitting"
	SubmissionStateConfirmed  SubmissionState = "confirmed"
)

var submissionTransitions = map[SubmissionState][]SubmissionState{
	SubmissionStateIdle:       {SubmissionStateValidating},
	SubmissionStateValidating: {SubmissionStateIdle, SubmissionStateSubmitting},
	SubmissionStateSubmitting: {SubmissionStateConfirmed},
	SubmissionStateConfirmed:  {SubmissionStateIdle},
}

// String implements fmt.Stringer.
func (s SubmissionState) String() string {
	return string(s)
}

// CanTransition reports whether moving to next is a legal lifecycle step.
func (s SubmissionState) CanTransition(next SubmissionState) bool {
	for _, candidate := range submissionTransitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}
