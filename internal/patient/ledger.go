package patient

// Ledger records, per step, whether an activity was suggested and what was
// performed (0 nothing, 1 short task, 2 long task). Both sequences start with
// a seed entry of 0 and always have equal length.
type Ledger struct {
	suggested []int
	performed []int

	suggestedSum int
	performedSum int
}

// NewLedger creates a ledger holding only the seed entries.
func NewLedger() *Ledger {
	return &Ledger{
		suggested: []int{0},
		performed: []int{0},
	}
}

// Record appends one step's entries.
func (l *Ledger) Record(suggested, performed int) {
	l.suggested = append(l.suggested, suggested)
	l.performed = append(l.performed, performed)
	l.suggestedSum += suggested
	l.performedSum += performed
}

// Len returns the number of entries, seed included.
func (l *Ledger) Len() int {
	return len(l.suggested)
}

// LastPerformed returns the latest performed entry.
func (l *Ledger) LastPerformed() int {
	return l.performed[len(l.performed)-1]
}

// Suggestions returns the number of prompts sent.
func (l *Ledger) Suggestions() int {
	return l.suggestedSum
}

// Confidence is the patient's self-efficacy: performed over suggested. It is
// 0 while nothing has been suggested. Long tasks count double, so it can
// exceed 1.
func (l *Ledger) Confidence() float64 {
	if l.suggestedSum == 0 {
		return 0
	}
	return float64(l.performedSum) / float64(l.suggestedSum)
}

// ProspectiveConfidence is Confidence with the prompt being resolved already
// counted as suggested.
func (l *Ledger) ProspectiveConfidence() float64 {
	return float64(l.performedSum) / float64(l.suggestedSum+1)
}

// Suggested returns a copy of the suggested entries.
func (l *Ledger) Suggested() []int {
	return append([]int(nil), l.suggested...)
}

// Performed returns a copy of the performed entries.
func (l *Ledger) Performed() []int {
	return append([]int(nil), l.performed...)
}
