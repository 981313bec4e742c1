package payment

// Status is a named stage in a linear process workflow.
type Status string

// Workflow is an ordered list of stages. The only legal transitions are
// advance (to the next stage) and revert (to the previous stage); both
// payment and refund processing consume the same type so the two lists
// cannot drift apart in behavior.
type Workflow []Status

// Index returns the position of s in the workflow, or -1 if s is not a
// member.
func (w Workflow) Index(s Status) int {
	for i, stage := range w {
		if stage == s {
			return i
		}
	}
	return -1
}

// First returns the initial stage.
func (w Workflow) First() Status {
	return w[0]
}

// Last returns the terminal stage.
func (w Workflow) Last() Status {
	return w[len(w)-1]
}

// Next returns the stage after s.
func (w Workflow) Next(s Status) (Status, error) {
	i := w.Index(s)
	if i < 0 {
		return "", ErrUnknownStage
	}
	if i == len(w)-1 {
		return "", ErrAlreadyFinalStage
	}
	return w[i+1], nil
}

// Prev returns the stage before s.
func (w Workflow) Prev(s Status) (Status, error) {
	i := w.Index(s)
	if i < 0 {
		return "", ErrUnknownStage
	}
	if i == 0 {
		return "", ErrAlreadyFirstStage
	}
	return w[i-1], nil
}

// Payment processing stages. Only the non-initial stages carry a
// timestamp field on the entity.
const (
	PaymentPreparing Status = "preparing"
	PaymentConfirmed Status = "confirmed"
	PaymentRequested Status = "requested"
	PaymentPaid      Status = "paid"
)

var PaymentStages = Workflow{PaymentPreparing, PaymentConfirmed, PaymentRequested, PaymentPaid}

// Refund processing stages. Creation counts as the request itself, so the
// first stage's timestamp is stamped when the process is created.
const (
	RefundRequested Status = "requested"
	RefundApproved  Status = "approved"
	RefundCompleted Status = "completed"
)

var RefundStages = Workflow{RefundRequested, RefundApproved, RefundCompleted}
