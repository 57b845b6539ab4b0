package model

import (
	"strings"
	"time"

	"github.com/jahidblackrose/mtb-loan-approver/internal/common"
)

// DecisionStatus is the reviewer's verdict for the session.
type DecisionStatus string

const (
	DecisionPending  DecisionStatus = "pending"
	DecisionApproved DecisionStatus = "approved"
	DecisionRejected DecisionStatus = "rejected"
)

// DecisionTimeFormat is how decided-at renders on screen.
const DecisionTimeFormat = "02 Jan 2006, 15:04"

// Action is the short wire code sent with an OTP generation request.
type Action string

const (
	ActionApprove Action = "A"
	ActionReject  Action = "R"
)

// Status returns the terminal decision status the action leads to.
func (a Action) Status() DecisionStatus {
	if a == ActionReject {
		return DecisionRejected
	}
	return DecisionApproved
}

// Label returns the verb for the action, for confirmation text.
func (a Action) Label() string {
	if a == ActionReject {
		return "Reject"
	}
	return "Approve"
}

// Decision is the reviewer's final verdict. It starts pending and moves
// exactly once to approved or rejected; afterwards the UI is read-only.
type Decision struct {
	Status    DecisionStatus
	DecidedBy string
	DecidedAt string
	Remarks   string
}

// NewDecision returns the session's initial pending decision.
func NewDecision() Decision {
	return Decision{Status: DecisionPending}
}

// Decided reports whether the decision has reached a terminal status.
func (d Decision) Decided() bool {
	return d.Status == DecisionApproved || d.Status == DecisionRejected
}

// Decide moves a pending decision to the action's terminal status. Remarks
// must be non-empty after trimming, and a decided record never changes again.
func (d *Decision) Decide(action Action, decidedBy, remarks string, at time.Time) error {
	if d.Decided() {
		return common.ErrAlreadyDecided
	}
	if strings.TrimSpace(remarks) == "" {
		return common.ErrEmptyRemarks
	}

	d.Status = action.Status()
	d.DecidedBy = decidedBy
	d.DecidedAt = at.Format(DecisionTimeFormat)
	d.Remarks = remarks
	return nil
}
