package returns

import (
	"procurement/internal/pkg/errs"
)

// Status is the lifecycle state of a return.
type Status int

const (
	// StatusUnknown is the zero value and never valid.
	StatusUnknown Status = iota

	// StatusPending means the return was registered but not yet decided on.
	StatusPending

	// StatusApproved means the return was accepted but no credit note was issued yet.
	StatusApproved

	// StatusCompleted means the return was settled and a credit note was issued.
	StatusCompleted

	// StatusRejected means the return was refused; no credit note is issued.
	StatusRejected
)

var statusNames = map[Status]string{
	StatusPending:   "pending",
	StatusApproved:  "approved",
	StatusCompleted: "completed",
	StatusRejected:  "rejected",
}

// String returns the wire name of the status.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// StatusFromString parses a wire name into a Status.
func StatusFromString(raw string) (Status, error) {
	for status, name := range statusNames {
		if name == raw {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("status")
}

// Validate reports whether the status is one of the defined states.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// IsTerminal reports whether the return can change no further.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRejected
}
