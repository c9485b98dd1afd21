package booking

import "gearshare/internal/pkg/errs"

var ErrUnknownStatus = errs.New("unknown booking status")

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrUnknownStatus
	}
	return status, nil
}

// Decide maps an owner's verdict onto the next status. A later verdict
// overwrites an earlier one; there is no terminal-state guard.
func Decide(approve bool) Status {
	if approve {
		return StatusApproved
	}
	return StatusRejected
}
