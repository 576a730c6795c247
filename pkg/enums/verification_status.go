package enums

import "fmt"

// VerificationStatus tracks the review decision on an identity submission.
// The empty string means the submission is still pending.
type VerificationStatus string

const (
	VerificationStatusPending  VerificationStatus = ""
	VerificationStatusApproved VerificationStatus = "APPROVED"
	VerificationStatusRejected VerificationStatus = "REJECTED"
)

var validVerificationDecisions = []VerificationStatus{
	VerificationStatusApproved,
	VerificationStatusRejected,
}

// String returns the literal string for the status.
func (s VerificationStatus) String() string {
	return string(s)
}

// IsValid reports whether the status is a known state, pending included.
func (s VerificationStatus) IsValid() bool {
	if s == VerificationStatusPending {
		return true
	}
	for _, candidate := range validVerificationDecisions {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseVerificationDecision converts raw input into a reviewed status.
// Pending is not a decision an admin can submit.
func ParseVerificationDecision(value string) (VerificationStatus, error) {
	for _, candidate := range validVerificationDecisions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid verification decision %q", value)
}
