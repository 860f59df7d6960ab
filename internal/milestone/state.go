// Package milestone mirrors the lifecycle the crowdfunding contract enforces
// for each milestone, so that illegal actions are refused before anything is
// signed.
package milestone

import (
	"errors"
	"fmt"
)

var ErrInvalidTransition error = errors.New("invalid milestone transition")

type Status string

const (
	StatusPending           Status = "pending"
	StatusEvidenceSubmitted Status = "evidence_submitted"
	StatusVerified          Status = "verified"
	StatusRejected          Status = "rejected"
)

func ParseStatus(s string) (Status, error) {
	switch status := Status(s); status {
	case StatusPending, StatusEvidenceSubmitted, StatusVerified, StatusRejected:
		return status, nil
	}
	return "", fmt.Errorf("unknown milestone status %q", s)
}

type Event string

const (
	EventEvidenceAccepted Event = "evidence_accepted"
	EventApproved         Event = "approved"
	EventRejected         Event = "rejected"
)

// Verdict returns the event a confirmed verification decision produces.
func Verdict(approved bool) Event {
	if approved {
		return EventApproved
	}
	return EventRejected
}

var transitions = map[Status]map[Event]Status{
	StatusPending: {
		EventEvidenceAccepted: StatusEvidenceSubmitted,
	},
	StatusEvidenceSubmitted: {
		EventApproved: StatusVerified,
		EventRejected: StatusRejected,
	},
}

// Transition returns the status reached from `from` on event e.
func Transition(from Status, e Event) (Status, error) {
	to, ok := transitions[from][e]
	if !ok {
		return from, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, e, from)
	}
	return to, nil
}

// CanSubmitEvidence reports whether evidence may be submitted for a milestone in status s.
func CanSubmitEvidence(s Status) error {
	if _, err := Transition(s, EventEvidenceAccepted); err != nil {
		return fmt.Errorf("submit evidence: milestone is %s, expected %s: %w", s, StatusPending, ErrInvalidTransition)
	}
	return nil
}

// CanVerify reports whether a verification decision may be made on a milestone in status s.
func CanVerify(s Status) error {
	if _, err := Transition(s, EventApproved); err != nil {
		return fmt.Errorf("verify: milestone is %s, expected %s: %w", s, StatusEvidenceSubmitted, ErrInvalidTransition)
	}
	return nil
}
