package domain

import "strings"

// TicketStatus is the lifecycle state of a ticket.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "OPEN"
	TicketStatusInProgress TicketStatus = "IN_PROGRESS"
	TicketStatusClosed     TicketStatus = "CLOSED"
)

func (s TicketStatus) String() string { return string(s) }

func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusClosed:
		return true
	}
	return false
}

// ParseTicketStatus reports whether raw names a known status.
// Unknown values are not errors: callers skip them.
func ParseTicketStatus(raw string) (TicketStatus, bool) {
	s := TicketStatus(strings.TrimSpace(raw))
	if !s.IsValid() {
		return "", false
	}
	return s, true
}

// TicketPriority ranks how urgently a ticket should be handled.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "LOW"
	TicketPriorityMedium TicketPriority = "MEDIUM"
	TicketPriorityHigh   TicketPriority = "HIGH"
)

func (p TicketPriority) String() string { return string(p) }

func (p TicketPriority) IsValid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh:
		return true
	}
	return false
}

// ParseTicketPriority reports whether raw names a known priority.
func ParseTicketPriority(raw string) (TicketPriority, bool) {
	p := TicketPriority(strings.TrimSpace(raw))
	if !p.IsValid() {
		return "", false
	}
	return p, true
}

// AuthorType identifies who wrote a message.
type AuthorType string

const (
	AuthorTypeUser  AuthorType = "USER"
	AuthorTypeAdmin AuthorType = "ADMIN"
)

func (a AuthorType) String() string { return string(a) }

func (a AuthorType) IsValid() bool {
	switch a {
	case AuthorTypeUser, AuthorTypeAdmin:
		return true
	}
	return false
}
