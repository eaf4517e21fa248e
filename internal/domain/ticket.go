package domain

import "time"

// Ticket is a reported IT issue. Text fields hold sanitized values.
type Ticket struct {
	ID            int64
	RequesterName string
	Machine       string
	Department    string
	Description   string
	Contact       *string
	Status        TicketStatus
	Priority      TicketPriority
	// AccessKey proves ownership for anonymous follow-ups. Nil for rows
	// created before keys existed; such tickets never authorize.
	AccessKey *string
	CreatedAt time.Time
	UpdatedAt time.Time
	ClosedAt  *time.Time
}

// NewTicket builds an OPEN, MEDIUM ticket stamped with now.
// CreatedAt and UpdatedAt are identical.
func NewTicket(name, machine, department, description string, contact *string, accessKey string, now time.Time) *Ticket {
	now = now.UTC().Truncate(time.Microsecond)
	return &Ticket{
		RequesterName: name,
		Machine:       machine,
		Department:    department,
		Description:   description,
		Contact:       contact,
		Status:        TicketStatusOpen,
		Priority:      TicketPriorityMedium,
		AccessKey:     &accessKey,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// SetStatus moves the ticket to s and keeps ClosedAt consistent:
// non-nil exactly when the status is CLOSED. Closing an already closed
// ticket re-stamps ClosedAt.
func (t *Ticket) SetStatus(s TicketStatus, now time.Time) {
	t.Status = s
	if s == TicketStatusClosed {
		closed := now.UTC().Truncate(time.Microsecond)
		t.ClosedAt = &closed
		return
	}
	t.ClosedAt = nil
}

// Touch advances UpdatedAt to now, or one microsecond past its current
// value when the clock has not moved forward.
func (t *Ticket) Touch(now time.Time) {
	now = now.UTC().Truncate(time.Microsecond)
	if floor := t.UpdatedAt.Add(time.Microsecond); now.Before(floor) {
		now = floor
	}
	t.UpdatedAt = now
}

// Message is one immutable timeline entry on a ticket.
type Message struct {
	ID         int64
	TicketID   int64
	AuthorType AuthorType
	Text       string
	CreatedAt  time.Time
}

// TicketDetail is a ticket together with its messages in chronological order.
type TicketDetail struct {
	Ticket   Ticket
	Messages []Message
}
