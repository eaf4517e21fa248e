package rest

import (
	"time"

	"github.com/heartmarshall/helpdesk-backend/internal/domain"
)

// ticketResponse is the public ticket shape. The access key is never
// serialized.
type ticketResponse struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Machine     string     `json:"machine"`
	Department  string     `json:"department"`
	Description string     `json:"description"`
	Contact     *string    `json:"contact"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	ClosedAt    *time.Time `json:"closedAt"`
}

type messageResponse struct {
	ID         int64     `json:"id"`
	AuthorType string    `json:"authorType"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ticketDetailResponse struct {
	Ticket   ticketResponse    `json:"ticket"`
	Messages []messageResponse `json:"messages"`
}

type ticketListResponse struct {
	Tickets []ticketResponse `json:"tickets"`
}

func toTicketResponse(t domain.Ticket) ticketResponse {
	return ticketResponse{
		ID:          t.ID,
		Name:        t.RequesterName,
		Machine:     t.Machine,
		Department:  t.Department,
		Description: t.Description,
		Contact:     t.Contact,
		Status:      t.Status.String(),
		Priority:    t.Priority.String(),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		ClosedAt:    t.ClosedAt,
	}
}

func toTicketDetailResponse(d *domain.TicketDetail) ticketDetailResponse {
	msgs := make([]messageResponse, len(d.Messages))
	for i, m := range d.Messages {
		msgs[i] = messageResponse{
			ID:         m.ID,
			AuthorType: m.AuthorType.String(),
			Message:    m.Text,
			CreatedAt:  m.CreatedAt,
		}
	}
	return ticketDetailResponse{
		Ticket:   toTicketResponse(d.Ticket),
		Messages: msgs,
	}
}

func toTicketListResponse(tickets []domain.Ticket) ticketListResponse {
	out := make([]ticketResponse, len(tickets))
	for i, t := range tickets {
		out[i] = toTicketResponse(t)
	}
	return ticketListResponse{Tickets: out}
}
