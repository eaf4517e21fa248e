package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/helpdesk-backend/internal/domain"
	"github.com/heartmarshall/helpdesk-backend/internal/service/message"
	"github.com/heartmarshall/helpdesk-backend/internal/service/query"
	"github.com/heartmarshall/helpdesk-backend/internal/service/ticket"
)

type adminTicketService interface {
	GetAdmin(ctx context.Context, id int64) (*domain.TicketDetail, error)
	UpdateStatusAndPriority(ctx context.Context, input ticket.UpdateTicketInput) error
}

type adminMessageService interface {
	AddAdminMessage(ctx context.Context, input message.AddAdminMessageInput) error
}

type ticketQueryService interface {
	ListAdmin(ctx context.Context, input query.ListTicketsInput) ([]domain.Ticket, error)
}

// AdminHandler serves the staff endpoints. Routes are mounted behind
// middleware.RequireAdmin; the services check the principal again.
type AdminHandler struct {
	tickets  adminTicketService
	messages adminMessageService
	query    ticketQueryService
	log      *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(
	tickets adminTicketService,
	messages adminMessageService,
	queries ticketQueryService,
	logger *slog.Logger,
) *AdminHandler {
	return &AdminHandler{
		tickets:  tickets,
		messages: messages,
		query:    queries,
		log:      logger.With("handler", "admin"),
	}
}

type adminMessageRequest struct {
	Message string `json:"message"`
}

type updateTicketRequest struct {
	Status   *string `json:"status"`
	Priority *string `json:"priority"`
}

// List handles GET /admin/tickets?status=&department=&search=
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tickets, err := h.query.ListAdmin(r.Context(), query.ListTicketsInput{
		Status:     q.Get("status"),
		Department: q.Get("department"),
		Search:     q.Get("search"),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTicketListResponse(tickets))
}

// Get handles GET /admin/tickets/{id}.
func (h *AdminHandler) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.tickets.GetAdmin(r.Context(), pathID(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTicketDetailResponse(detail))
}

// AddMessage handles POST /admin/tickets/{id}/messages.
func (h *AdminHandler) AddMessage(w http.ResponseWriter, r *http.Request) {
	var req adminMessageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.messages.AddAdminMessage(r.Context(), message.AddAdminMessageInput{
		TicketID: pathID(r),
		Text:     req.Message,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeOK(w, http.StatusCreated)
}

// Update handles PATCH /admin/tickets/{id}.
func (h *AdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateTicketRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.tickets.UpdateStatusAndPriority(r.Context(), ticket.UpdateTicketInput{
		ID:       pathID(r),
		Status:   req.Status,
		Priority: req.Priority,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeOK(w, http.StatusOK)
}
