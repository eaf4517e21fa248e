package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/helpdesk-backend/internal/domain"
	"github.com/heartmarshall/helpdesk-backend/internal/service/message"
	"github.com/heartmarshall/helpdesk-backend/internal/service/ticket"
)

type ticketService interface {
	Create(ctx context.Context, input ticket.CreateTicketInput) (*ticket.CreateResult, error)
	GetPublic(ctx context.Context, id int64) (*domain.TicketDetail, error)
}

type userMessageService interface {
	AddUserMessage(ctx context.Context, input message.AddUserMessageInput) error
}

// TicketHandler serves the public requester endpoints.
type TicketHandler struct {
	tickets  ticketService
	messages userMessageService
	log      *slog.Logger
}

// NewTicketHandler creates a TicketHandler.
func NewTicketHandler(tickets ticketService, messages userMessageService, logger *slog.Logger) *TicketHandler {
	return &TicketHandler{
		tickets:  tickets,
		messages: messages,
		log:      logger.With("handler", "ticket"),
	}
}

type createTicketRequest struct {
	Name        string  `json:"name"`
	Machine     string  `json:"machine"`
	Department  string  `json:"department"`
	Description string  `json:"description"`
	Contact     *string `json:"contact"`
}

type createTicketResponse struct {
	ID        int64  `json:"id"`
	Status    string `json:"status"`
	AccessKey string `json:"accessKey"`
}

type userMessageRequest struct {
	Message   string `json:"message"`
	AccessKey string `json:"accessKey"`
}

// Create handles POST /tickets.
func (h *TicketHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTicketRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.tickets.Create(r.Context(), ticket.CreateTicketInput{
		Name:        req.Name,
		Machine:     req.Machine,
		Department:  req.Department,
		Description: req.Description,
		Contact:     req.Contact,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, createTicketResponse{
		ID:        result.ID,
		Status:    result.Status.String(),
		AccessKey: result.AccessKey,
	})
}

// Get handles GET /tickets/{id}.
func (h *TicketHandler) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.tickets.GetPublic(r.Context(), pathID(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTicketDetailResponse(detail))
}

// AddMessage handles POST /tickets/{id}/messages.
func (h *TicketHandler) AddMessage(w http.ResponseWriter, r *http.Request) {
	var req userMessageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.messages.AddUserMessage(r.Context(), message.AddUserMessageInput{
		TicketID:  pathID(r),
		Text:      req.Message,
		AccessKey: req.AccessKey,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeOK(w, http.StatusCreated)
}
