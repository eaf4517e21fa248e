package message

import "github.com/heartmarshall/helpdesk-backend/internal/domain"

// AddUserMessageInput is a requester follow-up, authorized by the ticket's
// access key.
type AddUserMessageInput struct {
	TicketID  int64
	Text      string
	AccessKey string
}

// Validate checks the id and the sanitized text.
func (i AddUserMessageInput) Validate() error {
	return validate(i.TicketID, i.Text)
}

// AddAdminMessageInput is a staff reply.
type AddAdminMessageInput struct {
	TicketID int64
	Text     string
}

// Validate checks the id and the sanitized text.
func (i AddAdminMessageInput) Validate() error {
	return validate(i.TicketID, i.Text)
}

func validate(ticketID int64, text string) error {
	if ticketID <= 0 {
		return domain.NewValidationError("id", "invalid id")
	}
	if text == "" {
		return domain.NewValidationError("message", "message is required")
	}
	return nil
}
