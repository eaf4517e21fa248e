package ticket

import "github.com/heartmarshall/helpdesk-backend/internal/domain"

// CreateTicketInput holds the raw fields of a new ticket submission.
type CreateTicketInput struct {
	Name        string
	Machine     string
	Department  string
	Description string
	Contact     *string
}

// sanitize returns a copy with every text field trimmed and escaped.
func (i CreateTicketInput) sanitize() CreateTicketInput {
	return CreateTicketInput{
		Name:        domain.SanitizeText(i.Name),
		Machine:     domain.SanitizeText(i.Machine),
		Department:  domain.SanitizeText(i.Department),
		Description: domain.SanitizeText(i.Description),
		Contact:     domain.SanitizeOptional(i.Contact),
	}
}

// Validate checks all fields and collects all errors.
// Expects sanitized input.
func (i CreateTicketInput) Validate() error {
	var errs []domain.FieldError
	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "name is required"})
	}
	if i.Machine == "" {
		errs = append(errs, domain.FieldError{Field: "machine", Message: "machine is required"})
	}
	if i.Department == "" {
		errs = append(errs, domain.FieldError{Field: "department", Message: "department is required"})
	}
	if i.Description == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "description is required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateResult is returned once to the requester. It is the only place the
// access key ever leaves the service.
type CreateResult struct {
	ID        int64
	Status    domain.TicketStatus
	AccessKey string
}

// UpdateTicketInput holds an admin status/priority change. Nil or
// unrecognized values are ignored.
type UpdateTicketInput struct {
	ID       int64
	Status   *string
	Priority *string
}

// Validate checks the ticket id.
func (i UpdateTicketInput) Validate() error {
	return validateID(i.ID)
}

// recognized returns the status and priority that will be applied.
// Unknown enum values are skipped, not rejected.
func (i UpdateTicketInput) recognized() (*domain.TicketStatus, *domain.TicketPriority) {
	var (
		status   *domain.TicketStatus
		priority *domain.TicketPriority
	)
	if i.Status != nil {
		if s, ok := domain.ParseTicketStatus(*i.Status); ok {
			status = &s
		}
	}
	if i.Priority != nil {
		if p, ok := domain.ParseTicketPriority(*i.Priority); ok {
			priority = &p
		}
	}
	return status, priority
}

func validateID(id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "invalid id")
	}
	return nil
}
