package query

import "github.com/heartmarshall/helpdesk-backend/internal/domain"

// ListTicketsInput holds the raw listing query parameters.
type ListTicketsInput struct {
	Status     string
	Department string
	Search     string
}

// filter converts raw parameters into a TicketFilter. Empty values and
// unknown statuses place no constraint.
func (i ListTicketsInput) filter() domain.TicketFilter {
	var f domain.TicketFilter
	if s, ok := domain.ParseTicketStatus(i.Status); ok {
		f.Status = &s
	}
	if d := domain.SanitizeText(i.Department); d != "" {
		f.Department = &d
	}
	if q := domain.SanitizeText(i.Search); q != "" {
		f.Search = &q
	}
	return f
}
