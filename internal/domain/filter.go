package domain

// TicketFilter is the set of optional predicates for the admin ticket listing.
// A nil field means "no constraint"; set fields are combined with AND.
type TicketFilter struct {
	// Status matches tickets in exactly this state.
	Status *TicketStatus

	// Department matches the (sanitized) department exactly.
	Department *string

	// Search is a case-insensitive substring matched against requester
	// name OR machine.
	Search *string
}

// IsEmpty reports whether the filter places no constraint on the listing.
func (f TicketFilter) IsEmpty() bool {
	return f.Status == nil && f.Department == nil && f.Search == nil
}
