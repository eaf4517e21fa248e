package query

import (
	"context"
	"sync"

	"github.com/heartmarshall/helpdesk-backend/internal/domain"
)

var _ ticketRepo = &ticketRepoMock{}

type ticketRepoMock struct {
	ListFunc func(ctx context.Context, filter domain.TicketFilter) ([]domain.Ticket, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			Filter domain.TicketFilter
		}
	}
	lockList sync.RWMutex
}

func (mock *ticketRepoMock) List(ctx context.Context, filter domain.TicketFilter) ([]domain.Ticket, error) {
	if mock.ListFunc == nil {
		panic("ticketRepoMock.ListFunc: method is nil but ticketRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.TicketFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *ticketRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.TicketFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
