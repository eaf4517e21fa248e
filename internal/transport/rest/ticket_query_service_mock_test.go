package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/helpdesk-backend/internal/domain"
	"github.com/heartmarshall/helpdesk-backend/internal/service/query"
)

var _ ticketQueryService = &ticketQueryServiceMock{}

type ticketQueryServiceMock struct {
	ListAdminFunc func(ctx context.Context, input query.ListTicketsInput) ([]domain.Ticket, error)

	calls struct {
		ListAdmin []struct {
			Ctx   context.Context
			Input query.ListTicketsInput
		}
	}
	lockListAdmin sync.RWMutex
}

func (mock *ticketQueryServiceMock) ListAdmin(ctx context.Context, input query.ListTicketsInput) ([]domain.Ticket, error) {
	if mock.ListAdminFunc == nil {
		panic("ticketQueryServiceMock.ListAdminFunc: method is nil but ticketQueryService.ListAdmin was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input query.ListTicketsInput
	}{Ctx: ctx, Input: input}
	mock.lockListAdmin.Lock()
	mock.calls.ListAdmin = append(mock.calls.ListAdmin, callInfo)
	mock.lockListAdmin.Unlock()
	return mock.ListAdminFunc(ctx, input)
}

func (mock *ticketQueryServiceMock) ListAdminCalls() []struct {
	Ctx   context.Context
	Input query.ListTicketsInput
} {
	mock.lockListAdmin.RLock()
	calls := mock.calls.ListAdmin
	mock.lockListAdmin.RUnlock()
	return calls
}
