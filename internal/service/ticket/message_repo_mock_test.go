package ticket

import (
	"context"
	"sync"

	"github.com/heartmarshall/helpdesk-backend/internal/domain"
)

var _ messageRepo = &messageRepoMock{}

type messageRepoMock struct {
	ListByTicketFunc func(ctx context.Context, ticketID int64) ([]domain.Message, error)

	calls struct {
		ListByTicket []struct {
			Ctx      context.Context
			TicketID int64
		}
	}
	lockListByTicket sync.RWMutex
}

func (mock *messageRepoMock) ListByTicket(ctx context.Context, ticketID int64) ([]domain.Message, error) {
	if mock.ListByTicketFunc == nil {
		panic("messageRepoMock.ListByTicketFunc: method is nil but messageRepo.ListByTicket was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TicketID int64
	}{Ctx: ctx, TicketID: ticketID}
	mock.lockListByTicket.Lock()
	mock.calls.ListByTicket = append(mock.calls.ListByTicket, callInfo)
	mock.lockListByTicket.Unlock()
	return mock.ListByTicketFunc(ctx, ticketID)
}

func (mock *messageRepoMock) ListByTicketCalls() []struct {
	Ctx      context.Context
	TicketID int64
} {
	mock.lockListByTicket.RLock()
	calls := mock.calls.ListByTicket
	mock.lockListByTicket.RUnlock()
	return calls
}
