package ticket

import (
	"context"
	"sync"

	"github.com/heartmarshall/helpdesk-backend/internal/domain"
)

var _ eventPublisher = &eventPublisherMock{}

type eventPublisherMock struct {
	TicketCreatedFunc func(ctx context.Context, t domain.Ticket)
	TicketUpdatedFunc func(ctx context.Context, before domain.Ticket, after domain.Ticket)

	calls struct {
		TicketCreated []struct {
			Ctx context.Context
			T   domain.Ticket
		}
		TicketUpdated []struct {
			Ctx    context.Context
			Before domain.Ticket
			After  domain.Ticket
		}
	}
	lockTicketCreated sync.RWMutex
	lockTicketUpdated sync.RWMutex
}

func (mock *eventPublisherMock) TicketCreated(ctx context.Context, t domain.Ticket) {
	if mock.TicketCreatedFunc == nil {
		panic("eventPublisherMock.TicketCreatedFunc: method is nil but eventPublisher.TicketCreated was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   domain.Ticket
	}{Ctx: ctx, T: t}
	mock.lockTicketCreated.Lock()
	mock.calls.TicketCreated = append(mock.calls.TicketCreated, callInfo)
	mock.lockTicketCreated.Unlock()
	mock.TicketCreatedFunc(ctx, t)
}

func (mock *eventPublisherMock) TicketCreatedCalls() []struct {
	Ctx context.Context
	T   domain.Ticket
} {
	mock.lockTicketCreated.RLock()
	calls := mock.calls.TicketCreated
	mock.lockTicketCreated.RUnlock()
	return calls
}

func (mock *eventPublisherMock) TicketUpdated(ctx context.Context, before domain.Ticket, after domain.Ticket) {
	if mock.TicketUpdatedFunc == nil {
		panic("eventPublisherMock.TicketUpdatedFunc: method is nil but eventPublisher.TicketUpdated was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Before domain.Ticket
		After  domain.Ticket
	}{Ctx: ctx, Before: before, After: after}
	mock.lockTicketUpdated.Lock()
	mock.calls.TicketUpdated = append(mock.calls.TicketUpdated, callInfo)
	mock.lockTicketUpdated.Unlock()
	mock.TicketUpdatedFunc(ctx, before, after)
}

func (mock *eventPublisherMock) TicketUpdatedCalls() []struct {
	Ctx    context.Context
	Before domain.Ticket
	After  domain.Ticket
} {
	mock.lockTicketUpdated.RLock()
	calls := mock.calls.TicketUpdated
	mock.lockTicketUpdated.RUnlock()
	return calls
}
