package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/helpdesk-backend/internal/domain"
	"github.com/heartmarshall/helpdesk-backend/internal/service/ticket"
)

var _ ticketService = &ticketServiceMock{}

type ticketServiceMock struct {
	CreateFunc    func(ctx context.Context, input ticket.CreateTicketInput) (*ticket.CreateResult, error)
	GetPublicFunc func(ctx context.Context, id int64) (*domain.TicketDetail, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input ticket.CreateTicketInput
		}
		GetPublic []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockCreate    sync.RWMutex
	lockGetPublic sync.RWMutex
}

func (mock *ticketServiceMock) Create(ctx context.Context, input ticket.CreateTicketInput) (*ticket.CreateResult, error) {
	if mock.CreateFunc == nil {
		panic("ticketServiceMock.CreateFunc: method is nil but ticketService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input ticket.CreateTicketInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *ticketServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input ticket.CreateTicketInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *ticketServiceMock) GetPublic(ctx context.Context, id int64) (*domain.TicketDetail, error) {
	if mock.GetPublicFunc == nil {
		panic("ticketServiceMock.GetPublicFunc: method is nil but ticketService.GetPublic was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetPublic.Lock()
	mock.calls.GetPublic = append(mock.calls.GetPublic, callInfo)
	mock.lockGetPublic.Unlock()
	return mock.GetPublicFunc(ctx, id)
}

func (mock *ticketServiceMock) GetPublicCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetPublic.RLock()
	calls := mock.calls.GetPublic
	mock.lockGetPublic.RUnlock()
	return calls
}
