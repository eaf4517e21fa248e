package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/helpdesk-backend/internal/domain"
	"github.com/heartmarshall/helpdesk-backend/internal/service/ticket"
)

var _ adminTicketService = &adminTicketServiceMock{}

type adminTicketServiceMock struct {
	GetAdminFunc                func(ctx context.Context, id int64) (*domain.TicketDetail, error)
	UpdateStatusAndPriorityFunc func(ctx context.Context, input ticket.UpdateTicketInput) error

	calls struct {
		GetAdmin []struct {
			Ctx context.Context
			ID  int64
		}
		UpdateStatusAndPriority []struct {
			Ctx   context.Context
			Input ticket.UpdateTicketInput
		}
	}
	lockGetAdmin                sync.RWMutex
	lockUpdateStatusAndPriority sync.RWMutex
}

func (mock *adminTicketServiceMock) GetAdmin(ctx context.Context, id int64) (*domain.TicketDetail, error) {
	if mock.GetAdminFunc == nil {
		panic("adminTicketServiceMock.GetAdminFunc: method is nil but adminTicketService.GetAdmin was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetAdmin.Lock()
	mock.calls.GetAdmin = append(mock.calls.GetAdmin, callInfo)
	mock.lockGetAdmin.Unlock()
	return mock.GetAdminFunc(ctx, id)
}

func (mock *adminTicketServiceMock) GetAdminCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetAdmin.RLock()
	calls := mock.calls.GetAdmin
	mock.lockGetAdmin.RUnlock()
	return calls
}

func (mock *adminTicketServiceMock) UpdateStatusAndPriority(ctx context.Context, input ticket.UpdateTicketInput) error {
	if mock.UpdateStatusAndPriorityFunc == nil {
		panic("adminTicketServiceMock.UpdateStatusAndPriorityFunc: method is nil but adminTicketService.UpdateStatusAndPriority was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input ticket.UpdateTicketInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateStatusAndPriority.Lock()
	mock.calls.UpdateStatusAndPriority = append(mock.calls.UpdateStatusAndPriority, callInfo)
	mock.lockUpdateStatusAndPriority.Unlock()
	return mock.UpdateStatusAndPriorityFunc(ctx, input)
}

func (mock *adminTicketServiceMock) UpdateStatusAndPriorityCalls() []struct {
	Ctx   context.Context
	Input ticket.UpdateTicketInput
} {
	mock.lockUpdateStatusAndPriority.RLock()
	calls := mock.calls.UpdateStatusAndPriority
	mock.lockUpdateStatusAndPriority.RUnlock()
	return calls
}
