package ticket

import (
	"context"
	"sync"

	"github.com/heartmarshall/helpdesk-backend/internal/domain"
)

var _ ticketRepo = &ticketRepoMock{}

type ticketRepoMock struct {
	CreateFunc           func(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error)
	GetByIDFunc          func(ctx context.Context, id int64) (*domain.Ticket, error)
	GetByIDForUpdateFunc func(ctx context.Context, id int64) (*domain.Ticket, error)
	UpdateStateFunc      func(ctx context.Context, t *domain.Ticket) error

	calls struct {
		Create []struct {
			Ctx context.Context
			T   *domain.Ticket
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		GetByIDForUpdate []struct {
			Ctx context.Context
			ID  int64
		}
		UpdateState []struct {
			Ctx context.Context
			T   *domain.Ticket
		}
	}
	lockCreate           sync.RWMutex
	lockGetByID          sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockUpdateState      sync.RWMutex
}

func (mock *ticketRepoMock) Create(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error) {
	if mock.CreateFunc == nil {
		panic("ticketRepoMock.CreateFunc: method is nil but ticketRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Ticket
	}{Ctx: ctx, T: t}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *ticketRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   *domain.Ticket
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *ticketRepoMock) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	if mock.GetByIDFunc == nil {
		panic("ticketRepoMock.GetByIDFunc: method is nil but ticketRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *ticketRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *ticketRepoMock) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Ticket, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("ticketRepoMock.GetByIDForUpdateFunc: method is nil but ticketRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *ticketRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *ticketRepoMock) UpdateState(ctx context.Context, t *domain.Ticket) error {
	if mock.UpdateStateFunc == nil {
		panic("ticketRepoMock.UpdateStateFunc: method is nil but ticketRepo.UpdateState was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Ticket
	}{Ctx: ctx, T: t}
	mock.lockUpdateState.Lock()
	mock.calls.UpdateState = append(mock.calls.UpdateState, callInfo)
	mock.lockUpdateState.Unlock()
	return mock.UpdateStateFunc(ctx, t)
}

func (mock *ticketRepoMock) UpdateStateCalls() []struct {
	Ctx context.Context
	T   *domain.Ticket
} {
	mock.lockUpdateState.RLock()
	calls := mock.calls.UpdateState
	mock.lockUpdateState.RUnlock()
	return calls
}
