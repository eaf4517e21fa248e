package message

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/helpdesk-backend/internal/domain"
)

var _ ticketRepo = &ticketRepoMock{}

type ticketRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Ticket, error)
	TouchFunc   func(ctx context.Context, id int64, now time.Time) (time.Time, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		Touch []struct {
			Ctx context.Context
			ID  int64
			Now time.Time
		}
	}
	lockGetByID sync.RWMutex
	lockTouch   sync.RWMutex
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

func (mock *ticketRepoMock) Touch(ctx context.Context, id int64, now time.Time) (time.Time, error) {
	if mock.TouchFunc == nil {
		panic("ticketRepoMock.TouchFunc: method is nil but ticketRepo.Touch was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
		Now time.Time
	}{Ctx: ctx, ID: id, Now: now}
	mock.lockTouch.Lock()
	mock.calls.Touch = append(mock.calls.Touch, callInfo)
	mock.lockTouch.Unlock()
	return mock.TouchFunc(ctx, id, now)
}

func (mock *ticketRepoMock) TouchCalls() []struct {
	Ctx context.Context
	ID  int64
	Now time.Time
} {
	mock.lockTouch.RLock()
	calls := mock.calls.Touch
	mock.lockTouch.RUnlock()
	return calls
}
