package message

import (
	"context"
	"sync"

	"github.com/heartmarshall/helpdesk-backend/internal/domain"
)

var _ messageRepo = &messageRepoMock{}

type messageRepoMock struct {
	CreateFunc func(ctx context.Context, m *domain.Message) (*domain.Message, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			M   *domain.Message
		}
	}
	lockCreate sync.RWMutex
}

func (mock *messageRepoMock) Create(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	if mock.CreateFunc == nil {
		panic("messageRepoMock.CreateFunc: method is nil but messageRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   *domain.Message
	}{Ctx: ctx, M: m}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *messageRepoMock) CreateCalls() []struct {
	Ctx context.Context
	M   *domain.Message
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
