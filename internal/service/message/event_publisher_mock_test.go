package message

import (
	"context"
	"sync"

	"github.com/heartmarshall/helpdesk-backend/internal/domain"
)

var _ eventPublisher = &eventPublisherMock{}

type eventPublisherMock struct {
	MessageAddedFunc func(ctx context.Context, m domain.Message)

	calls struct {
		MessageAdded []struct {
			Ctx context.Context
			M   domain.Message
		}
	}
	lockMessageAdded sync.RWMutex
}

func (mock *eventPublisherMock) MessageAdded(ctx context.Context, m domain.Message) {
	if mock.MessageAddedFunc == nil {
		panic("eventPublisherMock.MessageAddedFunc: method is nil but eventPublisher.MessageAdded was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   domain.Message
	}{Ctx: ctx, M: m}
	mock.lockMessageAdded.Lock()
	mock.calls.MessageAdded = append(mock.calls.MessageAdded, callInfo)
	mock.lockMessageAdded.Unlock()
	mock.MessageAddedFunc(ctx, m)
}

func (mock *eventPublisherMock) MessageAddedCalls() []struct {
	Ctx context.Context
	M   domain.Message
} {
	mock.lockMessageAdded.RLock()
	calls := mock.calls.MessageAdded
	mock.lockMessageAdded.RUnlock()
	return calls
}
