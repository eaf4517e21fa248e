package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/helpdesk-backend/internal/service/message"
)

var _ adminMessageService = &adminMessageServiceMock{}

type adminMessageServiceMock struct {
	AddAdminMessageFunc func(ctx context.Context, input message.AddAdminMessageInput) error

	calls struct {
		AddAdminMessage []struct {
			Ctx   context.Context
			Input message.AddAdminMessageInput
		}
	}
	lockAddAdminMessage sync.RWMutex
}

func (mock *adminMessageServiceMock) AddAdminMessage(ctx context.Context, input message.AddAdminMessageInput) error {
	if mock.AddAdminMessageFunc == nil {
		panic("adminMessageServiceMock.AddAdminMessageFunc: method is nil but adminMessageService.AddAdminMessage was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input message.AddAdminMessageInput
	}{Ctx: ctx, Input: input}
	mock.lockAddAdminMessage.Lock()
	mock.calls.AddAdminMessage = append(mock.calls.AddAdminMessage, callInfo)
	mock.lockAddAdminMessage.Unlock()
	return mock.AddAdminMessageFunc(ctx, input)
}

func (mock *adminMessageServiceMock) AddAdminMessageCalls() []struct {
	Ctx   context.Context
	Input message.AddAdminMessageInput
} {
	mock.lockAddAdminMessage.RLock()
	calls := mock.calls.AddAdminMessage
	mock.lockAddAdminMessage.RUnlock()
	return calls
}
