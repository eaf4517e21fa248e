package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/helpdesk-backend/internal/service/message"
)

var _ userMessageService = &userMessageServiceMock{}

type userMessageServiceMock struct {
	AddUserMessageFunc func(ctx context.Context, input message.AddUserMessageInput) error

	calls struct {
		AddUserMessage []struct {
			Ctx   context.Context
			Input message.AddUserMessageInput
		}
	}
	lockAddUserMessage sync.RWMutex
}

func (mock *userMessageServiceMock) AddUserMessage(ctx context.Context, input message.AddUserMessageInput) error {
	if mock.AddUserMessageFunc == nil {
		panic("userMessageServiceMock.AddUserMessageFunc: method is nil but userMessageService.AddUserMessage was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input message.AddUserMessageInput
	}{Ctx: ctx, Input: input}
	mock.lockAddUserMessage.Lock()
	mock.calls.AddUserMessage = append(mock.calls.AddUserMessage, callInfo)
	mock.lockAddUserMessage.Unlock()
	return mock.AddUserMessageFunc(ctx, input)
}

func (mock *userMessageServiceMock) AddUserMessageCalls() []struct {
	Ctx   context.Context
	Input message.AddUserMessageInput
} {
	mock.lockAddUserMessage.RLock()
	calls := mock.calls.AddUserMessage
	mock.lockAddUserMessage.RUnlock()
	return calls
}
