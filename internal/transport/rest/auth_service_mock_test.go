package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/helpdesk-backend/internal/service/auth"
	"github.com/heartmarshall/helpdesk-backend/pkg/ctxutil"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	LoginFunc  func(ctx context.Context, input auth.LoginInput) (ctxutil.AdminPrincipal, error)
	LogoutFunc func(ctx context.Context) error

	calls struct {
		Login []struct {
			Ctx   context.Context
			Input auth.LoginInput
		}
		Logout []struct {
			Ctx context.Context
		}
	}
	lockLogin  sync.RWMutex
	lockLogout sync.RWMutex
}

func (mock *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (ctxutil.AdminPrincipal, error) {
	if mock.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but authService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.LoginInput
	}{Ctx: ctx, Input: input}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *authServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Input auth.LoginInput
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *authServiceMock) Logout(ctx context.Context) error {
	if mock.LogoutFunc == nil {
		panic("authServiceMock.LogoutFunc: method is nil but authService.Logout was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockLogout.Lock()
	mock.calls.Logout = append(mock.calls.Logout, callInfo)
	mock.lockLogout.Unlock()
	return mock.LogoutFunc(ctx)
}

func (mock *authServiceMock) LogoutCalls() []struct {
	Ctx context.Context
} {
	mock.lockLogout.RLock()
	calls := mock.calls.Logout
	mock.lockLogout.RUnlock()
	return calls
}
