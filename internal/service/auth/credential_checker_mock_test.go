package auth

import (
	"sync"

	"github.com/heartmarshall/helpdesk-backend/pkg/ctxutil"
)

var _ credentialChecker = &credentialCheckerMock{}

type credentialCheckerMock struct {
	CheckFunc func(username string, password string) (ctxutil.AdminPrincipal, error)

	calls struct {
		Check []struct {
			Username string
			Password string
		}
	}
	lockCheck sync.RWMutex
}

func (mock *credentialCheckerMock) Check(username string, password string) (ctxutil.AdminPrincipal, error) {
	if mock.CheckFunc == nil {
		panic("credentialCheckerMock.CheckFunc: method is nil but credentialChecker.Check was just called")
	}
	callInfo := struct {
		Username string
		Password string
	}{Username: username, Password: password}
	mock.lockCheck.Lock()
	mock.calls.Check = append(mock.calls.Check, callInfo)
	mock.lockCheck.Unlock()
	return mock.CheckFunc(username, password)
}

func (mock *credentialCheckerMock) CheckCalls() []struct {
	Username string
	Password string
} {
	mock.lockCheck.RLock()
	calls := mock.calls.Check
	mock.lockCheck.RUnlock()
	return calls
}
