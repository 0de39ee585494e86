package rest

import (
	"context"
	"github.com/heartmarshall/bankpanel-backend/internal/service/auth"
	"sync"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	AssignRoleFunc func(ctx context.Context, input auth.AssignRoleInput) (string, error)
	LoginFunc      func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	RegisterFunc   func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)

	calls struct {
		AssignRole []struct {
			Ctx   context.Context
			Input auth.AssignRoleInput
		}
		Login []struct {
			Ctx   context.Context
			Input auth.LoginInput
		}
		Register []struct {
			Ctx   context.Context
			Input auth.RegisterInput
		}
	}
	lockAssignRole sync.RWMutex
	lockLogin      sync.RWMutex
	lockRegister   sync.RWMutex
}

func (mock *authServiceMock) AssignRole(ctx context.Context, input auth.AssignRoleInput) (string, error) {
	if mock.AssignRoleFunc == nil {
		panic("authServiceMock.AssignRoleFunc: method is nil but authService.AssignRole was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.AssignRoleInput
	}{Ctx: ctx, Input: input}
	mock.lockAssignRole.Lock()
	mock.calls.AssignRole = append(mock.calls.AssignRole, callInfo)
	mock.lockAssignRole.Unlock()
	return mock.AssignRoleFunc(ctx, input)
}

func (mock *authServiceMock) AssignRoleCalls() []struct {
	Ctx   context.Context
	Input auth.AssignRoleInput
} {
	var calls []struct {
		Ctx   context.Context
		Input auth.AssignRoleInput
	}
	mock.lockAssignRole.RLock()
	calls = mock.calls.AssignRole
	mock.lockAssignRole.RUnlock()
	return calls
}

func (mock *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
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
	var calls []struct {
		Ctx   context.Context
		Input auth.LoginInput
	}
	mock.lockLogin.RLock()
	calls = mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
	if mock.RegisterFunc == nil {
		panic("authServiceMock.RegisterFunc: method is nil but authService.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.RegisterInput
	}{Ctx: ctx, Input: input}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *authServiceMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input auth.RegisterInput
} {
	var calls []struct {
		Ctx   context.Context
		Input auth.RegisterInput
	}
	mock.lockRegister.RLock()
	calls = mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}
