package auth

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/bankpanel-backend/internal/domain"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	AddUserToRoleFunc    func(ctx context.Context, userID uuid.UUID, roleID uuid.UUID) error
	CountUsersInRoleFunc func(ctx context.Context, name string) (int, error)
	CreateUserFunc       func(ctx context.Context, u *domain.User) error
	GetRoleByNameFunc    func(ctx context.Context, name string) (*domain.Role, error)
	GetUserByEmailFunc   func(ctx context.Context, email string) (*domain.User, error)

	calls struct {
		AddUserToRole []struct {
			Ctx    context.Context
			UserID uuid.UUID
			RoleID uuid.UUID
		}
		CountUsersInRole []struct {
			Ctx  context.Context
			Name string
		}
		CreateUser []struct {
			Ctx context.Context
			U   *domain.User
		}
		GetRoleByName []struct {
			Ctx  context.Context
			Name string
		}
		GetUserByEmail []struct {
			Ctx   context.Context
			Email string
		}
	}
	lockAddUserToRole    sync.RWMutex
	lockCountUsersInRole sync.RWMutex
	lockCreateUser       sync.RWMutex
	lockGetRoleByName    sync.RWMutex
	lockGetUserByEmail   sync.RWMutex
}

func (mock *userRepoMock) AddUserToRole(ctx context.Context, userID uuid.UUID, roleID uuid.UUID) error {
	if mock.AddUserToRoleFunc == nil {
		panic("userRepoMock.AddUserToRoleFunc: method is nil but userRepo.AddUserToRole was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		RoleID uuid.UUID
	}{Ctx: ctx, UserID: userID, RoleID: roleID}
	mock.lockAddUserToRole.Lock()
	mock.calls.AddUserToRole = append(mock.calls.AddUserToRole, callInfo)
	mock.lockAddUserToRole.Unlock()
	return mock.AddUserToRoleFunc(ctx, userID, roleID)
}

func (mock *userRepoMock) AddUserToRoleCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	RoleID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		RoleID uuid.UUID
	}
	mock.lockAddUserToRole.RLock()
	calls = mock.calls.AddUserToRole
	mock.lockAddUserToRole.RUnlock()
	return calls
}

func (mock *userRepoMock) CountUsersInRole(ctx context.Context, name string) (int, error) {
	if mock.CountUsersInRoleFunc == nil {
		panic("userRepoMock.CountUsersInRoleFunc: method is nil but userRepo.CountUsersInRole was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{Ctx: ctx, Name: name}
	mock.lockCountUsersInRole.Lock()
	mock.calls.CountUsersInRole = append(mock.calls.CountUsersInRole, callInfo)
	mock.lockCountUsersInRole.Unlock()
	return mock.CountUsersInRoleFunc(ctx, name)
}

func (mock *userRepoMock) CountUsersInRoleCalls() []struct {
	Ctx  context.Context
	Name string
} {
	var calls []struct {
		Ctx  context.Context
		Name string
	}
	mock.lockCountUsersInRole.RLock()
	calls = mock.calls.CountUsersInRole
	mock.lockCountUsersInRole.RUnlock()
	return calls
}

func (mock *userRepoMock) CreateUser(ctx context.Context, u *domain.User) error {
	if mock.CreateUserFunc == nil {
		panic("userRepoMock.CreateUserFunc: method is nil but userRepo.CreateUser was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   *domain.User
	}{Ctx: ctx, U: u}
	mock.lockCreateUser.Lock()
	mock.calls.CreateUser = append(mock.calls.CreateUser, callInfo)
	mock.lockCreateUser.Unlock()
	return mock.CreateUserFunc(ctx, u)
}

func (mock *userRepoMock) CreateUserCalls() []struct {
	Ctx context.Context
	U   *domain.User
} {
	var calls []struct {
		Ctx context.Context
		U   *domain.User
	}
	mock.lockCreateUser.RLock()
	calls = mock.calls.CreateUser
	mock.lockCreateUser.RUnlock()
	return calls
}

func (mock *userRepoMock) GetRoleByName(ctx context.Context, name string) (*domain.Role, error) {
	if mock.GetRoleByNameFunc == nil {
		panic("userRepoMock.GetRoleByNameFunc: method is nil but userRepo.GetRoleByName was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{Ctx: ctx, Name: name}
	mock.lockGetRoleByName.Lock()
	mock.calls.GetRoleByName = append(mock.calls.GetRoleByName, callInfo)
	mock.lockGetRoleByName.Unlock()
	return mock.GetRoleByNameFunc(ctx, name)
}

func (mock *userRepoMock) GetRoleByNameCalls() []struct {
	Ctx  context.Context
	Name string
} {
	var calls []struct {
		Ctx  context.Context
		Name string
	}
	mock.lockGetRoleByName.RLock()
	calls = mock.calls.GetRoleByName
	mock.lockGetRoleByName.RUnlock()
	return calls
}

func (mock *userRepoMock) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetUserByEmailFunc == nil {
		panic("userRepoMock.GetUserByEmailFunc: method is nil but userRepo.GetUserByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockGetUserByEmail.Lock()
	mock.calls.GetUserByEmail = append(mock.calls.GetUserByEmail, callInfo)
	mock.lockGetUserByEmail.Unlock()
	return mock.GetUserByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetUserByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	var calls []struct {
		Ctx   context.Context
		Email string
	}
	mock.lockGetUserByEmail.RLock()
	calls = mock.calls.GetUserByEmail
	mock.lockGetUserByEmail.RUnlock()
	return calls
}
