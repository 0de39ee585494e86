package client

import (
	"context"
	"github.com/heartmarshall/bankpanel-backend/internal/domain"
	"sync"
)

var _ clientRepo = &clientRepoMock{}

type clientRepoMock struct {
	CreateAccountFunc     func(ctx context.Context, a domain.Account) (int64, error)
	CreateAddressFunc     func(ctx context.Context, a domain.Address) (int64, error)
	CreateFunc            func(ctx context.Context, c *domain.Client) (int64, error)
	DeleteFunc            func(ctx context.Context, id int64) (int64, error)
	DeleteAccountsFunc    func(ctx context.Context, clientID int64, ids []int64) error
	DeleteAddressFunc     func(ctx context.Context, id int64) error
	EmailTakenFunc        func(ctx context.Context, email string, excludeID int64) (bool, error)
	GetByIDFunc           func(ctx context.Context, id int64) (*domain.Client, error)
	ListFunc              func(ctx context.Context, f domain.ClientFilter) ([]domain.Client, error)
	MobileNumberTakenFunc func(ctx context.Context, number string, excludeID int64) (bool, error)
	PersonalIDTakenFunc   func(ctx context.Context, personalID string, excludeID int64) (bool, error)
	UpdateFunc            func(ctx context.Context, c *domain.Client) error
	UpdateAccountFunc     func(ctx context.Context, a domain.Account) error
	UpdateAddressFunc     func(ctx context.Context, a domain.Address) error

	calls struct {
		CreateAccount []struct {
			Ctx context.Context
			A   domain.Account
		}
		CreateAddress []struct {
			Ctx context.Context
			A   domain.Address
		}
		Create []struct {
			Ctx context.Context
			C   *domain.Client
		}
		Delete []struct {
			Ctx context.Context
			Id  int64
		}
		DeleteAccounts []struct {
			Ctx      context.Context
			ClientID int64
			Ids      []int64
		}
		DeleteAddress []struct {
			Ctx context.Context
			Id  int64
		}
		EmailTaken []struct {
			Ctx       context.Context
			Email     string
			ExcludeID int64
		}
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		List []struct {
			Ctx context.Context
			F   domain.ClientFilter
		}
		MobileNumberTaken []struct {
			Ctx       context.Context
			Number    string
			ExcludeID int64
		}
		PersonalIDTaken []struct {
			Ctx        context.Context
			PersonalID string
			ExcludeID  int64
		}
		Update []struct {
			Ctx context.Context
			C   *domain.Client
		}
		UpdateAccount []struct {
			Ctx context.Context
			A   domain.Account
		}
		UpdateAddress []struct {
			Ctx context.Context
			A   domain.Address
		}
	}
	lockCreateAccount     sync.RWMutex
	lockCreateAddress     sync.RWMutex
	lockCreate            sync.RWMutex
	lockDelete            sync.RWMutex
	lockDeleteAccounts    sync.RWMutex
	lockDeleteAddress     sync.RWMutex
	lockEmailTaken        sync.RWMutex
	lockGetByID           sync.RWMutex
	lockList              sync.RWMutex
	lockMobileNumberTaken sync.RWMutex
	lockPersonalIDTaken   sync.RWMutex
	lockUpdate            sync.RWMutex
	lockUpdateAccount     sync.RWMutex
	lockUpdateAddress     sync.RWMutex
}

func (mock *clientRepoMock) CreateAccount(ctx context.Context, a domain.Account) (int64, error) {
	if mock.CreateAccountFunc == nil {
		panic("clientRepoMock.CreateAccountFunc: method is nil but clientRepo.CreateAccount was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   domain.Account
	}{Ctx: ctx, A: a}
	mock.lockCreateAccount.Lock()
	mock.calls.CreateAccount = append(mock.calls.CreateAccount, callInfo)
	mock.lockCreateAccount.Unlock()
	return mock.CreateAccountFunc(ctx, a)
}

func (mock *clientRepoMock) CreateAccountCalls() []struct {
	Ctx context.Context
	A   domain.Account
} {
	var calls []struct {
		Ctx context.Context
		A   domain.Account
	}
	mock.lockCreateAccount.RLock()
	calls = mock.calls.CreateAccount
	mock.lockCreateAccount.RUnlock()
	return calls
}

func (mock *clientRepoMock) CreateAddress(ctx context.Context, a domain.Address) (int64, error) {
	if mock.CreateAddressFunc == nil {
		panic("clientRepoMock.CreateAddressFunc: method is nil but clientRepo.CreateAddress was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   domain.Address
	}{Ctx: ctx, A: a}
	mock.lockCreateAddress.Lock()
	mock.calls.CreateAddress = append(mock.calls.CreateAddress, callInfo)
	mock.lockCreateAddress.Unlock()
	return mock.CreateAddressFunc(ctx, a)
}

func (mock *clientRepoMock) CreateAddressCalls() []struct {
	Ctx context.Context
	A   domain.Address
} {
	var calls []struct {
		Ctx context.Context
		A   domain.Address
	}
	mock.lockCreateAddress.RLock()
	calls = mock.calls.CreateAddress
	mock.lockCreateAddress.RUnlock()
	return calls
}

func (mock *clientRepoMock) Create(ctx context.Context, c *domain.Client) (int64, error) {
	if mock.CreateFunc == nil {
		panic("clientRepoMock.CreateFunc: method is nil but clientRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Client
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *clientRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Client
} {
	var calls []struct {
		Ctx context.Context
		C   *domain.Client
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *clientRepoMock) Delete(ctx context.Context, id int64) (int64, error) {
	if mock.DeleteFunc == nil {
		panic("clientRepoMock.DeleteFunc: method is nil but clientRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *clientRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *clientRepoMock) DeleteAccounts(ctx context.Context, clientID int64, ids []int64) error {
	if mock.DeleteAccountsFunc == nil {
		panic("clientRepoMock.DeleteAccountsFunc: method is nil but clientRepo.DeleteAccounts was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ClientID int64
		Ids      []int64
	}{Ctx: ctx, ClientID: clientID, Ids: ids}
	mock.lockDeleteAccounts.Lock()
	mock.calls.DeleteAccounts = append(mock.calls.DeleteAccounts, callInfo)
	mock.lockDeleteAccounts.Unlock()
	return mock.DeleteAccountsFunc(ctx, clientID, ids)
}

func (mock *clientRepoMock) DeleteAccountsCalls() []struct {
	Ctx      context.Context
	ClientID int64
	Ids      []int64
} {
	var calls []struct {
		Ctx      context.Context
		ClientID int64
		Ids      []int64
	}
	mock.lockDeleteAccounts.RLock()
	calls = mock.calls.DeleteAccounts
	mock.lockDeleteAccounts.RUnlock()
	return calls
}

func (mock *clientRepoMock) DeleteAddress(ctx context.Context, id int64) error {
	if mock.DeleteAddressFunc == nil {
		panic("clientRepoMock.DeleteAddressFunc: method is nil but clientRepo.DeleteAddress was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockDeleteAddress.Lock()
	mock.calls.DeleteAddress = append(mock.calls.DeleteAddress, callInfo)
	mock.lockDeleteAddress.Unlock()
	return mock.DeleteAddressFunc(ctx, id)
}

func (mock *clientRepoMock) DeleteAddressCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
	}
	mock.lockDeleteAddress.RLock()
	calls = mock.calls.DeleteAddress
	mock.lockDeleteAddress.RUnlock()
	return calls
}

func (mock *clientRepoMock) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	if mock.EmailTakenFunc == nil {
		panic("clientRepoMock.EmailTakenFunc: method is nil but clientRepo.EmailTaken was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Email     string
		ExcludeID int64
	}{Ctx: ctx, Email: email, ExcludeID: excludeID}
	mock.lockEmailTaken.Lock()
	mock.calls.EmailTaken = append(mock.calls.EmailTaken, callInfo)
	mock.lockEmailTaken.Unlock()
	return mock.EmailTakenFunc(ctx, email, excludeID)
}

func (mock *clientRepoMock) EmailTakenCalls() []struct {
	Ctx       context.Context
	Email     string
	ExcludeID int64
} {
	var calls []struct {
		Ctx       context.Context
		Email     string
		ExcludeID int64
	}
	mock.lockEmailTaken.RLock()
	calls = mock.calls.EmailTaken
	mock.lockEmailTaken.RUnlock()
	return calls
}

func (mock *clientRepoMock) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	if mock.GetByIDFunc == nil {
		panic("clientRepoMock.GetByIDFunc: method is nil but clientRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *clientRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *clientRepoMock) List(ctx context.Context, f domain.ClientFilter) ([]domain.Client, error) {
	if mock.ListFunc == nil {
		panic("clientRepoMock.ListFunc: method is nil but clientRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.ClientFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *clientRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.ClientFilter
} {
	var calls []struct {
		Ctx context.Context
		F   domain.ClientFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *clientRepoMock) MobileNumberTaken(ctx context.Context, number string, excludeID int64) (bool, error) {
	if mock.MobileNumberTakenFunc == nil {
		panic("clientRepoMock.MobileNumberTakenFunc: method is nil but clientRepo.MobileNumberTaken was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Number    string
		ExcludeID int64
	}{Ctx: ctx, Number: number, ExcludeID: excludeID}
	mock.lockMobileNumberTaken.Lock()
	mock.calls.MobileNumberTaken = append(mock.calls.MobileNumberTaken, callInfo)
	mock.lockMobileNumberTaken.Unlock()
	return mock.MobileNumberTakenFunc(ctx, number, excludeID)
}

func (mock *clientRepoMock) MobileNumberTakenCalls() []struct {
	Ctx       context.Context
	Number    string
	ExcludeID int64
} {
	var calls []struct {
		Ctx       context.Context
		Number    string
		ExcludeID int64
	}
	mock.lockMobileNumberTaken.RLock()
	calls = mock.calls.MobileNumberTaken
	mock.lockMobileNumberTaken.RUnlock()
	return calls
}

func (mock *clientRepoMock) PersonalIDTaken(ctx context.Context, personalID string, excludeID int64) (bool, error) {
	if mock.PersonalIDTakenFunc == nil {
		panic("clientRepoMock.PersonalIDTakenFunc: method is nil but clientRepo.PersonalIDTaken was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		PersonalID string
		ExcludeID  int64
	}{Ctx: ctx, PersonalID: personalID, ExcludeID: excludeID}
	mock.lockPersonalIDTaken.Lock()
	mock.calls.PersonalIDTaken = append(mock.calls.PersonalIDTaken, callInfo)
	mock.lockPersonalIDTaken.Unlock()
	return mock.PersonalIDTakenFunc(ctx, personalID, excludeID)
}

func (mock *clientRepoMock) PersonalIDTakenCalls() []struct {
	Ctx        context.Context
	PersonalID string
	ExcludeID  int64
} {
	var calls []struct {
		Ctx        context.Context
		PersonalID string
		ExcludeID  int64
	}
	mock.lockPersonalIDTaken.RLock()
	calls = mock.calls.PersonalIDTaken
	mock.lockPersonalIDTaken.RUnlock()
	return calls
}

func (mock *clientRepoMock) Update(ctx context.Context, c *domain.Client) error {
	if mock.UpdateFunc == nil {
		panic("clientRepoMock.UpdateFunc: method is nil but clientRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Client
	}{Ctx: ctx, C: c}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, c)
}

func (mock *clientRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	C   *domain.Client
} {
	var calls []struct {
		Ctx context.Context
		C   *domain.Client
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *clientRepoMock) UpdateAccount(ctx context.Context, a domain.Account) error {
	if mock.UpdateAccountFunc == nil {
		panic("clientRepoMock.UpdateAccountFunc: method is nil but clientRepo.UpdateAccount was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   domain.Account
	}{Ctx: ctx, A: a}
	mock.lockUpdateAccount.Lock()
	mock.calls.UpdateAccount = append(mock.calls.UpdateAccount, callInfo)
	mock.lockUpdateAccount.Unlock()
	return mock.UpdateAccountFunc(ctx, a)
}

func (mock *clientRepoMock) UpdateAccountCalls() []struct {
	Ctx context.Context
	A   domain.Account
} {
	var calls []struct {
		Ctx context.Context
		A   domain.Account
	}
	mock.lockUpdateAccount.RLock()
	calls = mock.calls.UpdateAccount
	mock.lockUpdateAccount.RUnlock()
	return calls
}

func (mock *clientRepoMock) UpdateAddress(ctx context.Context, a domain.Address) error {
	if mock.UpdateAddressFunc == nil {
		panic("clientRepoMock.UpdateAddressFunc: method is nil but clientRepo.UpdateAddress was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   domain.Address
	}{Ctx: ctx, A: a}
	mock.lockUpdateAddress.Lock()
	mock.calls.UpdateAddress = append(mock.calls.UpdateAddress, callInfo)
	mock.lockUpdateAddress.Unlock()
	return mock.UpdateAddressFunc(ctx, a)
}

func (mock *clientRepoMock) UpdateAddressCalls() []struct {
	Ctx context.Context
	A   domain.Address
} {
	var calls []struct {
		Ctx context.Context
		A   domain.Address
	}
	mock.lockUpdateAddress.RLock()
	calls = mock.calls.UpdateAddress
	mock.lockUpdateAddress.RUnlock()
	return calls
}
