package rest

import (
	"context"
	"github.com/heartmarshall/bankpanel-backend/internal/domain"
	"github.com/heartmarshall/bankpanel-backend/internal/service/client"
	"sync"
)

var _ clientService = &clientServiceMock{}

type clientServiceMock struct {
	CreateClientFunc            func(ctx context.Context, input client.ClientInput) (*domain.Client, error)
	DeleteClientFunc            func(ctx context.Context, id int64) error
	GetClientFunc               func(ctx context.Context, id int64) (*domain.Client, error)
	ListClientsFunc             func(ctx context.Context, q client.ClientQuery) ([]domain.Client, error)
	RecentSearchesFunc          func() []domain.SearchParameter
	RecentSearchesFromStoreFunc func(ctx context.Context) ([]domain.SearchParameter, error)
	UpdateClientFunc            func(ctx context.Context, id int64, input client.ClientInput) error

	calls struct {
		CreateClient []struct {
			Ctx   context.Context
			Input client.ClientInput
		}
		DeleteClient []struct {
			Ctx context.Context
			Id  int64
		}
		GetClient []struct {
			Ctx context.Context
			Id  int64
		}
		ListClients []struct {
			Ctx context.Context
			Q   client.ClientQuery
		}
		RecentSearches []struct{}
		RecentSearchesFromStore []struct {
			Ctx context.Context
		}
		UpdateClient []struct {
			Ctx   context.Context
			Id    int64
			Input client.ClientInput
		}
	}
	lockCreateClient            sync.RWMutex
	lockDeleteClient            sync.RWMutex
	lockGetClient               sync.RWMutex
	lockListClients             sync.RWMutex
	lockRecentSearches          sync.RWMutex
	lockRecentSearchesFromStore sync.RWMutex
	lockUpdateClient            sync.RWMutex
}

func (mock *clientServiceMock) CreateClient(ctx context.Context, input client.ClientInput) (*domain.Client, error) {
	if mock.CreateClientFunc == nil {
		panic("clientServiceMock.CreateClientFunc: method is nil but clientService.CreateClient was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input client.ClientInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateClient.Lock()
	mock.calls.CreateClient = append(mock.calls.CreateClient, callInfo)
	mock.lockCreateClient.Unlock()
	return mock.CreateClientFunc(ctx, input)
}

func (mock *clientServiceMock) CreateClientCalls() []struct {
	Ctx   context.Context
	Input client.ClientInput
} {
	var calls []struct {
		Ctx   context.Context
		Input client.ClientInput
	}
	mock.lockCreateClient.RLock()
	calls = mock.calls.CreateClient
	mock.lockCreateClient.RUnlock()
	return calls
}

func (mock *clientServiceMock) DeleteClient(ctx context.Context, id int64) error {
	if mock.DeleteClientFunc == nil {
		panic("clientServiceMock.DeleteClientFunc: method is nil but clientService.DeleteClient was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockDeleteClient.Lock()
	mock.calls.DeleteClient = append(mock.calls.DeleteClient, callInfo)
	mock.lockDeleteClient.Unlock()
	return mock.DeleteClientFunc(ctx, id)
}

func (mock *clientServiceMock) DeleteClientCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
	}
	mock.lockDeleteClient.RLock()
	calls = mock.calls.DeleteClient
	mock.lockDeleteClient.RUnlock()
	return calls
}

func (mock *clientServiceMock) GetClient(ctx context.Context, id int64) (*domain.Client, error) {
	if mock.GetClientFunc == nil {
		panic("clientServiceMock.GetClientFunc: method is nil but clientService.GetClient was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockGetClient.Lock()
	mock.calls.GetClient = append(mock.calls.GetClient, callInfo)
	mock.lockGetClient.Unlock()
	return mock.GetClientFunc(ctx, id)
}

func (mock *clientServiceMock) GetClientCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
	}
	mock.lockGetClient.RLock()
	calls = mock.calls.GetClient
	mock.lockGetClient.RUnlock()
	return calls
}

func (mock *clientServiceMock) ListClients(ctx context.Context, q client.ClientQuery) ([]domain.Client, error) {
	if mock.ListClientsFunc == nil {
		panic("clientServiceMock.ListClientsFunc: method is nil but clientService.ListClients was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   client.ClientQuery
	}{Ctx: ctx, Q: q}
	mock.lockListClients.Lock()
	mock.calls.ListClients = append(mock.calls.ListClients, callInfo)
	mock.lockListClients.Unlock()
	return mock.ListClientsFunc(ctx, q)
}

func (mock *clientServiceMock) ListClientsCalls() []struct {
	Ctx context.Context
	Q   client.ClientQuery
} {
	var calls []struct {
		Ctx context.Context
		Q   client.ClientQuery
	}
	mock.lockListClients.RLock()
	calls = mock.calls.ListClients
	mock.lockListClients.RUnlock()
	return calls
}

func (mock *clientServiceMock) RecentSearches() []domain.SearchParameter {
	if mock.RecentSearchesFunc == nil {
		panic("clientServiceMock.RecentSearchesFunc: method is nil but clientService.RecentSearches was just called")
	}
	mock.lockRecentSearches.Lock()
	mock.calls.RecentSearches = append(mock.calls.RecentSearches, struct{}{})
	mock.lockRecentSearches.Unlock()
	return mock.RecentSearchesFunc()
}

func (mock *clientServiceMock) RecentSearchesCalls() []struct{} {
	var calls []struct{}
	mock.lockRecentSearches.RLock()
	calls = mock.calls.RecentSearches
	mock.lockRecentSearches.RUnlock()
	return calls
}

func (mock *clientServiceMock) RecentSearchesFromStore(ctx context.Context) ([]domain.SearchParameter, error) {
	if mock.RecentSearchesFromStoreFunc == nil {
		panic("clientServiceMock.RecentSearchesFromStoreFunc: method is nil but clientService.RecentSearchesFromStore was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockRecentSearchesFromStore.Lock()
	mock.calls.RecentSearchesFromStore = append(mock.calls.RecentSearchesFromStore, callInfo)
	mock.lockRecentSearchesFromStore.Unlock()
	return mock.RecentSearchesFromStoreFunc(ctx)
}

func (mock *clientServiceMock) RecentSearchesFromStoreCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockRecentSearchesFromStore.RLock()
	calls = mock.calls.RecentSearchesFromStore
	mock.lockRecentSearchesFromStore.RUnlock()
	return calls
}

func (mock *clientServiceMock) UpdateClient(ctx context.Context, id int64, input client.ClientInput) error {
	if mock.UpdateClientFunc == nil {
		panic("clientServiceMock.UpdateClientFunc: method is nil but clientService.UpdateClient was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    int64
		Input client.ClientInput
	}{Ctx: ctx, Id: id, Input: input}
	mock.lockUpdateClient.Lock()
	mock.calls.UpdateClient = append(mock.calls.UpdateClient, callInfo)
	mock.lockUpdateClient.Unlock()
	return mock.UpdateClientFunc(ctx, id, input)
}

func (mock *clientServiceMock) UpdateClientCalls() []struct {
	Ctx   context.Context
	Id    int64
	Input client.ClientInput
} {
	var calls []struct {
		Ctx   context.Context
		Id    int64
		Input client.ClientInput
	}
	mock.lockUpdateClient.RLock()
	calls = mock.calls.UpdateClient
	mock.lockUpdateClient.RUnlock()
	return calls
}
