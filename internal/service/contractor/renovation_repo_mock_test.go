package contractor

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/homefax/homefax-backend/internal/domain"
)

var _ renovationRepo = &renovationRepoMock{}

type renovationRepoMock struct {
	CreateFunc   func(ctx context.Context, ren *domain.Renovation) (*domain.Renovation, error)
	GetByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.Renovation, error)
	UpdateFunc   func(ctx context.Context, id uuid.UUID, params domain.RenovationUpdateParams) (*domain.Renovation, error)
	ListFunc     func(ctx context.Context, filter domain.RenovationFilter) ([]domain.Renovation, error)
	CompleteFunc func(ctx context.Context, id uuid.UUID, endDate time.Time) (*domain.Renovation, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Ren *domain.Renovation
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Update []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Params domain.RenovationUpdateParams
		}
		List []struct {
			Ctx    context.Context
			Filter domain.RenovationFilter
		}
		Complete []struct {
			Ctx     context.Context
			ID      uuid.UUID
			EndDate time.Time
		}
	}
	lockCreate   sync.RWMutex
	lockGetByID  sync.RWMutex
	lockUpdate   sync.RWMutex
	lockList     sync.RWMutex
	lockComplete sync.RWMutex
}

func (mock *renovationRepoMock) Create(ctx context.Context, ren *domain.Renovation) (*domain.Renovation, error) {
	if mock.CreateFunc == nil {
		panic("renovationRepoMock.CreateFunc: method is nil but renovationRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ren *domain.Renovation
	}{Ctx: ctx, Ren: ren}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ren)
}

func (mock *renovationRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Ren *domain.Renovation
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *renovationRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Renovation, error) {
	if mock.GetByIDFunc == nil {
		panic("renovationRepoMock.GetByIDFunc: method is nil but renovationRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *renovationRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *renovationRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.RenovationUpdateParams) (*domain.Renovation, error) {
	if mock.UpdateFunc == nil {
		panic("renovationRepoMock.UpdateFunc: method is nil but renovationRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.RenovationUpdateParams
	}{Ctx: ctx, ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *renovationRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Params domain.RenovationUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *renovationRepoMock) List(ctx context.Context, filter domain.RenovationFilter) ([]domain.Renovation, error) {
	if mock.ListFunc == nil {
		panic("renovationRepoMock.ListFunc: method is nil but renovationRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.RenovationFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *renovationRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.RenovationFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *renovationRepoMock) Complete(ctx context.Context, id uuid.UUID, endDate time.Time) (*domain.Renovation, error) {
	if mock.CompleteFunc == nil {
		panic("renovationRepoMock.CompleteFunc: method is nil but renovationRepo.Complete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      uuid.UUID
		EndDate time.Time
	}{Ctx: ctx, ID: id, EndDate: endDate}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, id, endDate)
}

func (mock *renovationRepoMock) CompleteCalls() []struct {
	Ctx     context.Context
	ID      uuid.UUID
	EndDate time.Time
} {
	mock.lockComplete.RLock()
	calls := mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}
