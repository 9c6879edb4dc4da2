package property

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/homefax/homefax-backend/internal/domain"
)

var _ propertyRepo = &propertyRepoMock{}

type propertyRepoMock struct {
	CreateFunc   func(ctx context.Context, p *domain.Property) (*domain.Property, error)
	GetByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	UpdateFunc   func(ctx context.Context, id uuid.UUID, params domain.PropertyUpdateParams) (*domain.Property, error)
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error
	ListFunc     func(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error)
	SetOwnerFunc func(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*domain.Property, error)
	VerifyFunc   func(ctx context.Context, id uuid.UUID, verifiedAt time.Time) (*domain.Property, error)

	calls struct {
		Create []struct {
			Ctx      context.Context
			Property *domain.Property
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Update []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Params domain.PropertyUpdateParams
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.PropertyFilter
		}
		SetOwner []struct {
			Ctx     context.Context
			ID      uuid.UUID
			OwnerID uuid.UUID
		}
		Verify []struct {
			Ctx        context.Context
			ID         uuid.UUID
			VerifiedAt time.Time
		}
	}
	lockCreate   sync.RWMutex
	lockGetByID  sync.RWMutex
	lockUpdate   sync.RWMutex
	lockDelete   sync.RWMutex
	lockList     sync.RWMutex
	lockSetOwner sync.RWMutex
	lockVerify   sync.RWMutex
}

func (mock *propertyRepoMock) Create(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	if mock.CreateFunc == nil {
		panic("propertyRepoMock.CreateFunc: method is nil but propertyRepo.Create was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Property *domain.Property
	}{Ctx: ctx, Property: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *propertyRepoMock) CreateCalls() []struct {
	Ctx      context.Context
	Property *domain.Property
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *propertyRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	if mock.GetByIDFunc == nil {
		panic("propertyRepoMock.GetByIDFunc: method is nil but propertyRepo.GetByID was just called")
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

func (mock *propertyRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *propertyRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.PropertyUpdateParams) (*domain.Property, error) {
	if mock.UpdateFunc == nil {
		panic("propertyRepoMock.UpdateFunc: method is nil but propertyRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.PropertyUpdateParams
	}{Ctx: ctx, ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *propertyRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Params domain.PropertyUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *propertyRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("propertyRepoMock.DeleteFunc: method is nil but propertyRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *propertyRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *propertyRepoMock) List(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error) {
	if mock.ListFunc == nil {
		panic("propertyRepoMock.ListFunc: method is nil but propertyRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.PropertyFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *propertyRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.PropertyFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *propertyRepoMock) SetOwner(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*domain.Property, error) {
	if mock.SetOwnerFunc == nil {
		panic("propertyRepoMock.SetOwnerFunc: method is nil but propertyRepo.SetOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      uuid.UUID
		OwnerID uuid.UUID
	}{Ctx: ctx, ID: id, OwnerID: ownerID}
	mock.lockSetOwner.Lock()
	mock.calls.SetOwner = append(mock.calls.SetOwner, callInfo)
	mock.lockSetOwner.Unlock()
	return mock.SetOwnerFunc(ctx, id, ownerID)
}

func (mock *propertyRepoMock) SetOwnerCalls() []struct {
	Ctx     context.Context
	ID      uuid.UUID
	OwnerID uuid.UUID
} {
	mock.lockSetOwner.RLock()
	calls := mock.calls.SetOwner
	mock.lockSetOwner.RUnlock()
	return calls
}

func (mock *propertyRepoMock) Verify(ctx context.Context, id uuid.UUID, verifiedAt time.Time) (*domain.Property, error) {
	if mock.VerifyFunc == nil {
		panic("propertyRepoMock.VerifyFunc: method is nil but propertyRepo.Verify was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ID         uuid.UUID
		VerifiedAt time.Time
	}{Ctx: ctx, ID: id, VerifiedAt: verifiedAt}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(ctx, id, verifiedAt)
}

func (mock *propertyRepoMock) VerifyCalls() []struct {
	Ctx        context.Context
	ID         uuid.UUID
	VerifiedAt time.Time
} {
	mock.lockVerify.RLock()
	calls := mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}
