package admin

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/homefax/homefax-backend/internal/domain"
)

var _ reportRepo = &reportRepoMock{}

type reportRepoMock struct {
	ListFunc          func(ctx context.Context, filter domain.ReportFilter) ([]domain.Report, error)
	CountFunc         func(ctx context.Context) (int, error)
	CountByStatusFunc func(ctx context.Context, status domain.ReportStatus) (int, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			Filter domain.ReportFilter
		}
		Count []struct {
			Ctx context.Context
		}
		CountByStatus []struct {
			Ctx    context.Context
			Status domain.ReportStatus
		}
	}
	lockList          sync.RWMutex
	lockCount         sync.RWMutex
	lockCountByStatus sync.RWMutex
}

func (mock *reportRepoMock) List(ctx context.Context, filter domain.ReportFilter) ([]domain.Report, error) {
	if mock.ListFunc == nil {
		panic("reportRepoMock.ListFunc: method is nil but reportRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ReportFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *reportRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.ReportFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *reportRepoMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("reportRepoMock.CountFunc: method is nil but reportRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *reportRepoMock) CountCalls() []struct {
	Ctx context.Context
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *reportRepoMock) CountByStatus(ctx context.Context, status domain.ReportStatus) (int, error) {
	if mock.CountByStatusFunc == nil {
		panic("reportRepoMock.CountByStatusFunc: method is nil but reportRepo.CountByStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Status domain.ReportStatus
	}{Ctx: ctx, Status: status}
	mock.lockCountByStatus.Lock()
	mock.calls.CountByStatus = append(mock.calls.CountByStatus, callInfo)
	mock.lockCountByStatus.Unlock()
	return mock.CountByStatusFunc(ctx, status)
}

func (mock *reportRepoMock) CountByStatusCalls() []struct {
	Ctx    context.Context
	Status domain.ReportStatus
} {
	mock.lockCountByStatus.RLock()
	calls := mock.calls.CountByStatus
	mock.lockCountByStatus.RUnlock()
	return calls
}

var _ updateRepo = &updateRepoMock{}

type updateRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.CommunityUpdate, error)
	ListFunc    func(ctx context.Context, filter domain.CommunityUpdateFilter) ([]domain.CommunityUpdate, error)
	CountFunc   func(ctx context.Context) (int, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.CommunityUpdateFilter
		}
		Count []struct {
			Ctx context.Context
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockCount   sync.RWMutex
}

func (mock *updateRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.CommunityUpdate, error) {
	if mock.GetByIDFunc == nil {
		panic("updateRepoMock.GetByIDFunc: method is nil but updateRepo.GetByID was just called")
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

func (mock *updateRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *updateRepoMock) List(ctx context.Context, filter domain.CommunityUpdateFilter) ([]domain.CommunityUpdate, error) {
	if mock.ListFunc == nil {
		panic("updateRepoMock.ListFunc: method is nil but updateRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.CommunityUpdateFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *updateRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.CommunityUpdateFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *updateRepoMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("updateRepoMock.CountFunc: method is nil but updateRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

var _ propertyRepo = &propertyRepoMock{}

type propertyRepoMock struct {
	CountFunc         func(ctx context.Context) (int, error)
	CountVerifiedFunc func(ctx context.Context) (int, error)

	calls struct {
		Count []struct {
			Ctx context.Context
		}
		CountVerified []struct {
			Ctx context.Context
		}
	}
	lockCount         sync.RWMutex
	lockCountVerified sync.RWMutex
}

func (mock *propertyRepoMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("propertyRepoMock.CountFunc: method is nil but propertyRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *propertyRepoMock) CountVerified(ctx context.Context) (int, error) {
	if mock.CountVerifiedFunc == nil {
		panic("propertyRepoMock.CountVerifiedFunc: method is nil but propertyRepo.CountVerified was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCountVerified.Lock()
	mock.calls.CountVerified = append(mock.calls.CountVerified, callInfo)
	mock.lockCountVerified.Unlock()
	return mock.CountVerifiedFunc(ctx)
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CountFunc func(ctx context.Context) (int, error)

	calls struct {
		Count []struct {
			Ctx context.Context
		}
	}
	lockCount sync.RWMutex
}

func (mock *userRepoMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("userRepoMock.CountFunc: method is nil but userRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

var _ renovationRepo = &renovationRepoMock{}

type renovationRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Renovation, error)
	VerifyFunc  func(ctx context.Context, id uuid.UUID) (*domain.Renovation, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Verify []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
	lockVerify  sync.RWMutex
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

func (mock *renovationRepoMock) Verify(ctx context.Context, id uuid.UUID) (*domain.Renovation, error) {
	if mock.VerifyFunc == nil {
		panic("renovationRepoMock.VerifyFunc: method is nil but renovationRepo.Verify was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(ctx, id)
}

func (mock *renovationRepoMock) VerifyCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockVerify.RLock()
	calls := mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}
