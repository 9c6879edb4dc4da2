package contractor

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/homefax/homefax-backend/internal/domain"
)

var _ assignmentRepo = &assignmentRepoMock{}

type assignmentRepoMock struct {
	GetByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.ContractorAssignment, error)
	ListFunc      func(ctx context.Context, filter domain.AssignmentFilter) ([]domain.ContractorAssignment, error)
	SetStatusFunc func(ctx context.Context, id uuid.UUID, status domain.AssignmentStatus, completedDate *time.Time) (*domain.ContractorAssignment, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.AssignmentFilter
		}
		SetStatus []struct {
			Ctx           context.Context
			ID            uuid.UUID
			Status        domain.AssignmentStatus
			CompletedDate *time.Time
		}
	}
	lockGetByID   sync.RWMutex
	lockList      sync.RWMutex
	lockSetStatus sync.RWMutex
}

func (mock *assignmentRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.ContractorAssignment, error) {
	if mock.GetByIDFunc == nil {
		panic("assignmentRepoMock.GetByIDFunc: method is nil but assignmentRepo.GetByID was just called")
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

func (mock *assignmentRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *assignmentRepoMock) List(ctx context.Context, filter domain.AssignmentFilter) ([]domain.ContractorAssignment, error) {
	if mock.ListFunc == nil {
		panic("assignmentRepoMock.ListFunc: method is nil but assignmentRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.AssignmentFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *assignmentRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.AssignmentFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *assignmentRepoMock) SetStatus(ctx context.Context, id uuid.UUID, status domain.AssignmentStatus, completedDate *time.Time) (*domain.ContractorAssignment, error) {
	if mock.SetStatusFunc == nil {
		panic("assignmentRepoMock.SetStatusFunc: method is nil but assignmentRepo.SetStatus was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		ID            uuid.UUID
		Status        domain.AssignmentStatus
		CompletedDate *time.Time
	}{Ctx: ctx, ID: id, Status: status, CompletedDate: completedDate}
	mock.lockSetStatus.Lock()
	mock.calls.SetStatus = append(mock.calls.SetStatus, callInfo)
	mock.lockSetStatus.Unlock()
	return mock.SetStatusFunc(ctx, id, status, completedDate)
}

func (mock *assignmentRepoMock) SetStatusCalls() []struct {
	Ctx           context.Context
	ID            uuid.UUID
	Status        domain.AssignmentStatus
	CompletedDate *time.Time
} {
	mock.lockSetStatus.RLock()
	calls := mock.calls.SetStatus
	mock.lockSetStatus.RUnlock()
	return calls
}
