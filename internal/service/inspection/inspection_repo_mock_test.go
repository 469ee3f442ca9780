package inspection

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/peritagem-backend/internal/domain"
	"sync"
)

var _ inspectionRepo = &inspectionRepoMock{}

type inspectionRepoMock struct {
	CreateFunc       func(ctx context.Context, rec domain.Inspection) (*domain.Inspection, error)
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Inspection, error)
	ListFunc         func(ctx context.Context, filter domain.InspectionFilter) ([]*domain.Inspection, int, error)
	UpdateStatusFunc func(ctx context.Context, id uuid.UUID, upd domain.InspectionStatusUpdate) (*domain.Inspection, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Rec domain.Inspection
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.InspectionFilter
		}
		UpdateStatus []struct {
			Ctx context.Context
			Id  uuid.UUID
			Upd domain.InspectionStatusUpdate
		}
	}
	lockCreate       sync.RWMutex
	lockDelete       sync.RWMutex
	lockGetByID      sync.RWMutex
	lockList         sync.RWMutex
	lockUpdateStatus sync.RWMutex
}

func (mock *inspectionRepoMock) Create(ctx context.Context, rec domain.Inspection) (*domain.Inspection, error) {
	if mock.CreateFunc == nil {
		panic("inspectionRepoMock.CreateFunc: method is nil but inspectionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec domain.Inspection
	}{Ctx: ctx, Rec: rec}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *inspectionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rec domain.Inspection
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *inspectionRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("inspectionRepoMock.DeleteFunc: method is nil but inspectionRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *inspectionRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *inspectionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Inspection, error) {
	if mock.GetByIDFunc == nil {
		panic("inspectionRepoMock.GetByIDFunc: method is nil but inspectionRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *inspectionRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *inspectionRepoMock) List(ctx context.Context, filter domain.InspectionFilter) ([]*domain.Inspection, int, error) {
	if mock.ListFunc == nil {
		panic("inspectionRepoMock.ListFunc: method is nil but inspectionRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.InspectionFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *inspectionRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.InspectionFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *inspectionRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, upd domain.InspectionStatusUpdate) (*domain.Inspection, error) {
	if mock.UpdateStatusFunc == nil {
		panic("inspectionRepoMock.UpdateStatusFunc: method is nil but inspectionRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
		Upd domain.InspectionStatusUpdate
	}{Ctx: ctx, Id: id, Upd: upd}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, upd)
}

func (mock *inspectionRepoMock) UpdateStatusCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
	Upd domain.InspectionStatusUpdate
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}
