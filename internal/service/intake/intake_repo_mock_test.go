package intake

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/peritagem-backend/internal/domain"
	"sync"
)

var _ intakeRepo = &intakeRepoMock{}

type intakeRepoMock struct {
	CreateFunc        func(ctx context.Context, item domain.IntakeItem) (*domain.IntakeItem, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	GetForUpdateFunc  func(ctx context.Context, id uuid.UUID) (*domain.IntakeItem, error)
	ListByStatusFunc  func(ctx context.Context, status domain.IntakeStatus) ([]*domain.IntakeItem, error)
	MarkInspectedFunc func(ctx context.Context, id uuid.UUID, inspectionID uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx  context.Context
			Item domain.IntakeItem
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetForUpdate []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListByStatus []struct {
			Ctx    context.Context
			Status domain.IntakeStatus
		}
		MarkInspected []struct {
			Ctx          context.Context
			Id           uuid.UUID
			InspectionID uuid.UUID
		}
	}
	lockCreate        sync.RWMutex
	lockDelete        sync.RWMutex
	lockGetForUpdate  sync.RWMutex
	lockListByStatus  sync.RWMutex
	lockMarkInspected sync.RWMutex
}

func (mock *intakeRepoMock) Create(ctx context.Context, item domain.IntakeItem) (*domain.IntakeItem, error) {
	if mock.CreateFunc == nil {
		panic("intakeRepoMock.CreateFunc: method is nil but intakeRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Item domain.IntakeItem
	}{Ctx: ctx, Item: item}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, item)
}

func (mock *intakeRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Item domain.IntakeItem
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *intakeRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("intakeRepoMock.DeleteFunc: method is nil but intakeRepo.Delete was just called")
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

func (mock *intakeRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *intakeRepoMock) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.IntakeItem, error) {
	if mock.GetForUpdateFunc == nil {
		panic("intakeRepoMock.GetForUpdateFunc: method is nil but intakeRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, id)
}

func (mock *intakeRepoMock) GetForUpdateCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *intakeRepoMock) ListByStatus(ctx context.Context, status domain.IntakeStatus) ([]*domain.IntakeItem, error) {
	if mock.ListByStatusFunc == nil {
		panic("intakeRepoMock.ListByStatusFunc: method is nil but intakeRepo.ListByStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Status domain.IntakeStatus
	}{Ctx: ctx, Status: status}
	mock.lockListByStatus.Lock()
	mock.calls.ListByStatus = append(mock.calls.ListByStatus, callInfo)
	mock.lockListByStatus.Unlock()
	return mock.ListByStatusFunc(ctx, status)
}

func (mock *intakeRepoMock) ListByStatusCalls() []struct {
	Ctx    context.Context
	Status domain.IntakeStatus
} {
	mock.lockListByStatus.RLock()
	calls := mock.calls.ListByStatus
	mock.lockListByStatus.RUnlock()
	return calls
}

func (mock *intakeRepoMock) MarkInspected(ctx context.Context, id uuid.UUID, inspectionID uuid.UUID) error {
	if mock.MarkInspectedFunc == nil {
		panic("intakeRepoMock.MarkInspectedFunc: method is nil but intakeRepo.MarkInspected was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		Id           uuid.UUID
		InspectionID uuid.UUID
	}{Ctx: ctx, Id: id, InspectionID: inspectionID}
	mock.lockMarkInspected.Lock()
	mock.calls.MarkInspected = append(mock.calls.MarkInspected, callInfo)
	mock.lockMarkInspected.Unlock()
	return mock.MarkInspectedFunc(ctx, id, inspectionID)
}

func (mock *intakeRepoMock) MarkInspectedCalls() []struct {
	Ctx          context.Context
	Id           uuid.UUID
	InspectionID uuid.UUID
} {
	mock.lockMarkInspected.RLock()
	calls := mock.calls.MarkInspected
	mock.lockMarkInspected.RUnlock()
	return calls
}
