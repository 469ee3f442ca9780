package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/peritagem-backend/internal/domain"
	intakesvc "github.com/heartmarshall/peritagem-backend/internal/service/intake"
	"sync"
)

var _ intakeService = &intakeServiceMock{}

type intakeServiceMock struct {
	CreateFunc  func(ctx context.Context, input intakesvc.CreateInput) (*domain.IntakeItem, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error
	ListFunc    func(ctx context.Context, status domain.IntakeStatus) ([]*domain.IntakeItem, error)
	PromoteFunc func(ctx context.Context, input intakesvc.PromoteInput) (*domain.Inspection, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input intakesvc.CreateInput
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Status domain.IntakeStatus
		}
		Promote []struct {
			Ctx   context.Context
			Input intakesvc.PromoteInput
		}
	}
	lockCreate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockList    sync.RWMutex
	lockPromote sync.RWMutex
}

func (mock *intakeServiceMock) Create(ctx context.Context, input intakesvc.CreateInput) (*domain.IntakeItem, error) {
	if mock.CreateFunc == nil {
		panic("intakeServiceMock.CreateFunc: method is nil but intakeService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input intakesvc.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *intakeServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input intakesvc.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *intakeServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("intakeServiceMock.DeleteFunc: method is nil but intakeService.Delete was just called")
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

func (mock *intakeServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *intakeServiceMock) List(ctx context.Context, status domain.IntakeStatus) ([]*domain.IntakeItem, error) {
	if mock.ListFunc == nil {
		panic("intakeServiceMock.ListFunc: method is nil but intakeService.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Status domain.IntakeStatus
	}{Ctx: ctx, Status: status}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, status)
}

func (mock *intakeServiceMock) ListCalls() []struct {
	Ctx    context.Context
	Status domain.IntakeStatus
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *intakeServiceMock) Promote(ctx context.Context, input intakesvc.PromoteInput) (*domain.Inspection, error) {
	if mock.PromoteFunc == nil {
		panic("intakeServiceMock.PromoteFunc: method is nil but intakeService.Promote was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input intakesvc.PromoteInput
	}{Ctx: ctx, Input: input}
	mock.lockPromote.Lock()
	mock.calls.Promote = append(mock.calls.Promote, callInfo)
	mock.lockPromote.Unlock()
	return mock.PromoteFunc(ctx, input)
}

func (mock *intakeServiceMock) PromoteCalls() []struct {
	Ctx   context.Context
	Input intakesvc.PromoteInput
} {
	mock.lockPromote.RLock()
	calls := mock.calls.Promote
	mock.lockPromote.RUnlock()
	return calls
}
