package rest

import (
	"context"
	"github.com/heartmarshall/peritagem-backend/internal/domain"
	profilesvc "github.com/heartmarshall/peritagem-backend/internal/service/profile"
	"sync"
)

var _ profileService = &profileServiceMock{}

type profileServiceMock struct {
	ListFunc   func(ctx context.Context, status *domain.ProfileStatus) ([]*domain.Profile, error)
	UpdateFunc func(ctx context.Context, input profilesvc.UpdateInput) (*domain.Profile, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			Status *domain.ProfileStatus
		}
		Update []struct {
			Ctx   context.Context
			Input profilesvc.UpdateInput
		}
	}
	lockList   sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *profileServiceMock) List(ctx context.Context, status *domain.ProfileStatus) ([]*domain.Profile, error) {
	if mock.ListFunc == nil {
		panic("profileServiceMock.ListFunc: method is nil but profileService.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Status *domain.ProfileStatus
	}{Ctx: ctx, Status: status}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, status)
}

func (mock *profileServiceMock) ListCalls() []struct {
	Ctx    context.Context
	Status *domain.ProfileStatus
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *profileServiceMock) Update(ctx context.Context, input profilesvc.UpdateInput) (*domain.Profile, error) {
	if mock.UpdateFunc == nil {
		panic("profileServiceMock.UpdateFunc: method is nil but profileService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input profilesvc.UpdateInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *profileServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input profilesvc.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
