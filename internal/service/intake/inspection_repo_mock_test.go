package intake

import (
	"context"
	"github.com/heartmarshall/peritagem-backend/internal/domain"
	"sync"
)

var _ inspectionRepo = &inspectionRepoMock{}

type inspectionRepoMock struct {
	CreateFunc func(ctx context.Context, rec domain.Inspection) (*domain.Inspection, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Rec domain.Inspection
		}
	}
	lockCreate sync.RWMutex
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
