package inspection

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/peritagem-backend/internal/domain"
	"sync"
)

var _ historyRepo = &historyRepoMock{}

type historyRepoMock struct {
	AppendFunc func(ctx context.Context, entry domain.HistoryEntry) (*domain.HistoryEntry, error)
	ListFunc   func(ctx context.Context, inspectionID uuid.UUID) ([]domain.HistoryEntry, error)

	calls struct {
		Append []struct {
			Ctx   context.Context
			Entry domain.HistoryEntry
		}
		List []struct {
			Ctx          context.Context
			InspectionID uuid.UUID
		}
	}
	lockAppend sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *historyRepoMock) Append(ctx context.Context, entry domain.HistoryEntry) (*domain.HistoryEntry, error) {
	if mock.AppendFunc == nil {
		panic("historyRepoMock.AppendFunc: method is nil but historyRepo.Append was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry domain.HistoryEntry
	}{Ctx: ctx, Entry: entry}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, entry)
}

func (mock *historyRepoMock) AppendCalls() []struct {
	Ctx   context.Context
	Entry domain.HistoryEntry
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *historyRepoMock) List(ctx context.Context, inspectionID uuid.UUID) ([]domain.HistoryEntry, error) {
	if mock.ListFunc == nil {
		panic("historyRepoMock.ListFunc: method is nil but historyRepo.List was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		InspectionID uuid.UUID
	}{Ctx: ctx, InspectionID: inspectionID}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, inspectionID)
}

func (mock *historyRepoMock) ListCalls() []struct {
	Ctx          context.Context
	InspectionID uuid.UUID
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
