package inspection

import (
	"context"
	"github.com/heartmarshall/peritagem-backend/internal/domain"
	"sync"
)

var _ lifecycleMetrics = &lifecycleMetricsMock{}

type lifecycleMetricsMock struct {
	AuditGapFunc        func(ctx context.Context, action domain.Action)
	StartTransitionFunc func(ctx context.Context, action domain.Action) (context.Context, func(error))

	calls struct {
		AuditGap []struct {
			Ctx    context.Context
			Action domain.Action
		}
		StartTransition []struct {
			Ctx    context.Context
			Action domain.Action
		}
	}
	lockAuditGap        sync.RWMutex
	lockStartTransition sync.RWMutex
}

func (mock *lifecycleMetricsMock) AuditGap(ctx context.Context, action domain.Action) {
	if mock.AuditGapFunc == nil {
		panic("lifecycleMetricsMock.AuditGapFunc: method is nil but lifecycleMetrics.AuditGap was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Action domain.Action
	}{Ctx: ctx, Action: action}
	mock.lockAuditGap.Lock()
	mock.calls.AuditGap = append(mock.calls.AuditGap, callInfo)
	mock.lockAuditGap.Unlock()
	mock.AuditGapFunc(ctx, action)
}

func (mock *lifecycleMetricsMock) AuditGapCalls() []struct {
	Ctx    context.Context
	Action domain.Action
} {
	mock.lockAuditGap.RLock()
	calls := mock.calls.AuditGap
	mock.lockAuditGap.RUnlock()
	return calls
}

func (mock *lifecycleMetricsMock) StartTransition(ctx context.Context, action domain.Action) (context.Context, func(error)) {
	if mock.StartTransitionFunc == nil {
		panic("lifecycleMetricsMock.StartTransitionFunc: method is nil but lifecycleMetrics.StartTransition was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Action domain.Action
	}{Ctx: ctx, Action: action}
	mock.lockStartTransition.Lock()
	mock.calls.StartTransition = append(mock.calls.StartTransition, callInfo)
	mock.lockStartTransition.Unlock()
	return mock.StartTransitionFunc(ctx, action)
}

func (mock *lifecycleMetricsMock) StartTransitionCalls() []struct {
	Ctx    context.Context
	Action domain.Action
} {
	mock.lockStartTransition.RLock()
	calls := mock.calls.StartTransition
	mock.lockStartTransition.RUnlock()
	return calls
}
