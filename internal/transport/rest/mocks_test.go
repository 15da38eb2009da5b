package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/recoverylock-backend/internal/domain"
	"github.com/heartmarshall/recoverylock-backend/internal/service/checkin"
)

var (
	_ reflectionService = &reflectionServiceMock{}
	_ checkInService    = &checkInServiceMock{}
	_ deviceRegistrar   = &deviceRegistrarMock{}
)

// ---------------------------------------------------------------------------
// reflectionServiceMock
// ---------------------------------------------------------------------------

type reflectionServiceMock struct {
	GenerateFunc func(ctx context.Context, in domain.CheckInInput) (*domain.ReflectionResult, error)

	calls struct {
		Generate []struct {
			Ctx context.Context
			In  domain.CheckInInput
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *reflectionServiceMock) Generate(ctx context.Context, in domain.CheckInInput) (*domain.ReflectionResult, error) {
	if mock.GenerateFunc == nil {
		panic("reflectionServiceMock.GenerateFunc: method is nil but reflectionService.Generate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  domain.CheckInInput
	}{Ctx: ctx, In: in}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, in)
}

func (mock *reflectionServiceMock) GenerateCalls() []struct {
	Ctx context.Context
	In  domain.CheckInInput
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// checkInServiceMock
// ---------------------------------------------------------------------------

type checkInServiceMock struct {
	RecordFunc func(ctx context.Context, input checkin.RecordInput) (*domain.HistoryEntry, error)
	ListFunc   func(ctx context.Context, input checkin.ListInput) ([]*domain.HistoryEntry, error)
	StatsFunc  func(ctx context.Context, input checkin.StatsInput) (*domain.CheckInStats, error)

	calls struct {
		Record []struct {
			Ctx   context.Context
			Input checkin.RecordInput
		}
		List []struct {
			Ctx   context.Context
			Input checkin.ListInput
		}
		Stats []struct {
			Ctx   context.Context
			Input checkin.StatsInput
		}
	}
	lockRecord sync.RWMutex
	lockList   sync.RWMutex
	lockStats  sync.RWMutex
}

func (mock *checkInServiceMock) Record(ctx context.Context, input checkin.RecordInput) (*domain.HistoryEntry, error) {
	if mock.RecordFunc == nil {
		panic("checkInServiceMock.RecordFunc: method is nil but checkInService.Record was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input checkin.RecordInput
	}{Ctx: ctx, Input: input}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	return mock.RecordFunc(ctx, input)
}

func (mock *checkInServiceMock) RecordCalls() []struct {
	Ctx   context.Context
	Input checkin.RecordInput
} {
	mock.lockRecord.RLock()
	calls := mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}

func (mock *checkInServiceMock) List(ctx context.Context, input checkin.ListInput) ([]*domain.HistoryEntry, error) {
	if mock.ListFunc == nil {
		panic("checkInServiceMock.ListFunc: method is nil but checkInService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input checkin.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *checkInServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input checkin.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *checkInServiceMock) Stats(ctx context.Context, input checkin.StatsInput) (*domain.CheckInStats, error) {
	if mock.StatsFunc == nil {
		panic("checkInServiceMock.StatsFunc: method is nil but checkInService.Stats was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input checkin.StatsInput
	}{Ctx: ctx, Input: input}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx, input)
}

func (mock *checkInServiceMock) StatsCalls() []struct {
	Ctx   context.Context
	Input checkin.StatsInput
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// deviceRegistrarMock
// ---------------------------------------------------------------------------

type deviceRegistrarMock struct {
	RegisterDeviceFunc func(ctx context.Context) (*checkin.Registration, error)

	calls struct {
		RegisterDevice []struct {
			Ctx context.Context
		}
	}
	lockRegisterDevice sync.RWMutex
}

func (mock *deviceRegistrarMock) RegisterDevice(ctx context.Context) (*checkin.Registration, error) {
	if mock.RegisterDeviceFunc == nil {
		panic("deviceRegistrarMock.RegisterDeviceFunc: method is nil but deviceRegistrar.RegisterDevice was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockRegisterDevice.Lock()
	mock.calls.RegisterDevice = append(mock.calls.RegisterDevice, callInfo)
	mock.lockRegisterDevice.Unlock()
	return mock.RegisterDeviceFunc(ctx)
}

func (mock *deviceRegistrarMock) RegisterDeviceCalls() []struct {
	Ctx context.Context
} {
	mock.lockRegisterDevice.RLock()
	calls := mock.calls.RegisterDevice
	mock.lockRegisterDevice.RUnlock()
	return calls
}
