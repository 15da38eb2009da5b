package checkin

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/recoverylock-backend/internal/domain"
)

var (
	_ historyRepo = &historyRepoMock{}
	_ deviceRepo  = &deviceRepoMock{}
	_ reflector   = &reflectorMock{}
	_ tokenIssuer = &tokenIssuerMock{}
)

type historyRepoMock struct {
	CreateFunc     func(ctx context.Context, entry *domain.HistoryEntry) (*domain.HistoryEntry, error)
	CountFunc      func(ctx context.Context, deviceID uuid.UUID) (int, error)
	ListFunc       func(ctx context.Context, deviceID uuid.UUID, limit, offset int) ([]*domain.HistoryEntry, error)
	TimestampsFunc func(ctx context.Context, deviceID uuid.UUID) ([]time.Time, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Entry *domain.HistoryEntry
		}
		Count []struct {
			Ctx      context.Context
			DeviceID uuid.UUID
		}
		List []struct {
			Ctx      context.Context
			DeviceID uuid.UUID
			Limit    int
			Offset   int
		}
		Timestamps []struct {
			Ctx      context.Context
			DeviceID uuid.UUID
		}
	}
	lockCreate     sync.RWMutex
	lockCount      sync.RWMutex
	lockList       sync.RWMutex
	lockTimestamps sync.RWMutex
}

func (mock *historyRepoMock) Create(ctx context.Context, entry *domain.HistoryEntry) (*domain.HistoryEntry, error) {
	if mock.CreateFunc == nil {
		panic("historyRepoMock.CreateFunc: method is nil but historyRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry *domain.HistoryEntry
	}{Ctx: ctx, Entry: entry}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, entry)
}

func (mock *historyRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Entry *domain.HistoryEntry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *historyRepoMock) Count(ctx context.Context, deviceID uuid.UUID) (int, error) {
	if mock.CountFunc == nil {
		panic("historyRepoMock.CountFunc: method is nil but historyRepo.Count was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		DeviceID uuid.UUID
	}{Ctx: ctx, DeviceID: deviceID}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, deviceID)
}

func (mock *historyRepoMock) CountCalls() []struct {
	Ctx      context.Context
	DeviceID uuid.UUID
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *historyRepoMock) List(ctx context.Context, deviceID uuid.UUID, limit, offset int) ([]*domain.HistoryEntry, error) {
	if mock.ListFunc == nil {
		panic("historyRepoMock.ListFunc: method is nil but historyRepo.List was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		DeviceID uuid.UUID
		Limit    int
		Offset   int
	}{Ctx: ctx, DeviceID: deviceID, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, deviceID, limit, offset)
}

func (mock *historyRepoMock) ListCalls() []struct {
	Ctx      context.Context
	DeviceID uuid.UUID
	Limit    int
	Offset   int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *historyRepoMock) Timestamps(ctx context.Context, deviceID uuid.UUID) ([]time.Time, error) {
	if mock.TimestampsFunc == nil {
		panic("historyRepoMock.TimestampsFunc: method is nil but historyRepo.Timestamps was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		DeviceID uuid.UUID
	}{Ctx: ctx, DeviceID: deviceID}
	mock.lockTimestamps.Lock()
	mock.calls.Timestamps = append(mock.calls.Timestamps, callInfo)
	mock.lockTimestamps.Unlock()
	return mock.TimestampsFunc(ctx, deviceID)
}

func (mock *historyRepoMock) TimestampsCalls() []struct {
	Ctx      context.Context
	DeviceID uuid.UUID
} {
	mock.lockTimestamps.RLock()
	calls := mock.calls.Timestamps
	mock.lockTimestamps.RUnlock()
	return calls
}

type deviceRepoMock struct {
	CreateFunc func(ctx context.Context) (*domain.Device, error)
	ExistsFunc func(ctx context.Context, deviceID uuid.UUID) (bool, error)

	calls struct {
		Create []struct {
			Ctx context.Context
		}
		Exists []struct {
			Ctx      context.Context
			DeviceID uuid.UUID
		}
	}
	lockCreate sync.RWMutex
	lockExists sync.RWMutex
}

func (mock *deviceRepoMock) Create(ctx context.Context) (*domain.Device, error) {
	if mock.CreateFunc == nil {
		panic("deviceRepoMock.CreateFunc: method is nil but deviceRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx)
}

func (mock *deviceRepoMock) CreateCalls() []struct {
	Ctx context.Context
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *deviceRepoMock) Exists(ctx context.Context, deviceID uuid.UUID) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("deviceRepoMock.ExistsFunc: method is nil but deviceRepo.Exists was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		DeviceID uuid.UUID
	}{Ctx: ctx, DeviceID: deviceID}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, deviceID)
}

func (mock *deviceRepoMock) ExistsCalls() []struct {
	Ctx      context.Context
	DeviceID uuid.UUID
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

type reflectorMock struct {
	GenerateFunc func(ctx context.Context, in domain.CheckInInput) (*domain.ReflectionResult, error)

	calls struct {
		Generate []struct {
			Ctx context.Context
			In  domain.CheckInInput
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *reflectorMock) Generate(ctx context.Context, in domain.CheckInInput) (*domain.ReflectionResult, error) {
	if mock.GenerateFunc == nil {
		panic("reflectorMock.GenerateFunc: method is nil but reflector.Generate was just called")
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

func (mock *reflectorMock) GenerateCalls() []struct {
	Ctx context.Context
	In  domain.CheckInInput
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}

type tokenIssuerMock struct {
	GenerateDeviceTokenFunc func(deviceID uuid.UUID) (string, time.Time, error)

	calls struct {
		GenerateDeviceToken []struct {
			DeviceID uuid.UUID
		}
	}
	lockGenerateDeviceToken sync.RWMutex
}

func (mock *tokenIssuerMock) GenerateDeviceToken(deviceID uuid.UUID) (string, time.Time, error) {
	if mock.GenerateDeviceTokenFunc == nil {
		panic("tokenIssuerMock.GenerateDeviceTokenFunc: method is nil but tokenIssuer.GenerateDeviceToken was just called")
	}
	callInfo := struct {
		DeviceID uuid.UUID
	}{DeviceID: deviceID}
	mock.lockGenerateDeviceToken.Lock()
	mock.calls.GenerateDeviceToken = append(mock.calls.GenerateDeviceToken, callInfo)
	mock.lockGenerateDeviceToken.Unlock()
	return mock.GenerateDeviceTokenFunc(deviceID)
}

func (mock *tokenIssuerMock) GenerateDeviceTokenCalls() []struct {
	DeviceID uuid.UUID
} {
	mock.lockGenerateDeviceToken.RLock()
	calls := mock.calls.GenerateDeviceToken
	mock.lockGenerateDeviceToken.RUnlock()
	return calls
}
