package translation

import (
	"context"
	"github.com/heartmarshall/bireader/internal/domain"
	"sync"
)

var _ translationRepo = &translationRepoMock{}

type translationRepoMock struct {
	CreateFunc  func(ctx context.Context, rec domain.TranslationRecord) (*domain.TranslationRecord, error)
	DeleteFunc  func(ctx context.Context, id int64) error
	GetByIDFunc func(ctx context.Context, id int64) (*domain.TranslationRecord, error)
	ListFunc    func(ctx context.Context, filter domain.TranslationFilter) ([]domain.TranslationRecord, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Rec domain.TranslationRecord
		}
		Delete []struct {
			Ctx context.Context
			Id  int64
		}
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		List []struct {
			Ctx    context.Context
			Filter domain.TranslationFilter
		}
	}
	lockCreate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
}

func (mock *translationRepoMock) Create(ctx context.Context, rec domain.TranslationRecord) (*domain.TranslationRecord, error) {
	if mock.CreateFunc == nil {
		panic("translationRepoMock.CreateFunc: method is nil but translationRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec domain.TranslationRecord
	}{
		Ctx: ctx,
		Rec: rec,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *translationRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rec domain.TranslationRecord
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *translationRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("translationRepoMock.DeleteFunc: method is nil but translationRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *translationRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *translationRepoMock) GetByID(ctx context.Context, id int64) (*domain.TranslationRecord, error) {
	if mock.GetByIDFunc == nil {
		panic("translationRepoMock.GetByIDFunc: method is nil but translationRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *translationRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *translationRepoMock) List(ctx context.Context, filter domain.TranslationFilter) ([]domain.TranslationRecord, error) {
	if mock.ListFunc == nil {
		panic("translationRepoMock.ListFunc: method is nil but translationRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.TranslationFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *translationRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.TranslationFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
