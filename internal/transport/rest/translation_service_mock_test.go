package rest

import (
	"context"
	"github.com/heartmarshall/bireader/internal/domain"
	"github.com/heartmarshall/bireader/internal/service/translation"
	"sync"
)

var _ translationService = &translationServiceMock{}

type translationServiceMock struct {
	DeleteFunc    func(ctx context.Context, id int64) error
	GetFunc       func(ctx context.Context, id int64) (*domain.TranslationRecord, error)
	ImportURLFunc func(ctx context.Context, input translation.ImportURLInput) (*domain.TranslationRecord, error)
	ListFunc      func(ctx context.Context, input translation.ListInput) ([]domain.TranslationRecord, error)
	TranslateFunc func(ctx context.Context, input translation.TranslateInput) (*domain.TranslationRecord, error)

	calls struct {
		Delete []struct {
			Ctx context.Context
			Id  int64
		}
		Get []struct {
			Ctx context.Context
			Id  int64
		}
		ImportURL []struct {
			Ctx   context.Context
			Input translation.ImportURLInput
		}
		List []struct {
			Ctx   context.Context
			Input translation.ListInput
		}
		Translate []struct {
			Ctx   context.Context
			Input translation.TranslateInput
		}
	}
	lockDelete    sync.RWMutex
	lockGet       sync.RWMutex
	lockImportURL sync.RWMutex
	lockList      sync.RWMutex
	lockTranslate sync.RWMutex
}

func (mock *translationServiceMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("translationServiceMock.DeleteFunc: method is nil but translationService.Delete was just called")
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

func (mock *translationServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *translationServiceMock) Get(ctx context.Context, id int64) (*domain.TranslationRecord, error) {
	if mock.GetFunc == nil {
		panic("translationServiceMock.GetFunc: method is nil but translationService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *translationServiceMock) GetCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *translationServiceMock) ImportURL(ctx context.Context, input translation.ImportURLInput) (*domain.TranslationRecord, error) {
	if mock.ImportURLFunc == nil {
		panic("translationServiceMock.ImportURLFunc: method is nil but translationService.ImportURL was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input translation.ImportURLInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockImportURL.Lock()
	mock.calls.ImportURL = append(mock.calls.ImportURL, callInfo)
	mock.lockImportURL.Unlock()
	return mock.ImportURLFunc(ctx, input)
}

func (mock *translationServiceMock) ImportURLCalls() []struct {
	Ctx   context.Context
	Input translation.ImportURLInput
} {
	mock.lockImportURL.RLock()
	calls := mock.calls.ImportURL
	mock.lockImportURL.RUnlock()
	return calls
}

func (mock *translationServiceMock) List(ctx context.Context, input translation.ListInput) ([]domain.TranslationRecord, error) {
	if mock.ListFunc == nil {
		panic("translationServiceMock.ListFunc: method is nil but translationService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input translation.ListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *translationServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input translation.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *translationServiceMock) Translate(ctx context.Context, input translation.TranslateInput) (*domain.TranslationRecord, error) {
	if mock.TranslateFunc == nil {
		panic("translationServiceMock.TranslateFunc: method is nil but translationService.Translate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input translation.TranslateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockTranslate.Lock()
	mock.calls.Translate = append(mock.calls.Translate, callInfo)
	mock.lockTranslate.Unlock()
	return mock.TranslateFunc(ctx, input)
}

func (mock *translationServiceMock) TranslateCalls() []struct {
	Ctx   context.Context
	Input translation.TranslateInput
} {
	mock.lockTranslate.RLock()
	calls := mock.calls.Translate
	mock.lockTranslate.RUnlock()
	return calls
}
