package translation

import (
	"context"
	"sync"
)

var _ definitionRepo = &definitionRepoMock{}

type definitionRepoMock struct {
	UpsertManyFunc func(ctx context.Context, translationID int64, defs map[string][]string) error

	calls struct {
		UpsertMany []struct {
			Ctx           context.Context
			TranslationID int64
			Defs          map[string][]string
		}
	}
	lockUpsertMany sync.RWMutex
}

func (mock *definitionRepoMock) UpsertMany(ctx context.Context, translationID int64, defs map[string][]string) error {
	if mock.UpsertManyFunc == nil {
		panic("definitionRepoMock.UpsertManyFunc: method is nil but definitionRepo.UpsertMany was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		TranslationID int64
		Defs          map[string][]string
	}{
		Ctx:           ctx,
		TranslationID: translationID,
		Defs:          defs,
	}
	mock.lockUpsertMany.Lock()
	mock.calls.UpsertMany = append(mock.calls.UpsertMany, callInfo)
	mock.lockUpsertMany.Unlock()
	return mock.UpsertManyFunc(ctx, translationID, defs)
}

func (mock *definitionRepoMock) UpsertManyCalls() []struct {
	Ctx           context.Context
	TranslationID int64
	Defs          map[string][]string
} {
	mock.lockUpsertMany.RLock()
	calls := mock.calls.UpsertMany
	mock.lockUpsertMany.RUnlock()
	return calls
}
