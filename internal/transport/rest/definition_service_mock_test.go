package rest

import (
	"context"
	"sync"
)

var _ definitionService = &definitionServiceMock{}

type definitionServiceMock struct {
	LookupFunc func(ctx context.Context, word string) ([]string, error)

	calls struct {
		Lookup []struct {
			Ctx  context.Context
			Word string
		}
	}
	lockLookup sync.RWMutex
}

func (mock *definitionServiceMock) Lookup(ctx context.Context, word string) ([]string, error) {
	if mock.LookupFunc == nil {
		panic("definitionServiceMock.LookupFunc: method is nil but definitionService.Lookup was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Word string
	}{
		Ctx:  ctx,
		Word: word,
	}
	mock.lockLookup.Lock()
	mock.calls.Lookup = append(mock.calls.Lookup, callInfo)
	mock.lockLookup.Unlock()
	return mock.LookupFunc(ctx, word)
}

func (mock *definitionServiceMock) LookupCalls() []struct {
	Ctx  context.Context
	Word string
} {
	mock.lockLookup.RLock()
	calls := mock.calls.Lookup
	mock.lockLookup.RUnlock()
	return calls
}
