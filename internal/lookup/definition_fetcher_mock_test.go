package lookup

import (
	"context"
	"sync"
)

var _ DefinitionFetcher = &DefinitionFetcherMock{}

type DefinitionFetcherMock struct {
	DefinitionsFunc func(ctx context.Context, word string) ([]string, error)

	calls struct {
		Definitions []struct {
			Ctx  context.Context
			Word string
		}
	}
	lockDefinitions sync.RWMutex
}

func (mock *DefinitionFetcherMock) Definitions(ctx context.Context, word string) ([]string, error) {
	if mock.DefinitionsFunc == nil {
		panic("DefinitionFetcherMock.DefinitionsFunc: method is nil but DefinitionFetcher.Definitions was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Word string
	}{Ctx: ctx, Word: word}
	mock.lockDefinitions.Lock()
	mock.calls.Definitions = append(mock.calls.Definitions, callInfo)
	mock.lockDefinitions.Unlock()
	return mock.DefinitionsFunc(ctx, word)
}

func (mock *DefinitionFetcherMock) DefinitionsCalls() []struct {
	Ctx  context.Context
	Word string
} {
	mock.lockDefinitions.RLock()
	calls := mock.calls.Definitions
	mock.lockDefinitions.RUnlock()
	return calls
}
