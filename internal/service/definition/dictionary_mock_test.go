package definition

import (
	"context"
	"sync"
)

var _ dictionary = &dictionaryMock{}

type dictionaryMock struct {
	DefinitionsFunc func(ctx context.Context, word string) ([]string, error)

	calls struct {
		Definitions []struct {
			Ctx  context.Context
			Word string
		}
	}
	lockDefinitions sync.RWMutex
}

func (mock *dictionaryMock) Definitions(ctx context.Context, word string) ([]string, error) {
	if mock.DefinitionsFunc == nil {
		panic("dictionaryMock.DefinitionsFunc: method is nil but dictionary.Definitions was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Word string
	}{
		Ctx:  ctx,
		Word: word,
	}
	mock.lockDefinitions.Lock()
	mock.calls.Definitions = append(mock.calls.Definitions, callInfo)
	mock.lockDefinitions.Unlock()
	return mock.DefinitionsFunc(ctx, word)
}

func (mock *dictionaryMock) DefinitionsCalls() []struct {
	Ctx  context.Context
	Word string
} {
	mock.lockDefinitions.RLock()
	calls := mock.calls.Definitions
	mock.lockDefinitions.RUnlock()
	return calls
}
