package definition

import (
	"context"
	"github.com/heartmarshall/bireader/internal/domain"
	"sync"
)

var _ definitionRepo = &definitionRepoMock{}

type definitionRepoMock struct {
	GetByWordFunc  func(ctx context.Context, word string) (*domain.WordDefinition, error)
	GetByWordsFunc func(ctx context.Context, words []string) ([]domain.WordDefinition, error)

	calls struct {
		GetByWord []struct {
			Ctx  context.Context
			Word string
		}
		GetByWords []struct {
			Ctx   context.Context
			Words []string
		}
	}
	lockGetByWord  sync.RWMutex
	lockGetByWords sync.RWMutex
}

func (mock *definitionRepoMock) GetByWord(ctx context.Context, word string) (*domain.WordDefinition, error) {
	if mock.GetByWordFunc == nil {
		panic("definitionRepoMock.GetByWordFunc: method is nil but definitionRepo.GetByWord was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Word string
	}{
		Ctx:  ctx,
		Word: word,
	}
	mock.lockGetByWord.Lock()
	mock.calls.GetByWord = append(mock.calls.GetByWord, callInfo)
	mock.lockGetByWord.Unlock()
	return mock.GetByWordFunc(ctx, word)
}

func (mock *definitionRepoMock) GetByWordCalls() []struct {
	Ctx  context.Context
	Word string
} {
	mock.lockGetByWord.RLock()
	calls := mock.calls.GetByWord
	mock.lockGetByWord.RUnlock()
	return calls
}

func (mock *definitionRepoMock) GetByWords(ctx context.Context, words []string) ([]domain.WordDefinition, error) {
	if mock.GetByWordsFunc == nil {
		panic("definitionRepoMock.GetByWordsFunc: method is nil but definitionRepo.GetByWords was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Words []string
	}{
		Ctx:   ctx,
		Words: words,
	}
	mock.lockGetByWords.Lock()
	mock.calls.GetByWords = append(mock.calls.GetByWords, callInfo)
	mock.lockGetByWords.Unlock()
	return mock.GetByWordsFunc(ctx, words)
}

func (mock *definitionRepoMock) GetByWordsCalls() []struct {
	Ctx   context.Context
	Words []string
} {
	mock.lockGetByWords.RLock()
	calls := mock.calls.GetByWords
	mock.lockGetByWords.RUnlock()
	return calls
}
