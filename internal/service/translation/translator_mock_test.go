package translation

import (
	"context"
	"github.com/heartmarshall/bireader/internal/provider"
	"sync"
)

var _ translator = &translatorMock{}

type translatorMock struct {
	TranslateFunc func(ctx context.Context, text string) (*provider.TranslationResult, error)

	calls struct {
		Translate []struct {
			Ctx  context.Context
			Text string
		}
	}
	lockTranslate sync.RWMutex
}

func (mock *translatorMock) Translate(ctx context.Context, text string) (*provider.TranslationResult, error) {
	if mock.TranslateFunc == nil {
		panic("translatorMock.TranslateFunc: method is nil but translator.Translate was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Text string
	}{
		Ctx:  ctx,
		Text: text,
	}
	mock.lockTranslate.Lock()
	mock.calls.Translate = append(mock.calls.Translate, callInfo)
	mock.lockTranslate.Unlock()
	return mock.TranslateFunc(ctx, text)
}

func (mock *translatorMock) TranslateCalls() []struct {
	Ctx  context.Context
	Text string
} {
	mock.lockTranslate.RLock()
	calls := mock.calls.Translate
	mock.lockTranslate.RUnlock()
	return calls
}
