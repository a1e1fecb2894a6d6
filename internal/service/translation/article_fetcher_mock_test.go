package translation

import (
	"context"
	"github.com/heartmarshall/bireader/internal/provider"
	"sync"
)

var _ articleFetcher = &articleFetcherMock{}

type articleFetcherMock struct {
	FetchFunc func(ctx context.Context, rawURL string) (*provider.Article, error)

	calls struct {
		Fetch []struct {
			Ctx    context.Context
			RawURL string
		}
	}
	lockFetch sync.RWMutex
}

func (mock *articleFetcherMock) Fetch(ctx context.Context, rawURL string) (*provider.Article, error) {
	if mock.FetchFunc == nil {
		panic("articleFetcherMock.FetchFunc: method is nil but articleFetcher.Fetch was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		RawURL string
	}{
		Ctx:    ctx,
		RawURL: rawURL,
	}
	mock.lockFetch.Lock()
	mock.calls.Fetch = append(mock.calls.Fetch, callInfo)
	mock.lockFetch.Unlock()
	return mock.FetchFunc(ctx, rawURL)
}

func (mock *articleFetcherMock) FetchCalls() []struct {
	Ctx    context.Context
	RawURL string
} {
	mock.lockFetch.RLock()
	calls := mock.calls.Fetch
	mock.lockFetch.RUnlock()
	return calls
}
