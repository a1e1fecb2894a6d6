package lookup

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"testing"
)

func newTestController() *Controller {
	return NewController(slog.New(slog.NewTextHandler(io.Discard, nil)), Positioner{Gap: DefaultGap})
}

func TestController_HoverShowsDefinitions(t *testing.T) {
	t.Parallel()

	fetcher := &DefinitionFetcherMock{
		DefinitionsFunc: func(ctx context.Context, word string) ([]string, error) {
			return []string{"to go", "to walk"}, nil
		},
	}
	c := newTestController()

	req := c.HoverEnter("gehe", Point{X: 10, Y: 4}, 3)
	if c.State() != Pending {
		t.Fatalf("state after hover-enter = %v, want pending", c.State())
	}
	if _, ok := c.Popup(); ok {
		t.Fatal("popup must not be visible while pending")
	}

	resp := Fetch(context.Background(), fetcher, req)
	if !c.Resolve(resp) {
		t.Fatal("Resolve rejected current response")
	}

	calls := fetcher.DefinitionsCalls()
	if len(calls) != 1 || calls[0].Word != "gehe" {
		t.Fatalf("unexpected fetch calls: %+v", calls)
	}
	if c.State() != Shown {
		t.Fatalf("state = %v, want shown", c.State())
	}

	popup, ok := c.Popup()
	if !ok {
		t.Fatal("popup not visible")
	}
	if !slices.Equal(popup.Meanings, []string{"to go", "to walk"}) {
		t.Errorf("meanings = %q", popup.Meanings)
	}
	if popup.Anchor != (Point{X: 10, Y: 8}) {
		t.Errorf("anchor = %+v, want {10 8}", popup.Anchor)
	}
	if popup.Key != "gehe" {
		t.Errorf("key = %q", popup.Key)
	}
}

func TestController_StaleResponseAfterLeave(t *testing.T) {
	t.Parallel()

	c := newTestController()
	req := c.HoverEnter("gehe", Point{}, 0)
	c.HoverLeave()

	if c.State() != Idle {
		t.Fatalf("state after leave = %v, want idle", c.State())
	}
	if c.Resolve(Response{Key: req.Key, Gen: req.Gen, Meanings: []string{"to go"}}) {
		t.Fatal("stale response applied")
	}
	if _, ok := c.Popup(); ok {
		t.Fatal("stale response reopened popup")
	}
	if c.State() != Idle || c.Key() != "" {
		t.Fatalf("state = %v key = %q", c.State(), c.Key())
	}
}

func TestController_StaleResponseForPreviousWord(t *testing.T) {
	t.Parallel()

	c := newTestController()
	first := c.HoverEnter("gehe", Point{}, 0)
	second := c.HoverEnter("bist", Point{X: 5}, 0)

	if c.Resolve(Response{Key: first.Key, Gen: first.Gen, Meanings: []string{"to go"}}) {
		t.Fatal("response for previous word applied")
	}
	if c.State() != Pending || c.Key() != "bist" {
		t.Fatalf("state = %v key = %q", c.State(), c.Key())
	}

	if !c.Resolve(Response{Key: second.Key, Gen: second.Gen, Meanings: []string{"are"}}) {
		t.Fatal("current response rejected")
	}
	popup, ok := c.Popup()
	if !ok || popup.Key != "bist" || !slices.Equal(popup.Meanings, []string{"are"}) {
		t.Fatalf("popup = %+v, visible = %v", popup, ok)
	}
}

func TestController_FailureSuppressesPopup(t *testing.T) {
	t.Parallel()

	fetcher := &DefinitionFetcherMock{
		DefinitionsFunc: func(ctx context.Context, word string) ([]string, error) {
			return nil, errors.New("connection refused")
		},
	}
	c := newTestController()

	req := c.HoverEnter("gehe", Point{}, 0)
	if !c.Resolve(Fetch(context.Background(), fetcher, req)) {
		t.Fatal("failure response for current hover should be applied")
	}
	if c.State() != Idle {
		t.Fatalf("state = %v, want idle", c.State())
	}
	if res := c.Result(); res == nil || len(res) != 0 {
		t.Fatalf("result = %#v, want empty slice", res)
	}
	if _, ok := c.Popup(); ok {
		t.Fatal("popup visible after failure")
	}
}

func TestController_EmptyResultHidesPopup(t *testing.T) {
	t.Parallel()

	c := newTestController()
	req := c.HoverEnter("xyz", Point{}, 0)
	c.Resolve(Response{Key: req.Key, Gen: req.Gen})

	if c.State() != Shown {
		t.Fatalf("state = %v, want shown", c.State())
	}
	if _, ok := c.Popup(); ok {
		t.Fatal("popup visible for empty result")
	}
}

func TestController_DuplicateResolveIgnored(t *testing.T) {
	t.Parallel()

	c := newTestController()
	req := c.HoverEnter("gehe", Point{}, 0)
	c.Resolve(Response{Key: req.Key, Gen: req.Gen, Meanings: []string{"to go"}})

	if c.Resolve(Response{Key: req.Key, Gen: req.Gen, Meanings: []string{"other"}}) {
		t.Fatal("second response for the same request applied")
	}
	if !slices.Equal(c.Result(), []string{"to go"}) {
		t.Fatalf("result = %q", c.Result())
	}
}

func TestController_NoCache(t *testing.T) {
	t.Parallel()

	fetcher := &DefinitionFetcherMock{
		DefinitionsFunc: func(ctx context.Context, word string) ([]string, error) {
			return []string{"x"}, nil
		},
	}
	c := newTestController()

	for range 2 {
		req := c.HoverEnter("gehe", Point{}, 0)
		c.Resolve(Fetch(context.Background(), fetcher, req))
		c.HoverLeave()
	}
	if n := len(fetcher.DefinitionsCalls()); n != 2 {
		t.Fatalf("expected 2 fetches, got %d", n)
	}
}

func TestState_String(t *testing.T) {
	t.Parallel()

	for st, want := range map[State]string{Idle: "idle", Pending: "pending", Shown: "shown", State(9): "unknown"} {
		if got := st.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", st, got, want)
		}
	}
}
