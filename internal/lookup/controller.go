// Package lookup tracks the word under the pointer and the definitions shown
// for it.
package lookup

import (
	"context"
	"log/slog"
)

// State of the Controller.
type State int

const (
	Idle State = iota
	Pending
	Shown
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Shown:
		return "shown"
	default:
		return "unknown"
	}
}

// DefinitionFetcher retrieves the meanings of a word.
type DefinitionFetcher interface {
	Definitions(ctx context.Context, word string) ([]string, error)
}

// Request identifies one lookup. Gen ties the eventual Response to the hover
// that issued it.
type Request struct {
	Key string
	Gen uint64
}

// Response is the outcome of a Request.
type Response struct {
	Key      string
	Gen      uint64
	Meanings []string
	Err      error
}

// Fetch executes req against f. It blocks and is meant to be run off the UI
// loop; the result is handed back to Controller.Resolve.
func Fetch(ctx context.Context, f DefinitionFetcher, req Request) Response {
	meanings, err := f.Definitions(ctx, req.Key)
	return Response{Key: req.Key, Gen: req.Gen, Meanings: meanings, Err: err}
}

// Popup is what the renderer draws under the hovered word.
type Popup struct {
	Key      string
	Anchor   Point
	Meanings []string
}

// Controller holds a single hovered word and its result.
// Every hover transition bumps a generation counter and responses carrying an
// older generation are discarded, so a slow lookup for a word the pointer has
// already left never reaches the screen.
// Not safe for concurrent use; it belongs to the UI loop.
type Controller struct {
	log *slog.Logger
	pos Positioner
	gen uint64
	key string
	at  Point
	res []string
	st  State
}

// NewController creates a Controller placing popups with pos.
func NewController(logger *slog.Logger, pos Positioner) *Controller {
	return &Controller{
		log: logger.With("component", "lookup"),
		pos: pos,
	}
}

// HoverEnter starts a hover session for key. The popup anchor is computed
// here and stays fixed until the session ends.
func (c *Controller) HoverEnter(key string, pointer Point, scrollY int) Request {
	c.gen++
	c.key = key
	c.at = c.pos.Position(pointer, scrollY)
	c.res = nil
	c.st = Pending
	return Request{Key: key, Gen: c.gen}
}

// HoverLeave ends the hover session. In-flight requests are not cancelled;
// their responses become stale.
func (c *Controller) HoverLeave() {
	c.gen++
	c.key = ""
	c.res = nil
	c.st = Idle
}

// Resolve applies resp if it belongs to the current hover session and
// reports whether it did.
func (c *Controller) Resolve(resp Response) bool {
	if resp.Gen != c.gen || c.st != Pending {
		c.log.Debug("stale lookup discarded",
			slog.String("key", resp.Key),
			slog.Uint64("gen", resp.Gen),
			slog.Uint64("current_gen", c.gen),
		)
		return false
	}

	if resp.Err != nil {
		c.log.Warn("definition lookup failed",
			slog.String("key", resp.Key),
			slog.String("error", resp.Err.Error()),
		)
		c.res = []string{}
		c.st = Idle
		return true
	}

	c.res = resp.Meanings
	if c.res == nil {
		c.res = []string{}
	}
	c.st = Shown
	return true
}

// State returns the current state.
func (c *Controller) State() State { return c.st }

// Key returns the hovered lookup key, or "" when nothing is hovered.
func (c *Controller) Key() string { return c.key }

// Result returns the active meanings.
func (c *Controller) Result() []string { return c.res }

// Popup returns the popup to render. It is visible only while a word is
// hovered and its result is not empty.
func (c *Controller) Popup() (Popup, bool) {
	if c.key == "" || len(c.res) == 0 {
		return Popup{}, false
	}
	return Popup{Key: c.key, Anchor: c.at, Meanings: c.res}, true
}
