// Package engine carries the explicit per-call context threaded through draw
// generation and scoring: dev-mode flag, logger, notification sink and id source.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	TopicAddMatchUps          = "addMatchUps"
	TopicModifyMatchUp        = "modifyMatchUp"
	TopicModifyDrawDefinition = "modifyDrawDefinition"
	TopicDeletedDrawIDs       = "deletedDrawIds"
)

type Notification struct {
	Topic   string    `json:"topic"`
	DrawID  string    `json:"drawId"`
	Payload any       `json:"payload,omitempty"`
	At      time.Time `json:"at"`
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, Notification) error { return nil }

type Context struct {
	DevMode  bool
	Logger   *slog.Logger
	Notifier Notifier
	NewID    func() string
}

type Option func(*Context)

func WithDevMode(on bool) Option {
	return func(c *Context) { c.DevMode = on }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Context) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

func WithNotifier(n Notifier) Option {
	return func(c *Context) {
		if n != nil {
			c.Notifier = n
		}
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(c *Context) {
		if newID != nil {
			c.NewID = newID
		}
	}
}

func New(opts ...Option) *Context {
	c := &Context{
		Logger:   slog.Default(),
		Notifier: nopNotifier{},
		NewID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID returns a fresh identifier. A nil Context falls back to uuid.
func (c *Context) ID() string {
	if c == nil || c.NewID == nil {
		return uuid.NewString()
	}
	return c.NewID()
}

// Debug logs only in dev mode.
func (c *Context) Debug(msg string, args ...any) {
	if c == nil || !c.DevMode || c.Logger == nil {
		return
	}
	c.Logger.Debug(msg, args...)
}

func (c *Context) Notify(ctx context.Context, topic, drawID string, payload any) error {
	if c == nil || c.Notifier == nil {
		return nil
	}
	return c.Notifier.Notify(ctx, Notification{
		Topic:   topic,
		DrawID:  drawID,
		Payload: payload,
		At:      time.Now().UTC(),
	})
}

// SequenceIDs returns a deterministic generator: prefix-1, prefix-2, ...
func SequenceIDs(prefix string) func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}
