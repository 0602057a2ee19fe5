package notify

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/Dosada05/tournament-draws/engine"
)

// Fanout delivers each notification to every notifier and joins their errors.
type Fanout []engine.Notifier

func (f Fanout) Notify(ctx context.Context, n engine.Notification) error {
	var errs []error
	for _, notifier := range f {
		if notifier == nil {
			continue
		}
		if err := notifier.Notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LogNotifier writes notifications to a structured logger.
type LogNotifier struct {
	Logger *slog.Logger
}

func (l LogNotifier) Notify(ctx context.Context, n engine.Notification) error {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "notification", "topic", n.Topic, "drawId", n.DrawID)
	return nil
}

// Recorder keeps notifications in memory, in delivery order.
type Recorder struct {
	mu            sync.Mutex
	notifications []engine.Notification
}

func (r *Recorder) Notify(_ context.Context, n engine.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
	return nil
}

func (r *Recorder) Notifications() []engine.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]engine.Notification(nil), r.notifications...)
}

// Topics lists recorded topics in order.
func (r *Recorder) Topics() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	topics := make([]string, len(r.notifications))
	for i, n := range r.notifications {
		topics[i] = n.Topic
	}
	return topics
}
