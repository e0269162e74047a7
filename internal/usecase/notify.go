package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/SaharBarak/portfolio-v2-sub001/internal/domain"
)

// Notifier invalidates cached reads of a collection and announces the
// change. Both happen after the write committed, so failures are logged
// and never undo or fail the write.
type Notifier struct {
	cache     ResultCache
	publisher ChangePublisher
	now       func() time.Time
}

func NewNotifier(cache ResultCache, publisher ChangePublisher) *Notifier {
	return &Notifier{
		cache:     cache,
		publisher: publisher,
		now:       time.Now,
	}
}

func (n *Notifier) Changed(ctx context.Context, collection, id string, op domain.ChangeOp) {
	if n == nil {
		return
	}

	if n.cache != nil {
		if err := n.cache.Bump(ctx, collection); err != nil {
			slog.ErrorContext(
				ctx, "failed to invalidate query cache",
				slog.String("collection", collection),
				slog.String("error", err.Error()),
				slog.String("module", "notifier"),
			)
		}
	}

	if n.publisher != nil {
		err := n.publisher.Publish(ctx, domain.ChangeEvent{
			Collection: collection,
			ID:         id,
			Op:         op,
			At:         n.now(),
		})
		if err != nil {
			slog.ErrorContext(
				ctx, "failed to publish change",
				slog.String("collection", collection),
				slog.String("error", err.Error()),
				slog.String("module", "notifier"),
			)
		}
	}
}
