package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"

	"github.com/redis/go-redis/v9"

	"github.com/SaharBarak/portfolio-v2-sub001/internal/domain"
)

const channelPrefix = "portfolio:changes:"

// Channel is the redis channel carrying the change events of a collection.
func Channel(collection string) string {
	return channelPrefix + collection
}

type SignalService struct {
	rdb *redis.Client
}

func NewSignalService(redisClient *redis.Client) *SignalService {
	return &SignalService{
		rdb: redisClient,
	}
}

func (s *SignalService) Publish(ctx context.Context, event domain.ChangeEvent) error {

	jsonstr, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = s.rdb.Publish(ctx, Channel(event.Collection), jsonstr).Err()
	if err != nil {
		return err

	}

	return nil
}

// Realtime relays the change events of the collections most recently sent
// on input to output. It returns, closing output, when input is closed or
// ctx is done.
func (s *SignalService) Realtime(ctx context.Context, input <-chan []string, output chan<- domain.ChangeEvent) {
	defer close(output)

	pubsub := s.rdb.Subscribe(ctx)
	defer pubsub.Close()
	messages := pubsub.Channel()

	var current []string
	for {
		select {
		case <-ctx.Done():
			return

		case collections, ok := <-input:
			if !ok {
				return
			}
			if len(current) > 0 {
				if err := pubsub.Unsubscribe(ctx, current...); err != nil {
					logSignalError(ctx, "unsubscribe failed", err)
				}
			}
			current = channels(collections)
			if len(current) > 0 {
				if err := pubsub.Subscribe(ctx, current...); err != nil {
					logSignalError(ctx, "subscribe failed", err)
				}
			}

		case msg, ok := <-messages:
			if !ok {
				return
			}
			var event domain.ChangeEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				logSignalError(ctx, "malformed change event", err)
				continue
			}
			select {
			case output <- event:
			case <-ctx.Done():
				return
			}
		}
	}
}

// channels maps requested collections to redis channels, dropping unknown
// and repeated names.
func channels(collections []string) []string {
	var result []string
	for _, collection := range collections {
		if !slices.Contains(domain.Collections, collection) {
			continue
		}
		channel := Channel(collection)
		if !slices.Contains(result, channel) {
			result = append(result, channel)
		}
	}
	return result
}

func logSignalError(ctx context.Context, msg string, err error) {
	slog.ErrorContext(
		ctx, msg,
		slog.String("error", err.Error()),
		slog.String("module", "signal"),
	)
}
