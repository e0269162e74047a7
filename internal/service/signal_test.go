package service

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaharBarak/portfolio-v2-sub001/internal/domain"
)

func TestChannels(t *testing.T) {
	got := channels([]string{"projects", "nope", "blogLikes", "projects"})
	assert.Equal(t, []string{"portfolio:changes:projects", "portfolio:changes:blogLikes"}, got)
	assert.Empty(t, channels(nil))
}

func TestRealtimeRelaysSubscribedCollections(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	defer rdb.Close()
	signal := NewSignalService(rdb)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	input := make(chan []string)
	output := make(chan domain.ChangeEvent)
	go signal.Realtime(ctx, input, output)
	input <- []string{domain.CollectionNow}

	// the subscription is asynchronous; publish until the event arrives
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case event := <-output:
			assert.Equal(t, domain.CollectionNow, event.Collection)
			assert.Equal(t, domain.ChangeOpUpsert, event.Op)
			close(input)
			return
		case <-ticker.C:
			require.NoError(t, signal.Publish(ctx, domain.ChangeEvent{Collection: domain.CollectionProjects, Op: domain.ChangeOpRemove}))
			require.NoError(t, signal.Publish(ctx, domain.ChangeEvent{Collection: domain.CollectionNow, ID: "n1", Op: domain.ChangeOpUpsert}))
		case <-ctx.Done():
			t.Fatalf("no event received")
		}
	}
}
