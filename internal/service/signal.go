package service

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/voyagehq/voyagecms"
)

// SignalService fans change events out through redis so every running
// instance can notify its connected dashboards.
type SignalService struct {
	rdb *redis.Client
}

func NewSignalService(redisClient *redis.Client) *SignalService {
	return &SignalService{
		rdb: redisClient,
	}
}

func (s *SignalService) Publish(ctx context.Context, event voyagecms.ChangeEvent) error {

	jsonstr, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = s.rdb.Publish(ctx, voyagecms.ChangeChannel, jsonstr).Err()
	if err != nil {
		return err
	}

	return nil
}

// Subscribe delivers change events until ctx is cancelled.
func (s *SignalService) Subscribe(ctx context.Context) <-chan voyagecms.ChangeEvent {
	out := make(chan voyagecms.ChangeEvent)
	pubsub := s.rdb.Subscribe(ctx, voyagecms.ChangeChannel)

	go func() {
		defer pubsub.Close()
		forward(ctx, pubsub.Channel(), out)
	}()

	return out
}

// forward decodes redis messages onto out. Both the receive and the send
// honor ctx so the goroutine cannot leak when the consumer is gone.
func forward(ctx context.Context, src <-chan *redis.Message, out chan<- voyagecms.ChangeEvent) {
	defer close(out)
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-src:
			if !ok {
				return
			}
			var event voyagecms.ChangeEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				continue
			}
			select {
			case out <- event:
			case <-ctx.Done():
				return
			}
		}
	}
}
