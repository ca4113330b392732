package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"giftlist-backend/internal/shared"
)

// Client enqueues background tasks over the shared redis broker.
type Client struct {
	asynq *asynq.Client
}

func NewClient(redisAddr, redisPassword string, redisDB int) *Client {
	return &Client{
		asynq: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		}),
	}
}

// EnqueueItemRemoved schedules a removal notification email. Delivery is
// fire-and-forget from the caller's perspective; retries live in the worker.
func (c *Client) EnqueueItemRemoved(payload shared.ItemRemovedPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	task := asynq.NewTask(shared.TypeNotifyItemRemoved, data)
	_, err = c.asynq.Enqueue(task,
		asynq.Queue(shared.QueueNotifications),
		asynq.MaxRetry(3),
		asynq.Timeout(30*time.Second),
	)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	return nil
}

func (c *Client) Close() error {
	return c.asynq.Close()
}
