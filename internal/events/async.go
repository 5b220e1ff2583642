package events

import (
	"context"
	"time"
)

const publishTimeout = 5 * time.Second

// AsyncPublisher hands events to a worker pool so requests never wait on the broker.
type AsyncPublisher struct {
	next    Publisher
	workers *WorkerPool
}

func NewAsyncPublisher(next Publisher, workers, queue int) *AsyncPublisher {
	return &AsyncPublisher{next: next, workers: NewWorkerPool(workers, queue)}
}

// Publish queues the event and returns at once; ErrQueueFull means it was
// dropped. The write itself outlives the request, so it keeps ctx values but
// not its cancellation.
func (p *AsyncPublisher) Publish(ctx context.Context, e Event) error {
	detached := context.WithoutCancel(ctx)
	return p.workers.AddTask(ctx, func() error {
		ctx, cancel := context.WithTimeout(detached, publishTimeout)
		defer cancel()
		return p.next.Publish(ctx, e)
	})
}

// Close drains queued events before closing the underlying publisher.
func (p *AsyncPublisher) Close() error {
	p.workers.Close()
	return p.next.Close()
}
