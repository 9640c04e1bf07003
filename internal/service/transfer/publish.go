package transfer

import (
	"context"
	"fmt"
	"time"

	"ecodeli-delivery/internal/domain"
)

// DefaultPublishTimeout bounds the wait for an event when no timeout is configured.
const DefaultPublishTimeout = 2 * time.Second

// PublishDetached sends e outside the caller's cancellation and waits at most timeout.
// A publisher still running when the wait ends finishes in the background.
func PublishDetached(ctx context.Context, pub Publisher, e domain.Event, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = DefaultPublishTimeout
	}
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)

	done := make(chan error, 1)
	go func() {
		defer cancel()
		done <- pub.Publish(pctx, e)
	}()

	select {
	case err := <-done:
		return err
	case <-pctx.Done():
		return fmt.Errorf("publish %s: %w", e.Kind, pctx.Err())
	}
}
