package utils

import (
	"context"
	"strings"
	"time"
)

var sleep = time.Sleep

// WaitFor blocks for d or until ctx is done, whichever comes first.
func WaitFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		sleep(d)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// ContainsAny reports whether text contains at least one of the substrings.
// Matching is case-sensitive; callers fold the text first.
func ContainsAny(text string, substrings ...string) bool {
	for _, s := range substrings {
		if s != "" && strings.Contains(text, s) {
			return true
		}
	}
	return false
}
