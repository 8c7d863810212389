package utils

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestContainsAny(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		subs   []string
		expect bool
	}{
		{name: "single hit", text: "i want a data scientist job", subs: []string{"scientist"}, expect: true},
		{name: "second candidate hits", text: "work from home please", subs: []string{"remote", "work from home"}, expect: true},
		{name: "no hit", text: "i like my job", subs: []string{"senior", "junior"}, expect: false},
		{name: "empty candidates ignored", text: "anything", subs: []string{""}, expect: false},
		{name: "no candidates", text: "anything", expect: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ContainsAny(tt.text, tt.subs...); got != tt.expect {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestWaitForReturnsOnContextCancel(t *testing.T) {
	original := sleep
	release := make(chan struct{})
	sleep = func(time.Duration) { <-release }
	defer func() {
		close(release)
		sleep = original
	}()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := WaitFor(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestWaitForSkipsNonPositiveDuration(t *testing.T) {
	original := sleep
	sleep = func(time.Duration) { t.Fatal("sleep must not be called") }
	defer func() { sleep = original }()

	if err := WaitFor(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
