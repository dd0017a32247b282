// SPDX-License-Identifier: MIT

package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastConfig() Config {
	return Config{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestDoSucceedsAfterFailures(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(), func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("got error %v, want nil", err)
	}
	if calls != 3 {
		t.Errorf("got %d calls, want 3", calls)
	}
}

func TestDoExhaustsAttempts(t *testing.T) {
	wantErr := errors.New("always broken")
	calls := 0
	err := Do(context.Background(), fastConfig(), func() error {
		calls++
		return wantErr
	})
	if err == nil {
		t.Fatal("got nil, want error")
	}
	if !errors.Is(err, wantErr) {
		t.Errorf("got %v, want wrapped %v", err, wantErr)
	}
	if calls != 3 {
		t.Errorf("got %d calls, want 3", calls)
	}
}

func TestDoCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Do(ctx, fastConfig(), func() error {
		return errors.New("transient")
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}
