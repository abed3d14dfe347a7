package stream

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestHub_SubscribeDeliversInitialSnapshot(t *testing.T) {
	hub := NewHub(time.Minute, time.Second, testLogger())
	hub.Register("leads", func(ctx context.Context) (any, error) {
		return []string{"a", "b"}, nil
	})

	ch, cancel, err := hub.Subscribe(context.Background(), "leads")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer cancel()

	select {
	case snapshot := <-ch:
		var got []string
		if err := json.Unmarshal(snapshot, &got); err != nil {
			t.Fatalf("invalid snapshot: %v", err)
		}
		if len(got) != 2 || got[0] != "a" {
			t.Fatalf("unexpected snapshot: %v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("expected an immediate snapshot")
	}
}

func TestHub_SubscribeUnknownCollection(t *testing.T) {
	hub := NewHub(time.Minute, time.Second, testLogger())
	_, _, err := hub.Subscribe(context.Background(), "nope")
	if !errors.Is(err, ErrUnknownCollection) {
		t.Fatalf("expected ErrUnknownCollection, got %v", err)
	}
}

func TestHub_PollBroadcastsOnlyChanges(t *testing.T) {
	var mu sync.Mutex
	state := []string{"a"}

	hub := NewHub(time.Minute, time.Second, testLogger())
	hub.Register("leads", func(ctx context.Context) (any, error) {
		mu.Lock()
		defer mu.Unlock()
		return state, nil
	})

	ch, cancel, err := hub.Subscribe(context.Background(), "leads")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer cancel()
	<-ch // initial snapshot

	// Unchanged state produces no event.
	hub.pollAll(context.Background())
	select {
	case snapshot := <-ch:
		t.Fatalf("unexpected event for unchanged state: %s", snapshot)
	default:
	}

	mu.Lock()
	state = []string{"a", "b"}
	mu.Unlock()
	hub.pollAll(context.Background())

	select {
	case snapshot := <-ch:
		var got []string
		if err := json.Unmarshal(snapshot, &got); err != nil {
			t.Fatalf("invalid snapshot: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected the full new state, got %v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("expected a change event")
	}
}

func TestHub_CancelDetachesSubscriber(t *testing.T) {
	hub := NewHub(time.Minute, time.Second, testLogger())
	hub.Register("leads", func(ctx context.Context) (any, error) {
		return []string{}, nil
	})

	ch, cancel, err := hub.Subscribe(context.Background(), "leads")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	<-ch
	cancel()
	// A second cancel must be safe.
	cancel()

	if _, open := <-ch; open {
		t.Fatal("expected channel to be closed after cancel")
	}
}

func TestHub_SlowSubscriberDoesNotBlockPolling(t *testing.T) {
	calls := 0
	hub := NewHub(time.Minute, time.Second, testLogger())
	hub.Register("leads", func(ctx context.Context) (any, error) {
		calls++
		return []int{calls}, nil
	})

	_, cancel, err := hub.Subscribe(context.Background(), "leads")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer cancel()

	// The subscriber never reads; polls must still complete.
	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer*3; i++ {
			hub.pollAll(context.Background())
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("polling blocked on a slow subscriber")
	}
}

func TestHub_PollAbandonsHungFetch(t *testing.T) {
	hub := NewHub(time.Minute, 50*time.Millisecond, testLogger())
	hub.Register("leads", func(ctx context.Context) (any, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	hub.Register("customers", func(ctx context.Context) (any, error) {
		return []string{"a"}, nil
	})

	for _, name := range []string{"leads", "customers"} {
		hub.collections[name].subs[make(subscriber, 1)] = struct{}{}
	}

	done := make(chan struct{})
	go func() {
		hub.pollAll(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("poll round did not abandon the hung fetch")
	}
}

func TestHub_FetchErrorSurfacesOnSubscribe(t *testing.T) {
	hub := NewHub(time.Minute, time.Second, testLogger())
	hub.Register("leads", func(ctx context.Context) (any, error) {
		return nil, errors.New("db down")
	})

	if _, _, err := hub.Subscribe(context.Background(), "leads"); err == nil {
		t.Fatal("expected fetch error")
	}
}
