package password

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gochat-dev/gochat/errors"
)

func newTestPool(t *testing.T, cfg PoolConfig) *Pool {
	t.Helper()
	p := NewPool(cfg, NewArgon2Hasher(testConfig()), nil)
	t.Cleanup(p.Close)
	return p
}

func TestPoolHashAndVerify(t *testing.T) {
	p := newTestPool(t, PoolConfig{Workers: 2})
	ctx := context.Background()

	hash, err := p.Hash(ctx, "my_secure_password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ok, err := p.Verify(ctx, "my_secure_password", hash)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected match")
	}

	ok, err = p.Verify(ctx, "wrong", hash)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected mismatch")
	}
}

func TestPoolPropagatesHasherErrors(t *testing.T) {
	p := newTestPool(t, PoolConfig{Workers: 1})
	_, err := p.Verify(context.Background(), "pw", "not-a-hash")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.HasCode(err, errors.ErrCodeInvalidHashFormat) {
		t.Errorf("expected INVALID_HASH_FORMAT, got %v", err)
	}
}

func TestPoolConcurrentSubmitters(t *testing.T) {
	p := newTestPool(t, PoolConfig{Workers: 4, QueueSize: 8})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hash, err := p.Hash(ctx, "my_secure_password")
			if err != nil {
				t.Errorf("hash: %v", err)
				return
			}
			ok, err := p.Verify(ctx, "my_secure_password", hash)
			if err != nil || !ok {
				t.Errorf("verify: ok=%v err=%v", ok, err)
			}
		}()
	}
	wg.Wait()
}

// gatedHasher blocks inside Hash until released, to pin workers down.
type gatedHasher struct {
	gate chan struct{}
}

func (g *gatedHasher) Hash(string) (string, error) {
	<-g.gate
	return "hash", nil
}

func (g *gatedHasher) Verify(string, string) (bool, error) {
	<-g.gate
	return true, nil
}

func TestPoolCanceledWhileQueued(t *testing.T) {
	gate := make(chan struct{})
	hasher := &gatedHasher{gate: gate}
	p := NewPool(PoolConfig{Workers: 1, QueueSize: 1}, hasher, nil)

	// Pin the single worker and fill the queue.
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Hash(context.Background(), "pw")
		}()
	}
	// Give the pinned jobs time to occupy the worker and the queue slot.
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Hash(ctx, "pw")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.HasCode(err, errors.ErrCodeCanceled) {
		t.Errorf("expected CANCELED, got %v", err)
	}

	close(gate)
	wg.Wait()
	p.Close()
}

func TestPoolCanceledWhileInFlight(t *testing.T) {
	gate := make(chan struct{})
	hasher := &gatedHasher{gate: gate}
	p := NewPool(PoolConfig{Workers: 1, QueueSize: 1}, hasher, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := p.Hash(ctx, "pw")
		done <- err
	}()

	// Let the job reach the worker, then abandon it. The worker must still
	// run to completion and the pool must shut down cleanly.
	time.Sleep(50 * time.Millisecond)
	cancel()

	err := <-done
	if !errors.HasCode(err, errors.ErrCodeCanceled) {
		t.Errorf("expected CANCELED, got %v", err)
	}

	close(gate)
	p.Close()
}

func TestPoolConfigDefaults(t *testing.T) {
	cfg := PoolConfig{}
	cfg.ApplyDefaults()
	if cfg.Workers != 4 {
		t.Errorf("expected 4 workers, got %d", cfg.Workers)
	}
	if cfg.QueueSize != 64 {
		t.Errorf("expected queue size 64, got %d", cfg.QueueSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (&PoolConfig{Workers: -1, QueueSize: 1}).Validate(); err == nil {
		t.Error("expected error for negative workers")
	}
}
