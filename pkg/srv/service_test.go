package srv

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	mu       sync.Mutex
	startErr error
	started  bool
	shutdown bool
	order    *[]string
	name     string
}

func (f *fakeService) Start(ctx context.Context) error {
	f.mu.Lock()
	f.started = true
	f.mu.Unlock()
	return f.startErr
}

func (f *fakeService) Shutdown(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shutdown = true
	if f.order != nil {
		*f.order = append(*f.order, f.name)
	}
	return ctx.Err()
}

func TestServices_StopOnStartFailure(t *testing.T) {
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var order []string
	ok := &fakeService{name: "ok", order: &order}
	bad := &fakeService{name: "bad", order: &order, startErr: errors.New("boom")}
	services := []Service{ok, bad}

	StartServices(ctx, services, stop)

	done := make(chan struct{})
	go func() {
		ShutdownServices(ctx, services)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("services were not shut down after a start failure")
	}

	assert.Equal(t, []string{"ok", "bad"}, order)
}

func TestShutdownServices_LiveContext(t *testing.T) {
	ctx, stop := context.WithCancel(context.Background())
	stop()

	svc := &fakeService{}
	ShutdownServices(ctx, []Service{svc})

	assert.True(t, svc.shutdown)
}
