package workers

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/dsmirnov/cryptodiary/internal/logger"
	"github.com/dsmirnov/cryptodiary/internal/mock"
)

func TestRefreshWorker_ListsOnInterval(t *testing.T) {
	entries := mock.NewMockEntrySyncService(gomock.NewController(t))

	ticks := make(chan struct{}, 16)
	entries.EXPECT().
		List(gomock.Any()).
		DoAndReturn(func(any) error {
			ticks <- struct{}{}
			return nil
		}).
		MinTimes(2)

	w := NewRefreshWorker(entries, 5*time.Millisecond, logger.Nop())
	w.Run()
	defer w.Stop()

	for i := 0; i < 2; i++ {
		select {
		case <-ticks:
		case <-time.After(2 * time.Second):
			t.Fatalf("tick %d did not arrive", i+1)
		}
	}
}

func TestRefreshWorker_StopEndsLoop(t *testing.T) {
	entries := mock.NewMockEntrySyncService(gomock.NewController(t))

	ticks := make(chan struct{}, 16)
	entries.EXPECT().
		List(gomock.Any()).
		DoAndReturn(func(any) error {
			ticks <- struct{}{}
			return nil
		}).
		AnyTimes()

	w := NewRefreshWorker(entries, 5*time.Millisecond, logger.Nop())
	w.Run()

	select {
	case <-ticks:
	case <-time.After(2 * time.Second):
		t.Fatal("worker never ticked")
	}

	w.Stop()
	w.Stop() // idempotent

	// Drain anything in flight, then require silence.
	time.Sleep(20 * time.Millisecond)
	for len(ticks) > 0 {
		<-ticks
	}
	select {
	case <-ticks:
		t.Fatal("worker ticked after Stop")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestRefreshWorker_DisabledInterval(t *testing.T) {
	// No expectations: a disabled worker must never call the sync service.
	entries := mock.NewMockEntrySyncService(gomock.NewController(t))

	w := NewRefreshWorker(entries, 0, logger.Nop())
	w.Run()

	time.Sleep(20 * time.Millisecond)
}
