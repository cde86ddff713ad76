package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	poller "github.com/radovskyb/watcher"
	"golang.org/x/sync/errgroup"

	"github.com/lapwatch/lapwatch/internal/observability"
)

const defaultPollingPeriod = 500 * time.Millisecond

type watcher struct {
	sync.Mutex
	logger     *observability.CoreLogger
	delegate   *poller.Watcher
	wg         *sync.WaitGroup
	handlers   map[string]func()
	isFinished bool

	pollingPeriod time.Duration
}

func newWatcher(params Params) *watcher {
	if params.Logger == nil {
		params.Logger = observability.NewNoOpLogger()
	}
	if params.PollingPeriod == 0 {
		params.PollingPeriod = defaultPollingPeriod
	}

	return &watcher{
		logger:   params.Logger,
		wg:       &sync.WaitGroup{},
		handlers: make(map[string]func()),

		pollingPeriod: params.PollingPeriod,
	}
}

func (w *watcher) Watch(path string, onChange func()) error {
	w.Lock()
	defer w.Unlock()

	if w.isFinished {
		return fmt.Errorf("watcher: tried to call Watch() after Finish()")
	}

	if w.delegate == nil {
		if err := w.startWatcher(); err != nil {
			return err
		}
	}

	if err := w.delegate.Add(path); err != nil {
		return err
	}

	// The poller resolves added paths to absolute before emitting
	// events, so handlers are keyed the same way.
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w.handlers[abs] = onChange

	return nil
}

func (w *watcher) Finish() {
	var delegate *poller.Watcher

	w.Lock()
	w.isFinished = true
	delegate = w.delegate
	w.Unlock()

	if delegate != nil {
		delegate.Close()
	}
	w.wg.Wait()
}

func (w *watcher) startWatcher() error {
	w.delegate = poller.New()

	// The poller sometimes reports Create for files that already exist
	// because Add() races its polling loop, so Write and Create are
	// treated the same.
	w.delegate.FilterOps(poller.Write, poller.Create)

	grp, ctx := errgroup.WithContext(context.Background())
	w.wg.Add(2)

	grp.Go(func() error {
		defer w.wg.Done()

		w.loopWatchFiles(ctx)

		return nil
	})

	grp.Go(func() error {
		defer w.wg.Done()

		return w.delegate.Start(w.pollingPeriod)
	})

	// Wait until the poller is looping or has failed to start. Until
	// then Close() is a no-op, and a quick Finish() would hang on the
	// WaitGroup.
	started := make(chan struct{})
	go func() {
		w.delegate.Wait()
		started <- struct{}{}
	}()
	select {
	case <-started:
	case <-ctx.Done():
		// This returns the error that caused the context to get canceled.
		return grp.Wait()
	}

	return nil
}

// loopWatchFiles processes poller events until the poller closes.
//
// ctx breaks the loop if the poller fails to start, in which case none
// of its channels will ever receive a message.
func (w *watcher) loopWatchFiles(ctx context.Context) {
	for {
		select {
		case event := <-w.delegate.Event:
			if event.IsDir() {
				continue
			}

			w.onEvent(event)

		case err := <-w.delegate.Error:
			w.logger.CaptureError(
				fmt.Errorf("watcher: error watching files: %v", err))

		case <-w.delegate.Closed:
			return

		case <-ctx.Done():
			return
		}
	}
}

func (w *watcher) onEvent(evt poller.Event) {
	w.Lock()
	handler := w.handlers[evt.Path]
	w.Unlock()

	if handler != nil {
		handler()
	}
}
