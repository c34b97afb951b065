// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package jobs

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/hashicorp/go-multierror"
	"k8s.io/klog/v2"
)

const (
	maxWorkerSize = 100
	minWorkerSize = 1
)

// WorkerFunc processes a single task
type WorkerFunc[T any] func(ctx context.Context, task T) error

// pool runs the tasks of a single Run call
type pool[T any] struct {
	// id is used in log and error messages
	id       string
	workFunc WorkerFunc[T]
	failFast bool
	// cancel stops the remaining tasks on fail fast
	cancel context.CancelFunc
	// guards errList
	mux     sync.Mutex
	errList *multierror.Error
	// processed tasks count
	tc atomic.Uint32
}

// Run processes tasks with size parallel workers and returns the collected
// errors. With failFast no task is started after the first error. When ctx
// is done the remaining tasks are skipped and the context error is reported
func Run[T any](ctx context.Context, id string, size int, workFunc WorkerFunc[T], failFast bool, tasks []T) error {
	if size < minWorkerSize || size > maxWorkerSize {
		return fmt.Errorf("%s workers init fails: invalid workers size '%d', valid size interval is [%d,%d]", id, size, minWorkerSize, maxWorkerSize)
	}
	if workFunc == nil {
		return fmt.Errorf("%s workers init fails: worker func is nil", id)
	}
	workCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	p := &pool[T]{id: id, workFunc: workFunc, failFast: failFast, cancel: cancel}

	queue := make(chan T)
	wg := &sync.WaitGroup{}
	for i := 0; i < min(size, len(tasks)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range queue {
				p.run(workCtx, t)
			}
		}()
	}
	klog.V(6).Infof("%s workers started\n", id)
feed:
	for _, t := range tasks {
		select {
		case <-workCtx.Done():
			break feed
		case queue <- t:
		}
	}
	close(queue)
	wg.Wait()
	klog.V(6).Infof("%s tasks processed: %d of %d\n", id, p.tc.Load(), len(tasks))
	if err := ctx.Err(); err != nil {
		p.appendError(fmt.Errorf("%s workers stopped: %w", id, err))
	}
	return p.errList.ErrorOrNil()
}

// run executes the work func for t unless the pool is stopped and
// reports errors and recovered panics
func (p *pool[T]) run(ctx context.Context, t T) {
	if ctx.Err() != nil {
		klog.V(6).Infof("skipping task %v of stopped %s workers\n", t, p.id)
		return
	}
	defer p.tc.Add(1)
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic in %s for task %v recovered: %v", p.id, t, r)
			klog.Warning(err.Error(), "\n", string(debug.Stack()))
			p.appendError(err)
		}
	}()
	if err := p.workFunc(ctx, t); err != nil {
		p.appendError(err)
	}
}

func (p *pool[T]) appendError(err error) {
	p.mux.Lock()
	defer p.mux.Unlock()
	p.errList = multierror.Append(p.errList, err)
	if p.failFast {
		p.cancel()
	}
}
