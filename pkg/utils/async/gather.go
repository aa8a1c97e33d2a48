package async

import (
	"context"
	"runtime/debug"
	"sync"

	"github.com/m-mizutani/ctxlog"
)

// RunAll executes every task concurrently and waits for all of them to
// settle. The barrier itself never fails: a task's panic is recovered and
// logged, a returned error is logged, and neither affects the other tasks.
//
// Tasks receive the original context, so values such as the ctxlog logger
// are preserved.
func RunAll(ctx context.Context, tasks []func(ctx context.Context) error) {
	var wg sync.WaitGroup
	for _, task := range tasks {
		wg.Add(1)
		go func(task func(ctx context.Context) error) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					stack := debug.Stack()
					ctxlog.From(ctx).Error("panic in async task",
						"recover", r,
						"stack", string(stack))
				}
			}()

			if err := task(ctx); err != nil {
				ctxlog.From(ctx).Error("error in async task", "error", err)
			}
		}(task)
	}
	wg.Wait()
}
