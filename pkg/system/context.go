package system

import (
	"context"
)

// RunWithContext runs operation and returns its error.
//
// A ctx that is already done short-circuits with ctx.Err() and operation
// never starts. Otherwise operation gets a context carrying ctx's values that
// is cancelled, never timed out, when ctx ends. The operation decides where
// to stop, and its own error is what the caller sees, so a partial read can
// be reported with the path and offset it stopped at.
func RunWithContext(ctx context.Context, operation func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	opCtx, stop := context.WithCancel(context.WithoutCancel(ctx))
	defer stop()

	release := context.AfterFunc(ctx, stop)
	defer release()

	return operation(opCtx)
}
