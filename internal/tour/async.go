package tour

import (
	"context"
	"fmt"
	"io"

	"github.com/marcodamonte/constructs/internal/executor"
)

// FetchData pretends to fetch something. It never fails.
func FetchData(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "Fetching data...")
	return err
}

func demoAsync(e env) error {
	// FetchData runs on an executor goroutine; BlockOn parks this one until
	// the job is done, so nothing else in the tour overlaps with it.
	return executor.BlockOn(e.ctx, e.logger, func(ctx context.Context) error {
		return FetchData(ctx, e.w)
	})
}
