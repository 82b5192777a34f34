package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/muurk/fyi/internal/logging"
	"github.com/muurk/fyi/internal/msg"
	"github.com/muurk/fyi/internal/progress"
)

func newDemoCmd(e *env) *cobra.Command {
	var (
		jobs    int
		workers int
		delay   time.Duration
	)
	cmd := &cobra.Command{
		Use:    "demo",
		Short:  "Run a progress bar demonstration",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if jobs < 1 {
				return fmt.Errorf("--jobs must be at least 1, got %d", jobs)
			}
			if workers < 1 {
				return fmt.Errorf("--workers must be at least 1, got %d", workers)
			}
			return e.runDemo(cmd.Context(), jobs, workers, delay)
		},
	}
	cmd.Flags().IntVar(&jobs, "jobs", 40, "Number of simulated jobs")
	cmd.Flags().IntVar(&workers, "workers", 4, "Concurrent workers")
	cmd.Flags().DurationVar(&delay, "delay", 150*time.Millisecond, "Base duration of one job")
	return cmd
}

// runDemo drives a progress bar on stderr from a pool of workers, then
// prints a summary line.
func (e *env) runDemo(ctx context.Context, jobs, workers int, delay time.Duration) error {
	p, err := progress.New(jobs,
		progress.WithOutput(e.stderr),
		progress.WithMode(e.stderrMode),
		progress.WithTick(e.cfg.Tick()),
		progress.WithWidthFunc(e.errWidth),
		progress.WithFallbackWidth(e.cfg.Progress.FallbackWidth),
		progress.WithMaxLabels(e.cfg.Progress.MaxLabels),
		progress.WithLogger(logging.Named("progress")),
	)
	if err != nil {
		return err
	}
	stop := progress.WatchSignals(ctx, p)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < jobs; i++ {
		i := i
		label := fmt.Sprintf("job-%03d", i+1)
		g.Go(func() error {
			if err := p.AddTask(label); err != nil {
				return err
			}
			select {
			case <-time.After(delay * time.Duration(1+i%3)):
			case <-gctx.Done():
				return gctx.Err()
			case <-p.Exited():
				return progress.ErrInterrupted
			}
			return p.CompleteTask(label)
		})
	}

	werr := g.Wait()
	if err := p.Finish(); err != nil {
		return err
	}
	if werr != nil {
		return werr
	}
	return e.printer(e.cfg.Messages.NoColor).Print(p.Summary(msg.KindCrunched, "job", "jobs"))
}
