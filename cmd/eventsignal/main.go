package main

import (
	"context"
	"errors"
	"log"
	"os"
	ossignal "os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/delaneyj/eventsignal/signal"
	"github.com/delaneyj/eventsignal/watch"
	"github.com/urfave/cli/v3"
)

const watchKey = "watch"

func main() {
	cmd := &cli.Command{
		Name:  "eventsignal",
		Usage: "Run binding scenarios against observable objects",
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "Run a YAML scenario and print the final state",
				ArgsUsage: "<scenario.yaml>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  watchKey,
						Usage: "Run again every time the scenario file changes",
					},
				},
				Action: run,
			},
		},
	}

	ctx, stop := ossignal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := cmd.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		return errors.New("missing scenario file")
	}

	start := time.Now()
	err := runScenario(path, os.Stdout)
	log.Printf("Scenario finished in %v", time.Since(start))
	if !cmd.Bool(watchKey) {
		return err
	}
	if err != nil {
		log.Printf("Scenario failed: %v", err)
	}
	return watchScenario(ctx, path)
}

// watchScenario reruns the scenario on every write until ctx is done.
func watchScenario(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w := watch.New([]string{filepath.Dir(abs)}, watch.WithFilter(func(p string) bool {
		return filepath.Clean(p) == abs
	}))

	changed := make(chan struct{}, 1)
	w.OnFunc(signal.Change, func(args ...any) {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err := w.Start(ctx); err != nil {
		return err
	}
	log.Printf("Watching %s", abs)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changed:
			if err := runScenario(path, os.Stdout); err != nil {
				log.Printf("Scenario failed: %v", err)
			}
		}
	}
}
