package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"sync/atomic"
	"time"

	"github.com/delaneyj/eventsignal/binder"
	"github.com/delaneyj/eventsignal/relay"
	"github.com/delaneyj/eventsignal/signal"
	"github.com/delaneyj/eventsignal/signaler"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

func main() {
	log.Print("Starting eventsignal throughput benchmark, please wait...")
	defer log.Print("Finished eventsignal throughput benchmark")

	cfgs := []throughputConfig{
		{name: "single pair", width: 1, depth: 2, subscribers: 1, iterations: 200_000},
		{name: "wide shallow", width: 1000, depth: 2, subscribers: 1, iterations: 200_000},
		{name: "deep chain", width: 5, depth: 100, subscribers: 1, iterations: 20_000},
		{name: "noisy", width: 100, depth: 5, subscribers: 25, iterations: 50_000},
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"mode", "size", "subscribers", "nTimes", "test", "time", "updates", "updateRate",
	})

	testRepeats := 5
	for _, cfg := range cfgs {
		for _, mode := range []string{"direct", "relay"} {
			log.Printf("Running '%s' config (%s)", cfg.name, mode)

			var best result
			best.duration = time.Hour
			for i := 0; i < testRepeats; i++ {
				var r result
				switch mode {
				case "direct":
					r = runDirect(cfg)
				case "relay":
					r = runRelay(cfg)
				}
				if r.duration < best.duration {
					best = r
				}
			}

			updateRate := float64(best.updates) / (float64(best.duration) / float64(time.Millisecond))
			table.Append([]string{
				mode,
				fmt.Sprintf("%dx%d", cfg.width, cfg.depth),
				fmt.Sprint(cfg.subscribers),
				humanize.Comma(cfg.iterations),
				cfg.name,
				fmt.Sprint(best.duration),
				humanize.Comma(best.updates),
				humanize.Comma(int64(updateRate)) + "/ms",
			})
		}
	}
	table.Render()
}

type throughputConfig struct {
	name        string // unique name for the run
	width       int    // number of independent chains
	depth       int    // setters per chain, each bound to the next
	subscribers int    // extra "change" subscribers per setter
	iterations  int64  // writes per run
}

type result struct {
	updates  int64
	duration time.Duration
}

// buildChains returns the head of every chain. counter is bumped by every
// setter call and every extra subscriber.
func buildChains(cfg throughputConfig, counter *int64, named bool) []*signaler.Setter {
	heads := make([]*signaler.Setter, cfg.width)
	for i := range heads {
		var last *signaler.Setter
		for j := 0; j < cfg.depth; j++ {
			var opts []signaler.Option
			if named {
				opts = append(opts, signaler.WithName(fmt.Sprintf("chain-%d-%d", i, j)))
			}
			s := signaler.New(func(args ...any) (any, error) {
				atomic.AddInt64(counter, 1)
				return nil, nil
			}, opts...)
			for k := 0; k < cfg.subscribers; k++ {
				s.OnFunc(signal.Change, func(args ...any) {
					atomic.AddInt64(counter, 1)
				})
			}
			if last == nil {
				heads[i] = s
			} else if err := binder.BindSignals(last, s); err != nil {
				log.Fatal(err)
			}
			last = s
		}
	}
	return heads
}

// runDirect calls a random chain head per iteration.
func runDirect(cfg throughputConfig) result {
	counter := new(int64)
	heads := buildChains(cfg, counter, false)
	random := rand.New(rand.NewSource(0))

	start := time.Now()
	for i := int64(0); i < cfg.iterations; i++ {
		head := heads[random.Intn(len(heads))]
		if _, err := head.Call(i); err != nil {
			log.Fatal(err)
		}
	}
	return result{updates: atomic.LoadInt64(counter), duration: time.Since(start)}
}

// runRelay sends every write through a relay by name. The head's "call"
// channel calls the setter, so the replayed fire propagates down the chain.
func runRelay(cfg throughputConfig) result {
	counter := new(int64)
	heads := buildChains(cfg, counter, true)

	dir := relay.NewDirectory()
	for _, head := range heads {
		head.On("call", binder.Relay(head))
		dir.Add(head)
	}

	done := make(chan struct{})
	sentinel := signal.New(signal.WithName("sentinel"))
	sentinel.OnFunc("done", func(args ...any) { close(done) })
	dir.Add(sentinel)

	r := relay.New(dir,
		relay.WithBuffer(1024),
		relay.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go r.Run(ctx)

	random := rand.New(rand.NewSource(0))
	start := time.Now()
	for i := int64(0); i < cfg.iterations; i++ {
		head := heads[random.Intn(len(heads))]
		if err := r.Fire(ctx, head.Name(), "call", i); err != nil {
			log.Fatal(err)
		}
	}
	if err := r.Fire(ctx, sentinel.Name(), "done"); err != nil {
		log.Fatal(err)
	}
	<-done
	return result{updates: atomic.LoadInt64(counter), duration: time.Since(start)}
}
