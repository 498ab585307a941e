package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/eventsignal/binder"
	"github.com/delaneyj/eventsignal/property"
	"github.com/delaneyj/eventsignal/signal"
	"github.com/delaneyj/eventsignal/signaler"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

var profile = flag.String("cpuprofile", "", "write a CPU profile to this file")

func main() {
	flag.Parse()

	if *profile != "" {
		f, err := os.Create(*profile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	log.Printf("warming up")
	benchmarkFanout(false)
	benchmarkChain(false)

	benchmarkFanout(true)
	benchmarkChain(true)
	benchmarkProperty(true)
}

var (
	ww    = []int{1, 10, 100, 1_000}
	hh    = []int{1, 10, 100}
	iters = 100
)

func newTable(title string) table.Writer {
	tbl := table.NewWriter()
	tbl.SetTitle(title)
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})
	return tbl
}

func appendCalc(tbl table.Writer, name string, tach *tachymeter.Tachymeter) {
	calc := tach.Calc()
	tbl.AppendRows([]table.Row{
		{
			name,
			calc.Time.Avg,
			calc.Time.Min,
			calc.Time.P75,
			calc.Time.P99,
			calc.Time.Max,
		},
	})
}

// benchmarkFanout fires one channel with w subscribers.
func benchmarkFanout(shouldRender bool) {
	tbl := newTable("Fire fan-out")

	for _, w := range ww {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		src := signal.New()
		sum := 0
		for i := 0; i < w; i++ {
			src.OnFunc(signal.Change, func(args ...any) {
				sum += args[0].(int)
			})
		}

		for i := 0; i < iters; i++ {
			start := time.Now()
			if err := src.Fire(signal.Change, i); err != nil {
				log.Panic(err)
			}
			tach.AddTime(time.Since(start))
		}
		appendCalc(tbl, fmt.Sprintf("fire: %d subscribers", w), tach)
	}

	if shouldRender {
		tbl.Render()
	}
}

// benchmarkChain writes the head of w independent chains of h bound setters.
func benchmarkChain(shouldRender bool) {
	tbl := newTable("Bound setter chains")

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			heads := make([]*signaler.Setter, w)
			for i := range heads {
				var last *signaler.Setter
				for j := 0; j <= h; j++ {
					value := 0
					next := signaler.New(signaler.Typed1(func(v int) {
						value = v
					}), signaler.WithGetter(func() any { return value }))
					if last == nil {
						heads[i] = next
					} else if err := binder.BindSignals(last, next); err != nil {
						log.Panic(err)
					}
					last = next
				}
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				for _, head := range heads {
					if _, err := head.Call(i); err != nil {
						log.Panic(err)
					}
				}
				tach.AddTime(time.Since(start))
			}
			appendCalc(tbl, fmt.Sprintf("propagate: %d * %d", w, h), tach)
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

// benchmarkProperty compares writes that change the value with writes the
// change check suppresses.
func benchmarkProperty(shouldRender bool) {
	tbl := newTable("Property writes")

	for _, w := range ww {
		for _, same := range []bool{false, true} {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			x := 0
			p := property.New(property.Accessors[int]{
				Get: func() int { return x },
				Set: func(v int) { x = v },
			})
			for i := 0; i < w; i++ {
				p.OnFunc(signal.Change, func(args ...any) {})
			}

			for i := 0; i < iters; i++ {
				v := i
				if same {
					v = x
				}
				start := time.Now()
				if err := p.Set(v); err != nil {
					log.Panic(err)
				}
				tach.AddTime(time.Since(start))
			}

			name := fmt.Sprintf("set: %d subscribers", w)
			if same {
				name += " (unchanged)"
			}
			appendCalc(tbl, name, tach)
		}
	}

	if shouldRender {
		tbl.Render()
	}
}
