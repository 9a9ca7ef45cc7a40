// Command forgetbench runs a synthetic workload against a forgetting map and
// exposes optional pprof/Prometheus endpoints.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"os"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/IvanBrykalov/forgetmap/cache"
	pmet "github.com/IvanBrykalov/forgetmap/metrics/prom"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

// stdLogger adapts *log.Logger to cache.Logger.
type stdLogger struct {
	l     *log.Logger
	debug bool
}

func (s stdLogger) Debug(msg string, kv ...any) {
	if s.debug {
		s.l.Printf("DEBUG %s %v", msg, kv)
	}
}
func (s stdLogger) Info(msg string, kv ...any)  { s.l.Printf("INFO %s %v", msg, kv) }
func (s stdLogger) Warn(msg string, kv ...any)  { s.l.Printf("WARN %s %v", msg, kv) }
func (s stdLogger) Error(msg string, kv ...any) { s.l.Printf("ERROR %s %v", msg, kv) }

func main() {
	// ---- Flags ----
	var (
		capacity = flag.Int("cap", 1_000, "cache capacity (slots)")
		exact    = flag.Bool("exact", false, "confirm fingerprint matches with ==")

		workers  = flag.Int("workers", 2*runtime.GOMAXPROCS(0), "number of worker goroutines")
		duration = flag.Duration("duration", 10*time.Second, "benchmark duration")
		readPct  = flag.Int("reads", 90, "read percentage [0..100]")

		keys    = flag.Int("keys", 10_000, "keyspace size")
		zipfS   = flag.Float64("zipf_s", 1.1, "Zipf s > 1 (skew)")
		zipfV   = flag.Float64("zipf_v", 1.0, "Zipf v")
		seed    = flag.Int64("seed", time.Now().UnixNano(), "random seed")
		preload = flag.Int("preload", 0, "preload entries (0 = cap)")

		verbose     = flag.Bool("v", false, "log every eviction")
		pprofAddr   = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
		metricsAddr = flag.String("http", ":8080", "serve Prometheus metrics at addr; empty = disabled")
	)
	flag.Parse()

	logger := stdLogger{l: log.New(os.Stderr, "[forgetbench] ", log.LstdFlags|log.Lmicroseconds), debug: *verbose}

	// ---- pprof server (on DefaultServeMux) ----
	if *pprofAddr != "" {
		go func() {
			logger.Info("pprof: serving", "addr", *pprofAddr)
			logger.Error("pprof: server stopped", "error", http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	// ---- Prometheus metrics (on DefaultServeMux) ----
	metrics := pmet.New(nil, "forgetmap", "bench", nil)
	if *metricsAddr != "" {
		http.Handle("/metrics", promhttp.Handler())
		go func() {
			logger.Info("metrics: serving", "addr", *metricsAddr)
			logger.Error("metrics: server stopped", "error", http.ListenAndServe(*metricsAddr, nil))
		}()
	}

	// ---- Build cache ----
	c, err := cache.New[string, string](cache.Options[string, string]{
		Capacity:  *capacity,
		ExactKeys: *exact,
		Metrics:   metrics,
		Logger:    logger,
	})
	if err != nil {
		log.Fatalf("forgetbench: %v", err)
	}

	pl := *preload
	if pl == 0 {
		pl = *capacity
	}
	for i := 0; i < pl; i++ {
		c.Insert("k:"+strconv.Itoa(i), "v"+strconv.Itoa(i))
	}

	// ---- Snapshot flags for goroutines ----
	readPctVal := *readPct
	keysMax := uint64(*keys - 1)
	seedBase := *seed
	workersN := *workers
	if workersN <= 0 {
		workersN = 1
	}

	// ---- Load generation ----
	var reads, writes, hits, total uint64
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	start := time.Now()
	var g errgroup.Group
	for w := 0; w < workersN; w++ {
		g.Go(func() error {
			// rand.Rand is not goroutine-safe: one per worker.
			r := rand.New(rand.NewSource(seedBase + int64(w)*9973))
			zipf := rand.NewZipf(r, *zipfS, *zipfV, keysMax)
			key := func() string { return "k:" + strconv.FormatUint(zipf.Uint64(), 10) }

			for ctx.Err() == nil {
				atomic.AddUint64(&total, 1)
				if int(r.Int31n(100)) < readPctVal {
					atomic.AddUint64(&reads, 1)
					if _, ok := c.Lookup(key()); ok {
						atomic.AddUint64(&hits, 1)
					}
				} else {
					atomic.AddUint64(&writes, 1)
					c.Insert(key(), "v"+strconv.Itoa(r.Int()))
				}
			}
			return nil
		})
	}
	_ = g.Wait()
	elapsed := time.Since(start)

	// ---- Report ----
	ops := atomic.LoadUint64(&total)
	readsN := atomic.LoadUint64(&reads)
	hitsN := atomic.LoadUint64(&hits)
	hitRate := 0.0
	if readsN > 0 {
		hitRate = float64(hitsN) / float64(readsN) * 100
	}
	st := c.Stats()

	fmt.Printf("cap=%d exact=%v workers=%d keys=%d dur=%v seed=%d\n",
		*capacity, *exact, workersN, *keys, elapsed, seedBase)
	fmt.Printf("ops=%d (%.0f ops/s)  reads=%d  writes=%d\n",
		ops, float64(ops)/elapsed.Seconds(), readsN, atomic.LoadUint64(&writes))
	fmt.Printf("hits=%d  misses=%d  hit-rate=%.2f%%\n", hitsN, readsN-hitsN, hitRate)
	fmt.Printf("evictions=%d  replacements=%d  ticks=%d  Len()=%d/%d\n",
		st.Evictions, st.Replacements, st.Ticks, st.Len, st.Cap)
}
