// Command soak hammers Bounded queues with randomized operation mixes and
// verifies the queue invariants against a reference model after every step.
// Each worker owns a private queue instance; the queue itself is
// single-threaded by contract.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/natefinch/lumberjack"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/go-fixedcap/pkg/chrono"
	"github.com/huynhanx03/go-fixedcap/pkg/datastructs/queue"
)

type config struct {
	Workers  int    `validate:"gt=0,lte=1024"`
	Capacity int    `validate:"gt=0"`
	Ops      int    `validate:"gt=0"`
	Seed     int64  `validate:"-"`
	LogFile  string `validate:"-"`
}

func main() {
	cfg := parseFlags()
	if err := validator.New().Struct(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("soak starting",
		zap.Int("workers", cfg.Workers),
		zap.Int("capacity", cfg.Capacity),
		zap.Int("ops_per_worker", cfg.Ops),
		zap.Int64("seed", cfg.Seed),
	)

	clock := chrono.SystemClock{}
	start := clock.Now()

	var g errgroup.Group
	for i := 0; i < cfg.Workers; i++ {
		worker := i
		g.Go(func() error {
			return soak(worker, cfg, logger)
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("soak failed", zap.Error(err))
		os.Exit(1)
	}

	elapsed := clock.Now().Since(start)
	totalOps := int64(cfg.Workers) * int64(cfg.Ops)
	logger.Info("soak complete",
		zap.Int64("total_ops", totalOps),
		zap.Float64("elapsed_s", elapsed.Seconds()),
	)
}

func parseFlags() config {
	var cfg config
	flag.IntVar(&cfg.Workers, "workers", 4, "number of workers, each with a private queue")
	flag.IntVar(&cfg.Capacity, "capacity", 3, "queue capacity per worker")
	flag.IntVar(&cfg.Ops, "ops", 1_000_000, "operations per worker")
	flag.Int64Var(&cfg.Seed, "seed", 1, "base RNG seed")
	flag.StringVar(&cfg.LogFile, "log-file", "", "rotating log file path (stdout if empty)")
	flag.Parse()
	return cfg
}

func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewProduction()
	}

	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    64, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
	})
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		sink,
		zap.InfoLevel,
	)
	return zap.New(core), nil
}

// soak runs the randomized operation mix on one queue, checking the size,
// full/empty, and FIFO-window invariants after every operation.
func soak(worker int, cfg config, logger *zap.Logger) error {
	drops := 0
	q, err := queue.NewBounded(cfg.Capacity, queue.WithOnDrop(func(int) { drops++ }))
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(cfg.Seed + int64(worker)))
	model := make([]int, 0, cfg.Capacity)
	next := 0
	wantDrops := 0

	for op := 0; op < cfg.Ops; op++ {
		switch rng.Intn(3) {
		case 0:
			next++
			ok := q.Enqueue(next)
			if wantOK := len(model) < cfg.Capacity; ok != wantOK {
				return errors.Errorf("worker %d op %d: Enqueue = %v, want %v", worker, op, ok, wantOK)
			}
			if ok {
				model = append(model, next)
			}
		case 1:
			next++
			q.ForceEnqueue(next)
			if len(model) == cfg.Capacity {
				model = model[1:]
				wantDrops++
			}
			model = append(model, next)
		case 2:
			got, ok := q.Dequeue()
			if ok != (len(model) > 0) {
				return errors.Errorf("worker %d op %d: Dequeue ok = %v with model size %d", worker, op, ok, len(model))
			}
			if ok {
				if got != model[0] {
					return errors.Errorf("worker %d op %d: Dequeue = %d, want %d", worker, op, got, model[0])
				}
				model = model[1:]
			}
		}

		if err := checkState(q, model, cfg.Capacity); err != nil {
			return errors.Wrapf(err, "worker %d op %d", worker, op)
		}
	}

	if drops != wantDrops {
		return errors.Errorf("worker %d: drop callback fired %d times, want %d", worker, drops, wantDrops)
	}

	logger.Info("worker finished",
		zap.Int("worker", worker),
		zap.Int("final_size", q.Size()),
		zap.Int("evictions", drops),
	)
	return nil
}

func checkState(q *queue.Bounded[int], model []int, capacity int) error {
	if q.Size() != len(model) {
		return errors.Errorf("Size = %d, want %d", q.Size(), len(model))
	}
	if q.Size() < 0 || q.Size() > capacity {
		return errors.Errorf("Size = %d out of [0, %d]", q.Size(), capacity)
	}
	if q.IsEmpty() != (len(model) == 0) {
		return errors.Errorf("IsEmpty = %v with size %d", q.IsEmpty(), len(model))
	}
	if q.IsFull() != (len(model) == capacity) {
		return errors.Errorf("IsFull = %v with size %d", q.IsFull(), len(model))
	}
	return nil
}
