package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"walkgen/internal/sims/drunkard"
)

type scenario struct {
	maxWalkers int
	fill       float64
}

func (s scenario) String() string {
	return fmt.Sprintf("walkers=%-3d fill=%.2f", s.maxWalkers, s.fill)
}

type scenarioResult struct {
	scenario  scenario
	runs      int
	exhausted int
	meanTicks float64
	maxTicks  int
	meanWalls float64
	noSpawn   int
}

func main() {
	width := flag.Int("w", 60, "map width")
	height := flag.Int("h", 40, "map height")
	walkersFlag := flag.String("walkers", "1,5,10,25,50", "comma separated max walker counts")
	fillFlag := flag.String("fill", "0.2,0.4,0.6,0.85", "comma separated fill targets")
	seeds := flag.Int("seeds", 8, "runs per scenario")
	baseSeed := flag.Int64("seed", 1337, "seed of the first run; later runs add one")
	budget := flag.Int("max-ticks", 200_000, "tick budget per run")
	mutation := flag.Float64("mutation", drunkard.DefaultConfig().MutationChance, "walker mutation chance")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	walkerOptions, err := parseInts(*walkersFlag)
	if err != nil {
		log.Fatalf("-walkers: %v", err)
	}
	fillOptions, err := parseFloats(*fillFlag)
	if err != nil {
		log.Fatalf("-fill: %v", err)
	}

	var sets []scenario
	for _, w := range walkerOptions {
		for _, f := range fillOptions {
			sets = append(sets, scenario{maxWalkers: w, fill: f})
		}
	}

	base := drunkard.DefaultConfig()
	base.Width = *width
	base.Height = *height
	base.MutationChance = *mutation
	base.MaxTicks = *budget
	base.SelectSpawn = true
	if err := base.Validate(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Sweeping %d scenarios x %d seeds on %dx%d (%d workers, budget %d ticks)\n",
		len(sets), *seeds, *width, *height, *workers, *budget)

	start := time.Now()
	var mu sync.Mutex
	var all []scenarioResult

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, *workers))
	for _, s := range sets {
		g.Go(func() error {
			res, err := runScenario(gctx, base, s, *seeds, *baseSeed)
			if err != nil {
				return fmt.Errorf("%s: %w", s, err)
			}
			mu.Lock()
			all = append(all, res)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].scenario.maxWalkers != all[j].scenario.maxWalkers {
			return all[i].scenario.maxWalkers < all[j].scenario.maxWalkers
		}
		return all[i].scenario.fill < all[j].scenario.fill
	})

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, res := range all {
		fmt.Printf("%s  ticks mean=%9.1f max=%7d  walls mean=%7.1f  exhausted=%d/%d  no-spawn=%d\n",
			res.scenario, res.meanTicks, res.maxTicks, res.meanWalls, res.exhausted, res.runs, res.noSpawn)
	}
}

// runScenario generates seeds maps for one parameter set. Runs that exhaust
// the tick budget are counted, not treated as failures.
func runScenario(ctx context.Context, base drunkard.Config, s scenario, seeds int, firstSeed int64) (scenarioResult, error) {
	out := scenarioResult{scenario: s}
	var ticks, walls, completed int
	for i := 0; i < seeds; i++ {
		cfg := base
		cfg.MaxWalkers = s.maxWalkers
		cfg.FillPercentage = s.fill
		cfg.Seed = firstSeed + int64(i)

		engine, err := drunkard.New(cfg, nil)
		if err != nil {
			return out, err
		}
		res, err := engine.Run(ctx)
		out.runs++
		switch {
		case errors.Is(err, drunkard.ErrTickBudget):
			out.exhausted++
			continue
		case err != nil:
			return out, err
		}
		completed++
		ticks += res.Ticks
		walls += res.Walls
		out.maxTicks = max(out.maxTicks, res.Ticks)
		if !res.HasSpawn {
			out.noSpawn++
		}
	}
	if completed > 0 {
		out.meanTicks = float64(ticks) / float64(completed)
		out.meanWalls = float64(walls) / float64(completed)
	}
	return out, nil
}

func parseInts(list string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(list, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseFloats(list string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(list, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
