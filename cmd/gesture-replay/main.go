// Command gesture-replay replays recorded gesture sessions through the touch camera
// controller and reports any invariant violations.
//
// Usage:
//
//	gesture-replay [-workers N] [-v] recording.json...
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/Carmen-Shannon/oxy-dolly/common"
	"github.com/Carmen-Shannon/oxy-dolly/engine/replay"
)

func main() {
	workers := flag.Int("workers", runtime.NumCPU(), "number of recordings replayed in parallel")
	verbose := flag.Bool("v", false, "log controller pan transitions and skipped projections")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] recording.json...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if !run(flag.Args(), *workers, *verbose) {
		os.Exit(1)
	}
}

// run loads and replays every file and prints one line per recording.
// It reports false if any file failed to load or any recording broke an invariant.
func run(paths []string, workers int, verbose bool) bool {
	ok := true
	recordings := make([]*replay.Recording, 0, len(paths))
	for _, path := range paths {
		rec, err := replay.Load(path)
		if err != nil {
			log.Printf("[gesture-replay] %v", err)
			ok = false
			continue
		}
		rec.Name = common.Coalesce(rec.Name, path)
		recordings = append(recordings, rec)
	}

	runner := replay.NewRunner(replay.WithWorkers(workers), replay.WithDebugLogging(verbose))
	for _, res := range runner.Run(recordings) {
		switch {
		case res.Err != nil:
			fmt.Printf("ERROR %s: %v\n", res.Name, res.Err)
			ok = false
		case len(res.Violations) > 0:
			fmt.Printf("FAIL  %s: %d ticks, %d violations\n", res.Name, res.Ticks, len(res.Violations))
			for _, v := range res.Violations {
				fmt.Printf("      %s\n", v)
			}
			ok = false
		default:
			p := res.Position
			fmt.Printf("PASS  %s: %d ticks, position (%.3f, %.3f, %.3f), zoom %.3f\n",
				res.Name, res.Ticks, p.X(), p.Y(), p.Z(), res.State.CurrentZoomOffset)
		}
	}
	return ok
}
