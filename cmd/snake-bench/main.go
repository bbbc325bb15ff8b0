package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/lixenwraith/shooter-snake/engine"
	"github.com/lixenwraith/shooter-snake/event"
	"github.com/lixenwraith/shooter-snake/input"
	"github.com/lixenwraith/shooter-snake/parameter"
	"github.com/lixenwraith/shooter-snake/status"
)

var (
	rounds   = flag.Int("rounds", 20, "Rounds to play")
	seed     = flag.Uint64("seed", 1, "Seed of the first round; round i uses seed+i")
	maxTicks = flag.Int("max-ticks", 20000, "Tick limit per round")
	jsonOut  = flag.Bool("json", false, "Print results as JSON")
	verbose  = flag.Bool("v", false, "Log engine output to stderr")
)

type roundResult struct {
	Seed    uint64        `json:"seed"`
	Outcome string        `json:"outcome"`
	Ticks   uint64        `json:"ticks"`
	Length  int           `json:"length"`
	Kills   int64         `json:"kills"`
	Eaten   int64         `json:"eaten"`
	Elapsed time.Duration `json:"elapsed_ns"`
}

type summary struct {
	Rounds    int           `json:"rounds"`
	Victories int           `json:"victories"`
	Deaths    int           `json:"deaths"`
	Timeouts  int           `json:"timeouts"`
	AvgLength float64       `json:"avg_length"`
	AvgTicks  float64       `json:"avg_ticks"`
	Results   []roundResult `json:"results"`
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	sum := runBench(*rounds, *seed, *maxTicks)

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(sum); err != nil {
			fmt.Fprintf(os.Stderr, "encode: %v\n", err)
			os.Exit(1)
		}
		return
	}
	printSummary(os.Stdout, sum)
}

func runBench(n int, firstSeed uint64, limit int) summary {
	sum := summary{Rounds: n, Results: make([]roundResult, 0, n)}
	ap := autopilot{minShootLength: 5}

	for i := 0; i < n; i++ {
		res := playRound(firstSeed+uint64(i), limit, ap)
		switch res.Outcome {
		case "victory":
			sum.Victories++
		case "over":
			sum.Deaths++
		default:
			sum.Timeouts++
		}
		sum.AvgLength += float64(res.Length)
		sum.AvgTicks += float64(res.Ticks)
		sum.Results = append(sum.Results, res)
	}
	if n > 0 {
		sum.AvgLength /= float64(n)
		sum.AvgTicks /= float64(n)
	}
	return sum
}

// playRound runs one round at fixed tick length with no terminal
func playRound(s uint64, limit int, ap autopilot) roundResult {
	reg := status.NewRegistry()
	round := engine.NewRound(parameter.DefaultRules(), s, event.NewRouter(), reg)
	round.Start()
	steering := input.NewSteering()

	start := time.Now()
	for t := 0; t < limit && round.Phase() == engine.PhaseRunning; t++ {
		heading := round.Player().LastDirection
		dir, fire := ap.decide(round.Snapshot(), heading)
		steering.Request(dir)
		round.Tick(parameter.TickInterval, engine.Intent{Direction: steering.Next(), Fire: fire})
		steering.Commit(round.Player().LastDirection)
	}

	outcome := round.Phase().String()
	if round.Phase() == engine.PhaseRunning {
		outcome = "timeout"
	}
	return roundResult{
		Seed:    s,
		Outcome: outcome,
		Ticks:   round.TickCount(),
		Length:  round.Player().Len(),
		Kills:   reg.Ints.Get(status.Kills).Load(),
		Eaten:   reg.Ints.Get(status.ResourcesEaten).Load(),
		Elapsed: time.Since(start),
	}
}

func printSummary(w io.Writer, sum summary) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SEED\tOUTCOME\tTICKS\tLENGTH\tKILLS\tEATEN\tTIME")
	for _, r := range sum.Results {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%v\n",
			r.Seed, r.Outcome, r.Ticks, r.Length, r.Kills, r.Eaten, r.Elapsed.Round(time.Microsecond))
	}
	tw.Flush()

	fmt.Fprintf(w, "\n%d rounds: %d victories, %d deaths, %d timeouts\n",
		sum.Rounds, sum.Victories, sum.Deaths, sum.Timeouts)
	fmt.Fprintf(w, "avg length %.1f, avg ticks %.0f\n", sum.AvgLength, sum.AvgTicks)
}
