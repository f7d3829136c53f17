package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/qix-arcade/internal/config"
	"github.com/vovakirdan/qix-arcade/internal/core"
	"github.com/vovakirdan/qix-arcade/internal/games/qix"
)

var errEmptyScript = errors.New("script is empty")

var (
	flagScript string
	flagDT     float64
	flagRender bool
	flagTrace  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a scripted headless session",
	Long: `Run a session without a terminal UI and print the final state.

A script is a comma-separated list of action:ticks steps. Actions joined
with + are held together. Known actions: up, right, down, left, draw,
fastdraw, pause, idle.

Examples:
  qix sim --script "right:30,draw:1,up:20"
  qix sim --script "left+fastdraw:40,down:10" --dt 0.02 --render
  qix sim --script "up:5" --trace`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagScript, "script", "", "Input script (action:ticks,...)")
	simCmd.Flags().Float64Var(&flagDT, "dt", 0, "Seconds per tick (default 1/fps)")
	simCmd.Flags().BoolVar(&flagRender, "render", false, "Print the final frame")
	simCmd.Flags().BoolVar(&flagTrace, "trace", false, "Print the marker after every tick")
	simCmd.MarkFlagRequired("script") //nolint:errcheck // flag is defined above
}

// scriptStep holds a set of actions for a number of ticks.
type scriptStep struct {
	Actions []core.Action
	Ticks   int
}

// parseScript parses "right:30,draw+up:5" into steps.
func parseScript(script string) ([]scriptStep, error) {
	var steps []scriptStep
	for raw := range strings.SplitSeq(script, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		names, count, ok := strings.Cut(raw, ":")
		if !ok {
			count = "1"
		}
		ticks, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil || ticks < 0 {
			return nil, fmt.Errorf("step %q: bad tick count", raw)
		}

		var step scriptStep
		step.Ticks = ticks
		for name := range strings.SplitSeq(names, "+") {
			action, ok := core.ParseAction(name)
			if !ok {
				return nil, fmt.Errorf("step %q: unknown action %q", raw, strings.TrimSpace(name))
			}
			if action != core.ActionNone {
				step.Actions = append(step.Actions, action)
			}
		}
		steps = append(steps, step)
	}
	if len(steps) == 0 {
		return nil, errEmptyScript
	}
	return steps, nil
}

// simulate runs the steps against a fresh game and reports to w.
func simulate(w io.Writer, cfg config.QixConfig, rt core.RuntimeConfig, steps []scriptStep, dt float64, trace bool) *qix.Game {
	game := qix.NewWithConfig(cfg)
	game.Reset(rt)

	for _, step := range steps {
		for range step.Ticks {
			game.Step(core.InputOf(step.Actions...), dt)
			if trace {
				st := game.MarkerState()
				fmt.Fprintf(w, "%5d  %-12s %.4f,%.4f  v=%+.3f,%+.3f\n",
					game.LastTick().Tick, st.Marker.Mode,
					st.Position.X, st.Position.Y, st.Velocity.X, st.Velocity.Y)
			}
		}
	}
	return game
}

func runSim(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	steps, err := parseScript(flagScript)
	if err != nil {
		return fmt.Errorf("sim: %w", err)
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	dt := flagDT
	if dt == 0 {
		dt = rt.TickSeconds()
	}

	start := time.Now()
	game := simulate(os.Stdout, cfg, rt, steps, dt, flagTrace)
	logger.Debug("simulation finished", "steps", len(steps), "wall", time.Since(start))

	st := game.MarkerState()
	sum := game.Summary()
	fmt.Printf("position  %.4f, %.4f\n", st.Position.X, st.Position.Y)
	fmt.Printf("velocity  %.4f, %.4f\n", st.Velocity.X, st.Velocity.Y)
	fmt.Printf("mode      %s\n", st.Marker.Mode)
	fmt.Printf("ticks     %d (%.3fs)\n", sum.Ticks, sum.Elapsed)
	fmt.Printf("distance  %.4f\n", sum.Distance)

	if flagRender {
		screen := core.NewScreen(rt.ScreenW, rt.ScreenH)
		game.Render(screen)
		fmt.Println(screen.String())
	}
	return nil
}
