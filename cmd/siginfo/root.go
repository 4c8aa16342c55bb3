package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-signal/generator"
	"github.com/cwbudde/algo-signal/signal"
)

var (
	flagWave     string
	flagFreq     float64
	flagPhase    float64
	flagDuty     float64
	flagRate     float64
	flagDuration float64
	flagSeed     int64
	flagList     bool
)

// waveforms maps a waveform name to its generating function.
var waveforms = map[string]func(g *generator.Generator) *signal.Signal{
	"sine": func(g *generator.Generator) *signal.Signal {
		return g.Sine(flagFreq, flagPhase)
	},
	"pulse": func(g *generator.Generator) *signal.Signal {
		return g.Pulse(flagFreq, flagPhase, flagDuty)
	},
	"square": func(g *generator.Generator) *signal.Signal {
		return g.Square(flagFreq, flagPhase)
	},
	"triangle": func(g *generator.Generator) *signal.Signal {
		return g.Triangle(flagFreq, flagPhase)
	},
	"sawtooth": func(g *generator.Generator) *signal.Signal {
		return g.Sawtooth(flagFreq, flagPhase)
	},
	"noise": func(g *generator.Generator) *signal.Signal {
		return g.Noise(0, 1)
	},
	"step": func(g *generator.Generator) *signal.Signal {
		return g.Step(flagDuration / 2)
	},
}

// rootCmd generates the requested waveform and prints a statistics
// table to stdout.
var rootCmd = &cobra.Command{
	Use:   "siginfo",
	Short: "Print descriptive statistics of generated test waveforms",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagList {
			names := make([]string, 0, len(waveforms))
			for name := range waveforms {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		}

		wave, ok := waveforms[flagWave]
		if !ok {
			return fmt.Errorf("unknown waveform %q (use --list)", flagWave)
		}

		opts := []generator.Option{
			generator.WithSampleRate(flagRate),
			generator.WithTimeSpan(0, flagDuration),
		}
		if flagSeed != 0 {
			opts = append(opts, generator.WithSeed(flagSeed))
		}

		printSummary(cmd, wave(generator.New(opts...)).Describe())
		return nil
	},
}

func printSummary(cmd *cobra.Command, sum signal.Summary) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "length\t%d\n", sum.Length)
	fmt.Fprintf(w, "sum\t%.6g\n", sum.Sum)
	fmt.Fprintf(w, "mean\t%.6g\n", sum.Mean)
	fmt.Fprintf(w, "min\t%.6g (at %d)\n", sum.Min, sum.MinPos)
	fmt.Fprintf(w, "max\t%.6g (at %d)\n", sum.Max, sum.MaxPos)
	fmt.Fprintf(w, "peak-to-peak\t%.6g\n", sum.PeakToPeak)
	fmt.Fprintf(w, "variance (pop)\t%.6g\n", sum.VarPop)
	fmt.Fprintf(w, "variance (sample)\t%.6g\n", sum.VarSample)
	fmt.Fprintf(w, "std dev (pop)\t%.6g\n", sum.StdPop)
	fmt.Fprintf(w, "std dev (sample)\t%.6g\n", sum.StdSample)
	fmt.Fprintf(w, "energy\t%.6g\n", sum.Energy)
	fmt.Fprintf(w, "avg power\t%.6g\n", sum.AvgPower)
	w.Flush()
}

// Execute runs the root command, printing any error and exiting with
// a non-zero status on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&flagWave, "wave", "sine", "waveform to generate (see --list)")
	rootCmd.Flags().Float64Var(&flagFreq, "freq", 440, "waveform frequency in Hz")
	rootCmd.Flags().Float64Var(&flagPhase, "phase", 0, "phase offset in radians")
	rootCmd.Flags().Float64Var(&flagDuty, "duty", 0.5, "duty cycle for pulse waves")
	rootCmd.Flags().Float64Var(&flagRate, "rate", 48000, "sample rate in Hz")
	rootCmd.Flags().Float64Var(&flagDuration, "duration", 1, "signal duration in seconds")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "random seed for noise (0 uses the shared source)")
	rootCmd.Flags().BoolVar(&flagList, "list", false, "list available waveform names")
}
