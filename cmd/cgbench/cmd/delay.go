package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/f3rmion/vdf/classgroup"
	"github.com/f3rmion/vdf/delay"
)

// delayCmd represents the delay command
var delayCmd = &cobra.Command{
	Use:   "delay [seed...]",
	Short: "Evaluate the delay function on one or more seeds",
	Long: `Hash each seed into the group with folding depth --delay-k and square
the result --t times. Several seeds are evaluated in parallel, each one
sequentially. Interrupting the command cancels the evaluation between
doublings.`,
	RunE: func(_ *cobra.Command, args []string) error {
		ds, err := discriminants()
		if err != nil {
			return err
		}
		if len(args) == 0 {
			args = []string{"cgbench"}
		}
		seeds := make([][]byte, len(args))
		for i, a := range args {
			seeds[i] = []byte(a)
		}
		t := viper.GetUint64("t")
		k := viper.GetUint32("delay-k")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		for _, d := range ds {
			ev := delay.New[*classgroup.QuadraticForm](classgroup.New(d),
				delay.WithLogger(logger),
				delay.WithProgressInterval(viper.GetUint64("progress")),
				delay.WithParallelism(viper.GetInt("parallelism")),
			)
			start := time.Now()
			out, err := ev.EvaluateBatch(ctx, seeds, k, t)
			if err != nil {
				return err
			}
			logger.Info("evaluated",
				zap.Int("bits", d.Bits()),
				zap.Uint64("t", t),
				zap.Int("seeds", len(seeds)),
				zap.Duration("elapsed", time.Since(start)),
			)
			for i, y := range out {
				fmt.Printf("%d\t%s\t%x\n", d.Bits(), args[i], y.Bytes())
			}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(delayCmd)
	delayCmd.Flags().Uint64("t", 1<<16, "Number of sequential doublings")
	delayCmd.Flags().Uint32("delay-k", 0, "Folding depth of the hashed input")
	delayCmd.Flags().Uint64("progress", 0, "Log progress every n doublings at debug level")
	delayCmd.Flags().Int("parallelism", 0, "Concurrent evaluations (default GOMAXPROCS)")
	bindFlags(delayCmd.Flags())
}
