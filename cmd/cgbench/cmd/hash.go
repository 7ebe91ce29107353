package cmd

import (
	"encoding/binary"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/f3rmion/vdf/classgroup"
)

// hashCmd represents the hash command
var hashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Time hashing to the group with a folding depth",
	Long: `Time HashToGroup with folding depth --k. Sizes for which k exceeds
the largest allowed depth are skipped.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		ds, err := discriminants()
		if err != nil {
			return err
		}
		n, err := iterations()
		if err != nil {
			return err
		}
		k := viper.GetUint32("k")
		seed := make([]byte, 32)
		for _, d := range ds {
			if limit := classgroup.LargestAllowedK(d); k > limit {
				logger.Warn("folding depth too large, skipping",
					zap.Int("bits", d.Bits()),
					zap.Uint32("k", k),
					zap.Uint32("limit", limit),
				)
				continue
			}
			var i uint64
			if err := measure("hash", d, n, func() error {
				// A fresh seed per iteration avoids timing one lucky candidate.
				binary.BigEndian.PutUint64(seed, i)
				i++
				_, err := classgroup.HashToGroup(seed, d, k)
				return err
			}, zap.Uint32("k", k)); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(hashCmd)
	hashCmd.Flags().Uint32("k", 8, "Folding depth")
	bindFlags(hashCmd.Flags())
}
