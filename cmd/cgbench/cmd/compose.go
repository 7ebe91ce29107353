package cmd

import (
	"github.com/spf13/cobra"
)

// composeCmd represents the compose command
var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Time composition of two distinct forms",
	RunE: func(_ *cobra.Command, _ []string) error {
		ds, err := discriminants()
		if err != nil {
			return err
		}
		n, err := iterations()
		if err != nil {
			return err
		}
		for _, d := range ds {
			x, y, err := operands(d)
			if err != nil {
				return err
			}
			if err := measure("compose", d, n, func() error {
				_, err := x.Compose(y)
				return err
			}); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(composeCmd)
}
