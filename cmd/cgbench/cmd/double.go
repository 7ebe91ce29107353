package cmd

import (
	"github.com/spf13/cobra"
)

// doubleCmd represents the double command
var doubleCmd = &cobra.Command{
	Use:   "double",
	Short: "Time doubling of a form",
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
			x, _, err := operands(d)
			if err != nil {
				return err
			}
			if err := measure("double", d, n, func() error {
				_, err := x.Double()
				return err
			}); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(doubleCmd)
}
