package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/f3rmion/vdf/classgroup"
)

var (
	cfgFile string
	verbose bool
	logger  = zap.NewNop()
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cgbench",
	Short: "Measure class group operations",
	Long: `cgbench times composition, doubling, hashing to the group and delay
evaluation in imaginary quadratic class groups. Discriminants are selected
by size from the published set, or given explicitly.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error
		if verbose || viper.GetBool("verbose") {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		return err
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		_ = logger.Sync()
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cgbench.yaml)")

	RootCmd.PersistentFlags().IntSlice("bits", []int{1024}, fmt.Sprintf("Known discriminant sizes to measure, any of %v", classgroup.KnownDiscriminantSizes()))
	RootCmd.PersistentFlags().String("discriminant", "", "Explicit base-10 discriminant; overrides --bits")
	RootCmd.PersistentFlags().Int("iterations", 100, "Operations per measurement")
	RootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Use a development logger")
	bindFlags(RootCmd.PersistentFlags())
}

// bindFlags makes every flag in fs readable through viper, so values can
// also come from CGBENCH_* variables or the config file.
func bindFlags(fs *pflag.FlagSet) {
	if err := viper.BindPFlags(fs); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
// initConfig is run during a command's preRun().
func initConfig() {
	viper.SetEnvPrefix("cgbench")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match.

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed reading config file: %v: %v\n", viper.ConfigFileUsed(), err)
			os.Exit(1)
		}
	} else {
		viper.SetConfigName(".cgbench")
		viper.AddConfigPath("$HOME")
		if err := viper.ReadInConfig(); err == nil {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

// discriminants returns the discriminants selected by --discriminant or
// --bits.
func discriminants() ([]*classgroup.Discriminant, error) {
	if s := viper.GetString("discriminant"); s != "" {
		d, err := classgroup.DiscriminantFromString(s)
		if err != nil {
			return nil, err
		}
		return []*classgroup.Discriminant{d}, nil
	}
	bits := viper.GetIntSlice("bits")
	if len(bits) == 0 {
		return nil, fmt.Errorf("no discriminant selected")
	}
	ds := make([]*classgroup.Discriminant, 0, len(bits))
	for _, b := range bits {
		d, err := classgroup.KnownDiscriminant(b)
		if err != nil {
			return nil, err
		}
		ds = append(ds, d)
	}
	return ds, nil
}

func iterations() (int, error) {
	n := viper.GetInt("iterations")
	if n <= 0 {
		return 0, fmt.Errorf("iterations must be positive, got %d", n)
	}
	return n, nil
}

// measure runs fn n times and logs the mean duration.
func measure(op string, d *classgroup.Discriminant, n int, fn func() error, fields ...zap.Field) error {
	start := time.Now()
	for i := 0; i < n; i++ {
		if err := fn(); err != nil {
			return fmt.Errorf("%s on %d-bit discriminant: %w", op, d.Bits(), err)
		}
	}
	elapsed := time.Since(start)
	logger.Info("measured",
		append([]zap.Field{
			zap.String("op", op),
			zap.Int("bits", d.Bits()),
			zap.Int("iterations", n),
			zap.Duration("total", elapsed),
			zap.Int64("ns/op", elapsed.Nanoseconds()/int64(n)),
		}, fields...)...,
	)
	return nil
}

// operands hashes two fixed seeds into the group of d.
func operands(d *classgroup.Discriminant) (*classgroup.QuadraticForm, *classgroup.QuadraticForm, error) {
	x, err := classgroup.HashToGroup([]byte{1, 2, 3}, d, 0)
	if err != nil {
		return nil, nil, err
	}
	y, err := classgroup.HashToGroup([]byte{4, 5, 6}, d, 0)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}
