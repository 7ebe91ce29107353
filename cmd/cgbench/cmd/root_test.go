package cmd

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/vdf/classgroup"
)

func TestDiscriminants(t *testing.T) {
	t.Cleanup(func() { rebind(t) })

	viper.Set("bits", []int{1024, 2048})
	ds, err := discriminants()
	require.NoError(t, err)
	require.Len(t, ds, 2)
	require.Equal(t, 1024, ds[0].Bits())
	require.Equal(t, 2048, ds[1].Bits())

	viper.Set("bits", []int{1000})
	_, err = discriminants()
	require.ErrorIs(t, err, classgroup.ErrInvalidDiscriminant)

	viper.Set("discriminant", "-23")
	ds, err = discriminants()
	require.NoError(t, err)
	require.Len(t, ds, 1)
	require.Equal(t, "-23", ds[0].String())

	viper.Set("discriminant", "-15")
	_, err = discriminants()
	require.ErrorIs(t, err, classgroup.ErrInvalidDiscriminant)
}

func TestIterations(t *testing.T) {
	t.Cleanup(func() { rebind(t) })

	viper.Set("iterations", 5)
	n, err := iterations()
	require.NoError(t, err)
	require.Equal(t, 5, n)

	viper.Set("iterations", 0)
	_, err = iterations()
	require.Error(t, err)
}

// rebind restores the flag bindings removed by viper.Reset.
func rebind(t *testing.T) {
	t.Helper()
	viper.Reset()
	bindFlags(RootCmd.PersistentFlags())
	bindFlags(hashCmd.Flags())
	bindFlags(delayCmd.Flags())
}

func TestCommands(t *testing.T) {
	rebind(t)
	const disc = "-336977114369544918170823105345150536087"
	for _, args := range [][]string{
		{"compose", "--discriminant", disc, "--iterations", "2"},
		{"double", "--discriminant", disc, "--iterations", "2"},
		{"hash", "--discriminant", disc, "--iterations", "2", "--k", "3"},
		{"hash", "--discriminant", disc, "--iterations", "1", "--k", "60"},
		{"delay", "--discriminant", disc, "--t", "16", "--delay-k", "1", "a", "b"},
	} {
		t.Run(args[0], func(t *testing.T) {
			RootCmd.SetArgs(args)
			require.NoError(t, RootCmd.Execute())
		})
	}
}
