package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"seqbench/internal/config"
	"seqbench/internal/db"
)

// resetConfig gives each test fresh defaults, a small iteration count from
// the environment, and restores the injectable globals afterwards.
func resetConfig(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Setenv("SEQBENCH_BENCH_ITERATIONS", "5")
	require.NoError(t, config.Load(""))

	// initConfig runs for every executed command; keep a failed validation
	// from ending the test binary.
	origAskOne, origExit := askOne, exit
	exit = func(code int) {}
	t.Cleanup(func() {
		viper.Reset()
		askOne = origAskOne
		exit = origExit
		newSourceFunc = db.NewSource
	})
}

func executeCmd(cmd *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}
