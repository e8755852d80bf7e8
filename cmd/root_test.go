package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rprtr258/poolreuse/flow/pool"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

// resetFlags restores defaults between executions of the shared rootCmd.
func resetFlags() {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(reset)
	}
}

func TestOwned(t *testing.T) {
	out, err := execute(t, "owned", "--backend", "pond", "--workers", "3")
	require.NoError(t, err)
	assert.Equal(t, "110\n", out)
	assert.Equal(t, pool.Pond, backend)
}

func TestInjected(t *testing.T) {
	out, err := execute(t, "injected", "--runs", "3", "--workers", "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"110", "110", "110"}, strings.Fields(out))
}

func TestEnvDefaults(t *testing.T) {
	t.Setenv(envBackend, "pond")
	t.Setenv(envWorkers, "2")
	out, err := execute(t, "owned")
	require.NoError(t, err)
	assert.Equal(t, "110\n", out)
	assert.Equal(t, pool.Pond, backend)
	assert.Equal(t, 2, workers)
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv(envBackend, "pond")
	_, err := execute(t, "owned", "--backend", "native")
	require.NoError(t, err)
	assert.Equal(t, pool.Native, backend)
}

func TestInvalidConfig(t *testing.T) {
	_, err := execute(t, "owned", "--workers", "0")
	assert.ErrorIs(t, err, pool.ErrInvalidSize)

	_, err = execute(t, "owned", "--backend", "forkjoin")
	assert.Error(t, err)

	t.Setenv(envWorkers, "many")
	_, err = execute(t, "injected")
	assert.Error(t, err)
}
