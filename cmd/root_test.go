package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd(t *testing.T) {
	t.Run("registers all subcommands", func(t *testing.T) {
		names := make(map[string]bool)
		for _, sub := range RootCmd.Commands() {
			names[sub.Name()] = true
		}

		for _, expected := range []string{"chat", "ask", "health", "version"} {
			assert.True(t, names[expected], "missing subcommand %q", expected)
		}
	})

	t.Run("exposes the logs-level flag", func(t *testing.T) {
		flag := RootCmd.PersistentFlags().Lookup("logs-level")

		require.NotNil(t, flag)
		assert.Empty(t, flag.DefValue)
	})

	t.Run("chat accepts the filter flags", func(t *testing.T) {
		for _, name := range []string{"chat", "ask"} {
			sub, _, err := RootCmd.Find([]string{name})
			require.NoError(t, err)
			assert.NotNil(t, sub.Flags().Lookup("materia"), "%s is missing --materia", name)
			assert.NotNil(t, sub.Flags().Lookup("semestre"), "%s is missing --semestre", name)
		}
	})
}
