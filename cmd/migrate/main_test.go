package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Subcommands(t *testing.T) {
	root := newRootCommand()
	for _, name := range []string{"up", "down", "steps", "version"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestStepsCommand_RequiresNumber(t *testing.T) {
	root := newRootCommand()
	root.SetArgs([]string{"steps", "abc"})
	root.SetOut(new(discard))
	root.SetErr(new(discard))

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid steps argument")
}

func TestStepsCommand_RequiresExactlyOneArg(t *testing.T) {
	root := newRootCommand()
	root.SetArgs([]string{"steps"})
	root.SetOut(new(discard))
	root.SetErr(new(discard))

	assert.Error(t, root.Execute())
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
