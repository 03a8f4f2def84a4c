package main

import (
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCLICommandGrammar pins the command strings main() dispatches on, so a
// flag or argument rename cannot silently orphan a command.
func TestCLICommandGrammar(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"prepare"}, "prepare"},
		{[]string{"prepare", "--watch", "--clean", "--commit"}, "prepare"},
		{[]string{"prepare", "--metrics-addr", ":9090"}, "prepare"},
		{[]string{"transform", "input.md"}, "transform <input>"},
		{[]string{"transform", "-", "-i"}, "transform <input>"},
		{[]string{"sidebar"}, "sidebar"},
		{[]string{"sidebar", "./wiki", "-o", "_Sidebar.md"}, "sidebar <wiki-dir>"},
		{[]string{"footer", "--repo-owner", "wallstop", "--repo-name", "unity-helpers"}, "footer"},
		{[]string{"check"}, "check"},
		{[]string{"check", "./wiki"}, "check <wiki-dir>"},
	}

	for _, c := range cases {
		parser, err := kong.New(&CLI)
		require.NoError(t, err)
		ctx, err := parser.Parse(c.args)
		require.NoError(t, err, "args: %v", c.args)
		assert.Equal(t, c.want, ctx.Command(), "args: %v", c.args)
	}
}

func TestCLIDefaults(t *testing.T) {
	parser, err := kong.New(&CLI)
	require.NoError(t, err)
	_, err = parser.Parse([]string{"prepare"})
	require.NoError(t, err)
	assert.Equal(t, "wikibuilder.yaml", CLI.Config)
	assert.False(t, CLI.Verbose)
}
