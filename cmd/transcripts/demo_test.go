package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/bigredeye/transcripts/internal/config"
	"github.com/bigredeye/transcripts/internal/scorer"
	"github.com/bigredeye/transcripts/internal/shell"
	"github.com/bigredeye/transcripts/internal/transcripts"
)

func TestDemo(t *testing.T) {
	logger := zaptest.NewLogger(t)
	store := transcripts.New(transcripts.WithLogger(logger))
	s := scorer.NewScorer(config.Default(), store, logger)
	defer s.Close()

	out := &bytes.Buffer{}
	runDemo(shell.NewInterpreter(store, s, out, logger), out)

	output := out.String()
	require.Contains(t, output, "> find blair\n1\n3\n")
	require.Contains(t, output, "> grade 1 CS101 85\nerror: student 1 already has grade 95 for course \"CS101\"\n")
	require.Contains(t, output, "> get 2 MATH200\nerror: student 2 has no grade for course \"MATH200\"\n")
	require.True(t, strings.HasSuffix(output, "1\t3\tblair\t88.00\n2\t1\tblair\t76.50\n3\t2\tcorey\t70.00\n"), output)
}

func TestCommands(t *testing.T) {
	names := make([]string, 0)
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}
	require.Contains(t, names, "shell")
	require.Contains(t, names, "demo")
	require.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
}
