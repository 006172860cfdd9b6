package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bigredeye/transcripts/internal/shell"
)

var demoScript = `
add blair
add corey
add blair
find blair
grade 1 CS101 95
grade 1 MATH200 58
grade 1 CS101 85
grade 2 CS101 70
grade 3 HIST110 88
transcript 1
get 1 CS101
get 2 MATH200
summary 1
standings
`

func makeDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			runDemo(a.interpreter(), os.Stdout)
			return nil
		},
	}
}

func runDemo(interpreter *shell.Interpreter, out io.Writer) {
	for _, line := range strings.Split(strings.TrimSpace(demoScript), "\n") {
		fmt.Fprintf(out, "> %s\n", line)
		if err := interpreter.Execute(line); err != nil {
			fmt.Fprintf(out, "error: %s\n", err)
		}
	}
}
