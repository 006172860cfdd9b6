package main

import (
	"os"

	"github.com/spf13/cobra"
)

func makeShellCommand() *cobra.Command {
	var prompt string

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Read commands from stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			a.logger.Info("Starting shell")
			return a.interpreter().Run(os.Stdin, prompt)
		},
	}

	cmd.Flags().StringVar(&prompt, "prompt", "> ", "Prompt printed before each command")

	return cmd
}
