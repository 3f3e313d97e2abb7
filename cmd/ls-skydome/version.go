package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-skydome/internal/version"
)

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ls-skydome v%s\n", version.Version)
		},
	}
}
