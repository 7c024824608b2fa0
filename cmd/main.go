package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stock-ideas",
	Short: "A CLI for managing the stock ideas services",
	Long:  `Stock ideas manages the lifecycle of published stock recommendations: drafting, publishing, amending and archiving.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your CLI '%s'", err)
		os.Exit(1)
	}
}
