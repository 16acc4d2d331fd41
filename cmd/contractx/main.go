// Package main provides the CLI entry point for contractx-go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/contractx-go/internal/config"
)

func main() {
	os.Exit(execute(os.Args[1:]))
}

func execute(args []string) (code int) {
	defer fmt.Fprintln(os.Stderr, "contractx: processing finished")

	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "contractx",
		Short: "Extract contract fields from PDF invoices",
		Long: `contractx-go rebuilds the tables of a PDF into a workbook, locates the
contract number, total value and concept, and looks the contract up in a
reference workbook of invoice records.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.BindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newRunCmd(),
		newConvertCmd(),
		newExtractCmd(),
		newMatchCmd(),
	)
	return rootCmd
}
