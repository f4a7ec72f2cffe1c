package main

import (
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "invoice-batch",
	Short: "Process billing spreadsheets into invoice workbooks",
	Long: `invoice-batch converts a billing spreadsheet (CSV or XLSX) into one
styled invoice workbook per row, using the same transformation pipeline
as the invoiced server. Nothing is persisted; output goes to a local
directory.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
