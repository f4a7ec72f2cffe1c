// invoice-batch processes one billing spreadsheet offline, writing the
// rendered invoice workbooks to a directory. It shares the whole
// processing pipeline with the invoiced server but needs no database
// and no network.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
