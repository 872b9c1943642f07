package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/depthchart-compiler/internal/export"
)

var exportCommand = &cobra.Command{
	Use:   "export",
	Short: "Convert a JSON export to CSV",
	Long:  "Reads an existing JSON export and writes its player records as a flat CSV file.",
	RunE:  runExportCmd,
}

var (
	exportInput  string
	exportOutput string
)

func init() {
	exportCommand.Flags().StringVarP(&exportInput, "input", "i", "output/depth_charts.json", "Path to the JSON export")
	exportCommand.Flags().StringVarP(&exportOutput, "output", "o", "output/depth_charts.csv", "Path for the CSV file")

	rootCmd.AddCommand(exportCommand)
}

func runExportCmd(_ *cobra.Command, _ []string) error {
	envelope, err := export.ReadJSON(exportInput)
	if err != nil {
		return err
	}

	if err := export.WriteCSV(envelope.Players, exportOutput); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Wrote %d players to %s\n", len(envelope.Players), exportOutput)
	return nil
}
