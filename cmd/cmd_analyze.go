// cmd_analyze.go - Bildanalyse ueber den laufenden Server
// Hauptfunktionen: AnalyzeHandler
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/thorascan/thorascan/api"
)

// AnalyzeHandler - Sendet ein Roentgenbild zur Analyse
func AnalyzeHandler(cmd *cobra.Command, args []string) error {
	client, err := api.ClientFromEnvironment()
	if err != nil {
		return err
	}

	imagePath := args[0]
	imageData, err := os.ReadFile(imagePath)
	if err != nil {
		return fmt.Errorf("reading image: %w", err)
	}

	modelType, _ := cmd.Flags().GetString("model")

	resp, err := client.Analyze(cmd.Context(), filepath.Base(imagePath), imageData, modelType)
	if err != nil {
		return err
	}

	fmt.Printf("Prediction: %s (%.2f%% confidence, model %s)\n\n",
		resp.Analysis.Prediction, resp.Analysis.Confidence, resp.Analysis.ModelUsed)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"CLASS", "PROBABILITY"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	for _, class := range []string{"Normal", "Pneumonia"} {
		table.Append([]string{class, fmt.Sprintf("%.2f%%", resp.Analysis.Probabilities[class])})
	}
	table.Render()

	fmt.Printf("\nAttention level: %s (%d region(s))\n", resp.Explanation.AttentionLevel, resp.Explanation.RegionsCount)
	for _, line := range resp.Explanation.Explanations {
		fmt.Printf("  - %s\n", line)
	}

	return nil
}

// newAnalyzeCmd - Erstellt den analyze Command
func newAnalyzeCmd() *cobra.Command {
	analyzeCmd := &cobra.Command{
		Use:   "analyze IMAGE",
		Short: "Analyze a chest X-ray image",
		Args:  cobra.ExactArgs(1),
		RunE:  AnalyzeHandler,
	}
	analyzeCmd.Flags().String("model", "", "Model to use (vgg16, resnet50, mobilenetv2, efficientnet)")
	return analyzeCmd
}
