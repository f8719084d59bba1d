// cmd_optimize.go - Optimierungsvergleich und Bericht
// Hauptfunktionen: OptimizeHandler, printComparison, printReport
package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/thorascan/thorascan/api"
	"github.com/thorascan/thorascan/optimize"
)

// OptimizeHandler - Vergleicht Optimierungsstrategien fuer ein Modell
func OptimizeHandler(cmd *cobra.Command, args []string) error {
	client, err := api.ClientFromEnvironment()
	if err != nil {
		return err
	}

	modelType := args[0]
	targetSize, _ := cmd.Flags().GetFloat64("target-size")
	strategy, _ := cmd.Flags().GetString("type")
	report, _ := cmd.Flags().GetBool("report")

	if strategy != "" {
		resp, err := client.Optimize(cmd.Context(), &api.OptimizeRequest{
			ModelType:        modelType,
			OptimizationType: strategy,
			TargetSizeMB:     targetSize,
		})
		if err != nil {
			return err
		}
		return printStrategyResult(resp.OptimizationResult)
	}

	if report {
		resp, err := client.OptimizationReport(cmd.Context(), &api.ReportRequest{
			ModelType:    modelType,
			TargetSizeMB: targetSize,
		})
		if err != nil {
			return err
		}
		return printReport(resp.Report)
	}

	resp, err := client.CompareOptimizations(cmd.Context(), &api.CompareOptimizationsRequest{
		ModelType:    modelType,
		TargetSizeMB: targetSize,
	})
	if err != nil {
		return err
	}
	return printComparison(resp.ComparisonResult)
}

// printStrategyResult - Gibt ein einzelnes Strategie-Ergebnis aus
func printStrategyResult(result optimize.StrategyResult) error {
	if result.Error != "" {
		return fmt.Errorf("%s", result.Error)
	}

	fmt.Printf("Strategy: %s\n\n", result.OptimizationType)

	table := newMetricsTable()
	appendMetricsRow(table, "original", result.OriginalMetrics.SizeMB,
		result.OriginalMetrics.InferenceTimeMS, result.OriginalMetrics.Accuracy)
	appendMetricsRow(table, "optimized", result.OptimizedMetrics.SizeMB,
		result.OptimizedMetrics.InferenceTimeMS, result.OptimizedMetrics.Accuracy)
	table.Render()

	return nil
}

// printComparison - Gibt die Strategie-Vergleichstabelle aus
func printComparison(comparison optimize.ComparisonReport) error {
	table := newMetricsTable()

	strategies := make([]optimize.Strategy, 0, len(comparison.Strategies))
	for s := range comparison.Strategies {
		strategies = append(strategies, s)
	}
	sort.Slice(strategies, func(i, j int) bool { return strategies[i] < strategies[j] })

	for _, s := range strategies {
		result := comparison.Strategies[s]
		if result.Error != "" {
			table.Append([]string{string(s), "-", "-", "-"})
			continue
		}
		appendMetricsRow(table, string(s), result.OptimizedMetrics.SizeMB,
			result.OptimizedMetrics.InferenceTimeMS, result.OptimizedMetrics.Accuracy)
	}
	table.Render()

	fmt.Printf("\nBest strategy: %s\n%s\n", comparison.BestStrategy, comparison.Recommendation)
	return nil
}

// printReport - Gibt den vollstaendigen Optimierungsbericht aus
func printReport(report optimize.OptimizationReport) error {
	fmt.Printf("Optimization report for %s (target %.1f MB)\n\n", report.ModelInfo.Name, report.TargetSizeMB)

	if err := printComparison(report.OptimizationComparison); err != nil {
		return err
	}

	fmt.Printf("\nAchievable size: %.1f MB\n\nNext steps:\n", report.Summary.AchievableSizeMB)
	for _, step := range report.NextSteps {
		fmt.Printf("  - %s\n", step)
	}

	return nil
}

func newMetricsTable() *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"STRATEGY", "SIZE (MB)", "INFERENCE (MS)", "ACCURACY"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	return table
}

func appendMetricsRow(table *tablewriter.Table, label string, size, inferenceMS, accuracy float64) {
	table.Append([]string{
		label,
		fmt.Sprintf("%.2f", size),
		fmt.Sprintf("%.2f", inferenceMS),
		fmt.Sprintf("%.4f", accuracy),
	})
}

// newOptimizeCmd - Erstellt den optimize Command
func newOptimizeCmd() *cobra.Command {
	optimizeCmd := &cobra.Command{
		Use:   "optimize MODEL",
		Short: "Compare optimization strategies for a model",
		Args:  cobra.ExactArgs(1),
		RunE:  OptimizeHandler,
	}
	optimizeCmd.Flags().Float64("target-size", optimize.DefaultTargetSizeMB, "Target model size in MB")
	optimizeCmd.Flags().String("type", "", "Run a single strategy (pruning, quantization, distillation, optimization)")
	optimizeCmd.Flags().Bool("report", false, "Print the full optimization report")
	return optimizeCmd
}
