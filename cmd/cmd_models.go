// cmd_models.go - Modell-Liste
// Hauptfunktionen: ListModelsHandler
package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/thorascan/thorascan/api"
)

// ListModelsHandler - Listet alle verfuegbaren Modelle auf
func ListModelsHandler(cmd *cobra.Command, _ []string) error {
	client, err := api.ClientFromEnvironment()
	if err != nil {
		return err
	}

	models, err := client.Models(cmd.Context())
	if err != nil {
		return err
	}

	var data [][]string
	for _, name := range models.Models {
		info, err := client.ModelInfo(cmd.Context(), name)
		if err != nil {
			data = append(data, []string{name, "-", "-"})
			continue
		}

		data = append(data, []string{
			info.Model.Name,
			fmt.Sprintf("%d", info.Model.Parameters),
			info.Model.Description,
		})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"NAME", "PARAMETERS", "DESCRIPTION"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	return nil
}

// newModelsCmd - Erstellt den models Command
func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "models",
		Aliases: []string{"list", "ls"},
		Short:   "List available models",
		Args:    cobra.ExactArgs(0),
		RunE:    ListModelsHandler,
	}
}
