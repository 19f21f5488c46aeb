package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jbonatakis/backcast/internal/export"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the plan as markdown or CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := newPrinter(cmd)
		w, err := openWorkspace()
		if err != nil {
			return err
		}
		p, _, err := w.loadPlan(out)
		if err != nil {
			return err
		}

		var rendered []byte
		switch exportFormat {
		case "markdown", "md":
			rendered = []byte(export.Markdown(p))
		case "csv":
			rendered, err = export.CSV(p)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown format %q (want markdown or csv)", exportFormat)
		}

		if exportOut == "" {
			cmd.OutOrStdout().Write(rendered)
			return nil
		}
		if err := os.WriteFile(exportOut, rendered, 0o644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		out.printf("wrote %s", exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "markdown", "output format: markdown or csv")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "write to file instead of stdout")
}
