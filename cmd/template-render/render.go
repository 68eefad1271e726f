package main

import (
	"fmt"

	"github.com/aescanero/dago-node-template/internal/eval/template"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRenderCmd(opts *cliOptions) *cobra.Command {
	var templatePath, dataPath, outputPath string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a template with YAML or JSON data",
		Example: `  template-render render -t report.hbs -d data.yaml
  cat report.hbs | template-render render -t - -d data.json -o report.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readInput(templatePath, cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read template: %w", err)
			}

			data := map[string]interface{}{}
			if dataPath != "" {
				if dataPath == InputSourceStdin && templatePath == InputSourceStdin {
					return fmt.Errorf("template and data cannot both come from stdin")
				}
				raw, err := readInput(dataPath, cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read data: %w", err)
				}
				if data, err = decodeData(raw); err != nil {
					return err
				}
			}

			output, err := template.NewEngine().Render(string(source), data)
			if err != nil {
				return err
			}

			opts.logger.Debug("rendered template",
				zap.String("template", templatePath),
				zap.String("data", dataPath),
				zap.Int("output_bytes", len(output)),
			)

			if err := writeOutput(outputPath, []byte(output), cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "template file (- for stdin)")
	cmd.Flags().StringVarP(&dataPath, "data", "d", "", "YAML or JSON data file (- for stdin)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default stdout)")
	_ = cmd.MarkFlagRequired("template")

	return cmd
}
