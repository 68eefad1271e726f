package main

import (
	"fmt"

	"github.com/aescanero/dago-node-template/internal/eval/cel"
	"github.com/aescanero/dago-node-template/internal/eval/template"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newValidateCmd(opts *cliOptions) *cobra.Command {
	var templatePath string
	var conditions []string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that a template parses and variant conditions compile",
		Example: `  template-render validate -t report.hbs
  template-render validate -t report.hbs -c "state.inputs.lang == 'es'"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readInput(templatePath, cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read template: %w", err)
			}

			if err := template.NewEngine().ValidateTemplate(string(source)); err != nil {
				return fmt.Errorf("invalid template: %w", err)
			}

			evaluator := cel.NewEvaluator()
			for i, condition := range conditions {
				if err := evaluator.ValidateExpression(condition); err != nil {
					return fmt.Errorf("invalid condition %d: %w", i, err)
				}
			}

			opts.logger.Debug("template valid",
				zap.String("template", templatePath),
				zap.Int("conditions", len(conditions)),
			)

			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}

	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "template file (- for stdin)")
	cmd.Flags().StringArrayVarP(&conditions, "condition", "c", nil, "CEL variant condition to check (repeatable)")
	_ = cmd.MarkFlagRequired("template")

	return cmd
}
