package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pyhub-apps/pdftemplate/internal/config"
	"github.com/pyhub-apps/pdftemplate/pkg/template"
	"github.com/pyhub-apps/pdftemplate/pkg/textrun"
	"github.com/pyhub-apps/pdftemplate/pkg/workflow"
)

var createInput string
var createOutput string
var createTol *config.ToleranceFlags

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a template from two sample documents",
	Long: `Compare the first two PDF files of the input directory and prompt for a
name for every text run that differs between them. Named runs are saved as a
template (XML, or YAML for .yaml/.yml output files).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.RequireDir("input", createInput); err != nil {
			return err
		}
		if err := config.RequireOutput("output", createOutput); err != nil {
			return err
		}
		tol, err := createTol.Resolve(textrun.DefaultCreateTolerance)
		if err != nil {
			return err
		}

		sel := newConsoleSelector(cmd.InOrStdin(), cmd.OutOrStdout())
		tpl, err := workflow.CreateFromDir(cmd.Context(), createInput, sel,
			workflow.WithTolerance(tol),
			workflow.WithLogger(logger),
		)
		if tpl == nil {
			return err
		}
		if err != nil {
			logger.Warn("some attributes were rejected", "err", err)
		}

		if tpl.Len() == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No attributes selected, template not written.")
			return nil
		}
		if err := template.Save(createOutput, tpl); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d attributes to %s\n", tpl.Len(), createOutput)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&createInput, "input", "i", "", "Directory containing the sample PDF files")
	createCmd.Flags().StringVarP(&createOutput, "output", "o", "", "Template file to write")
	createTol = config.RegisterTolerance(createCmd.Flags(), textrun.DefaultCreateTolerance)

	rootCmd.AddCommand(createCmd)
}
