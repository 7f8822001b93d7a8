package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/pyhub-apps/pdftemplate/internal/config"
	"github.com/pyhub-apps/pdftemplate/pkg/export"
	"github.com/pyhub-apps/pdftemplate/pkg/match"
	"github.com/pyhub-apps/pdftemplate/pkg/template"
	"github.com/pyhub-apps/pdftemplate/pkg/textrun"
	"github.com/pyhub-apps/pdftemplate/pkg/workflow"
)

var (
	applyPDFPath    string
	applyAttributes string
	applyOutput     string
	applyEncoding   string
	applyRaw        bool
	applyMatchPage  bool
	applyValidate   bool
	applyWorkers    int
	applyTol        *config.ToleranceFlags
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Extract template fields from a directory of documents",
	Long: `Apply a template to every PDF file of a directory. Values are printed as a
table and optionally written to a semicolon-separated CSV file. Fields with no
text at their position are reported as N/A.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.RequireDir("pdf-path", applyPDFPath); err != nil {
			return err
		}
		if err := config.RequireFile("attributes", applyAttributes); err != nil {
			return err
		}
		if applyOutput != "" {
			if err := config.RequireOutput("output", applyOutput); err != nil {
				return err
			}
		}
		if err := export.CheckCharset(applyEncoding); err != nil {
			return &config.Error{Flags: []string{"encoding"}, Err: fmt.Errorf("%w: %v", config.ErrInvalid, err)}
		}
		if err := config.RequirePositive("workers", applyWorkers); err != nil {
			return err
		}
		tol, err := applyTol.Resolve(textrun.DefaultApplyTolerance)
		if err != nil {
			return err
		}

		tpl, err := template.Load(applyAttributes)
		if tpl == nil {
			return err
		}
		if err != nil {
			logger.Warn("skipping invalid template entries", "err", err)
		}
		if tpl.Len() == 0 {
			return fmt.Errorf("%s: template has no usable attributes", applyAttributes)
		}

		paths, err := workflow.SampleFiles(applyPDFPath)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return fmt.Errorf("no PDF files in %s", applyPDFPath)
		}

		columns := uniqueNames(tpl)
		sinks := export.MultiSink{export.NewConsoleSink(cmd.OutOrStdout(), columns)}
		if applyOutput != "" {
			f, err := os.Create(applyOutput)
			if err != nil {
				return fmt.Errorf("failed to create output: %w", err)
			}
			defer f.Close()

			csvSink, err := export.NewCSVSink(f, columns, applyEncoding)
			if err != nil {
				return err
			}
			sinks = append(sinks, csvSink)
		}

		var matchOpts []match.Option
		if !applyRaw {
			matchOpts = append(matchOpts, match.WithRefinement())
		}
		if applyMatchPage {
			matchOpts = append(matchOpts, match.WithPageMatching())
		}

		opts := []workflow.Option{
			workflow.WithTolerance(tol),
			workflow.WithWorkers(applyWorkers),
			workflow.WithMatchOptions(matchOpts...),
			workflow.WithLogger(logger),
			workflow.WithProgress(func(done, total int) {
				logger.Debug("progress", "done", done, "total", total)
			}),
		}
		if applyValidate {
			opts = append(opts, workflow.WithValidation())
		}

		report, err := workflow.Apply(cmd.Context(), tpl, paths, sinks, opts...)
		if err != nil {
			return err
		}
		for _, f := range report.Failed {
			fmt.Fprintln(cmd.ErrOrStderr(), "failed:", f)
		}
		if !report.OK() {
			return fmt.Errorf("%d of %d documents failed", len(report.Failed), report.Total)
		}
		return nil
	},
}

// uniqueNames returns the template's names without repeats, first
// occurrence first
func uniqueNames(tpl *template.Template) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, n := range tpl.Names() {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		names = append(names, n)
	}
	return names
}

func init() {
	applyCmd.Flags().StringVarP(&applyPDFPath, "pdf-path", "p", "", "Directory containing the PDF files")
	applyCmd.Flags().StringVarP(&applyAttributes, "attributes", "a", "", "Template file (XML or YAML)")
	applyCmd.Flags().StringVarP(&applyOutput, "output", "o", "", "CSV file to write")
	applyCmd.Flags().StringVar(&applyEncoding, "encoding", "utf-8", "CSV charset (utf-8, windows-1252, iso-8859-1, iso-8859-15)")
	applyCmd.Flags().BoolVar(&applyRaw, "raw", false, "Skip remove/select patterns")
	applyCmd.Flags().BoolVar(&applyMatchPage, "match-page", false, "Only match attributes on their recorded page")
	applyCmd.Flags().BoolVar(&applyValidate, "validate", false, "Validate each file before extraction")
	applyCmd.Flags().IntVarP(&applyWorkers, "workers", "w", runtime.NumCPU(), "Documents processed in parallel")
	applyTol = config.RegisterTolerance(applyCmd.Flags(), textrun.DefaultApplyTolerance)

	rootCmd.AddCommand(applyCmd)
}
