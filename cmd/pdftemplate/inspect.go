package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/pyhub-apps/pdftemplate/internal/config"
	"github.com/pyhub-apps/pdftemplate/pkg/pdf"
	"github.com/pyhub-apps/pdftemplate/pkg/textrun"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("160"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Show page geometry and text runs of a document",
	Long: `Print the pages of a PDF file and every text run with its page and start
corner. Use the coordinates to write or adjust templates by hand.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		out := cmd.OutOrStdout()

		info, err := pdf.Inspect(path)
		if err != nil {
			logger.Warn("validation failed, reading text anyway", "document", path, "err", err)
		} else {
			fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%s: %d pages", path, info.PageCount)))
			for _, p := range info.Pages {
				fmt.Fprintf(out, "%s %d  %.2f x %.2f  rotation %d\n",
					dimStyle.Render("page"), p.Number, p.Width, p.Height, p.Rotation)
			}
		}

		open, err := backend(inspectBackend)
		if err != nil {
			return err
		}
		doc, err := open(path)
		if err != nil {
			return err
		}
		defer doc.Close()

		ix, err := textrun.Build(doc)
		if err != nil {
			return err
		}

		fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%d runs", ix.Len())))
		for _, r := range ix.Runs() {
			fmt.Fprintln(out, r.String())
		}
		return nil
	},
}

var inspectBackend string

// backend picks the glyph source by name
func backend(name string) (pdf.Opener, error) {
	switch name {
	case "", "auto":
		return pdf.Open, nil
	case "ledongthuc":
		return pdf.OpenWithLedongthuc, nil
	case "dslipak":
		return pdf.OpenWithDslipak, nil
	default:
		return nil, &config.Error{
			Flags: []string{"backend"},
			Err:   fmt.Errorf("%w: unknown backend %q", config.ErrInvalid, name),
		}
	}
}

func init() {
	inspectCmd.Flags().StringVar(&inspectBackend, "backend", "auto", "Glyph source (auto, ledongthuc, dslipak)")
	rootCmd.AddCommand(inspectCmd)
}
