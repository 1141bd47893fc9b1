package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"
)

func newSanitizeCmd() *cobra.Command {
	var output string

	c := &cobra.Command{
		Use:   "sanitize <file|->",
		Short: "Strip ad containers from a saved HTML page",
		Long: `Apply the sanitize selectors to a static HTML document and report what
was removed. Use - to read from stdin and -o to save the cleaned document.`,
		Args:        cobra.ExactArgs(1),
		Annotations: withApp,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open %s: %w", args[0], err)
				}
				defer f.Close()
				in = f
			}

			doc, report, err := app.Filters.Sanitizer.ApplyHTML(in)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, sc := range report.PerSelector {
				style := app.Theme.Subtle
				if sc.Removed > 0 {
					style = app.Theme.Normal
				}
				fmt.Fprintln(out, style.Render(fmt.Sprintf("%4d  %s", sc.Removed, sc.Selector)))
			}
			fmt.Fprintln(out, app.Theme.Highlight.Render(fmt.Sprintf("removed %d element(s)", report.Removed)))

			if output == "" {
				return nil
			}
			html, err := goquery.OuterHtml(doc.Selection)
			if err != nil {
				return fmt.Errorf("render document: %w", err)
			}
			if err := os.WriteFile(output, []byte(html), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			return nil
		},
	}
	c.Flags().StringVarP(&output, "output", "o", "", "write the cleaned document to this file")
	return c
}
