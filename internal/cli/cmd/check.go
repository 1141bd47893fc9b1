package cmd

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/twich/internal/filtering"
)

const fetchTimeout = 15 * time.Second

func newCheckCmd() *cobra.Command {
	var fetch bool

	c := &cobra.Command{
		Use:   "check <url>...",
		Short: "Show the gatekeeper verdict for URLs",
		Long: `Show whether each URL would be blocked.

With --fetch the URL is requested through the gatekeeper, so blocked
URLs get the synthesized 403 Blocked response without touching the network.`,
		Args:        cobra.MinimumNArgs(1),
		Annotations: withApp,
		RunE: func(cmd *cobra.Command, args []string) error {
			gk := app.Filters.Gatekeeper
			out := cmd.OutOrStdout()

			client := &http.Client{
				Transport: gk.Transport(http.DefaultTransport),
				Timeout:   fetchTimeout,
			}

			for _, raw := range args {
				if _, err := fmt.Fprintln(out, app.Theme.RenderVerdict(raw, gk.Decide(raw))); err != nil {
					return err
				}
				if !fetch {
					continue
				}
				if err := fetchOne(cmd, client, raw); err != nil {
					fmt.Fprintln(out, app.Theme.ErrorStyle.Render("  fetch: "+err.Error()))
				}
			}
			return nil
		},
	}
	c.Flags().BoolVar(&fetch, "fetch", false, "request each URL through the gatekeeper transport")
	return c
}

func fetchOne(cmd *cobra.Command, client *http.Client, raw string) error {
	req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, raw, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	n, _ := io.Copy(io.Discard, resp.Body)
	line := fmt.Sprintf("  → %s (%d bytes)", resp.Status, n)
	if by := resp.Header.Get(filtering.BlockedByHeader); by != "" {
		line += " by " + by
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render(line))
	return err
}
