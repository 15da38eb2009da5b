package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/recoverylock-backend/internal/app"
	"github.com/heartmarshall/recoverylock-backend/internal/transport/rest"
)

type healthReport rest.HealthResponse

func (h healthReport) writeText(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Status:  %s\n", h.Status)
	fmt.Fprintf(&b, "Version: %s\n", h.Version)
	names := make([]string, 0, len(h.Components))
	for n := range h.Components {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		c := h.Components[n]
		fmt.Fprintf(&b, "  %-10s %s", n, c.Status)
		if c.Latency != "" {
			fmt.Fprintf(&b, " (%s)", c.Latency)
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func newHealthCmd(root *rootOptions) *cobra.Command {
	var (
		server  string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		Long: `Check the health status of a running reflection server.

Examples:
  recoveryctl health
  recoveryctl health --server http://localhost:9090 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client := &http.Client{Timeout: timeout}
			url := strings.TrimRight(server, "/") + "/health"

			req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, url, nil)
			if err != nil {
				return fmt.Errorf("failed to create request: %w", err)
			}
			req.Header.Set("User-Agent", app.UserAgent())

			resp, err := client.Do(req)
			if err != nil {
				return fmt.Errorf("failed to connect to %s: %w", url, err)
			}
			defer resp.Body.Close()

			var report healthReport
			if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
				return fmt.Errorf("failed to decode response: %w", err)
			}
			if err := render(cmd.OutOrStdout(), root.output, report); err != nil {
				return err
			}
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("server is %s (status %d)", report.Status, resp.StatusCode)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&server, "server", "http://localhost:8080", "server base URL")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "request timeout")
	return cmd
}
