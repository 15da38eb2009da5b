package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/recoverylock-backend/internal/app"
	"github.com/heartmarshall/recoverylock-backend/internal/config"
	"github.com/heartmarshall/recoverylock-backend/internal/service/reflection"
	"github.com/heartmarshall/recoverylock-backend/internal/transport/rest"
)

type reflectOptions struct {
	req     rest.CheckInRequest
	count   int
	date    string
	seed    uint64
	offline bool
	prompt  bool
	remote  string
	timeout time.Duration
}

type reflectionView struct {
	Reflection string `json:"reflection"       yaml:"reflection"`
	Title      string `json:"title"            yaml:"title"`
	Source     string `json:"source"           yaml:"source"`
	Origin     string `json:"origin,omitempty" yaml:"origin,omitempty"`
}

func (v reflectionView) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n\n%s\n", v.Title, v.Source, v.Reflection)
	return err
}

type promptView struct {
	Prompt string `json:"prompt" yaml:"prompt"`
}

func (v promptView) writeText(w io.Writer) error {
	_, err := fmt.Fprintln(w, v.Prompt)
	return err
}

func newReflectCmd(root *rootOptions) *cobra.Command {
	opts := &reflectOptions{}

	cmd := &cobra.Command{
		Use:   "reflect",
		Short: "Generate a reflection for a check-in",
		Long: `Generate a reflection for a check-in.

By default the configured LLM provider is used, falling back to the template
bank exactly as the server does. --offline skips the provider entirely and
--remote sends the check-in to a running server instead.

Examples:
  # Offline, reproducible fallback text
  recoveryctl reflect --name Sam --days 12 --emotion 1 --craving 3 --offline --seed 7

  # Show the prompt that would be sent
  recoveryctl reflect --name Sam --days 12 --prompt

  # Ask a running server
  recoveryctl reflect --name Sam --days 12 --remote http://localhost:8080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.req.CheckInCount = &opts.count
			if opts.remote != "" {
				return runRemoteReflect(cmd, root, opts)
			}
			return runLocalReflect(cmd, root, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.req.Name, "name", "", "first name (required)")
	f.IntVar(&opts.req.DaysSober, "days", 0, "days sober")
	f.IntVar(&opts.req.EmotionalState, "emotion", 2, "emotional state 0-4")
	f.IntVar(&opts.req.CravingLevel, "craving", 0, "craving level 0-4")
	f.StringVar(&opts.req.RecoveryProgram, "program", "", "recovery program code such as AA or NA")
	f.IntVar(&opts.count, "count", 1, "check-in sequence number")
	f.StringVar(&opts.req.Motivation, "motivation", "", "personal motivation")
	f.StringVar(&opts.req.FeelingsText, "feelings", "", "free-text feelings")
	f.StringVar(&opts.req.PrimaryChallenge, "challenge", "", "primary challenge")
	f.StringVar(&opts.req.Timezone, "tz", "", "IANA time zone for the check-in date")
	f.StringVar(&opts.date, "date", "", "pin the date as YYYY-MM-DD")
	f.Uint64Var(&opts.seed, "seed", 0, "seed for fallback selection (0 means random)")
	f.BoolVar(&opts.offline, "offline", false, "never call the LLM provider")
	f.BoolVar(&opts.prompt, "prompt", false, "print the prompt instead of generating")
	f.StringVar(&opts.remote, "remote", "", "server base URL to POST the check-in to")
	f.DurationVar(&opts.timeout, "timeout", 30*time.Second, "request timeout for --remote")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runLocalReflect(cmd *cobra.Command, root *rootOptions, opts *reflectOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := app.NewCLILogger(cmd.ErrOrStderr(), root.logLevel)

	loc, clock, err := resolveClock(opts.date, opts.req.Timezone)
	if err != nil {
		return err
	}
	svcOpts := []reflection.Option{
		reflection.WithClock(clock),
		reflection.WithLocation(loc),
	}
	if opts.seed != 0 {
		svcOpts = append(svcOpts, reflection.WithRandom(reflection.NewSeededRandom(opts.seed)))
	}

	var svc *reflection.Service
	if opts.offline || opts.prompt {
		svc = reflection.NewService(logger, nil, svcOpts...)
	} else {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		svc, err = app.NewReflectionService(ctx, cfg, logger, svcOpts...)
		if err != nil {
			return err
		}
	}

	in := opts.req.ToInput()
	if opts.prompt {
		p, err := svc.Preview(in)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), root.output, promptView{Prompt: p})
	}

	res, err := svc.Generate(ctx, in)
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), root.output, reflectionView{
		Reflection: res.Reflection,
		Title:      res.Title,
		Source:     res.Source,
		Origin:     res.Origin.String(),
	})
}

func runRemoteReflect(cmd *cobra.Command, root *rootOptions, opts *reflectOptions) error {
	body, err := json.Marshal(opts.req)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := strings.TrimRight(opts.remote, "/") + "/generate"
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", app.UserAgent())

	client := &http.Client{Timeout: opts.timeout}
	resp, err := client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request to %s: %w", url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out rest.ReflectionResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return render(cmd.OutOrStdout(), root.output, reflectionView{
		Reflection: out.Reflection,
		Title:      out.Title,
		Source:     out.Source,
	})
}
