package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/recoverylock-backend/internal/domain"
	"github.com/heartmarshall/recoverylock-backend/internal/service/theme"
)

type themeView struct {
	Date               string   `json:"date"               yaml:"date,omitempty"`
	Step               int      `json:"step"               yaml:"step"`
	Name               string   `json:"name"               yaml:"name"`
	SpiritualPrinciple string   `json:"spiritualPrinciple" yaml:"spiritual_principle"`
	Text               string   `json:"text"               yaml:"text"`
	Keywords           []string `json:"keywords"           yaml:"keywords"`
	Quote              string   `json:"quote,omitempty"    yaml:"quote,omitempty"`
	Wisdom             string   `json:"wisdom,omitempty"   yaml:"wisdom,omitempty"`
	WisdomSource       string   `json:"wisdomSource,omitempty" yaml:"wisdom_source,omitempty"`
}

func (v themeView) writeText(w io.Writer) error {
	var b strings.Builder
	if v.Date != "" {
		fmt.Fprintf(&b, "Date:      %s\n", v.Date)
	}
	fmt.Fprintf(&b, "Theme:     Step %d - %s\n", v.Step, v.Name)
	fmt.Fprintf(&b, "Principle: %s\n", v.SpiritualPrinciple)
	fmt.Fprintf(&b, "Step text: %s\n", v.Text)
	fmt.Fprintf(&b, "Keywords:  %s\n", strings.Join(v.Keywords, ", "))
	if v.Quote != "" {
		fmt.Fprintf(&b, "Quote:     %s\n", v.Quote)
	}
	if v.Wisdom != "" {
		fmt.Fprintf(&b, "Wisdom:    %s (%s)\n", v.Wisdom, v.WisdomSource)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

type themeList []themeView

func (l themeList) writeText(w io.Writer) error {
	for _, v := range l {
		if _, err := fmt.Fprintf(w, "%2d  %-15s %s\n", v.Step, v.SpiritualPrinciple, time.Month(v.Step)); err != nil {
			return err
		}
	}
	return nil
}

func newThemeCmd(root *rootOptions) *cobra.Command {
	var (
		date string
		tz   string
		all  bool
	)

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Print the theme, quote and daily wisdom for a date",
		Long: `Print the monthly step theme with today's supplementary quote and daily wisdom.

Examples:
  # Today in the local zone
  recoveryctl theme

  # A specific date in Tokyo, as YAML
  recoveryctl theme --date 2025-06-01 --tz Asia/Tokyo -o yaml

  # All twelve themes
  recoveryctl theme --all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if all {
				list := make(themeList, 0, 12)
				for _, th := range theme.All() {
					list = append(list, toThemeView(th))
				}
				return render(cmd.OutOrStdout(), root.output, list)
			}

			loc, clock, err := resolveClock(date, tz)
			if err != nil {
				return err
			}
			today := theme.NewScheduler(clock, loc).Today(nil)

			v := toThemeView(today.Theme)
			v.Date = today.Date
			v.Quote = today.Quote
			v.Wisdom = today.Wisdom.Text
			v.WisdomSource = today.Wisdom.Source
			return render(cmd.OutOrStdout(), root.output, v)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&tz, "tz", "", "IANA time zone (default local)")
	cmd.Flags().BoolVar(&all, "all", false, "list all twelve themes")
	return cmd
}

func toThemeView(th domain.ThematicEntry) themeView {
	return themeView{
		Step:               th.Step,
		Name:               th.Name,
		SpiritualPrinciple: th.SpiritualPrinciple,
		Text:               th.Text,
		Keywords:           th.Keywords,
	}
}

// resolveClock parses the optional --date and --tz flags. A pinned date is
// taken at local noon.
func resolveClock(date, tz string) (*time.Location, theme.Clock, error) {
	loc := time.Local
	if tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			return nil, nil, fmt.Errorf("unknown time zone %q: %w", tz, err)
		}
		loc = l
	}
	if date == "" {
		return loc, time.Now, nil
	}
	d, err := time.ParseInLocation(time.DateOnly, date, loc)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --date %q: want YYYY-MM-DD", date)
	}
	pinned := d.Add(12 * time.Hour)
	return loc, func() time.Time { return pinned }, nil
}
