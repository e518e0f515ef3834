package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"datelabel/internal/dateformat"
	"datelabel/internal/translation"

	colour "github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errRejected = errors.New("one or more dates were rejected")

// Colours for output
var (
	green  = colour.New(colour.FgGreen, colour.Bold)
	cyan   = colour.New(colour.FgCyan)
	yellow = colour.New(colour.FgYellow)
	red    = colour.New(colour.FgRed, colour.Bold)
	grey   = colour.New(colour.FgHiBlack)
)

type options struct {
	locale     string
	now        string
	strict     bool
	noColour   bool
	check      bool
	jsonOutput bool
	verbose    bool
}

// result is one line of output
type result struct {
	Input string `json:"input"`
	Valid bool   `json:"valid"`
	Label string `json:"label,omitempty"`
	Kind  string `json:"kind,omitempty"`
	Days  int    `json:"days"`
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "datefmt [dates...]",
		Short: "Print relative labels for calendar dates",
		Long: `Print short relative labels ("today", "yesterday", "3 days ago") for
YYYY-MM-DD dates. Dates older than a week, and future dates, are printed as-is.
All comparisons use UTC calendar days.`,
		Example: `  # Label a few dates against the current day
  datefmt 2020-11-30 2020-11-28 2020-01-01

  # Pin "today" and use Russian labels
  datefmt --now 2020-12-01 -l ru 2020-11-29

  # Only check that inputs are valid dates
  datefmt --check 2020-02-30`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Disable automatic usage printing on error
			cmd.SilenceUsage = true
			return run(cmd.OutOrStdout(), opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.locale, "locale", "l", translation.DefaultLocale, "locale for labels (en, ru)")
	cmd.Flags().StringVar(&opts.now, "now", "", "treat this YYYY-MM-DD date as today")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "reject unparseable dates instead of echoing them")
	cmd.Flags().BoolVar(&opts.noColour, "no-color", false, "disable coloured output")
	cmd.Flags().BoolVar(&opts.check, "check", false, "only report whether each input is a valid date")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "output as JSON")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug information to stderr")

	return cmd
}

func run(w io.Writer, opts *options, args []string) error {
	logger := zap.NewNop()
	if opts.verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		defer logger.Sync()
	}

	if opts.noColour {
		colour.NoColor = true
	}

	formatter, err := newFormatter(opts)
	if err != nil {
		return err
	}

	catalog := translation.NewCatalog(translation.DefaultLocale)
	locale, ok := catalog.Resolve(opts.locale)
	if !ok {
		return fmt.Errorf("unknown locale %q (available: %v)", opts.locale, catalog.Locales())
	}
	t := catalog.Translator(locale)

	logger.Debug("Formatting dates",
		zap.String("today", formatter.Today().String()),
		zap.String("locale", locale),
		zap.Bool("strict", formatter.Strict()),
		zap.Int("count", len(args)),
	)

	results := make([]result, 0, len(args))
	rejected := false
	for _, arg := range args {
		res := evaluate(formatter, t, arg, opts.check)
		if !res.Valid && (opts.check || formatter.Strict()) {
			rejected = true
		}
		results = append(results, res)
	}

	if opts.jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
	} else {
		for _, res := range results {
			printResult(w, res, opts.check)
		}
	}

	if rejected {
		logger.Debug("Some inputs were rejected")
		return errRejected
	}
	return nil
}

func newFormatter(opts *options) (*dateformat.Formatter, error) {
	formatterOpts := []dateformat.Option{}
	if opts.now != "" {
		today := dateformat.Parse(opts.now)
		if !today.Valid() {
			return nil, fmt.Errorf("invalid --now date %q, expected YYYY-MM-DD", opts.now)
		}
		formatterOpts = append(formatterOpts, dateformat.WithClock(dateformat.FixedClock(today.Time())))
	}
	if opts.strict {
		formatterOpts = append(formatterOpts, dateformat.WithStrictParsing())
	}
	return dateformat.New(formatterOpts...), nil
}

// evaluate labels a single input, or only validates it in check mode
func evaluate(f *dateformat.Formatter, t dateformat.Translator, input string, checkOnly bool) result {
	res := result{Input: input, Valid: dateformat.IsValid(input)}
	if checkOnly {
		return res
	}

	desc, ok := f.Describe(dateformat.Parse(input), t)
	if input == "" || !ok {
		return res
	}
	res.Label = desc.Text
	res.Kind = desc.Kind.String()
	res.Days = desc.Days
	return res
}

func printResult(w io.Writer, res result, checkOnly bool) {
	fmt.Fprintf(w, "%-12s ", res.Input)

	if checkOnly {
		if res.Valid {
			green.Fprintln(w, "valid")
		} else {
			red.Fprintln(w, "invalid")
		}
		return
	}

	if res.Label == "" {
		red.Fprintln(w, "rejected")
		return
	}
	if !res.Valid {
		red.Fprintln(w, res.Label)
		return
	}
	statusColour(res.Kind).Fprintln(w, res.Label)
}

func statusColour(kind string) *colour.Color {
	switch kind {
	case dateformat.KindToday.String():
		return green
	case dateformat.KindYesterday.String():
		return cyan
	case dateformat.KindWithinWeek.String():
		return yellow
	default:
		return grey
	}
}
