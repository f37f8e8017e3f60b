package cmd

import (
	"fmt"
	"strings"

	"github.com/prometheus/common/expfmt"
	"go.uber.org/zap"

	"github.com/go-drift/tk/pkg/errors"
	"github.com/go-drift/tk/pkg/ui"
)

func init() {
	RegisterCommand(&Command{
		Name:  "check",
		Short: "Validate UI descriptions",
		Long: `Parse each UI description and build it against the factory.

Unknown widget types fail the check, with a suggestion when a known type
is a close match. With --skip-unknown they are reported and skipped
instead. --metrics prints the factory counters in Prometheus text format
after all files are checked.`,
		Usage: "tk check [--skip-unknown] [--metrics] <file>...",
		Run:   runCheck,
	})
}

type checkOptions struct {
	skipUnknown bool
	metrics     bool
	files       []string
}

func parseCheckArgs(args []string) (checkOptions, error) {
	var opts checkOptions
	for _, arg := range args {
		switch arg {
		case "--skip-unknown":
			opts.skipUnknown = true
		case "--metrics":
			opts.metrics = true
		default:
			if strings.HasPrefix(arg, "--") {
				return opts, fmt.Errorf("unknown flag %s", arg)
			}
			opts.files = append(opts.files, arg)
		}
	}
	if len(opts.files) == 0 {
		return opts, fmt.Errorf("at least one file is required\n\nUsage: tk check [--skip-unknown] [--metrics] <file>...")
	}
	return opts, nil
}

func runCheck(s *Session, args []string) error {
	opts, err := parseCheckArgs(args)
	if err != nil {
		return err
	}
	st := newStyles(s.Out)

	uiOpts := s.Config.UIOptions(s.Log.Named("ui"))
	uiOpts.Factory = s.Factory
	if opts.skipUnknown {
		uiOpts.SkipUnknown = true
	}

	failed := 0
	for _, path := range opts.files {
		res, err := checkFile(path, uiOpts)
		if err != nil {
			failed++
			fmt.Fprintf(s.Out, "%s %s: %v\n", st.err.Render("FAIL"), path, err)
			s.Log.Debug("check failed", zap.String("file", path), zap.Stringer("kind", errors.KindOf(err)))
			continue
		}
		fmt.Fprintf(s.Out, "%s %s: %d widgets", st.name.Render("ok"), path, res.Created)
		if n := len(res.Skipped); n > 0 {
			fmt.Fprintf(s.Out, ", %s", st.muted.Render(fmt.Sprintf("%d skipped", n)))
		}
		fmt.Fprintln(s.Out)
		for _, nf := range res.Skipped {
			fmt.Fprintf(s.Out, "  %s %v\n", st.muted.Render("skipped"), nf)
		}
	}

	if opts.metrics {
		if err := writeMetrics(s); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(opts.files))
	}
	return nil
}

func checkFile(path string, opts ui.Options) (*ui.Result, error) {
	doc, err := ui.LoadFile(path)
	if err != nil {
		return nil, err
	}
	res, err := ui.Build(doc, nil, opts)
	if err != nil {
		return nil, err
	}
	for _, root := range res.Roots {
		root.Destroy()
	}
	return res, nil
}

func writeMetrics(s *Session) error {
	mfs, err := s.Registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	fmt.Fprintln(s.Out)
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(s.Out, mf); err != nil {
			return err
		}
	}
	return nil
}
