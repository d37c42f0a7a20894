package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/dustin/go-humanize"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"stepper/ds"
	"stepper/fixture"
	"stepper/srange"
	"stepper/ui"
)

type (
	Args struct {
		Verbose     bool            `arg:"-v" help:"print debug logs"`
		Generate    *GenerateCmd    `arg:"subcommand:generate" help:"print the elements of a stepped range"`
		Check       *CheckCmd       `arg:"subcommand:check" help:"check the inexact stepped range scenarios"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive" help:"browse the scenarios in the terminal"`
	}
	InteractiveCmd struct{}
	GenerateCmd    struct {
		Kind    string `default:"int32" help:"int8, int16, int32, int64, char, float32 or float64 (byte, short, int, long, float and double also work)"`
		Start   string `arg:"required" help:"first element" placeholder:"3"`
		End     string `arg:"required" help:"inclusive upper bound" placeholder:"8"`
		Step    string `default:"1" help:"positive step; a count of code points for char"`
		JSON    bool   `arg:"--json" help:"print a JSON array"`
		Columns int    `default:"10" help:"elements per line"`
	}
	CheckCmd struct {
		JSON bool `arg:"--json" help:"print the generated elements per scenario as JSON"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Walks start..end step n over integers, characters and floats,",
			"and checks the inexact stepped range scenarios.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func setupLogger(verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}

	logW := os.Stderr
	slog.SetDefault(slog.New(tint.NewHandler(logW, &tint.Options{
		Level:      logLevel,
		TimeFormat: time.TimeOnly,
		NoColor:    !isatty.IsTerminal(logW.Fd()),
	})))
}

func StartGenerating(w io.Writer, cmd GenerateCmd) error {
	kind, err := srange.ParseKind(cmd.Kind)
	if err != nil {
		return errors.Wrap(err, "StartGenerating error reading kind")
	}
	elements, err := srange.GenerateKind(kind, cmd.Start, cmd.End, cmd.Step)
	if err != nil {
		return errors.Wrapf(err, "StartGenerating error generating %s..%s step %s", cmd.Start, cmd.End, cmd.Step)
	}
	slog.Debug("Generated", "kind", kind, "elements", humanize.Comma(int64(len(elements))))

	if cmd.JSON {
		bs, err := json.Marshal(elements)
		if err != nil {
			return errors.Wrap(err, "StartGenerating error marshalling elements")
		}
		_, err = fmt.Fprintln(w, string(bs))
		return err
	}

	for _, row := range ds.MakeChunks(elements, cmd.Columns) {
		if _, err := fmt.Fprintln(w, strings.Join(row, " ")); err != nil {
			return err
		}
	}
	return nil
}

// StartChecking reports every scenario and returns false when any failed.
func StartChecking(w io.Writer, cmd CheckCmd) (bool, error) {
	results, err := fixture.CheckAll(fixture.Scenarios())
	if err != nil {
		return false, errors.Wrap(err, "StartChecking error")
	}
	failures := fixture.Failures(results)
	for _, failure := range failures {
		slog.Warn("Scenario failed", "message", failure.Message)
	}

	if cmd.JSON {
		bs, err := json.MarshalIndent(fixture.Report(results), "", "  ")
		if err != nil {
			return false, errors.Wrap(err, "StartChecking error marshalling report")
		}
		if _, err := fmt.Fprintln(w, string(bs)); err != nil {
			return false, err
		}
	} else {
		if err := RenderResults(w, results); err != nil {
			return false, err
		}
		if _, err := fmt.Fprintln(w, fixture.Summarize(results)); err != nil {
			return false, err
		}
	}

	slog.Debug("Checked scenarios", "total", len(results), "failed", len(failures))
	return len(failures) == 0, nil
}

func Start() {
	args := Args{}
	arg.MustParse(&args)
	setupLogger(args.Verbose)

	switch {
	case args.Generate != nil:
		if err := StartGenerating(os.Stdout, *args.Generate); err != nil {
			slog.Error("Generating failed", "err", err)
			os.Exit(1)
		}
	case args.Check != nil:
		passed, err := StartChecking(os.Stdout, *args.Check)
		if err != nil {
			slog.Error("Checking failed", "err", err)
			os.Exit(1)
		}
		if !passed {
			os.Exit(1)
		}
	default:
		if err := ui.Start(fixture.Scenarios()); err != nil {
			slog.Error("Interactive mode failed", "err", err)
			os.Exit(1)
		}
	}
}

func statusText(result fixture.Result) string {
	return lo.Ternary(result.Passed, "ok", "FAIL")
}
