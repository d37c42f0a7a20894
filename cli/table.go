package cli

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"stepper/fixture"
	"stepper/srange"
)

func RenderResults(w io.Writer, results []fixture.Result) error {
	headers := []string{"Range", "Kind", "Expected", "Actual", "Status"}
	data := lo.Map(
		results,
		func(result fixture.Result, _ int) []string {
			return []string{
				result.Scenario.Label,
				string(result.Scenario.Kind),
				srange.FormatSequence(result.Scenario.Expected),
				srange.FormatSequence(result.Actual),
				statusText(result),
			}
		},
	)

	table := tablewriter.NewTable(w)
	table.Header(headers)
	if err := table.Bulk(data); err != nil {
		return errors.Wrap(err, "RenderResults error adding rows")
	}
	if err := table.Render(); err != nil {
		return errors.Wrap(err, "RenderResults error rendering")
	}
	return nil
}
