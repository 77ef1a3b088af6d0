package generator

import (
	"fmt"

	"github.com/sporadisk/timesheet/client/csvfile"
	"github.com/sporadisk/timesheet/client/terminal"
	"github.com/sporadisk/timesheet/config"
	"github.com/sporadisk/timesheet/console"
	"github.com/sporadisk/timesheet/format"
	"github.com/sporadisk/timesheet/parameter"
	"github.com/sporadisk/timesheet/summary"
)

const (
	OutputTerminal = "terminal"
	OutputCSV      = "csv"
)

func LoadOutput(conf *config.OutputConfig) (summary.Output, error) {
	if conf == nil || conf.Name == "" {
		return TerminalOutput(nil)
	}

	name, err := parameter.Validate(conf.Name, []string{OutputTerminal, OutputCSV})
	if err != nil {
		return nil, fmt.Errorf("validation failure for output name: %w", err)
	}

	switch name {
	case OutputCSV:
		return CSVOutput(conf.Params)
	default:
		return TerminalOutput(conf.Params)
	}
}

func TerminalOutput(params map[string]string) (*terminal.Client, error) {
	timeFormat := format.TimeDecimal
	if tf, ok := params["timeFormat"]; ok && tf != "" {
		timeFormat = tf
	}

	termClient := &terminal.Client{
		TimeFormat: timeFormat,
	}
	err := termClient.Init()
	if err != nil {
		return nil, fmt.Errorf("terminal.Client.Init: %w", err)
	}

	return termClient, nil
}

func CSVOutput(params map[string]string) (*csvfile.Writer, error) {
	precision, err := intParam(params, "precision", 2)
	if err != nil {
		return nil, err
	}

	blankZero, err := parameter.Bool(params["blankZero"])
	if err != nil {
		return nil, fmt.Errorf("blankZero: %w", err)
	}

	totals, err := parameter.Bool(params["totals"])
	if err != nil {
		return nil, fmt.Errorf("totals: %w", err)
	}

	overwrite, err := parameter.Bool(params["overwrite"])
	if err != nil {
		return nil, fmt.Errorf("overwrite: %w", err)
	}

	return &csvfile.Writer{
		Path:      params["path"],
		Precision: precision,
		BlankZero: blankZero,
		Totals:    totals,
		Overwrite: overwrite,
		Confirm:   console.Confirm,
	}, nil
}
