package generator

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/sporadisk/timesheet/client/csvfile"
	"github.com/sporadisk/timesheet/client/toggl"
	"github.com/sporadisk/timesheet/config"
	"github.com/sporadisk/timesheet/parameter"
	"github.com/sporadisk/timesheet/timeentry"
)

const (
	InputCSV   = "csv"
	InputToggl = "toggl"
)

func LoadInput(ctx context.Context, conf *config.InputConfig) (timeentry.Loader, error) {
	if conf == nil {
		return nil, fmt.Errorf("no input configured")
	}

	name, err := parameter.Validate(conf.Name, []string{InputCSV, InputToggl})
	if err != nil {
		return nil, fmt.Errorf("validation failure for input name: %w", err)
	}

	switch name {
	case InputToggl:
		return TogglInput(ctx, conf.Params)
	default:
		return CSVInput(conf.Params)
	}
}

func CSVInput(params map[string]string) (*csvfile.Reader, error) {
	reader := &csvfile.Reader{
		Path: params["path"],
	}
	if reader.Path == "" {
		reader.Path = csvfile.StdStream
	}

	comma, err := commaParam(params)
	if err != nil {
		return nil, err
	}
	reader.Comma = comma

	return reader, nil
}

func commaParam(params map[string]string) (rune, error) {
	sep := params["separator"]
	if sep == "" {
		return 0, nil
	}
	if sep == `\t` {
		return '\t', nil
	}
	if utf8.RuneCountInString(sep) != 1 {
		return 0, fmt.Errorf("separator must be a single character, got %q", sep)
	}
	r, _ := utf8.DecodeRuneInString(sep)
	return r, nil
}

func TogglInput(ctx context.Context, params map[string]string) (*toggl.Client, error) {
	p, err := getParams(params, "workspace", "start", "end")
	if err != nil {
		return nil, fmt.Errorf("getParams: %w", err)
	}

	timeout, err := durationParam(params, "timeout")
	if err != nil {
		return nil, err
	}

	c := &toggl.Client{
		Endpoint:    params["endpoint"],
		APIToken:    params["apiToken"],
		BearerToken: params["bearerToken"],
		WorkspaceID: p["workspace"],
		StartDate:   p["start"],
		EndDate:     p["end"],
		RawOutput:   params["rawOutput"],
		Timeout:     timeout,
	}

	err = c.Init(ctx)
	if err != nil {
		return nil, fmt.Errorf("toggl.Client.Init: %w", err)
	}

	return c, nil
}
