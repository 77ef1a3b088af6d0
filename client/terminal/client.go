package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/sporadisk/timesheet/format"
)

type Client struct {
	TimeFormat string
	Out        io.Writer
}

func (c *Client) Init() error {
	if c.TimeFormat == "" {
		c.TimeFormat = format.TimeDecimal
	}

	if c.Out == nil {
		c.Out = os.Stdout
	}

	err := format.ValidateTimeFormat(c.TimeFormat)
	if err != nil {
		return fmt.Errorf("ValidateTimeFormat: %w", err)
	}
	return nil
}
