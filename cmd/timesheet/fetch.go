package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/sporadisk/timesheet/config"
	"github.com/sporadisk/timesheet/generator"
	"github.com/spf13/cobra"
)

func fetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Build a timesheet from the Toggl Track reports API",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if conf.Input == nil || conf.Input.Name != generator.InputToggl {
				conf.Input = &config.InputConfig{Name: generator.InputToggl}
			}

			flagParams := map[string]string{
				"workspace": "workspace",
				"start":     "start",
				"end":       "end",
				"token":     "apiToken",
				"bearer":    "bearerToken",
				"raw":       "rawOutput",
				"endpoint":  "endpoint",
				"timeout":   "timeout",
			}
			for flag, key := range flagParams {
				overrideParam(cmd, &conf.Input.Params, flag, key)
			}
			envDefault(&conf.Input.Params, "apiToken", "TOGGL_API_TOKEN")
			envDefault(&conf.Input.Params, "bearerToken", "TOGGL_BEARER_TOKEN")

			applyReportFlags(cmd, conf)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			g := &generator.Generator{Conf: conf}
			defer g.Close()

			return g.Start(ctx)
		},
	}

	cmd.Flags().String("workspace", "", "Toggl workspace ID")
	cmd.Flags().String("start", "", "First day of the report (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "End of the report range (YYYY-MM-DD)")
	cmd.Flags().String("token", "", "Toggl API token (default $TOGGL_API_TOKEN)")
	cmd.Flags().String("bearer", "", "Bearer token, instead of an API token (default $TOGGL_BEARER_TOKEN)")
	cmd.Flags().String("raw", "", "Also write the raw JSON report to this path")
	cmd.Flags().String("endpoint", "", "Toggl API base URL")
	cmd.Flags().String("timeout", "", "HTTP timeout, e.g. 30s")
	addReportFlags(cmd)

	return cmd
}

func envDefault(params *map[string]string, key, env string) {
	if *params != nil && (*params)[key] != "" {
		return
	}

	value := os.Getenv(env)
	if value == "" {
		return
	}

	if *params == nil {
		*params = map[string]string{}
	}
	(*params)[key] = value
}
