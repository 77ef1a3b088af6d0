package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sporadisk/timesheet/client/csvfile"
	"github.com/sporadisk/timesheet/client/watch"
	"github.com/sporadisk/timesheet/config"
	"github.com/sporadisk/timesheet/generator"
	"github.com/spf13/cobra"
)

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [input.csv]",
		Short: "Build a timesheet from a CSV export (- or no argument reads stdin)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if conf.Input == nil || (len(args) == 1 && conf.Input.Name != generator.InputCSV) {
				conf.Input = &config.InputConfig{Name: generator.InputCSV}
			}
			if len(args) == 1 {
				if conf.Input.Params == nil {
					conf.Input.Params = map[string]string{}
				}
				conf.Input.Params["path"] = args[0]
			}
			if cmd.Flags().Changed("separator") {
				overrideParam(cmd, &conf.Input.Params, "separator", "separator")
			}
			applyReportFlags(cmd, conf)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			g := &generator.Generator{Conf: conf}
			defer g.Close()

			watchFile, _ := cmd.Flags().GetBool("watch")
			if watchFile {
				sub, err := watchSubscriber(ctx, conf.Input)
				if err != nil {
					return err
				}
				g.Subscriber = sub
			}

			return g.Start(ctx)
		},
	}

	cmd.Flags().String("separator", "", "CSV field separator (default ,)")
	cmd.Flags().BoolP("watch", "w", false, "Regenerate the timesheet whenever the input file changes")
	addReportFlags(cmd)

	return cmd
}

func watchSubscriber(ctx context.Context, input *config.InputConfig) (*watch.Subscriber, error) {
	if input.Name != generator.InputCSV {
		return nil, fmt.Errorf("--watch only works with a CSV input file")
	}

	reader, err := generator.CSVInput(input.Params)
	if err != nil {
		return nil, fmt.Errorf("generator.CSVInput: %w", err)
	}

	sub, err := watch.NewSubscriber(ctx, reader.Path, &csvfile.Reader{Comma: reader.Comma})
	if err != nil {
		return nil, fmt.Errorf("watch.NewSubscriber: %w", err)
	}

	fmt.Printf("Watching %s for changes. Press Ctrl+C to stop.\n", reader.Path)
	return sub, nil
}
