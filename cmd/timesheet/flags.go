package main

import (
	"fmt"

	"github.com/sporadisk/timesheet/config"
	"github.com/sporadisk/timesheet/generator"
	"github.com/spf13/cobra"
)

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	confPath, _ := cmd.Flags().GetString("config")
	if confPath != "" {
		fmt.Printf("Using config file: %s\n", confPath)
	}

	conf, err := config.Load(confPath)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return conf, nil
}

// addReportFlags registers the resolver and output flags shared by the
// commands that produce a report.
func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Write the timesheet as CSV to this path (- for stdout)")
	cmd.Flags().String("time-format", "", "Terminal hour format: decimal, hm, hms or m")
	cmd.Flags().Int("precision", 2, "Decimals for CSV hours (-1 for exact)")
	cmd.Flags().Bool("totals", false, "Add total column and row to CSV output")
	cmd.Flags().Bool("blank-zero", false, "Leave CSV cells without activity empty")
	cmd.Flags().BoolP("yes", "y", false, "Overwrite an existing output file without asking")

	cmd.Flags().String("resolver", "", "Task identity strategy: verbatim, template or lookup")
	cmd.Flags().String("template", "", "Template for the template strategy, e.g. '{{.Project}}: {{.Description}}'")
	cmd.Flags().String("mappings-db", "", "SQLite task mapping database for the lookup strategy")
	cmd.Flags().String("fallback", "", "Strategy for entries the lookup does not know")
}

// applyReportFlags lets explicitly set flags override the config file.
func applyReportFlags(cmd *cobra.Command, conf *config.Config) {
	flags := cmd.Flags()

	switch {
	case flags.Changed("output"):
		if conf.Output == nil || conf.Output.Name != generator.OutputCSV {
			conf.Output = &config.OutputConfig{Name: generator.OutputCSV}
		}
		overrideParam(cmd, &conf.Output.Params, "output", "path")
	case flags.Changed("time-format"):
		if conf.Output == nil || conf.Output.Name != generator.OutputTerminal {
			conf.Output = &config.OutputConfig{Name: generator.OutputTerminal}
		}
		overrideParam(cmd, &conf.Output.Params, "time-format", "timeFormat")
	}

	if conf.Output != nil && conf.Output.Name == generator.OutputCSV {
		overrideParam(cmd, &conf.Output.Params, "precision", "precision")
		overrideParam(cmd, &conf.Output.Params, "totals", "totals")
		overrideParam(cmd, &conf.Output.Params, "blank-zero", "blankZero")
		overrideParam(cmd, &conf.Output.Params, "yes", "overwrite")
	}

	if flags.Changed("resolver") {
		name, _ := flags.GetString("resolver")
		if conf.Resolver == nil {
			conf.Resolver = &config.ResolverConfig{}
		}
		conf.Resolver.Name = name
	}

	for flag, key := range map[string]string{"template": "template", "mappings-db": "database", "fallback": "fallback"} {
		if !flags.Changed(flag) {
			continue
		}
		if conf.Resolver == nil {
			conf.Resolver = &config.ResolverConfig{}
		}
		overrideParam(cmd, &conf.Resolver.Params, flag, key)
	}
}

func overrideParam(cmd *cobra.Command, params *map[string]string, flag, key string) {
	f := cmd.Flags().Lookup(flag)
	if f == nil || !f.Changed {
		return
	}
	if *params == nil {
		*params = map[string]string{}
	}
	(*params)[key] = f.Value.String()
}
