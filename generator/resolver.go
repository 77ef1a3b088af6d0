package generator

import (
	"fmt"

	"github.com/sporadisk/timesheet/config"
	"github.com/sporadisk/timesheet/mapping"
	"github.com/sporadisk/timesheet/parameter"
	"github.com/sporadisk/timesheet/task"
)

const (
	ResolverVerbatim    = "verbatim"
	ResolverDescription = "description"
	ResolverTemplate    = "template"
	ResolverLookup      = "lookup"
)

// LoadResolver builds the task identity strategy. The returned closer, when
// not nil, releases resources held by the strategy.
func LoadResolver(conf *config.ResolverConfig) (task.Resolver, func() error, error) {
	if conf == nil || conf.Name == "" {
		return task.Verbatim{}, nil, nil
	}

	name, err := parameter.Validate(conf.Name, []string{ResolverVerbatim, ResolverDescription, ResolverTemplate, ResolverLookup})
	if err != nil {
		return nil, nil, fmt.Errorf("validation failure for resolver name: %w", err)
	}

	switch name {
	case ResolverTemplate:
		resolver, err := templateResolver(conf.Params)
		return resolver, nil, err
	case ResolverLookup:
		return lookupResolver(conf)
	default:
		return task.Verbatim{}, nil, nil
	}
}

func templateResolver(params map[string]string) (*task.Template, error) {
	p, err := getParams(params, "template")
	if err != nil {
		return nil, fmt.Errorf("getParams: %w", err)
	}

	tmpl, err := task.NewTemplate(p["template"])
	if err != nil {
		return nil, fmt.Errorf("task.NewTemplate: %w", err)
	}
	return tmpl, nil
}

func lookupResolver(conf *config.ResolverConfig) (task.Resolver, func() error, error) {
	var chain task.Chain
	var closer func() error

	if len(conf.Mappings) > 0 {
		mappings := make([]task.Mapping, len(conf.Mappings))
		for i, m := range conf.Mappings {
			mappings[i] = task.Mapping{
				Description: m.Description,
				Project:     m.Project,
				Task:        m.Task,
			}
		}
		chain = append(chain, task.NewMapDirectory(mappings))
	}

	if dbPath := conf.Params["database"]; dbPath != "" {
		store, err := mapping.New(dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("mapping.New: %w", err)
		}
		chain = append(chain, store)
		closer = store.Close
	}

	if len(chain) == 0 {
		return nil, nil, fmt.Errorf("the lookup resolver needs mappings or a database parameter")
	}

	lookup := &task.Lookup{Directory: chain}

	fallback := conf.Params["fallback"]
	if fallback != "" {
		name, err := parameter.Validate(fallback, []string{ResolverVerbatim, ResolverDescription, ResolverTemplate})
		if err != nil {
			if closer != nil {
				closer()
			}
			return nil, nil, fmt.Errorf("validation failure for lookup fallback: %w", err)
		}

		if name == ResolverTemplate {
			tmpl, err := templateResolver(conf.Params)
			if err != nil {
				if closer != nil {
					closer()
				}
				return nil, nil, fmt.Errorf("fallback: %w", err)
			}
			lookup.Fallback = tmpl
		} else {
			lookup.Fallback = task.Verbatim{}
		}
	}

	return lookup, closer, nil
}
