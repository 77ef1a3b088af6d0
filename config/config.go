package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultPath = ".timesheet.yaml"

type Config struct {
	Input    *InputConfig    `yaml:"input"`
	Resolver *ResolverConfig `yaml:"resolver"`
	Output   *OutputConfig   `yaml:"output"`
}

type InputConfig struct {
	Name   string            `yaml:"name"`
	Params map[string]string `yaml:"params"`
}

type ResolverConfig struct {
	Name     string            `yaml:"name"`
	Params   map[string]string `yaml:"params"`
	Mappings []MappingConfig   `yaml:"mappings"`
}

type MappingConfig struct {
	Description string `yaml:"description"`
	Project     string `yaml:"project"`
	Task        string `yaml:"task"`
}

type OutputConfig struct {
	Name   string            `yaml:"name"`
	Params map[string]string `yaml:"params"`
}

func Load(path string) (*Config, error) {
	var useDefaultConf bool
	useDefaultConf = (path == "")

	if useDefaultConf {
		path = DefaultPath
	}

	conf := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && useDefaultConf {
			// No config was found, but no config path was specified either
			return &conf, nil // return an empty config
		}
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	err = yaml.Unmarshal(data, &conf)
	if err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
	}

	return &conf, nil
}
