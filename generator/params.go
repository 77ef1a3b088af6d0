package generator

import (
	"fmt"
	"strconv"
	"time"
)

func getParams(params map[string]string, required ...string) (map[string]string, error) {
	result := make(map[string]string)
	for _, key := range required {
		value, ok := params[key]
		if !ok || value == "" {
			return nil, fmt.Errorf("missing parameter: %s", key)
		}
		result[key] = value
	}

	return result, nil
}

func intParam(params map[string]string, key string, fallback int) (int, error) {
	value, ok := params[key]
	if !ok || value == "" {
		return fallback, nil
	}

	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter %q: %w", key, value, err)
	}
	return i, nil
}

func durationParam(params map[string]string, key string) (time.Duration, error) {
	value, ok := params[key]
	if !ok || value == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter %q: %w", key, value, err)
	}
	return d, nil
}
