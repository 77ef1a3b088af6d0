package parameter

import (
	"fmt"
	"strings"
)

func Validate(param string, validOptions []string) (string, error) {
	cleanParam := Clean(param)

	for _, option := range validOptions {
		if strings.EqualFold(cleanParam, option) {
			return option, nil
		}
	}

	validParamStr := strings.Join(validOptions, ", ")
	return "", fmt.Errorf("invalid param %q: Expected one of: %s", cleanParam, validParamStr)
}

func Clean(param string) string {
	return strings.ToLower(strings.TrimSpace(param))
}

// Bool interprets a yes/no style parameter. An empty value is false.
func Bool(param string) (bool, error) {
	switch Clean(param) {
	case "", "false", "no", "n", "0":
		return false, nil
	case "true", "yes", "y", "1":
		return true, nil
	default:
		return false, fmt.Errorf("invalid boolean param %q", param)
	}
}
