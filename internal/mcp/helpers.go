package mcpserver

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// parseJSON parses a JSON string into the target type.
func parseJSON(data string, target any) error {
	return json.Unmarshal([]byte(data), target)
}

// pageIDArg reads an integer page id. Clients send numbers as float64 or,
// occasionally, as strings.
func pageIDArg(args map[string]any, key string) (int, error) {
	switch v := args[key].(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("%s must be a number: %w", key, err)
		}
		return n, nil
	case nil:
		return 0, fmt.Errorf("%s is required", key)
	default:
		return 0, fmt.Errorf("%s must be a number, got %T", key, v)
	}
}
