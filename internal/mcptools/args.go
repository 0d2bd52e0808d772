package mcptools

import (
	"fmt"

	"github.com/jacksmith/roster/internal/model"
)

// requireString extracts a non-empty string from args by key.
func requireString(args map[string]any, key string) (string, error) {
	v, _ := args[key].(string)
	if v == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return v, nil
}

// formFromArgs overlays the string field arguments present in args on base.
// Arguments that are absent or not strings leave the base value alone.
func formFromArgs(base model.Form, args map[string]any) model.Form {
	f := base
	for _, name := range model.Fields {
		if v, ok := args[name].(string); ok {
			f.Set(name, v)
		}
	}
	return f
}
