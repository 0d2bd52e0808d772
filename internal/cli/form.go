package cli

import (
	"fmt"
	"strings"

	"github.com/jacksmith/roster/internal/model"
)

// fieldAliases maps short names accepted on the command line to form fields.
var fieldAliases = map[string]string{
	"desig":  model.FieldDesignation,
	"title":  model.FieldDesignation,
	"sal":    model.FieldSalary,
	"sex":    model.FieldGender,
	"emp_id": model.FieldID,
}

// ParseForm applies key=value arguments on top of base and returns the
// result. Keys are case-insensitive and may use the short aliases; an empty
// value ("name=") clears the field.
func ParseForm(args []string, base model.Form) (model.Form, error) {
	f := base
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return base, fmt.Errorf("expected key=value, got %q", arg)
		}

		key = strings.ToLower(strings.TrimSpace(key))
		if alias, ok := fieldAliases[key]; ok {
			key = alias
		}
		if !f.Set(key, value) {
			return base, fmt.Errorf("unknown field %q (fields: %s)", key, strings.Join(model.Fields, ", "))
		}
	}
	return f, nil
}
