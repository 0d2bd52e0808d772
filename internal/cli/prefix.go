// Package cli provides presentation helpers shared by the roster adapters.
package cli

import (
	"fmt"
	"sort"
	"strings"
)

// Command is a shell command name with optional aliases.
type Command struct {
	Name    string
	Aliases []string
	Usage   string
	Help    string
}

// MatchCommand resolves input to a command by exact name or alias, then by
// unique prefix of a name. Matching is case-insensitive. Aliases only match
// exactly.
func MatchCommand(input string, commands []Command) (Command, error) {
	input = strings.ToLower(input)

	for _, cmd := range commands {
		if strings.ToLower(cmd.Name) == input {
			return cmd, nil
		}
		for _, alias := range cmd.Aliases {
			if strings.ToLower(alias) == input {
				return cmd, nil
			}
		}
	}

	var matches []Command
	for _, cmd := range commands {
		if strings.HasPrefix(strings.ToLower(cmd.Name), input) {
			matches = append(matches, cmd)
		}
	}

	switch len(matches) {
	case 0:
		return Command{}, fmt.Errorf("unknown command %q (try \"help\")", input)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = m.Name
		}
		sort.Strings(names)
		return Command{}, fmt.Errorf("ambiguous command %q matches: %s", input, strings.Join(names, ", "))
	}
}
