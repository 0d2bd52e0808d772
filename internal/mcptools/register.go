// Package mcptools exposes a roster over the Model Context Protocol so an
// agent can fill in and submit the employee form.
package mcptools

import (
	"log"
	"sync"

	"github.com/mark3labs/mcp-go/server"

	"github.com/jacksmith/roster/internal/config"
	"github.com/jacksmith/roster/internal/roster"
)

// tools serialises access to the store. MCP requests may be handled
// concurrently but roster.Store expects one call at a time.
type tools struct {
	mu      sync.Mutex
	store   *roster.Store
	genders []string
	logger  *log.Logger
}

// Register adds the roster tools to s. cfg supplies the gender choices
// advertised for the gender argument; nil uses defaults.
func Register(s *server.MCPServer, store *roster.Store, cfg *config.Config, logger *log.Logger) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	t := &tools{store: store, logger: logger}
	for _, g := range cfg.Genders {
		t.genders = append(t.genders, string(g))
	}

	// Form tools (3)
	t.registerAddEmployee(s)
	t.registerModifyEmployee(s)
	t.registerDeleteEmployee(s)

	// Lookup tools (3)
	t.registerSelectEmployee(s)
	t.registerFindEmployee(s)
	t.registerListEmployees(s)
}
