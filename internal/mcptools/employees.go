package mcptools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jacksmith/roster/internal/cli"
	"github.com/jacksmith/roster/internal/model"
	"github.com/jacksmith/roster/internal/roster"
)

// fieldOptions declares the five form fields as string arguments.
func (t *tools) fieldOptions() []mcp.ToolOption {
	gender := []mcp.PropertyOption{mcp.Description("Gender")}
	if len(t.genders) > 0 {
		gender = append(gender, mcp.Enum(t.genders...))
	}
	return []mcp.ToolOption{
		mcp.WithString(model.FieldID, mcp.Description("Employee ID, unique within the roster")),
		mcp.WithString(model.FieldName, mcp.Description("Full name")),
		mcp.WithString(model.FieldDesignation, mcp.Description("Job title")),
		mcp.WithString(model.FieldGender, gender...),
		mcp.WithString(model.FieldSalary, mcp.Description("Salary as entered, e.g. '1000'")),
	}
}

// baseForm is what the form shows before the caller's arguments are applied:
// the selected employee if there is one, otherwise nothing.
func (t *tools) baseForm() model.Form {
	id, ok := t.store.Selected()
	if !ok {
		return model.Form{}
	}
	e, _ := t.store.FindByID(id)
	return e.Form()
}

func (t *tools) registerAddEmployee(s *server.MCPServer) {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription(
			"Add an employee. All five fields must be filled in. " +
				"If an employee is selected, its values are the starting point and the selected record is updated instead of appending a new one."),
	}, t.fieldOptions()...)

	s.AddTool(mcp.NewTool("add_employee", opts...),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			t.mu.Lock()
			defer t.mu.Unlock()

			f := formFromArgs(t.baseForm(), req.GetArguments())
			e, outcome, err := t.store.Add(f)
			if err != nil {
				return t.failure("add_employee", cli.ActionAdd, err), nil
			}
			t.logger.Printf("add_employee %s: %s", e.ID, outcome)
			return employeeResult(cli.Message(outcome), e)
		})
}

func (t *tools) registerModifyEmployee(s *server.MCPServer) {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription(
			"Update the selected employee. Fields that are omitted keep their current values. " +
				"Call select_employee first."),
	}, t.fieldOptions()...)

	s.AddTool(mcp.NewTool("modify_employee", opts...),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			t.mu.Lock()
			defer t.mu.Unlock()

			f := formFromArgs(t.baseForm(), req.GetArguments())
			e, err := t.store.Modify(f)
			if err != nil {
				return t.failure("modify_employee", cli.ActionModify, err), nil
			}
			t.logger.Printf("modify_employee %s", e.ID)
			return employeeResult(cli.Message(roster.OutcomeModified), e)
		})
}

func (t *tools) registerDeleteEmployee(s *server.MCPServer) {
	s.AddTool(
		mcp.NewTool("delete_employee",
			mcp.WithDescription("Delete the selected employee. Call select_employee first."),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			t.mu.Lock()
			defer t.mu.Unlock()

			e, err := t.store.Delete()
			if err != nil {
				return t.failure("delete_employee", cli.ActionDelete, err), nil
			}
			t.logger.Printf("delete_employee %s", e.ID)
			return employeeResult(cli.Message(roster.OutcomeDeleted), e)
		})
}

func (t *tools) registerSelectEmployee(s *server.MCPServer) {
	s.AddTool(
		mcp.NewTool("select_employee",
			mcp.WithDescription(
				"Select an employee so modify_employee and delete_employee act on it. "+
					"An unknown id clears the selection."),
			mcp.WithString("id", mcp.Required(), mcp.Description("Employee ID")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			id, err := requireString(req.GetArguments(), "id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			t.mu.Lock()
			defer t.mu.Unlock()

			e, ok := t.store.Select(id)
			if !ok {
				t.logger.Printf("select_employee %s: not found", id)
				return mcp.NewToolResultError(fmt.Sprintf("employee %s not found", id)), nil
			}
			t.logger.Printf("select_employee %s", id)
			return employeeResult(fmt.Sprintf("Selected %s", id), e)
		})
}

func (t *tools) registerFindEmployee(s *server.MCPServer) {
	s.AddTool(
		mcp.NewTool("find_employee",
			mcp.WithDescription("Look up an employee by id without changing the selection."),
			mcp.WithString("id", mcp.Required(), mcp.Description("Employee ID")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			id, err := requireString(req.GetArguments(), "id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			t.mu.Lock()
			defer t.mu.Unlock()

			e, ok := t.store.FindByID(id)
			if !ok {
				return mcp.NewToolResultError(fmt.Sprintf("employee %s not found", id)), nil
			}
			return employeeResult(fmt.Sprintf("Found %s", id), e)
		})
}

func (t *tools) registerListEmployees(s *server.MCPServer) {
	s.AddTool(
		mcp.NewTool("list_employees",
			mcp.WithDescription("List every employee in roster order, plus the current selection, as YAML."),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			t.mu.Lock()
			defer t.mu.Unlock()

			selected, _ := t.store.Selected()
			data, err := model.EncodeRoster(t.store.List(), selected)
			if err != nil {
				return nil, err
			}
			return mcp.NewToolResultText(string(data)), nil
		})
}

// failure logs a rejected call and turns err into a tool error carrying the
// same notification the shell shows.
func (t *tools) failure(tool string, action cli.Action, err error) *mcp.CallToolResult {
	t.logger.Printf("%s rejected: %v", tool, err)
	msg := cli.ErrorMessage(action, err)
	if detail := cli.Detail(err); detail != "" {
		msg += " (" + detail + ")"
	}
	return mcp.NewToolResultError(msg)
}

func employeeResult(msg string, e model.Employee) (*mcp.CallToolResult, error) {
	data, err := model.EncodeForm(e.Form())
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(msg + "\n\n" + string(data)), nil
}
