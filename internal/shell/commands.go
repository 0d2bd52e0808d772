package shell

import (
	"fmt"
	"strings"

	"github.com/jacksmith/roster/internal/cli"
	"github.com/jacksmith/roster/internal/model"
	"github.com/jacksmith/roster/internal/roster"
)

var commands = []cli.Command{
	{Name: "add", Usage: "add [field=value ...]", Help: "save the form as a new employee, or update the selected one"},
	{Name: "modify", Usage: "modify [field=value ...]", Help: "save the form over the selected employee"},
	{Name: "delete", Usage: "delete", Help: "delete the selected employee"},
	{Name: "set", Usage: "set field=value ...", Help: "fill in form fields"},
	{Name: "id", Usage: "id <id>", Help: "type an id: selects and fills the form if it exists"},
	{Name: "select", Usage: "select <id>", Help: "select an employee and load it into the form"},
	{Name: "list", Aliases: []string{"ls"}, Usage: "list", Help: "show the roster"},
	{Name: "show", Usage: "show", Help: "show the form and selection"},
	{Name: "clear", Aliases: []string{"reset"}, Usage: "clear", Help: "clear the form and selection"},
	{Name: "edit", Usage: "edit", Help: "edit the form in $EDITOR"},
	{Name: "dump", Usage: "dump", Help: "print the roster as YAML"},
	{Name: "genders", Usage: "genders", Help: "list gender choices"},
	{Name: "help", Aliases: []string{"?"}, Usage: "help", Help: "show this help"},
	{Name: "quit", Aliases: []string{"exit", "q"}, Usage: "quit", Help: "end the session"},
}

// submit applies args to the form and saves it with Add or Modify.
// The form keeps what was typed when the store rejects it.
func (s *Shell) submit(action cli.Action, args []string) {
	f, err := cli.ParseForm(args, s.form)
	if err != nil {
		s.fail(cli.FormatError(err))
		return
	}
	s.form = f
	s.checkGender(f.Gender)

	var e model.Employee
	outcome := roster.OutcomeModified
	if action == cli.ActionAdd {
		e, outcome, err = s.store.Add(f)
	} else {
		e, err = s.store.Modify(f)
	}
	if err != nil {
		s.logger.Printf("%s rejected: %v", action, err)
		s.fail(cli.ErrorMessage(action, err))
		if detail := cli.Detail(err); detail != "" {
			s.info(detail)
		}
		return
	}

	s.logger.Printf("%s %s: %s", action, e.ID, outcome)
	s.clearForm()
	s.success(cli.Message(outcome))
	s.list()
}

func (s *Shell) delete() {
	e, err := s.store.Delete()
	if err != nil {
		s.logger.Printf("delete rejected: %v", err)
		s.fail(cli.ErrorMessage(cli.ActionDelete, err))
		return
	}

	s.logger.Printf("delete %s", e.ID)
	s.clearForm()
	s.success(cli.Message(roster.OutcomeDeleted))
	s.list()
}

func (s *Shell) set(args []string) {
	if len(args) == 0 {
		s.fail("usage: set field=value ...")
		return
	}
	f, err := cli.ParseForm(args, s.form)
	if err != nil {
		s.fail(cli.FormatError(err))
		return
	}
	s.form = f
	s.checkGender(f.Gender)
}

// autofill behaves like typing into the id field: a known id selects that
// employee and fills the form, an unknown id clears the other fields and the
// selection.
func (s *Shell) autofill(args []string) {
	if len(args) > 1 {
		s.fail("usage: id <id>")
		return
	}
	id := ""
	if len(args) == 1 {
		id = args[0]
	}

	if e, ok := s.store.Select(id); ok {
		s.form = e.Form()
		s.info(fmt.Sprintf("Selected %s.", id))
		s.show()
		return
	}
	s.form.ID = id
	s.form.ClearDetails()
}

// selectRow behaves like clicking a table row.
func (s *Shell) selectRow(args []string) {
	if len(args) != 1 {
		s.fail("usage: select <id>")
		return
	}

	e, ok := s.store.Select(args[0])
	if !ok {
		s.fail(fmt.Sprintf("employee %s not found", args[0]))
		return
	}
	s.form = e.Form()
	s.show()
}

func (s *Shell) list() {
	selected, _ := s.store.Selected()
	cli.RenderRoster(s.out, s.store.List(), selected, s.cfg.MaxNameWidth)
}

func (s *Shell) show() {
	table := cli.NewTable()
	for _, name := range model.Fields {
		value := s.form.Get(name)
		if value == "" {
			value = cli.Gray("(empty)")
		}
		table.AddRow(name+":", value)
	}
	table.Render(s.out)

	if id, ok := s.store.Selected(); ok {
		s.info(fmt.Sprintf("Selected: %s (modify and delete enabled)", id))
	} else {
		s.info("Nothing selected.")
	}
}

// clearForm resets every field and the selection, like the form's reset.
func (s *Shell) clearForm() {
	s.form = model.Form{}
	s.store.ClearSelection()
}

func (s *Shell) edit() {
	content, err := model.EncodeForm(s.form)
	if err != nil {
		s.fail(cli.FormatError(err))
		return
	}
	header := "# Editing the employee form.\n# Save and close the editor to apply. Use \"add\" or \"modify\" to submit.\n\n"
	content = append([]byte(header), content...)

	edited, err := s.editor.Edit(content, ".yaml")
	if err != nil {
		s.fail(cli.FormatError(err))
		return
	}

	f, err := model.DecodeForm(edited)
	if err != nil {
		s.fail(cli.FormatError(err))
		return
	}
	s.form = f
	s.checkGender(f.Gender)
	s.show()
}

func (s *Shell) dump() {
	selected, _ := s.store.Selected()
	data, err := model.EncodeRoster(s.store.List(), selected)
	if err != nil {
		s.fail(cli.FormatError(err))
		return
	}
	s.out.Write(data)
}

func (s *Shell) help() {
	table := cli.NewTable()
	for _, cmd := range commands {
		table.AddRow(cmd.Usage, cli.Gray(cmd.Help))
	}
	table.Render(s.out)
	fmt.Fprintf(s.out, "\nFields: %s. Commands may be abbreviated.\n", strings.Join(model.Fields, ", "))
}
