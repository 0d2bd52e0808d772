package shell

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jacksmith/roster/internal/cli"
	"github.com/jacksmith/roster/internal/config"
	"github.com/jacksmith/roster/internal/model"
	"github.com/jacksmith/roster/internal/roster"
	. "github.com/onsi/gomega"
)

func newTestShell(opts ...Option) (*Shell, *roster.Store, *bytes.Buffer) {
	cfg := config.DefaultConfig()
	cfg.Color = cli.ColorNever
	store := roster.New()
	out := &bytes.Buffer{}
	return New(store, cfg, out, opts...), store, out
}

func execAll(s *Shell, lines ...string) {
	for _, line := range lines {
		s.Exec(line)
	}
}

func TestExec_AddEmployee(t *testing.T) {
	g := NewWithT(t)
	s, store, out := newTestShell()

	s.Exec(`add id=1 name="Ann Lee" designation=Dev gender=Female salary=1000`)

	g.Expect(out.String()).To(ContainSubstring(cli.MsgAdded))
	g.Expect(out.String()).To(ContainSubstring("Ann Lee"))
	g.Expect(store.List()).To(Equal([]model.Employee{
		{ID: "1", Name: "Ann Lee", Designation: "Dev", Gender: model.GenderFemale, Salary: "1000"},
	}))
	g.Expect(s.Form()).To(Equal(model.Form{}), "form resets after a successful add")
}

func TestExec_AddIncompleteKeepsForm(t *testing.T) {
	g := NewWithT(t)
	s, store, out := newTestShell()

	s.Exec("add id=1 name=Ann")

	g.Expect(out.String()).To(ContainSubstring(cli.MsgFillAll))
	g.Expect(out.String()).To(ContainSubstring("missing required fields: designation, gender, salary"))
	g.Expect(store.Len()).To(BeZero())
	g.Expect(s.Form().ID).To(Equal("1"))
	g.Expect(s.Form().Name).To(Equal("Ann"))
}

func TestExec_AddDuplicate(t *testing.T) {
	g := NewWithT(t)
	s, store, out := newTestShell()

	execAll(s,
		"add id=1 name=Ann designation=Dev gender=Female salary=1000",
		"add id=1 name=Bob designation=QA gender=Male salary=900",
	)

	g.Expect(out.String()).To(ContainSubstring(cli.MsgDuplicateID))
	g.Expect(store.Len()).To(Equal(1))
	g.Expect(s.Form().Name).To(Equal("Bob"))
}

func TestExec_SetThenAdd(t *testing.T) {
	g := NewWithT(t)
	s, store, _ := newTestShell()

	execAll(s,
		"set id=7 name=Cy",
		"set desig=Ops sex=Other sal=500",
		"add",
	)

	e, ok := store.FindByID("7")
	g.Expect(ok).To(BeTrue())
	g.Expect(e).To(Equal(model.Employee{ID: "7", Name: "Cy", Designation: "Ops", Gender: model.GenderOther, Salary: "500"}))
}

func TestExec_SetErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"no args", "set", "usage: set field=value ..."},
		{"missing equals", "set name", `error: expected key=value, got "name"`},
		{"unknown field", "set age=3", `error: unknown field "age"`},
		{"open quote", `set name="Ann`, "error: unterminated quote"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)
			s, _, out := newTestShell()
			s.Exec("set id=1")

			s.Exec(tt.line)

			g.Expect(out.String()).To(ContainSubstring(tt.want))
			g.Expect(s.Form()).To(Equal(model.Form{ID: "1"}))
		})
	}
}

func TestExec_SelectModifyDelete(t *testing.T) {
	g := NewWithT(t)
	s, store, out := newTestShell()

	execAll(s,
		"add id=1 name=Ann designation=Dev gender=Female salary=1000",
		"add id=2 name=Bob designation=QA gender=Male salary=900",
		"select 1",
	)
	g.Expect(s.Form().Name).To(Equal("Ann"))
	g.Expect(out.String()).To(ContainSubstring("Selected: 1"))

	s.Exec("modify salary=1200")
	g.Expect(out.String()).To(ContainSubstring(cli.MsgModified))
	e, _ := store.FindByID("1")
	g.Expect(e.Salary).To(Equal("1200"))
	_, selected := store.Selected()
	g.Expect(selected).To(BeFalse())

	out.Reset()
	execAll(s, "select 2", "delete")
	g.Expect(out.String()).To(ContainSubstring(cli.MsgDeleted))
	g.Expect(store.List()).To(HaveLen(1))
	g.Expect(store.List()[0].ID).To(Equal("1"))
}

func TestExec_ModifyAndDeleteNeedSelection(t *testing.T) {
	g := NewWithT(t)
	s, store, out := newTestShell()

	execAll(s,
		"add id=1 name=Ann designation=Dev gender=Female salary=1000",
		"modify name=Zed",
		"delete",
	)

	g.Expect(out.String()).To(ContainSubstring(cli.MsgSelectModify))
	g.Expect(out.String()).To(ContainSubstring(cli.MsgSelectDelete))
	g.Expect(store.Len()).To(Equal(1))
}

func TestExec_AddWithSelectionUpdates(t *testing.T) {
	g := NewWithT(t)
	s, store, out := newTestShell()

	execAll(s,
		"add id=1 name=Ann designation=Dev gender=Female salary=1000",
		"select 1",
		"add name=Annie",
	)

	g.Expect(out.String()).To(ContainSubstring(cli.MsgModified))
	g.Expect(store.List()).To(Equal([]model.Employee{
		{ID: "1", Name: "Annie", Designation: "Dev", Gender: model.GenderFemale, Salary: "1000"},
	}))
}

func TestExec_SelectMiss(t *testing.T) {
	g := NewWithT(t)
	s, store, out := newTestShell()

	execAll(s,
		"add id=1 name=Ann designation=Dev gender=Female salary=1000",
		"select 1",
		"select 9",
	)

	g.Expect(out.String()).To(ContainSubstring("employee 9 not found"))
	_, selected := store.Selected()
	g.Expect(selected).To(BeFalse())
}

func TestExec_IDAutofill(t *testing.T) {
	g := NewWithT(t)
	s, store, _ := newTestShell()

	execAll(s,
		"add id=1 name=Ann designation=Dev gender=Female salary=1000",
		"id 1",
	)
	g.Expect(s.Form()).To(Equal(model.Form{ID: "1", Name: "Ann", Designation: "Dev", Gender: model.GenderFemale, Salary: "1000"}))
	id, ok := store.Selected()
	g.Expect(ok).To(BeTrue())
	g.Expect(id).To(Equal("1"))

	s.Exec("id 12")
	g.Expect(s.Form()).To(Equal(model.Form{ID: "12"}), "unknown id clears the other fields")
	_, ok = store.Selected()
	g.Expect(ok).To(BeFalse())
}

func TestExec_Clear(t *testing.T) {
	g := NewWithT(t)
	s, store, out := newTestShell()

	execAll(s,
		"add id=1 name=Ann designation=Dev gender=Female salary=1000",
		"select 1",
		"reset",
	)

	g.Expect(out.String()).To(ContainSubstring("Form cleared."))
	g.Expect(s.Form()).To(Equal(model.Form{}))
	_, ok := store.Selected()
	g.Expect(ok).To(BeFalse())
}

func TestExec_GenderWarning(t *testing.T) {
	g := NewWithT(t)
	s, store, out := newTestShell()

	s.Exec("add id=1 name=Ann designation=Dev gender=Robot salary=1000")

	g.Expect(out.String()).To(ContainSubstring(`note: gender "Robot" is not one of: Male, Female, Other`))
	g.Expect(store.Len()).To(Equal(1), "unlisted gender is still accepted")
}

func TestExec_ListAndDump(t *testing.T) {
	g := NewWithT(t)
	s, _, out := newTestShell()

	s.Exec("ls")
	g.Expect(out.String()).To(Equal("No employees.\n"))

	execAll(s,
		"add id=1 name=Ann designation=Dev gender=Female salary=1000",
		"select 1",
	)
	out.Reset()
	s.Exec("dump")
	g.Expect(out.String()).To(Equal(`selected: "1"
employees:
    - id: "1"
      name: Ann
      designation: Dev
      gender: Female
      salary: "1000"
`))
}

func TestExec_Misc(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"help", "help", "Commands may be abbreviated."},
		{"prefix", "he", "Commands may be abbreviated."},
		{"genders", "genders", "Male, Female, Other"},
		{"show", "show", "Nothing selected."},
		{"unknown", "frobnicate", `error: unknown command "frobnicate"`},
		{"ambiguous", "s", "error: ambiguous command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)
			s, _, out := newTestShell()

			quit := s.Exec(tt.line)

			g.Expect(quit).To(BeFalse())
			g.Expect(out.String()).To(ContainSubstring(tt.want))
		})
	}
}

func TestExec_IgnoresBlankAndComments(t *testing.T) {
	g := NewWithT(t)
	s, _, out := newTestShell()

	g.Expect(s.Exec("   ")).To(BeFalse())
	g.Expect(s.Exec("# add id=1")).To(BeFalse())
	g.Expect(out.String()).To(BeEmpty())
}

func TestExec_Quit(t *testing.T) {
	g := NewWithT(t)
	s, _, _ := newTestShell()

	g.Expect(s.Exec("quit")).To(BeTrue())
	g.Expect(s.Exec("exit")).To(BeTrue())
	g.Expect(s.Exec("q")).To(BeTrue())
}

func TestExec_Edit(t *testing.T) {
	g := NewWithT(t)

	script := filepath.Join(t.TempDir(), "fake-editor")
	body := "#!/bin/sh\nprintf 'id: \"5\"\\nname: Dee\\ndesignation: Ops\\ngender: Female\\nsalary: \"700\"\\n' > \"$1\"\n"
	g.Expect(os.WriteFile(script, []byte(body), 0o755)).To(Succeed())

	s, store, _ := newTestShell(WithEditor(&cli.Editor{Command: script}))
	execAll(s, "edit", "add")

	e, ok := store.FindByID("5")
	g.Expect(ok).To(BeTrue())
	g.Expect(e.Name).To(Equal("Dee"))
}

func TestExec_EditWithoutEditor(t *testing.T) {
	g := NewWithT(t)
	s, _, out := newTestShell(WithEditor(&cli.Editor{}))

	s.Exec("edit")

	g.Expect(out.String()).To(ContainSubstring("error: EDITOR not set"))
}

func TestRun_ReadsUntilQuit(t *testing.T) {
	g := NewWithT(t)
	s, store, out := newTestShell(WithInteractive(true))

	input := strings.Join([]string{
		"add id=1 name=Ann designation=Dev gender=Female salary=1000",
		"quit",
		"add id=2 name=Bob designation=QA gender=Male salary=900",
	}, "\n")

	err := s.Run(context.Background(), strings.NewReader(input))

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(store.Len()).To(Equal(1), "lines after quit are not run")
	g.Expect(out.String()).To(HavePrefix(config.DefaultPrompt))
}

func TestRun_EOF(t *testing.T) {
	g := NewWithT(t)
	s, store, out := newTestShell()

	err := s.Run(context.Background(), strings.NewReader("add id=1 name=Ann designation=Dev gender=Female salary=1000\n"))

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(store.Len()).To(Equal(1))
	g.Expect(out.String()).NotTo(ContainSubstring(config.DefaultPrompt), "no prompt when not interactive")
}

func TestRun_CancelledContext(t *testing.T) {
	g := NewWithT(t)
	s, _, _ := newTestShell()

	ctx, cancel := context.WithCancel(context.Background())
	r, w, err := os.Pipe()
	g.Expect(err).NotTo(HaveOccurred())
	defer r.Close()
	defer w.Close()

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, r) }()
	cancel()

	g.Eventually(done, time.Second).Should(Receive(BeNil()))
}

func TestRun_AppliesConfigUpdates(t *testing.T) {
	g := NewWithT(t)

	updates := make(chan *config.Config, 1)
	s, _, out := newTestShell(WithInteractive(true), WithConfigUpdates(updates))

	r, w, err := os.Pipe()
	g.Expect(err).NotTo(HaveOccurred())
	defer r.Close()

	done := make(chan error, 1)
	go func() { done <- s.Run(context.Background(), r) }()

	cfg := config.DefaultConfig()
	cfg.Color = cli.ColorNever
	cfg.Prompt = "hr> "
	updates <- cfg
	g.Eventually(updates).Should(BeEmpty())

	_, err = w.Write([]byte("list\nquit\n"))
	g.Expect(err).NotTo(HaveOccurred())
	g.Eventually(done, time.Second).Should(Receive(BeNil()))
	w.Close()

	g.Expect(out.String()).To(ContainSubstring("hr> "))
}
