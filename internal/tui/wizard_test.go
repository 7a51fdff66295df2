package tui_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/initializ/enroll/internal/form"
	"github.com/initializ/enroll/internal/form/formtest"
	"github.com/initializ/enroll/internal/submit"
	"github.com/initializ/enroll/internal/tui"
	"github.com/initializ/enroll/internal/tui/steps"
	"github.com/initializ/enroll/internal/validate"
	"github.com/initializ/enroll/internal/wizard"
)

func newModel(acc form.Accessor, opts ...wizard.Option) (tui.WizardModel, *wizard.Controller) {
	opts = append([]wizard.Option{wizard.WithValidator(validate.New(validate.WithClock(formtest.Clock)))}, opts...)
	ctrl := wizard.New(acc, opts...)
	styles := tui.NewStyleSet(tui.DarkTheme)
	m := tui.NewWizardModel(context.Background(), tui.DarkTheme, ctrl,
		steps.All(styles, form.DefaultCountries, form.DefaultSecurityQuestions), "1.0.0")
	return m, ctrl
}

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func update(t *testing.T, m tui.WizardModel, msg tea.Msg) (tui.WizardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	wm, ok := next.(tui.WizardModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return wm, cmd
}

// collect runs cmd and any batched commands, returning their messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestWizard_NextOnEmptyFormShowsErrors(t *testing.T) {
	m, ctrl := newModel(form.NewValues())

	m, _ = update(t, m, key(tea.KeyCtrlN))
	if ctrl.Current() != 0 {
		t.Fatalf("current = %d, want 0", ctrl.Current())
	}
	view := m.View()
	for _, want := range []string{
		wizard.MsgFixBeforeProceeding,
		"First name is required.",
		"Please select your country.",
		"Step 1 of 3",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestWizard_TypingFlowsIntoForm(t *testing.T) {
	acc := form.NewValues()
	m, ctrl := newModel(acc)
	m.Init()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Grace")})
	_, _ = update(t, m, key(tea.KeyCtrlN))

	if got := acc.Value(form.FirstName); got != "Grace" {
		t.Errorf("firstName = %q, want Grace", got)
	}
	if acc.Error(form.FirstName) != "" {
		t.Errorf("firstName error = %q, want none", acc.Error(form.FirstName))
	}
	if ctrl.Current() != 0 {
		t.Errorf("current = %d, want 0", ctrl.Current())
	}
}

func TestWizard_BackDoesNotValidate(t *testing.T) {
	m, ctrl := newModel(formtest.Valid())

	m, _ = update(t, m, key(tea.KeyCtrlN))
	if ctrl.Current() != 1 {
		t.Fatalf("current = %d, want 1", ctrl.Current())
	}
	m, _ = update(t, m, key(tea.KeyCtrlB))
	if ctrl.Current() != 0 {
		t.Fatalf("current = %d, want 0", ctrl.Current())
	}
	if !strings.Contains(m.View(), "Step 1 of 3") {
		t.Error("view missing step counter")
	}
}

func TestWizard_SubmitSuccessShowsSummary(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	m, ctrl := newModel(formtest.Valid(), wizard.WithSubmitter(submit.NewClient(server.URL, time.Second, nil)))

	m, _ = update(t, m, key(tea.KeyCtrlN))
	m, _ = update(t, m, key(tea.KeyCtrlN))
	if ctrl.Current() != 2 {
		t.Fatalf("current = %d, want 2", ctrl.Current())
	}

	m, cmd := update(t, m, key(tea.KeyCtrlS))
	if !ctrl.Submitting() {
		t.Fatal("expected submitting state")
	}
	if !strings.Contains(m.View(), wizard.MsgSubmitting) {
		t.Error("view missing submitting banner")
	}

	var done *tui.SubmitDoneMsg
	for _, msg := range collect(cmd) {
		if d, ok := msg.(tui.SubmitDoneMsg); ok {
			done = &d
		}
	}
	if done == nil {
		t.Fatal("submit command produced no SubmitDoneMsg")
	}
	m, _ = update(t, m, *done)

	if !m.Done() {
		t.Fatal("expected wizard to be done")
	}
	if calls != 1 {
		t.Errorf("server calls = %d, want 1", calls)
	}
	view := m.View()
	if !strings.Contains(view, wizard.MsgSuccess) {
		t.Error("view missing success banner")
	}
	if strings.Contains(view, "engine1843") {
		t.Error("summary leaked the password")
	}
	if !strings.Contains(view, "United Kingdom") {
		t.Error("summary should show the country label")
	}

	_, cmd = update(t, m, key(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("enter after success should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestWizard_SubmitJumpsToFailingStep(t *testing.T) {
	acc := formtest.Valid()
	acc.SetValue(form.Email, "nope")
	m, ctrl := newModel(acc)
	if !ctrl.GoToStep(2) {
		t.Fatal("GoToStep(2) failed")
	}

	m, _ = update(t, m, key(tea.KeyCtrlS))
	if ctrl.Current() != 0 {
		t.Fatalf("current = %d, want 0", ctrl.Current())
	}
	view := m.View()
	if !strings.Contains(view, wizard.MsgFixHighlightedStep) {
		t.Error("view missing highlighted step banner")
	}
	if !strings.Contains(view, "Enter a valid email.") {
		t.Error("view missing email error")
	}
}

func TestWizard_EscAborts(t *testing.T) {
	m, _ := newModel(form.NewValues())

	m, cmd := update(t, m, key(tea.KeyEsc))
	if m.Err() != tui.ErrAborted {
		t.Errorf("Err() = %v, want ErrAborted", m.Err())
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestWizard_UnreadableFileMarksField(t *testing.T) {
	acc := formtest.Valid()
	m, ctrl := newModel(acc)
	ctrl.GoToStep(2)
	m.Init()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("-missing")})
	m, cmd := update(t, m, key(tea.KeyTab))
	for _, msg := range collect(cmd) {
		if fc, ok := msg.(tui.FileChosenMsg); ok {
			m, _ = update(t, m, fc)
		}
	}

	if acc.File(form.ProfilePicture) != nil {
		t.Error("unreadable file should clear the selection")
	}
	if !strings.Contains(m.View(), wizard.MsgUnreadableFile) {
		t.Error("view missing unreadable file error")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if got := acc.Error(form.ProfilePicture); got != wizard.MsgUnreadableFile {
		t.Errorf("after submit, profilePicture error = %q, want %q", got, wizard.MsgUnreadableFile)
	}
	if view := m.View(); !strings.Contains(view, wizard.MsgUnreadableFile) || strings.Contains(view, "Profile picture is required.") {
		t.Errorf("view should keep the unreadable file error:\n%s", view)
	}
	if m.Done() {
		t.Error("submission must not succeed with an unreadable file")
	}
}
