package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool
	oidc     bool
	email    bool

	calls []string
}

func (f *fakeExec) isLoggedIn() bool   { return f.loggedIn }
func (f *fakeExec) oidcEnabled() bool  { return f.oidc }
func (f *fakeExec) emailEnabled() bool { return f.email }

func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Signup(ctx context.Context) error {
	f.calls = append(f.calls, "signup")
	return nil
}
func (f *fakeExec) LoginWithOidc(ctx context.Context) error {
	f.calls = append(f.calls, "oidc")
	return nil
}
func (f *fakeExec) RequestMagicLink(ctx context.Context) error {
	f.calls = append(f.calls, "magic")
	return nil
}
func (f *fakeExec) ResetPassword(ctx context.Context) error {
	f.calls = append(f.calls, "resetpw")
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Whoami(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}
func (f *fakeExec) List(ctx context.Context) error { f.calls = append(f.calls, "list"); return nil }
func (f *fakeExec) Show(ctx context.Context) error { f.calls = append(f.calls, "show"); return nil }
func (f *fakeExec) Edit(ctx context.Context) error { f.calls = append(f.calls, "edit"); return nil }
func (f *fakeExec) Create(ctx context.Context) error {
	f.calls = append(f.calls, "new")
	return nil
}
func (f *fakeExec) Delete(ctx context.Context) error {
	f.calls = append(f.calls, "delete")
	return nil
}
func (f *fakeExec) CopySecret(ctx context.Context) error {
	f.calls = append(f.calls, "copy")
	return nil
}
func (f *fakeExec) Reveal(ctx context.Context) error {
	f.calls = append(f.calls, "reveal")
	return nil
}
func (f *fakeExec) Audit(ctx context.Context) error { f.calls = append(f.calls, "audit"); return nil }
func (f *fakeExec) AuditPage(ctx context.Context, arg string) error {
	f.calls = append(f.calls, "page "+arg)
	return nil
}
func (f *fakeExec) AuditMore(ctx context.Context) error {
	f.calls = append(f.calls, "more")
	return nil
}
func (f *fakeExec) AuditMetrics(ctx context.Context) error {
	f.calls = append(f.calls, "metrics")
	return nil
}
func (f *fakeExec) Keys(ctx context.Context) error { f.calls = append(f.calls, "keys"); return nil }
func (f *fakeExec) AddKey(ctx context.Context) error {
	f.calls = append(f.calls, "addkey")
	return nil
}
func (f *fakeExec) EditKey(ctx context.Context) error {
	f.calls = append(f.calls, "editkey")
	return nil
}
func (f *fakeExec) DeleteKey(ctx context.Context) error {
	f.calls = append(f.calls, "delkey")
	return nil
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"list",
		"edit",
		"audit",
		"page 3",
		"more",
		"keys",
		"foobar",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "list", "edit", "audit", "page 3", "more", "keys", "logout"}
	if len(exec.calls) != len(wantOrder) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, wantOrder)
	}
	for i, c := range exec.calls {
		if c != wantOrder[i] {
			t.Fatalf("commands order mismatch: got %v, want %v", exec.calls, wantOrder)
		}
	}
}

func TestRunREPL_PageUsageAndQuit(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("page\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_ProtectedCommandsRequireLogin(t *testing.T) {
	var printed []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		for _, a := range args {
			if s, ok := a.(string); ok {
				printed = append(printed, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })

	input := strings.NewReader(strings.Join([]string{
		"list",
		"edit",
		"page 2",
		"keys",
		"whoami",
		"logout",
		"reveal",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	// reveal authenticates with the API key, not the session, so it is the
	// only command that may dispatch while logged out.
	if len(exec.calls) != 1 || exec.calls[0] != "reveal" {
		t.Fatalf("logged-out dispatches: got %v, want [reveal]", exec.calls)
	}

	reminders := 0
	for _, p := range printed {
		if p == "Please 'login' first." {
			reminders++
		}
	}
	if reminders != 6 {
		t.Fatalf("login reminders: got %d, want 6 (printed %v)", reminders, printed)
	}
}

func TestRunREPL_HelpReflectsFeatureFlags(t *testing.T) {
	var printed []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		for _, a := range args {
			if s, ok := a.(string); ok {
				printed = append(printed, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })

	exec := &fakeExec{loggedIn: false, oidc: false, email: true}
	sc := bufio.NewScanner(strings.NewReader("help\nexit\n"))
	runREPL(context.Background(), exec, func() string { return "" }, sc)

	var help string
	for _, p := range printed {
		if strings.HasPrefix(p, "Available commands") {
			help = p
		}
	}
	if help == "" {
		t.Fatal("no help line printed")
	}
	if strings.Contains(help, "oidc") {
		t.Fatalf("oidc offered while disabled: %q", help)
	}
	if !strings.Contains(help, "magic") || !strings.Contains(help, "resetpw") {
		t.Fatalf("email flows missing while enabled: %q", help)
	}
}
