package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) DeleteAccount(ctx context.Context) error {
	f.calls = append(f.calls, "delete")
	return nil
}
func (f *fakeExec) Ping(ctx context.Context) error { f.calls = append(f.calls, "ping"); return nil }

func silencePrint(t *testing.T) *[]string {
	t.Helper()
	var printed []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			if s, ok := v.(string); ok {
				parts = append(parts, s)
			}
		}
		printed = append(printed, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &printed
}

func TestRunREPL_DispatchesCommandsInOrder(t *testing.T) {
	silencePrint(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"register",
		"",
		"login",
		"help",
		"ping",
		"delete",
		"logout",
		"foobar",
		"exit",
		"register",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewScanner(input))

	want := []string{"register", "login", "ping", "delete", "logout"}
	if strings.Join(exec.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}
}

func TestRunREPL_UnknownAndQuit(t *testing.T) {
	printed := silencePrint(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(strings.NewReader("get\nquit\n")))

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	joined := strings.Join(*printed, "\n")
	if !strings.Contains(joined, "Unknown command: get") {
		t.Fatalf("expected unknown command message, got %q", joined)
	}
	if !strings.Contains(joined, "Bye!") {
		t.Fatalf("expected goodbye, got %q", joined)
	}
}

func TestRunREPL_HelpDependsOnLoginState(t *testing.T) {
	printed := silencePrint(t)

	runREPL(context.Background(), &fakeExec{}, func() string { return "" }, bufio.NewScanner(strings.NewReader("help\n")))
	runREPL(context.Background(), &fakeExec{loggedIn: true}, func() string { return "" }, bufio.NewScanner(strings.NewReader("help\n")))

	joined := strings.Join(*printed, "\n")
	if !strings.Contains(joined, "register, login") {
		t.Fatalf("logged-out help missing: %q", joined)
	}
	if !strings.Contains(joined, "logout") {
		t.Fatalf("logged-in help missing: %q", joined)
	}
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	silencePrint(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("register\n")))

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
