// Package appcontrol opens and closes desktop applications on the host.
package appcontrol

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"emotion-assistant/internal/dispatcher"
	"emotion-assistant/pkg/log"
)

const (
	LogPrefixOpen  = "internal.appcontrol.Open"
	LogPrefixClose = "internal.appcontrol.Close"
)

// Controller launches OS commands for open/close directives. Commands are
// started and left to finish on their own.
type Controller struct {
	enabled bool
	goos    string
	start   func(name string, args ...string) error
	l       log.Logger
}

var _ dispatcher.AppController = (*Controller)(nil)

// New creates a Controller for the running OS. A disabled controller only
// logs what it would have run.
func New(enabled bool, l log.Logger) *Controller {
	return &Controller{
		enabled: enabled,
		goos:    runtime.GOOS,
		start:   startDetached,
		l:       l,
	}
}

func (c *Controller) Open(ctx context.Context, name string) {
	c.run(ctx, LogPrefixOpen, OpenCommand(c.goos, name))
}

func (c *Controller) Close(ctx context.Context, name string) {
	c.run(ctx, LogPrefixClose, CloseCommand(c.goos, name))
}

func (c *Controller) run(ctx context.Context, prefix string, argv []string) {
	if len(argv) == 0 {
		return
	}
	if !c.enabled {
		c.l.Infof(ctx, "%s: disabled, skipping %q", prefix, strings.Join(argv, " "))
		return
	}
	if err := c.start(argv[0], argv[1:]...); err != nil {
		c.l.Warnf(ctx, "%s: %q: %v", prefix, strings.Join(argv, " "), err)
		return
	}
	c.l.Infof(ctx, "%s: started %q", prefix, strings.Join(argv, " "))
}

// OpenCommand returns the argv that launches name on goos.
func OpenCommand(goos, name string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	switch goos {
	case "darwin":
		return []string{"open", "-a", name}
	case "windows":
		return []string{"cmd", "/C", "start", "", name}
	default:
		return []string{"xdg-open", name}
	}
}

// CloseCommand returns the argv that terminates name on goos.
func CloseCommand(goos, name string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	switch goos {
	case "darwin":
		return []string{"osascript", "-e", fmt.Sprintf("quit app %q", name)}
	case "windows":
		if !strings.HasSuffix(strings.ToLower(name), ".exe") {
			name += ".exe"
		}
		return []string{"taskkill", "/IM", name, "/F"}
	default:
		return []string{"pkill", name}
	}
}

// The request context is not used for the child process: cancelling it
// would kill the application that was just opened.
func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
