package appcontrol

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"emotion-assistant/pkg/log"
)

type recordedCall struct {
	name string
	args []string
}

func newTestController(enabled bool, goos string, err error) (*Controller, *[]recordedCall) {
	calls := &[]recordedCall{}
	c := New(enabled, log.NewNop())
	c.goos = goos
	c.start = func(name string, args ...string) error {
		*calls = append(*calls, recordedCall{name: name, args: args})
		return err
	}
	return c, calls
}

func TestOpenCommand(t *testing.T) {
	tests := []struct {
		goos string
		want []string
	}{
		{"darwin", []string{"open", "-a", "Safari"}},
		{"windows", []string{"cmd", "/C", "start", "", "Safari"}},
		{"linux", []string{"xdg-open", "Safari"}},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			assert.Equal(t, tt.want, OpenCommand(tt.goos, " Safari "))
		})
	}
	assert.Nil(t, OpenCommand("linux", "  "))
}

func TestCloseCommand(t *testing.T) {
	assert.Equal(t, []string{"osascript", "-e", `quit app "Safari"`}, CloseCommand("darwin", "Safari"))
	assert.Equal(t, []string{"taskkill", "/IM", "notepad.exe", "/F"}, CloseCommand("windows", "notepad"))
	assert.Equal(t, []string{"taskkill", "/IM", "Notepad.EXE", "/F"}, CloseCommand("windows", "Notepad.EXE"))
	assert.Equal(t, []string{"pkill", "firefox"}, CloseCommand("linux", "firefox"))
	assert.Equal(t, []string{"pkill", "."}, CloseCommand("linux", "."))
}

func TestController_OpenStartsCommand(t *testing.T) {
	c, calls := newTestController(true, "darwin", nil)

	c.Open(context.Background(), "크롬")

	assert.Equal(t, []recordedCall{{name: "open", args: []string{"-a", "크롬"}}}, *calls)
}

func TestController_DisabledDoesNothing(t *testing.T) {
	c, calls := newTestController(false, "linux", nil)

	c.Open(context.Background(), "firefox")
	c.Close(context.Background(), "firefox")

	assert.Empty(t, *calls)
}

func TestController_StartErrorIsSwallowed(t *testing.T) {
	c, calls := newTestController(true, "linux", errors.New("not found"))

	assert.NotPanics(t, func() { c.Close(context.Background(), "firefox") })
	assert.Len(t, *calls, 1)
}
