// Package clipboard reads the system clipboard with plain-text flavor
// negotiation. A Source hands back typed Content; callers decide what to do
// with data that is not text.
package clipboard

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"sync"
	"syscall"

	sysclip "github.com/atotto/clipboard"
)

// Flavor tags the type of data held by the clipboard.
type Flavor string

// FlavorText is the plain-text flavor. Every other flavor is treated as
// non-text data.
const FlavorText Flavor = "text/plain"

// ErrUnsupported is returned by System when no clipboard utility is
// available on the current platform.
var ErrUnsupported = errors.New("clipboard not supported")

// Content is a snapshot of the clipboard.
type Content struct {
	Flavor Flavor
	Data   []byte
}

// IsText reports whether the content carries the plain-text flavor.
func (c *Content) IsText() bool {
	return c != nil && c.Flavor == FlavorText
}

// Text returns the content as a string, or "" when it is not text.
func (c *Content) Text() string {
	if !c.IsText() {
		return ""
	}
	return string(c.Data)
}

// Source reads the current clipboard contents.
// Contents returns nil, nil when the clipboard is empty.
type Source interface {
	Contents() (*Content, error)
}

// System is a Source backed by the operating system clipboard through
// github.com/atotto/clipboard. That backend only exchanges text, so any
// non-empty read is reported with FlavorText, and a paste that fails because
// no text flavor is on the clipboard is reported as empty.
type System struct {
	readAll     func() (string, error)
	unsupported func() bool
	goos        string
}

// NewSystem returns a Source for the OS clipboard.
func NewSystem() *System {
	return &System{
		readAll:     sysclip.ReadAll,
		unsupported: func() bool { return sysclip.Unsupported },
		goos:        runtime.GOOS,
	}
}

// Contents implements Source.
func (s *System) Contents() (*Content, error) {
	if s.unsupported() {
		return nil, fmt.Errorf("%w on %s", ErrUnsupported, s.goos)
	}

	text, err := s.readAll()
	if err != nil {
		if s.noText(err) {
			return nil, nil
		}
		return nil, err
	}
	if text == "" {
		return nil, nil
	}

	return &Content{Flavor: FlavorText, Data: []byte(text)}, nil
}

// noTextMessages are what the X11 and Wayland paste utilities print on
// stderr when the selection is empty or holds no text target.
var noTextMessages = []string{
	"not available",     // xclip: "target STRING not available"
	"Nothing is copied", // wl-paste
	"No selection",      // wl-paste
	"No suitable type",  // wl-paste
}

// noText reports whether err is the backend's way of saying the clipboard
// holds no text, as opposed to a real access failure.
//
// On Windows the clipboard call leaves the last error at 0 when
// CF_UNICODETEXT is absent, and atotto surfaces that as Errno(0). Elsewhere
// the paste utility exits with status 1 and either says nothing or prints
// one of noTextMessages.
func (s *System) noText(err error) bool {
	if s.goos == "windows" {
		var errno syscall.Errno
		return errors.As(err, &errno) && errno == 0
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
		return false
	}

	stderr := strings.TrimSpace(string(exitErr.Stderr))
	if stderr == "" {
		return true
	}
	for _, msg := range noTextMessages {
		if strings.Contains(stderr, msg) {
			return true
		}
	}
	return false
}

// Memory is an in-process clipboard. It is safe for concurrent use.
type Memory struct {
	mu      sync.Mutex
	content *Content
	err     error
}

// NewMemory returns an empty in-memory clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// Set stores data of the given flavor.
func (m *Memory) Set(flavor Flavor, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.content = &Content{Flavor: flavor, Data: append([]byte(nil), data...)}
}

// SetText stores plain text.
func (m *Memory) SetText(text string) {
	m.Set(FlavorText, []byte(text))
}

// Clear empties the clipboard.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.content = nil
}

// FailWith makes every subsequent Contents call return err. A nil err
// restores normal reads.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Contents implements Source.
func (m *Memory) Contents() (*Content, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	if m.content == nil {
		return nil, nil
	}

	c := *m.content
	c.Data = append([]byte(nil), m.content.Data...)
	return &c, nil
}

var (
	_ Source = (*System)(nil)
	_ Source = (*Memory)(nil)
)
