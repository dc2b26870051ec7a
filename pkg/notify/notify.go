// Package notify shows short acknowledgement messages to the user.
//
// Console prints a colored line, Dialog draws a bordered message box in the
// terminal and Recorder captures messages in memory.
package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

// Notifier shows a message to the user.
type Notifier interface {
	Show(message string) error
}

// Console writes each message as a single colored line.
type Console struct {
	w     io.Writer
	color *color.Color
}

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w, color: color.New(color.FgGreen)}
}

// Show implements Notifier.
func (c *Console) Show(message string) error {
	_, err := c.color.Fprintln(c.w, message)
	return err
}

// Dialog renders each message inside a rounded box, the terminal stand-in
// for a host message dialog.
type Dialog struct {
	w     io.Writer
	title string
	style lipgloss.Style
}

// NewDialog returns a Dialog writing to w. An empty title omits the header.
func NewDialog(w io.Writer, title string) *Dialog {
	return &Dialog{
		w:     w,
		title: title,
		style: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 2),
	}
}

// Show implements Notifier.
func (d *Dialog) Show(message string) error {
	body := message
	if d.title != "" {
		body = lipgloss.NewStyle().Bold(true).Render(d.title) + "\n\n" + message
	}
	_, err := fmt.Fprintln(d.w, d.style.Render(body))
	return err
}

// Recorder keeps every shown message. If Err is set, Show returns it
// without recording.
type Recorder struct {
	mu       sync.Mutex
	messages []string
	Err      error
}

// Show implements Notifier.
func (r *Recorder) Show(message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.messages = append(r.messages, message)
	return nil
}

// Messages returns a copy of the recorded messages in order.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages...)
}

var (
	_ Notifier = (*Console)(nil)
	_ Notifier = (*Dialog)(nil)
	_ Notifier = (*Recorder)(nil)
)
