package barlib

import (
	"os"

	"github.com/kataras/barlib/pkg/calc"
	"github.com/kataras/barlib/pkg/clipboard"
	"github.com/kataras/barlib/pkg/ident"
	"github.com/kataras/barlib/pkg/notify"
)

// Version is the library version.
const Version = "1.0.0"

// LoadedMessage is the text shown by ConfirmLoading.
const LoadedMessage = "BAR lib successfully loaded!"

// Options configures a Lib.
type Options struct {
	Notifier  notify.Notifier  // nil = colored line on stdout
	Clipboard clipboard.Source // nil = OS clipboard
	Logger    Logger           // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Lib bundles the host-facing operations. The pure helpers (GCD,
// SphereCalc, RandomString) are package functions and need no Lib.
type Lib struct {
	opts Options
}

// New returns a Lib with defaults applied to opts.
func New(opts Options) *Lib {
	if opts.Notifier == nil {
		opts.Notifier = notify.NewConsole(os.Stdout)
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.NewSystem()
	}
	return &Lib{opts: opts}
}

func (l *Lib) logInfo(f string, a ...any) {
	if l.opts.Logger != nil {
		l.opts.Logger.Infof(f, a...)
	}
}

func (l *Lib) logWarn(f string, a ...any) {
	if l.opts.Logger != nil {
		l.opts.Logger.Warnf(f, a...)
	}
}

func (l *Lib) logError(f string, a ...any) {
	if l.opts.Logger != nil {
		l.opts.Logger.Errorf(f, a...)
	}
}

// ConfirmLoading acknowledges that the library is reachable by showing
// LoadedMessage. Notifier errors are returned as is.
func (l *Lib) ConfirmLoading() error {
	if err := l.opts.Notifier.Show(LoadedMessage); err != nil {
		l.logError("Notification failed: %v", err)
		return err
	}
	return nil
}

// ClipboardText returns the clipboard contents when they are plain text.
// An empty clipboard or non-text data yields "" and a nil error; read
// failures are returned as is.
func (l *Lib) ClipboardText() (string, error) {
	contents, err := l.opts.Clipboard.Contents()
	if err != nil {
		l.logError("Reading clipboard failed: %v", err)
		return "", err
	}

	switch {
	case contents == nil:
		l.logInfo("Clipboard is empty")
		return "", nil
	case !contents.IsText():
		l.logWarn("Clipboard holds %s data, not text", contents.Flavor)
		return "", nil
	}

	return contents.Text(), nil
}

// RandomString returns a random UUID in 8-4-4-4-12 form.
func RandomString() string {
	return ident.New()
}

// GCD returns the greatest common divisor of a and b. Negative inputs are
// taken by absolute value, so the result is never negative.
func GCD(a, b int) int {
	return calc.GCD(a, b)
}

// SphereCalc returns the surface area and volume of a sphere of radius r.
func SphereCalc(r float64) (area, volume float64) {
	return calc.SphereCalc(r)
}
