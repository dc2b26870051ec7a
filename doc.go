// Package barlib is a small set of scripting conveniences for macros and
// tools that run alongside an image-processing host: a loading
// acknowledgement, clipboard text access, random identifiers, the greatest
// common divisor of two integers and sphere metrics.
//
// The CLI lives in cmd/barlib; this root package exposes the same operations
// as a Go API.
//
// # Quick start
//
//	lib := barlib.New(barlib.Options{})
//	if err := lib.ConfirmLoading(); err != nil {
//	    log.Fatal(err)
//	}
//	text, err := lib.ClipboardText() // "" when the clipboard holds no text
//
//	id := barlib.RandomString()          // "f47ac10b-58cc-4372-a567-0e02b2c3d479"
//	g := barlib.GCD(48, 18)              // 6
//	area, vol := barlib.SphereCalc(1)    // 12.566..., 4.188...
//
// # Host access
//
// The notification and clipboard calls go through [notify.Notifier] and
// [clipboard.Source]. Pass your own implementations in [Options] to target a
// different host, or [notify.Recorder] and [clipboard.Memory] in tests.
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
package barlib
