package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kataras/barlib"
	"github.com/kataras/barlib/pkg/clipboard"
)

var uuidLine = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// execute runs the root command with args against an in-memory clipboard.
func execute(t *testing.T, clip *clipboard.Memory, args ...string) (string, error) {
	t.Helper()

	color.NoColor = true
	orig := newLib
	newLib = func(opts barlib.Options) *barlib.Lib {
		opts.Clipboard = clip
		return barlib.New(opts)
	}
	t.Cleanup(func() {
		newLib = orig
		color.NoColor = false
	})

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConfirmCmd(t *testing.T) {
	out, err := execute(t, clipboard.NewMemory(), "confirm")
	require.NoError(t, err)
	assert.Equal(t, "BAR lib successfully loaded!\n", out)
}

func TestConfirmCmd_Dialog(t *testing.T) {
	out, err := execute(t, clipboard.NewMemory(), "confirm", "--dialog")
	require.NoError(t, err)
	assert.Contains(t, out, "BAR lib successfully loaded!")
	assert.Contains(t, out, "╭")
}

func TestClipboardCmd(t *testing.T) {
	clip := clipboard.NewMemory()
	clip.SetText("ROI 1")

	out, err := execute(t, clip, "clipboard")
	require.NoError(t, err)
	assert.Equal(t, "ROI 1", out)

	clip.Set("image/png", []byte{1, 2})
	out, err = execute(t, clip, "clipboard")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestClipboardCmd_Error(t *testing.T) {
	clip := clipboard.NewMemory()
	clip.FailWith(clipboard.ErrUnsupported)

	_, err := execute(t, clip, "clipboard")
	assert.ErrorIs(t, err, clipboard.ErrUnsupported)
}

func TestUUIDCmd(t *testing.T) {
	out, err := execute(t, clipboard.NewMemory(), "uuid", "-n", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	seen := map[string]bool{}
	for _, l := range lines {
		assert.Regexp(t, uuidLine, l)
		assert.False(t, seen[l], "duplicate identifier %s", l)
		seen[l] = true
	}
}

func TestUUIDCmd_Check(t *testing.T) {
	out, err := execute(t, clipboard.NewMemory(), "uuid", "--check", "f47ac10b-58cc-4372-a567-0e02b2c3d479")
	require.NoError(t, err)
	assert.Equal(t, "valid\n", out)

	_, err = execute(t, clipboard.NewMemory(), "uuid", "--check", "not-a-uuid")
	assert.Error(t, err)

	_, err = execute(t, clipboard.NewMemory(), "uuid", "-n", "0")
	assert.Error(t, err)
}

func TestGCDCmd(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{name: "textbook", args: []string{"gcd", "48", "18"}, want: "6\n"},
		{name: "zero", args: []string{"gcd", "17", "0"}, want: "17\n"},
		{name: "negative", args: []string{"gcd", "--", "-48", "18"}, want: "6\n"},
		{name: "not an integer", args: []string{"gcd", "4.5", "2"}, wantErr: true},
		{name: "missing argument", args: []string{"gcd", "4"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, clipboard.NewMemory(), tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSphereCmd(t *testing.T) {
	out, err := execute(t, clipboard.NewMemory(), "sphere", "1")
	require.NoError(t, err)

	var area, volume float64
	_, err = fmt.Sscanf(out, "area: %g\nvolume: %g\n", &area, &volume)
	require.NoError(t, err, out)
	assert.InEpsilon(t, 12.566370614, area, 1e-9)
	assert.InEpsilon(t, 4.188790205, volume, 1e-9)

	out, err = execute(t, clipboard.NewMemory(), "sphere", "0")
	require.NoError(t, err)
	assert.Equal(t, "area: 0\nvolume: 0\n", out)

	_, err = execute(t, clipboard.NewMemory(), "sphere", "abc")
	assert.Error(t, err)
}

func TestReportCmd(t *testing.T) {
	clip := clipboard.NewMemory()
	clip.SetText("macro output")

	out, err := execute(t, clip, "report", "--pairs", "48:18,17:0", "--radii", "0,1")
	require.NoError(t, err)
	assert.Contains(t, out, "# BAR Library Report")
	assert.Contains(t, out, "| 48 | 18 | 6 |")
	assert.Contains(t, out, "| 17 | 0 | 17 |")
	assert.Contains(t, out, "| 1 | 12.566371 | 4.188790 |")
	assert.Contains(t, out, "macro output")
}

func TestReportCmd_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")

	_, err := execute(t, clipboard.NewMemory(), "report", "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "| 48 | 18 | 6 |")
}

func TestReportCmd_BadInput(t *testing.T) {
	_, err := execute(t, clipboard.NewMemory(), "report", "--pairs", "48-18")
	assert.Error(t, err)

	_, err = execute(t, clipboard.NewMemory(), "report", "--radii", "x")
	assert.Error(t, err)
}

func TestJSONLog(t *testing.T) {
	out, err := execute(t, clipboard.NewMemory(), "--json-log", "-v", "gcd", "4", "2")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	clip := clipboard.NewMemory()
	clip.FailWith(clipboard.ErrUnsupported)
	out, err = execute(t, clip, "--json-log", "report", "--pairs", "4:2", "--radii", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "| 4 | 2 | 2 |")
	assert.Contains(t, out, "_clipboard not supported_")
}

func TestZapLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := &zapLogger{s: zap.New(core).Sugar()}

	l.Infof("computed %d pair(s)", 2)
	l.Warnf("clipboard holds %s data", "image/png")
	l.Errorf("notification failed: %v", "no display")

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "computed 2 pair(s)", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "clipboard holds image/png data", entries[1].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, clipboard.NewMemory(), "version")
	require.NoError(t, err)
	assert.Equal(t, "barlib version "+barlib.Version+"\n", out)
}

// TestBinary builds the barlib binary and runs the pure subcommands
// end-to-end. It is skipped with -short.
func TestBinary(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}

	repoRoot, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)

	bin := filepath.Join(t.TempDir(), "barlib")
	if runtime.GOOS == "windows" {
		bin += ".exe"
	}

	build := exec.Command("go", "build", "-o", bin, "./cmd/barlib")
	build.Dir = repoRoot
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("failed to build binary: %v\n%s", err, out)
	}

	out, err := exec.Command(bin, "gcd", "48", "18").CombinedOutput()
	require.NoError(t, err, string(out))
	assert.Equal(t, "6\n", string(out))

	out, err = exec.Command(bin, "uuid").CombinedOutput()
	require.NoError(t, err, string(out))
	assert.Regexp(t, uuidLine, strings.TrimSpace(string(out)))
}
