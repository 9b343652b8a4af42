package reason

import (
	"strings"
	"testing"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stdout string
		stderr string
		output string
		want   string
	}{
		{
			name:   "fatal include error",
			stderr: "fatal error: foo.h not found\n",
			want:   "fatal error: foo.h not found",
		},
		{
			name:   "stderr searched before stdout",
			stdout: "error: from stdout",
			stderr: "note: something\nerror: from stderr",
			want:   "error: from stderr",
		},
		{
			name:   "stdout diagnostic when stderr is clean",
			stdout: "building...\nundefined reference to `acc_init'",
			stderr: "warning: unused variable",
			want:   "undefined reference to `acc_init'",
		},
		{
			name:   "output used last",
			output: "Segmentation fault (core dumped)",
			want:   "Segmentation fault (core dumped)",
		},
		{
			name:   "case insensitive",
			stderr: "NVFORTRAN-S-0034-Syntax ERROR at or near end of line",
			want:   "NVFORTRAN-S-0034-Syntax ERROR at or near end of line",
		},
		{
			name:   "compilation aborted",
			stderr: "test.c:\nNVC++/x86-64 Linux: compilation aborted",
			want:   "NVC++/x86-64 Linux: compilation aborted",
		},
		{
			name:   "lines are trimmed",
			stderr: "   \t invalid device pointer   \n",
			want:   "invalid device pointer",
		},
		{
			name:   "fallback joins first three lines",
			stdout: "line one\n\nline two\nline three\nline four",
			want:   "line one | line two | line three",
		},
		{
			name:   "fallback with fewer lines",
			stderr: "only line",
			want:   "only line",
		},
		{
			name:   "fallback spans sources in priority order",
			stdout: "out",
			stderr: "err",
			output: "aux",
			want:   "err | out | aux",
		},
		{
			name: "nothing at all",
			want: Unknown,
		},
		{
			name:   "whitespace only",
			stdout: "  \n\t\n",
			stderr: "\n",
			want:   Unknown,
		},
		{
			name:   "windows line endings",
			stderr: "Test failed\r\nmissing symbol\r\n",
			want:   "missing symbol",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Extract(tt.stdout, tt.stderr, tt.output); got != tt.want {
				t.Errorf("Extract() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLines(t *testing.T) {
	t.Parallel()
	got := Lines("a\n\n b ", "", "c")
	want := []string{"a", "b", "c"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Lines() = %v, want %v", got, want)
	}
}

func TestIsDiagnostic(t *testing.T) {
	t.Parallel()
	for _, line := range []string{"error", "Not Found", "core dumped", "MISSING"} {
		if !IsDiagnostic(line) {
			t.Errorf("IsDiagnostic(%q) = false, want true", line)
		}
	}
	for _, line := range []string{"", "warning: unused", "Test passed"} {
		if IsDiagnostic(line) {
			t.Errorf("IsDiagnostic(%q) = true, want false", line)
		}
	}
}

func TestExtract_AgreesWithIsDiagnostic(t *testing.T) {
	t.Parallel()
	stderr := "note: building\nlinking kernel\nundefined reference to `acc_get_num_devices'\nerror: ld returned 1"

	got := Extract("", stderr, "")
	var first string
	for _, line := range Lines(stderr) {
		if IsDiagnostic(line) {
			first = line
			break
		}
	}
	if got != first {
		t.Errorf("Extract() = %q, want first diagnostic line %q", got, first)
	}
}
