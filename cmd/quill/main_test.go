package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		args    []string
		want    options
		wantErr bool
	}{
		{nil, options{}, false},
		{[]string{"notes.txt"}, options{path: "notes.txt"}, false},
		{[]string{"-a", "red", "x"}, options{path: "x", accent: "red"}, false},
		{[]string{"--accent-color", "dark_cyan"}, options{accent: "dark_cyan"}, false},
		{[]string{"--log", "q.log", "--version"}, options{logFile: "q.log", showVersion: true}, false},
		{[]string{"-a", "purple"}, options{}, true},
		{[]string{"a", "b"}, options{}, true},
		{[]string{"--nope"}, options{}, true},
	}
	for _, tt := range tests {
		var stderr bytes.Buffer
		got, err := parseArgs(tt.args, &stderr)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseArgs(%q) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseArgs(%q) = %+v, want %+v", tt.args, got, tt.want)
		}
	}
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--version"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, stderr %q", code, stderr.String())
	}
	if got := stdout.String(); got != "quill dev\n" {
		t.Errorf("stdout = %q", got)
	}
}

func TestRunUsageErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--accent-color", "purple"}, &stdout, &stderr); code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
	if !strings.Contains(stderr.String(), "quill: ") || !strings.Contains(stderr.String(), "dark_blue") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRunBadSettings(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QUILL_CONFIG_DIR", dir)
	if err := os.WriteFile(filepath.Join(dir, "settings.toml"), []byte("accent_color = 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.HasPrefix(stderr.String(), "quill: ") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRunUnreadableFile(t *testing.T) {
	t.Setenv("QUILL_CONFIG_DIR", t.TempDir())
	var stdout, stderr bytes.Buffer
	if code := run([]string{t.TempDir()}, &stdout, &stderr); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.HasPrefix(stderr.String(), "quill: load ") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestOpenLog(t *testing.T) {
	logger, closeLog, err := openLog("")
	if err != nil || logger == nil {
		t.Fatalf("openLog(\"\") = %v, %v", logger, err)
	}
	closeLog()

	path := filepath.Join(t.TempDir(), "quill.log")
	logger, closeLog, err = openLog(path)
	if err != nil {
		t.Fatalf("openLog: %v", err)
	}
	logger.Printf("hello")
	closeLog()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "quill hello") {
		t.Errorf("log = %q", data)
	}

	if _, _, err := openLog(filepath.Join(t.TempDir(), "missing", "x.log")); err == nil {
		t.Error("openLog in a missing directory succeeded")
	}
}

func TestRunWriteSettings(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "conf")
	t.Setenv("QUILL_CONFIG_DIR", dir)
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--write-settings", "-a", "dark_red"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, stderr %q", code, stderr.String())
	}
	data, err := os.ReadFile(filepath.Join(dir, "settings.toml"))
	if err != nil {
		t.Fatalf("read settings: %v", err)
	}
	if !strings.Contains(string(data), "dark_red") {
		t.Errorf("settings = %q", data)
	}
	if !strings.HasPrefix(stdout.String(), "wrote ") {
		t.Errorf("stdout = %q", stdout.String())
	}
}
