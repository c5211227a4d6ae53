package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/diegok/duopong/internal/config"
)

func TestApplyFlags_OnlyChanged(t *testing.T) {
	cfg := config.Default()
	cfg.FPS = 30
	cfg.AudioDir = "from-file"

	if err := rootCmd.Flags().Parse([]string{"--mute", "--volume", "0.25"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	applyFlags(rootCmd, cfg)

	if !cfg.Mute {
		t.Error("expected mute from flag")
	}
	if cfg.Volume != 0.25 {
		t.Errorf("expected volume 0.25, got %v", cfg.Volume)
	}
	if cfg.FPS != 30 {
		t.Errorf("unset flag should keep file value 30, got %d", cfg.FPS)
	}
	if cfg.AudioDir != "from-file" {
		t.Errorf("unset flag should keep file value, got '%s'", cfg.AudioDir)
	}
}

func TestApplyFlags_OverridesInvalidFileValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "duopong.yaml")
	if err := os.WriteFile(path, []byte("fps: 0\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}
	if err := rootCmd.Flags().Parse([]string{"--fps", "90"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	applyFlags(rootCmd, cfg)

	if cfg.FPS != 90 {
		t.Errorf("expected fps 90 from flag, got %d", cfg.FPS)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected flag to fix the file value, got %v", err)
	}
}

func TestLogOutput(t *testing.T) {
	out, closeLog, err := logOutput("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != io.Discard {
		t.Error("expected logs discarded without a file")
	}
	closeLog()

	path := filepath.Join(t.TempDir(), "duopong.log")
	out, closeLog, err = logOutput(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := io.WriteString(out, "hello\n"); err != nil {
		t.Errorf("write log: %v", err)
	}
	closeLog()

	if _, _, err := logOutput(filepath.Join(t.TempDir(), "missing", "x.log")); err == nil {
		t.Error("expected error for unwritable log path")
	}
}
