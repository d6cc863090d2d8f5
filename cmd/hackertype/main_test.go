package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/hackertype/internal/model"
)

func TestBuildConfig(t *testing.T) {
	cfg, err := buildConfig(30, "hard")
	if err != nil {
		t.Fatalf("build config: %v", err)
	}
	if cfg.DurationSeconds != 30 || cfg.Difficulty != model.Advanced {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if _, err := buildConfig(45, "basic"); err == nil {
		t.Fatalf("expected duration error")
	}
	if _, err := buildConfig(15, "expert"); err == nil {
		t.Fatalf("expected difficulty error")
	}
}

func TestApplyConfigRespectsFlags(t *testing.T) {
	cmd := newRootCmd()
	duration := 60
	difficulty := "advanced"
	applyIntConfig(cmd, "duration", &practiceDuration, &duration)
	if practiceDuration != 60 {
		t.Fatalf("expected config value applied, got %d", practiceDuration)
	}
	if err := cmd.Flags().Set("difficulty", "basic"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	applyStringConfig(cmd, "difficulty", &practiceDifficulty, &difficulty)
	if practiceDifficulty != "basic" {
		t.Fatalf("expected flag to win, got %q", practiceDifficulty)
	}
}

func TestPoolsCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"pools"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("pools: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "basic\t") || !strings.HasPrefix(lines[1], "advanced\t") {
		t.Fatalf("unexpected pools output:\n%s", out.String())
	}

	out.Reset()
	cmd = newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"pools", "basic"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("pools basic: %v", err)
	}
	if n := len(strings.Fields(out.String())); n < model.WordsPerList {
		t.Fatalf("expected at least %d words, got %d", model.WordsPerList, n)
	}
}

func TestNewLoggerDiscardsByDefault(t *testing.T) {
	logger, closeLog, err := newLogger("", "warn", false)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	defer closeLog()
	if logger.GetLevel().String() != "warning" {
		t.Fatalf("unexpected level %s", logger.GetLevel())
	}
	if _, _, err := newLogger("", "loud", false); err == nil {
		t.Fatalf("expected invalid level error")
	}
}
