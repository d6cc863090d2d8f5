// Package main provides the CLI entrypoint for hackertype.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/hackertype/internal/config"
	"github.com/verte-zerg/hackertype/internal/generator"
	"github.com/verte-zerg/hackertype/internal/model"
	"github.com/verte-zerg/hackertype/internal/session"
	"github.com/verte-zerg/hackertype/internal/stats"
	"github.com/verte-zerg/hackertype/internal/tui"
	"github.com/verte-zerg/hackertype/internal/wordlist"
)

const defaultLogLevel = "info"

var (
	practiceDuration   int
	practiceDifficulty string
	practiceSeed       int64

	logFile  string
	logLevel string
	debug    bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hackertype",
		Short:         "Timed TUI typing test",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().IntVar(&practiceDuration, "duration", model.DefaultDuration, "test length in seconds (15, 30 or 60)")
	rootCmd.Flags().StringVar(&practiceDifficulty, "difficulty", model.DefaultDifficulty.String(), "word pool (basic or advanced)")
	rootCmd.Flags().Int64Var(&practiceSeed, "seed", 0, "shuffle seed for repeatable word lists (0 = random)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write diagnostic logs to this file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "debug logging and strict event checks")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newPoolsCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "duration", &practiceDuration, fileCfg.Practice.Duration)
	applyStringConfig(cmd, "difficulty", &practiceDifficulty, fileCfg.Practice.Difficulty)
	applyStringConfig(cmd, "log-file", &logFile, fileCfg.Log.File)
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)

	cfg, err := buildConfig(practiceDuration, practiceDifficulty)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("hackertype needs an interactive terminal")
	}

	logger, closeLog, err := newLogger(logFile, logLevel, debug)
	if err != nil {
		return err
	}
	defer closeLog()

	pools, err := wordlist.DefaultPools()
	if err != nil {
		return fmt.Errorf("failed to load word pools: %w", err)
	}
	gen := generator.New(pools)
	if practiceSeed != 0 {
		gen = generator.NewSeeded(pools, practiceSeed)
	}

	m, err := tui.NewModel(cfg, gen, session.Options{Logger: logger, Strict: debug})
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if result, ok := m.Result(); ok {
		if err := stats.RenderResult(cmd.OutOrStdout(), result); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	return nil
}

func buildConfig(duration int, difficulty string) (model.Config, error) {
	if !model.ValidDuration(duration) {
		return model.Config{}, fmt.Errorf("--duration must be one of 15, 30, 60")
	}
	d, err := model.ParseDifficulty(difficulty)
	if err != nil {
		return model.Config{}, fmt.Errorf("--difficulty: %w", err)
	}
	return model.Config{DurationSeconds: duration, Difficulty: d}, nil
}

// newLogger returns the diagnostic logger. Logs are discarded unless a file
// is configured, since the TUI owns the terminal.
func newLogger(path, level string, debug bool) (*logrus.Logger, func(), error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	logger.SetOutput(io.Discard)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("--log-level: %w", err)
	}
	logger.SetLevel(parsed)
	if debug {
		logger.SetLevel(logrus.DebugLevel)
		if path == "" {
			path = config.DefaultLogPath()
		}
	}
	if path == "" {
		return logger, func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger.SetOutput(file)
	return logger, func() {
		if cerr := file.Close(); cerr != nil {
			logErrf("failed to close log file: %v\n", cerr)
		}
	}, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newPoolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pools [difficulty]",
		Short: "List word pools, or the words of one pool",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPoolsCmd,
	}
}

func runPoolsCmd(cmd *cobra.Command, args []string) error {
	pools, err := wordlist.DefaultPools()
	if err != nil {
		return fmt.Errorf("failed to load word pools: %w", err)
	}
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		for _, d := range model.Difficulties {
			if _, err := fmt.Fprintf(out, "%s\t%d\n", d, len(pools[d])); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
		return nil
	}
	d, err := model.ParseDifficulty(args[0])
	if err != nil {
		return err
	}
	for _, word := range pools.Words(d) {
		if _, err := fmt.Fprintln(out, word); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# hackertype configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# duration = %d            # Test length in seconds: 15, 30 or 60
# difficulty = %q     # Word pool: "basic" or "advanced"

[log]
# file = ""                # Diagnostic log file (empty = no logs)
# level = %q           # debug, info, warn or error
`,
		model.DefaultDuration,
		model.DefaultDifficulty.String(),
		defaultLogLevel,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
