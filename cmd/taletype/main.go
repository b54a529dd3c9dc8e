// Package main provides the CLI entrypoint for taletype.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/taletype/taletype/internal/config"
	"github.com/taletype/taletype/internal/layout"
	"github.com/taletype/taletype/internal/model"
	"github.com/taletype/taletype/internal/progress"
	"github.com/taletype/taletype/internal/stats"
	"github.com/taletype/taletype/internal/statsui"
	"github.com/taletype/taletype/internal/story"
	"github.com/taletype/taletype/internal/store"
	"github.com/taletype/taletype/internal/tui"
)

const defaultLayout = "qwerty"

var (
	typeLayout       string
	typeProgressPath string
	typeHideKeyboard bool

	statsStory string
	statsSince string
	statsLast  int
	statsPlain bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "taletype <story.txt>",
		Short:         "TUI typing tutor for reading stories",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTypeCmd,
	}

	rootCmd.Flags().StringVar(&typeLayout, "layout", defaultLayout, "keyboard layout ("+strings.Join(layout.Names(), "|")+")")
	rootCmd.Flags().StringVar(&typeProgressPath, "progress", "", "progress file path (default: <story>.progress.toml)")
	rootCmd.Flags().BoolVar(&typeHideKeyboard, "hide-keyboard", false, "start with the keyboard panel hidden")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

func runTypeCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "layout", &typeLayout, fileCfg.Session.Layout)
	showKeyboard := !typeHideKeyboard
	if !cmd.Flags().Changed("hide-keyboard") && fileCfg.Session.Keyboard != nil {
		showKeyboard = *fileCfg.Session.Keyboard
	}

	layoutID, ok := layout.ParseID(typeLayout)
	if !ok {
		return fmt.Errorf("unknown layout %q (available: %s)", typeLayout, strings.Join(layout.Names(), ", "))
	}

	storyPath := args[0]
	tale, err := story.Load(storyPath)
	if err != nil {
		return err
	}

	progressPath := typeProgressPath
	if progressPath == "" {
		progressPath = progress.DefaultPath(storyPath)
	}
	chars, err := progress.Load(progressPath)
	if err != nil {
		return err
	}
	if chars > tale.Len() {
		return fmt.Errorf("progress file holds %d chars but story has %d", chars, tale.Len())
	}

	// Session history is best-effort; a broken database must not block typing.
	var st *store.Store
	if opened, err := store.Open(config.DefaultDBPath()); err != nil {
		logErrf("failed to open session db: %v\n", err)
	} else {
		st = opened
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close session db: %v\n", cerr)
			}
		}()
	}

	cfg := model.Config{
		StoryPath:    storyPath,
		ShowKeyboard: showKeyboard,
	}
	m := tui.NewModel(cfg, tale, layoutID, chars)
	program := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	final, ok := finalModel.(*tui.Model)
	if !ok || !final.Finished() {
		return nil
	}
	if err := progress.Save(progressPath, final.Cursor()); err != nil {
		return err
	}
	if sess, ok := final.Session(); ok && st != nil {
		if _, err := st.InsertSession(context.Background(), sess); err != nil {
			logErrf("failed to save session: %v\n", err)
		}
	}
	return nil
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

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show session history",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsStory, "story", "", "filter by story path")
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N sessions")
	cmd.Flags().BoolVar(&statsPlain, "plain", false, "print to stdout instead of the TUI")
	return cmd
}

func runStatsCmd(_ *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}

	cfg := model.StatsConfig{
		Story: statsStory,
		Since: sinceTime,
		Last:  statsLast,
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	if statsPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		return runPlainStats(st, cfg)
	}

	ui := statsui.NewModel(st, cfg)
	program := tea.NewProgram(ui, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
	}
	return nil
}

func runPlainStats(st *store.Store, cfg model.StatsConfig) error {
	sessions, err := st.ListSessions(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}
	if cfg.Last > 0 && len(sessions) > cfg.Last {
		sessions = sessions[len(sessions)-cfg.Last:]
	}
	if err := stats.RenderSummary(os.Stdout, sessions); err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}
	width := 80
	if cols, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && cols > 0 {
		width = cols
	}
	if err := stats.RenderSparkline(os.Stdout, sessions, width-12); err != nil {
		return fmt.Errorf("failed to render sparkline: %w", err)
	}
	if err := stats.RenderSessionTable(os.Stdout, sessions); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
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

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# taletype configuration
# Uncomment a value to enable it. CLI flags override config values.

[session]
# layout = %q        # Keyboard layout (%s)
# keyboard = true    # Show the on-screen keyboard panel
`,
		defaultLayout,
		strings.Join(layout.Names(), "|"),
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
