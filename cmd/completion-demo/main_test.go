package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/flourish-complete/editor"
	"github.com/iw2rmb/flourish-complete/internal/config"
)

func itemIDs(items []editor.CompletionItem) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

func TestWordSupplier_SortsDedupsAndFiltersByPrefix(t *testing.T) {
	s := newWordSupplier([]string{"go", "Goto", "func", "go", "for"})

	assert.Equal(t, []string{"for", "func", "go", "Goto"}, itemIDs(s.Complete("")))
	assert.Equal(t, []string{"go", "Goto"}, itemIDs(s.Complete("GO")))
	assert.Equal(t, []string{"func"}, itemIDs(s.Complete("fu")))
	assert.Empty(t, s.Complete("zz"))
}

func TestEditorConfig_Vertical(t *testing.T) {
	cfg := config.Default()
	cfg.Popup.Metrics = "pixel"
	cfg.Popup.Height = 100

	ec := editorConfig(cfg, []string{"go"}, nil)

	assert.False(t, ec.CompletionView.Horizontal)
	assert.Equal(t, 32, ec.CompletionView.Width)
	assert.Equal(t, 100, ec.CompletionView.Height)
	assert.Equal(t, 8, ec.CompletionView.MaxVisible)
	assert.Nil(t, ec.CompletionView.Header)
	require.NotNil(t, ec.PopupMetrics)
	assert.Equal(t, 22, ec.PopupMetrics.ItemHeight)
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyDown}, ec.CompletionKeyMap.Next))
	assert.Equal(t, defaultText, ec.Text)
	assert.Equal(t, "No results", ec.NoResultsLabel)
}

func TestEditorConfig_HorizontalWithHeader(t *testing.T) {
	cfg := config.Default()
	cfg.Popup.Horizontal = true
	cfg.Popup.Header = "Keywords"
	cfg.Editor.Text = "x"

	ec := editorConfig(cfg, nil, nil)

	assert.True(t, ec.CompletionView.Horizontal)
	assert.Equal(t, 12, ec.CompletionView.Width)
	require.NotNil(t, ec.CompletionView.Header)
	assert.Equal(t, " Keywords", ec.CompletionView.Header.Component.Render(20))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRight}, ec.CompletionKeyMap.Next))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyLeft}, ec.CompletionKeyMap.Prev))
	assert.Equal(t, "x", ec.Text)
}

func update(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(model)
	require.True(t, ok)
	return out
}

func TestModel_TriggerSelectAndStatus(t *testing.T) {
	cfg := config.Default()
	cfg.Editor.Text = "f"
	cfg.Editor.AutoTrigger = false

	m := newModel(cfg, []string{"go", "for", "func"}, nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	assert.Contains(t, ansi.Strip(m.View()), "completion closed")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlAt})
	state := m.editor.CompletionState()
	require.True(t, state.Visible)
	assert.Equal(t, "f", state.Query)
	assert.Equal(t, []string{"for", "func"}, itemIDs(state.Items))
	assert.Equal(t, 0, state.Selected)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.editor.CompletionState().Selected)

	view := ansi.Strip(m.View())
	lines := strings.Split(view, "\n")
	assert.Len(t, lines, 10)
	assert.Contains(t, lines[len(lines)-1], `query "f" | 2 candidates | selected 1`)
	assert.Contains(t, view, "func")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.editor.Completing())
	assert.Equal(t, "func", m.editor.Buffer().Text())
}

func TestModel_CtrlCQuits(t *testing.T) {
	m := newModel(config.Default(), nil, nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestNewModel_DefaultTextParksCaretInBody(t *testing.T) {
	m := newModel(config.Default(), nil, nil)
	b := m.editor.Buffer()
	lines := strings.Split(defaultText, "\n")
	cur := b.Cursor()
	assert.Equal(t, len(lines)-2, cur.Row)
	assert.Equal(t, 1, cur.Col)
}

func TestLoadConfig_AppliesChangedFlagsOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nfile = \"/tmp/from-file.log\"\nlevel = \"warn\"\n"), 0o644))

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--horizontal", "--log-level", "debug"}))

	cfg, err := loadConfig(cmd, rootOptions{
		configPath: path,
		horizontal: true,
		logFile:    "ignored.log",
		logLevel:   "debug",
	})
	require.NoError(t, err)
	assert.True(t, cfg.Popup.Horizontal)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/from-file.log", cfg.Log.File)
}

func TestLoadConfig_RejectsBadLevelFlag(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--log-level", "loud"}))

	_, err := loadConfig(cmd, rootOptions{
		configPath: filepath.Join(t.TempDir(), "missing.toml"),
		logLevel:   "loud",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestLogCmd_PrintsRecordsAtOrAboveLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.log")
	data := strings.Join([]string{
		`time=2026-01-02T03:04:05Z level=debug prefix=complete msg="render popup" width=8`,
		`time=2026-01-02T03:04:06Z level=info prefix=complete msg="starting completion demo" words=25 horizontal=false`,
		`time=2026-01-02T03:04:07Z level=error prefix=complete msg="render failed" err="surface destroyed"`,
	}, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"log", "--file", path, "--level", "info"})
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimRight(ansi.Strip(out.String()), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "2026-01-02T03:04:06Z INFO  starting completion demo horizontal=false words=25", lines[0])
	assert.Equal(t, `2026-01-02T03:04:07Z ERROR render failed err=surface destroyed`, lines[1])
}

func TestLogCmd_RequiresFile(t *testing.T) {
	t.Setenv("FLOURISH_COMPLETE_LOG_FILE", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"log"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no log file")
}

func TestConfigInit_WritesDefaultsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	run := func(args ...string) (string, error) {
		cmd := newRootCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(args)
		err := cmd.Execute()
		return out.String(), err
	}

	out, err := run("config", "init", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "wrote "+path+"\n", out)

	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = run("config", "init", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = run("config", "init", "--config", path, "--force")
	require.NoError(t, err)
}
