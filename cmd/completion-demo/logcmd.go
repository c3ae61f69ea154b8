package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/flourish-complete/internal/config"
	"github.com/iw2rmb/flourish-complete/internal/logging"
)

var levelStyles = map[string]lipgloss.Style{
	"debug": lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	"info":  lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
	"warn":  lipgloss.NewStyle().Foreground(lipgloss.Color("192")),
	"error": lipgloss.NewStyle().Foreground(lipgloss.Color("204")),
}

func newLogCmd(root *rootOptions) *cobra.Command {
	var level, file string
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Print the records of a demo log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file == "" {
				cfg, err := config.LoadFrom(root.configPath)
				if err != nil {
					return err
				}
				file = cfg.Log.File
			}
			if file == "" {
				return errors.New("no log file: pass --file or set log.file")
			}

			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("opening log file: %w", err)
			}
			defer f.Close()

			records, err := logging.ReadRecords(f)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range logging.FilterLevel(records, level) {
				fmt.Fprintln(out, formatRecord(r))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&level, "level", "debug", "minimum level to print")
	cmd.Flags().StringVar(&file, "file", "", "log file, defaults to log.file from the config")
	return cmd
}

func formatRecord(r logging.Record) string {
	lvl := strings.ToUpper(fmt.Sprintf("%-5s", r.Level))
	if st, ok := levelStyles[r.Level]; ok {
		lvl = st.Render(lvl)
	}

	keys := make([]string, 0, len(r.Attrs))
	for k := range r.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	if r.Time != "" {
		sb.WriteString(r.Time)
		sb.WriteByte(' ')
	}
	sb.WriteString(lvl)
	sb.WriteByte(' ')
	sb.WriteString(r.Message)
	for _, k := range keys {
		fmt.Fprintf(&sb, " %s=%s", k, r.Attrs[k])
	}
	return sb.String()
}
