package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/piwi3910/advslider/internal/project"
	"github.com/piwi3910/advslider/internal/tui"
)

func newTUICmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Show the sliders in the terminal",
		Long:  `Show the configured sliders in the terminal. Values are saved to the config on exit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runTUI(s)
		},
	}
}

func runTUI(s *session) error {
	m := tui.NewModel(s.config.Sliders, s.log)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("terminal ui failed: %w", err)
	}

	ids := make([]string, len(s.config.Sliders))
	for i, preset := range s.config.Sliders {
		ids[i] = preset.ID
	}
	s.config.Sliders = final.(tui.Model).Presets(ids)
	if err := project.SaveAppConfig(s.configPath, s.config); err != nil {
		s.log.Error(err, "saving slider values failed")
		return err
	}
	return nil
}
