package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/piwi3910/advslider/internal/ui"
)

func newGUICmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the slider demo window",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runGUI(s)
		},
	}
}

func runGUI(s *session) error {
	application := app.NewWithID("com.piwi3910.advslider")
	window := application.NewWindow("AdvSlider - Advanced Slider Demo")

	appUI := ui.NewApp(application, window, s.config, s.configPath, s.log)
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(s.config.WindowWidth, s.config.WindowHeight))
	window.CenterOnScreen()
	window.SetCloseIntercept(func() {
		appUI.SaveState()
		window.Close()
	})

	s.log.Info("starting window")
	window.ShowAndRun()
	return nil
}
