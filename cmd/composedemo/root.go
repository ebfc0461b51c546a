package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jdhuntington/react-compose/internal/logger"
	"github.com/jdhuntington/react-compose/internal/tui"
	"github.com/jdhuntington/react-compose/pkg/theme"
)

type rootFlags struct {
	themeName      string
	themeFile      string
	verbose        bool
	nonInteractive bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "composedemo",
		Short:         "Render a gallery of themed, composed components",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.themeName, "theme", "default", "Built-in theme to start with (default, dark)")
	cmd.PersistentFlags().StringVar(&flags.themeFile, "theme-file", "", "YAML theme file overriding --theme")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.nonInteractive, "non-interactive", false, "Print the gallery once and exit")

	return cmd
}

func runGallery(flags *rootFlags) error {
	level := "warn"
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true})
	if err != nil {
		return err
	}
	setComposerLogger(log)

	start, err := loadStartTheme(flags)
	if err != nil {
		return err
	}

	themes := galleryThemes(start)
	model := tui.NewModel(themes)

	if flags.nonInteractive || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(tui.Gallery(model.CurrentTheme().Name))
		return nil
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

func loadStartTheme(flags *rootFlags) (*theme.Theme, error) {
	if flags.themeFile != "" {
		return theme.Load(flags.themeFile)
	}
	return theme.Named(flags.themeName)
}

// galleryThemes places the requested theme first, followed by the other
// built-ins for cycling.
func galleryThemes(start *theme.Theme) []*theme.Theme {
	themes := []*theme.Theme{start}
	for _, builtin := range []*theme.Theme{theme.Default(), theme.Dark()} {
		if builtin.Name != start.Name {
			themes = append(themes, builtin)
		}
	}
	return themes
}
