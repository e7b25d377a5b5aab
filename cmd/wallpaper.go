package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/deskcycle/internal/config"
)

// wallpaperCmd edits the wallpaper list. A running instance picks the change
// up through its settings watcher.
var wallpaperCmd = &cobra.Command{
	Use:   "wallpaper",
	Short: "Manage the wallpaper list (desktop N uses entry N modulo the list length)",
}

var wallpaperListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the wallpaper list",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := config.Load(NewConfigFromFlags(cmd).ConfigPath)
		if err != nil {
			return err
		}

		printWallpapers(cmd.OutOrStdout(), s.Wallpapers)
		return nil
	},
}

var wallpaperAddCmd = &cobra.Command{
	Use:   "add <file>...",
	Short: "Append one or more images",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateSettings(cmd, func(s *config.Settings) error {
			for _, a := range args {
				if !config.IsImage(a) {
					fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s does not look like an image\n", a)
				}
			}

			return s.AddWallpapers(args...)
		})
	},
}

var wallpaperRemoveCmd = &cobra.Command{
	Use:   "remove <position>",
	Short: "Remove the image at a 1-based position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := parsePosition(args[0])
		if err != nil {
			return err
		}

		return updateSettings(cmd, func(s *config.Settings) error {
			return s.RemoveWallpaper(i)
		})
	},
}

var wallpaperUpCmd = &cobra.Command{
	Use:   "up <position>",
	Short: "Move an image one place earlier (the first wraps to the end)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return moveWallpaper(cmd, args[0], (*config.Settings).MoveWallpaperUp)
	},
}

var wallpaperDownCmd = &cobra.Command{
	Use:   "down <position>",
	Short: "Move an image one place later (the last wraps to the start)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return moveWallpaper(cmd, args[0], (*config.Settings).MoveWallpaperDown)
	},
}

func init() {
	wallpaperCmd.AddCommand(wallpaperListCmd, wallpaperAddCmd, wallpaperRemoveCmd, wallpaperUpCmd, wallpaperDownCmd)
	RootCmd.AddCommand(wallpaperCmd)
}

func moveWallpaper(cmd *cobra.Command, arg string, move func(*config.Settings, int) (int, error)) error {
	i, err := parsePosition(arg)
	if err != nil {
		return err
	}

	return updateSettings(cmd, func(s *config.Settings) error {
		target, err := move(s, i)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Moved %d to %d\n", i+1, target+1)
		return nil
	})
}

// updateSettings loads, mutates and saves the settings file, then prints the list
func updateSettings(cmd *cobra.Command, mutate func(*config.Settings) error) error {
	path := NewConfigFromFlags(cmd).ConfigPath

	s, err := config.Load(path)
	if err != nil {
		return err
	}

	if err := mutate(&s); err != nil {
		return err
	}

	if err := config.Save(path, s); err != nil {
		return err
	}

	printWallpapers(cmd.OutOrStdout(), s.Wallpapers)
	return nil
}

// parsePosition converts a 1-based position argument to an index
func parsePosition(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid position %q: must be a number from 1", arg)
	}

	return n - 1, nil
}

func printWallpapers(w io.Writer, wallpapers []string) {
	if len(wallpapers) == 0 {
		fmt.Fprintln(w, "No wallpapers configured")
		return
	}

	for i, p := range wallpapers {
		fmt.Fprintf(w, "%3d  %s\n", i+1, p)
	}
}
