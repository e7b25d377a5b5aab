package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/deskcycle/internal/config"
	"github.com/Norgate-AV/deskcycle/internal/hotkey"
)

var hotkeysCmd = &cobra.Command{
	Use:   "hotkeys",
	Short: "Show or change the global hotkeys",
	Args:  cobra.NoArgs,
	RunE:  runHotkeys,
}

func init() {
	hotkeysCmd.Flags().Bool("enable", false, "enable the hotkeys")
	hotkeysCmd.Flags().Bool("disable", false, "disable the hotkeys")
	hotkeysCmd.Flags().Bool("alt", false, "use Shift+Alt instead of Ctrl+Alt")
	hotkeysCmd.Flags().Bool("no-alt", false, "use Ctrl+Alt")

	RootCmd.AddCommand(hotkeysCmd)
}

func runHotkeys(cmd *cobra.Command, _ []string) error {
	path := NewConfigFromFlags(cmd).ConfigPath

	s, err := config.Load(path)
	if err != nil {
		return err
	}

	enable, disable := getBoolFlag(cmd, "enable"), getBoolFlag(cmd, "disable")
	alt, noAlt := getBoolFlag(cmd, "alt"), getBoolFlag(cmd, "no-alt")

	if enable && disable {
		return fmt.Errorf("--enable and --disable cannot be used together")
	}

	if alt && noAlt {
		return fmt.Errorf("--alt and --no-alt cannot be used together")
	}

	changed := enable || disable || alt || noAlt
	if enable || disable {
		s.EnableHotkeys = enable
	}

	if alt || noAlt {
		s.AltModifier = alt
	}

	if changed {
		if err := config.Save(path, s); err != nil {
			return err
		}
	}

	printBindings(cmd.OutOrStdout(), s)
	return nil
}

func printBindings(w io.Writer, s config.Settings) {
	if !s.EnableHotkeys {
		fmt.Fprintln(w, "Hotkeys are disabled")
		return
	}

	for _, b := range hotkey.Bindings(s.AltModifier) {
		fmt.Fprintf(w, "%-18s %s\n", b, b.Action)
	}
}
