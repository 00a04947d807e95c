package cmd

import (
	"fmt"
	"os"

	"github.com/pencuri-cli/pencuri/icon"
	"github.com/pencuri-cli/pencuri/player"
	"github.com/pencuri-cli/pencuri/util"
	"github.com/pencuri-cli/pencuri/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget defines a filesystem resource eligible for cleanup.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	clear    func() error
}

var clearTargets = []clearTarget{
	{"Debug log", "logs", mo.Some("l"), func() error {
		return util.Delete(where.LogFile())
	}},
	{"Browser profiles", "temp", mo.Some("t"), func() error {
		// profiles of running browsers are kept
		return player.CleanProfiles(where.Temp())
	}},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

// clearCmd removes temporary application artifacts.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the debug log and temporary browser profiles",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			erase := util.PrintErasable(os.Stdout, fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			err := target.clear()
			erase()
			if err != nil && !os.IsNotExist(err) {
				handleErr(err)
			}
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), target.name)
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
