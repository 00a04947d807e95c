package cmd

import (
	"os"

	"github.com/pencuri-cli/pencuri/color"
	"github.com/pencuri-cli/pencuri/provider"
	"github.com/pencuri-cli/pencuri/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sitesCmd)

	sitesCmd.Flags().BoolP("raw", "r", false, "Print ids only")
	sitesCmd.SetOut(os.Stdout)
}

// sitesCmd displays the registered catalog sites.
var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "Display the registered catalog sites",
	Run: func(cmd *cobra.Command, args []string) {
		raw := lo.Must(cmd.Flags().GetBool("raw"))
		def := provider.Default()

		for _, p := range provider.Builtins() {
			if raw {
				cmd.Println(p.ID)
				continue
			}

			line := style.Fg(color.Purple)(p.ID) + " " + p.Name
			if p.ID == def.ID {
				line += " " + style.Faint("(default)")
			}
			cmd.Println(line)
		}
	},
}
