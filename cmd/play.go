package cmd

import (
	"fmt"

	"github.com/pencuri-cli/pencuri/color"
	"github.com/pencuri-cli/pencuri/icon"
	"github.com/pencuri-cli/pencuri/player"
	"github.com/pencuri-cli/pencuri/style"
	"github.com/pencuri-cli/pencuri/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().BoolP("page", "p", false, "Treat the url as a movie or episode page and play one of its sources")
	playCmd.Flags().IntP("server", "n", 1, "Source number to play when --page is set (starting from 1)")
}

// playCmd hands a url to the playback tiers.
var playCmd = &cobra.Command{
	Use:   "play [url]",
	Short: "Open a source url, or a source of a catalog page, with the best available player",
	Args:  cobra.ExactArgs(1),
	Example: `  pencuri play https://embed.example/e/abc
  pencuri play --page --server 2 https://example.com/movie-title/`,
	Run: func(cmd *cobra.Command, args []string) {
		link := args[0]

		if lo.Must(cmd.Flags().GetBool("page")) {
			sources, err := loadSite(cmd).Sources(cmd.Context(), link)
			handleErr(err)

			server := lo.Must(cmd.Flags().GetInt("server"))
			if server < 1 || server > len(sources) {
				handleErr(fmt.Errorf("server %d out of range, the page has %s", server, util.Quantify(len(sources), "source", "sources")))
			}

			source := sources[server-1]
			link = source.URL
			fmt.Printf("%s %s %s\n", icon.Get(icon.Link), style.Fg(color.Purple)(source.Label), style.Faint(link))
		}

		handleErr(player.New().Play(cmd.Context(), link))
		fmt.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Play)), "Opening player...")
	},
}
