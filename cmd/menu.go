package cmd

import (
	"encoding/json"
	"os"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/pencuri-cli/pencuri/catalog"
	"github.com/pencuri-cli/pencuri/color"
	"github.com/pencuri-cli/pencuri/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(menuCmd)

	menuCmd.PersistentFlags().StringP("filter", "f", "", "Keep only labels fuzzy-matching the filter")
	menuCmd.PersistentFlags().BoolP("json", "j", false, "Format the output as a JSON array")
	menuCmd.PersistentFlags().BoolP("raw", "r", false, "Print urls only")

	menuCmd.AddCommand(menuGenresCmd, menuYearsCmd)
	menuCmd.SetOut(os.Stdout)
}

// menuCmd lists the taxonomies of the catalog home page.
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "List the genre and year taxonomies of the catalog",
	Run: func(cmd *cobra.Command, args []string) {
		menu, err := loadSite(cmd).Menu(cmd.Context())
		handleErr(err)

		headerStyle := style.New().Foreground(color.HiBlue).Bold(true).Render
		cmd.Println(headerStyle("Genres:"))
		printMenu(cmd, menu.Genres)
		cmd.Println()
		cmd.Println(headerStyle("Years:"))
		printMenu(cmd, menu.Years)
	},
}

var menuGenresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List genres",
	Run: func(cmd *cobra.Command, args []string) {
		menu, err := loadSite(cmd).Menu(cmd.Context())
		handleErr(err)
		printMenu(cmd, menu.Genres)
	},
}

var menuYearsCmd = &cobra.Command{
	Use:   "years",
	Short: "List release years",
	Run: func(cmd *cobra.Command, args []string) {
		menu, err := loadSite(cmd).Menu(cmd.Context())
		handleErr(err)
		printMenu(cmd, menu.Years)
	},
}

// filterMenu keeps the items whose label fuzzy-matches the filter, ignoring case.
func filterMenu(items []*catalog.MenuItem, filter string) []*catalog.MenuItem {
	if filter == "" {
		return items
	}

	return lo.Filter(items, func(item *catalog.MenuItem, _ int) bool {
		return fuzzy.MatchFold(filter, item.Label)
	})
}

func printMenu(cmd *cobra.Command, items []*catalog.MenuItem) {
	items = filterMenu(items, lo.Must(cmd.Flags().GetString("filter")))

	if lo.Must(cmd.Flags().GetBool("json")) {
		handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(items))
		return
	}

	raw := lo.Must(cmd.Flags().GetBool("raw"))
	for _, item := range items {
		if raw {
			cmd.Println(item.URL)
			continue
		}
		cmd.Printf("%s %s\n", style.Fg(color.Purple)(item.Label), style.Faint(item.URL))
	}
}
