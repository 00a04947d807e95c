package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/pencuri-cli/pencuri/color"
	"github.com/pencuri-cli/pencuri/icon"
	"github.com/pencuri-cli/pencuri/network"
	"github.com/pencuri-cli/pencuri/player"
	"github.com/pencuri-cli/pencuri/style"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

// checkCmd reports whether the catalog site answers and which players can run.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the catalog site connection and the available players",
	Run: func(cmd *cobra.Command, args []string) {
		fetcher, err := network.NewFromConfig()
		handleErr(err)

		var lines []string
		ok := func(s string) string { return style.Fg(color.Green)(icon.Get(icon.Success)) + " " + s }
		bad := func(s string) string { return style.Fg(color.Red)(icon.Get(icon.Fail)) + " " + s }

		site := fetcher.Site().String()
		page, err := fetcher.Fetch(cmd.Context(), site)
		switch {
		case err == nil:
			lines = append(lines, ok(fmt.Sprintf("%s answered with %q", site, page.Title)))
		case errors.Is(err, network.ErrChallenge):
			lines = append(lines, bad(site+" shows a challenge page, set site.cookies"))
		default:
			lines = append(lines, bad(err.Error()))
		}

		for _, tier := range player.New().Tiers {
			if tier.Available() {
				lines = append(lines, ok(tier.Name()+" is available"))
			} else {
				lines = append(lines, bad(tier.Name()+" is not available"))
			}
		}

		printReport(lines...)
	},
}

func printReport(lines ...string) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.AccentColor).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.AccentColor).Render(icon.Get(icon.Shield) + " Health check")
	body := style.New().Foreground(style.Text).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			body,
		),
	))
}
