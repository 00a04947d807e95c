package cmd

import (
	"os"

	"github.com/pencuri-cli/pencuri/color"
	"github.com/pencuri-cli/pencuri/style"
	"github.com/pencuri-cli/pencuri/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type whereTarget struct {
	name     string
	where    func() string
	argLong  string
	argShort mo.Option[string]
	hidden   bool
}

var wherePaths = []*whereTarget{
	{"Config", where.Config, "config", mo.Some("c"), false},
	{"Logs", where.Logs, "logs", mo.Some("l"), false},
	{"Extensions", where.Extensions, "extensions", mo.Some("e"), false},
	{"Ad filter", where.AdFilter, "adfilter", mo.None[string](), true},
	{"Temp", where.Temp, "temp", mo.None[string](), true},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, t := range wherePaths {
		help := t.name + " path"
		if short, ok := t.argShort.Get(); ok {
			whereCmd.Flags().BoolP(t.argLong, short, false, help)
		} else {
			whereCmd.Flags().Bool(t.argLong, false, help)
		}

		if t.hidden {
			lo.Must0(whereCmd.Flags().MarkHidden(t.argLong))
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(wherePaths, func(t *whereTarget, _ int) string {
		return t.argLong
	})...)

	whereCmd.SetOut(os.Stdout)
}

// whereCmd displays the filesystem paths used by the application.
var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Display the filesystem paths used by the application",
	Run: func(cmd *cobra.Command, args []string) {
		if t, ok := lo.Find(wherePaths, func(t *whereTarget) bool {
			return lo.Must(cmd.Flags().GetBool(t.argLong))
		}); ok {
			cmd.Println(t.where())
			return
		}

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		visible := lo.Reject(wherePaths, func(t *whereTarget, _ int) bool {
			return t.hidden
		})

		for i, t := range visible {
			if i > 0 {
				cmd.Println()
			}
			cmd.Printf("%s %s\n", header(t.name+"?"), style.Fg(color.Yellow)("--"+t.argLong))
			cmd.Println(t.where())
		}
	},
}
