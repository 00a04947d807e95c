package cmd

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"strconv"

	"github.com/pencuri-cli/pencuri/filesystem"
	"github.com/pencuri-cli/pencuri/inline"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("query", "q", "", "The search query to run against the catalog")
	inlineCmd.Flags().StringP("url", "u", "", "A listing page (genre, year, search) to read instead of searching")
	inlineCmd.Flags().StringP("entry", "e", "", "Criteria for selecting an entry from the listing")
	inlineCmd.Flags().StringP("season", "s", "", "Criteria for selecting seasons of a picked series")
	inlineCmd.Flags().StringP("episodes", "E", "", "Criteria for selecting episodes of the picked seasons")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().BoolP("sources", "p", false, "Resolve the player sources of the picked movie or episodes")
	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	inlineCmd.MarkFlagsMutuallyExclusive("query", "url")
	inlineCmd.MarkFlagsOneRequired("query", "url")
}

// inlineCmd executes the application in non-interactive, scriptable inline mode.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Execute the application in non-interactive, scriptable inline mode",
	Long: `Initialize the application for automated execution and data extraction using inline mode.

Entry selectors:
  first - first entry in the listing
  last - last entry in the listing
  exact - entry whose title equals the query (case-insensitive)
  [number] - select entry by its id (starting from 1)

Season selectors:
  first, last, all or [number] (starting from 1)

Episode selectors:
  first - first episode in the list
  last - last episode in the list
  all - all episodes in the list
  [number] - select episode by position (starting from 1)
  [from]-[to] - select episodes by inclusive range
  @[substring]@ - select episodes by label substring

Without an entry selector the listing itself is printed.`,
	Example: `  pencuri inline -q "avatar" -e first -p
  pencuri inline -u https://example.com/genre/action/ -j
  pencuri inline -q "the office" -e exact -s 2 -E 1-3 -p -j`,
	PreRun: func(cmd *cobra.Command, args []string) {
		asJson := lo.Must(cmd.Flags().GetBool("json"))
		sources := lo.Must(cmd.Flags().GetBool("sources"))

		if !asJson && sources && !cmd.Flags().Changed("entry") {
			handleErr(errors.New("resolving sources requires an entry selector"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		query := lo.Must(cmd.Flags().GetString("query"))

		var (
			writer io.Writer = os.Stdout
			err    error
		)
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			var f io.WriteCloser
			f, err = filesystem.API().Create(output)
			handleErr(err)
			defer f.Close()
			writer = f
		}

		entryPicker := mo.None[inline.EntryPicker]()
		if flag := lo.Must(cmd.Flags().GetString("entry")); flag != "" {
			kind, value := flag, query
			if _, err := strconv.Atoi(flag); err == nil {
				kind, value = "index", flag
			}

			fn, err := inline.ParseEntryPicker(kind, value)
			handleErr(err)
			entryPicker = mo.Some(fn)
		}

		seasonPicker := mo.None[inline.SeasonPicker]()
		if flag := lo.Must(cmd.Flags().GetString("season")); flag != "" {
			fn, err := inline.ParseSeasonPicker(flag)
			handleErr(err)
			seasonPicker = mo.Some(fn)
		}

		episodesFilter := mo.None[inline.EpisodesFilter]()
		if flag := lo.Must(cmd.Flags().GetString("episodes")); flag != "" {
			fn, err := inline.ParseEpisodesFilter(flag)
			handleErr(err)
			episodesFilter = mo.Some(fn)
		}

		options := &inline.Options{
			Out:            writer,
			Site:           loadSite(cmd),
			Query:          query,
			URL:            lo.Must(cmd.Flags().GetString("url")),
			EntryPicker:    entryPicker,
			SeasonPicker:   seasonPicker,
			EpisodesFilter: episodesFilter,
			Sources:        lo.Must(cmd.Flags().GetBool("sources")),
			Json:           lo.Must(cmd.Flags().GetBool("json")),
		}

		handleErr(inline.Run(cmd.Context(), options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

// inlineSchemaCmd generates the JSON schema of the structured inline output.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of the structured inline mode output",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(json.NewEncoder(os.Stdout).Encode(inline.Schema()))
	},
}
