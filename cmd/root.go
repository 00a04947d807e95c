// Package cmd implements the command-line interface for pencuri.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/pencuri-cli/pencuri/catalog"
	"github.com/pencuri-cli/pencuri/color"
	"github.com/pencuri-cli/pencuri/constant"
	"github.com/pencuri-cli/pencuri/icon"
	"github.com/pencuri-cli/pencuri/key"
	"github.com/pencuri-cli/pencuri/log"
	"github.com/pencuri-cli/pencuri/mini"
	"github.com/pencuri-cli/pencuri/player"
	"github.com/pencuri-cli/pencuri/provider"
	"github.com/pencuri-cli/pencuri/style"
	"github.com/pencuri-cli/pencuri/version"
	"github.com/pencuri-cli/pencuri/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("site", "S", "", "Catalog site to scrape, by name or id")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("site", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(provider.Builtins(), func(p *provider.Provider, _ int) string {
			return p.ID
		}), cobra.ShellCompDirectiveNoFileComp
	}))

	rootCmd.PersistentFlags().StringP("base-url", "B", "", "Override the base URL of the catalog site")
	lo.Must0(viper.BindPFlag(key.SiteBaseURL, rootCmd.PersistentFlags().Lookup("base-url")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify(cmd.Context(), os.Stdout)
	})
}

// rootCmd defines the entry point for the pencuri application.
var rootCmd = &cobra.Command{
	Use:   constant.Pencuri,
	Short: "A minimalist command-line interface for movie and series discovery and playback",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A minimalist command-line interface for movie and series discovery and playback"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.SetContext(cmd.Context())
			versionCmd.Run(versionCmd, args)
			return
		}

		err := mini.Run(cmd.Context(), &mini.Options{
			Site: loadSite(cmd),
			In:   os.Stdin,
			Out:  os.Stdout,
		})
		handleErr(err)
	},
}

// loadSite creates the site selected by the --site flag, or the default one.
func loadSite(cmd *cobra.Command) catalog.Site {
	p := provider.Default()

	if name := lo.Must(cmd.Flags().GetString("site")); name != "" {
		var ok bool
		if p, ok = provider.Get(name); !ok {
			handleErr(fmt.Errorf("site not found: %s", name))
		}
	}

	site, err := p.CreateSite()
	handleErr(err)
	return site
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	// Profiles of browsers that have since exited are stale.
	go func() {
		_ = player.CleanProfiles(where.Temp())
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err == nil {
		return
	}

	log.Error(err)

	msg := strings.Trim(err.Error(), " \n")
	if errors.Is(err, catalog.ErrEmpty) {
		msg = "No results."
	}

	_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), msg)
	os.Exit(1)
}
