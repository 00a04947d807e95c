package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/pencuri-cli/pencuri/color"
	"github.com/pencuri-cli/pencuri/config"
	"github.com/pencuri-cli/pencuri/constant"
	"github.com/pencuri-cli/pencuri/filesystem"
	"github.com/pencuri-cli/pencuri/icon"
	"github.com/pencuri-cli/pencuri/style"
	"github.com/pencuri-cli/pencuri/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

func errUnknownKey(key string) error {
	closest := lo.MinBy(lo.Keys(config.Default), func(a string, b string) bool {
		return levenshtein.Distance(key, a) < levenshtein.Distance(key, b)
	})

	return fmt.Errorf(
		"unknown key %s, did you mean %s?",
		style.Fg(color.Red)(key),
		style.Fg(color.Yellow)(closest),
	)
}

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

func configFile() string {
	return filepath.Join(where.Config(), constant.Pencuri+".toml")
}

// writeConfig persists viper's state, creating the file on first use.
func writeConfig() error {
	err := viper.WriteConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfig()
	}
	return err
}

func lookupField(key string) (config.Field, error) {
	field, ok := config.Default[key]
	if !ok {
		return config.Field{}, errUnknownKey(key)
	}
	return field, nil
}

// parseValue converts command line values to the type of the field default.
func parseValue(field config.Field, values []string) (any, error) {
	if len(values) == 0 {
		return nil, errors.New("value is required")
	}

	switch field.Value.(type) {
	case string:
		return strings.Join(values, " "), nil
	case int:
		n, err := strconv.Atoi(values[0])
		if err != nil {
			return nil, fmt.Errorf("invalid integer value: %s", values[0])
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(values[0])
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value: %s", values[0])
		}
		return b, nil
	case []string:
		return values, nil
	default:
		return nil, fmt.Errorf("unsupported type of %s", field.Key)
	}
}

func success(format string, args ...any) {
	fmt.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), fmt.Sprintf(format, args...))
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// configCmd serves as the parent command for managing application configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application configuration settings and defaults",
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Specify the configuration keys to retrieve information for")
	configInfoCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

// configInfoCmd displays metadata and descriptions for configuration fields.
var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display detailed information and descriptions for configuration fields",
	Run: func(cmd *cobra.Command, args []string) {
		keys := lo.Must(cmd.Flags().GetStringSlice("key"))
		if len(keys) == 0 {
			keys = lo.Keys(config.Default)
		}
		slices.Sort(keys)

		fields := make([]*config.Field, len(keys))
		for i, key := range keys {
			field, err := lookupField(key)
			handleErr(err)
			fields[i] = &field
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(fields))
			return
		}

		fmt.Println(strings.Join(lo.Map(fields, func(f *config.Field, _ int) string {
			return f.Pretty()
		}), "\n\n"))
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

// configSetCmd updates the value of a configuration key.
var configSetCmd = &cobra.Command{
	Use:               "set [key] [value...]",
	Short:             "Update the value of a configuration key",
	Example:           "  pencuri config set site.cookies cf_clearance=abc wpdiscuz_hide_bubble_hint=1",
	Args:              cobra.MinimumNArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		field, err := lookupField(args[0])
		handleErr(err)

		v, err := parseValue(field, args[1:])
		handleErr(err)

		viper.Set(field.Key, v)
		handleErr(writeConfig())

		success("set %s to %s", style.Fg(color.Purple)(field.Key), style.Fg(color.Yellow)(fmt.Sprint(v)))
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
}

// configGetCmd prints the current value of a configuration key.
var configGetCmd = &cobra.Command{
	Use:               "get [key]",
	Short:             "Print the current value of a configuration key",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		field, err := lookupField(args[0])
		handleErr(err)

		fmt.Println(viper.Get(field.Key))
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "Overwrite the existing configuration file")
}

// configWriteCmd serializes the current configuration to disk.
var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the current configuration to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		path := configFile()

		if lo.Must(cmd.Flags().GetBool("force")) {
			if exists, _ := filesystem.API().Exists(path); exists {
				handleErr(filesystem.API().Remove(path))
			}
		}

		handleErr(viper.SafeWriteConfig())
		success("wrote config to %s", path)
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}

// configDeleteCmd removes the configuration file.
var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Remove the configuration file",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(filesystem.API().Remove(configFile()))
		success("deleted config")
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)

	configResetCmd.Flags().BoolP("all", "a", false, "Restore every key to its default")
}

// configResetCmd restores configuration keys to their default values.
var configResetCmd = &cobra.Command{
	Use:               "reset [key...]",
	Short:             "Restore configuration keys to their default values",
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		all := lo.Must(cmd.Flags().GetBool("all"))

		switch {
		case all && len(args) > 0:
			handleErr(errors.New("either keys or --all must be given, not both"))
		case all:
			args = lo.Keys(config.Default)
		case len(args) == 0:
			handleErr(errors.New("either keys or --all must be given"))
		}

		for _, key := range args {
			field, err := lookupField(key)
			handleErr(err)
			viper.Set(field.Key, field.Value)
		}

		handleErr(writeConfig())

		if all {
			success("reset all config values")
			return
		}

		for _, key := range args {
			success("reset %s to default value %s",
				style.Fg(color.Purple)(key),
				style.Fg(color.Yellow)(fmt.Sprint(config.Default[key].Value)),
			)
		}
	},
}
