/*
	Copyright 2025 Markus Papenbrock
*/

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mpapenbr/f1analysis-go/log"
	analyzeCmd "github.com/mpapenbr/f1analysis-go/pkg/cmd/analyze"
	"github.com/mpapenbr/f1analysis-go/pkg/config"
	"github.com/mpapenbr/f1analysis-go/version"
)

const envPrefix = "F1AN"

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "f1an",
	Short:   "Analysis toolkit for F1 telemetry and timing data",
	Long:    ``,
	Version: version.FullVersion,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return log.InitLogger(config.LogLevel)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.f1an.yml)")

	rootCmd.PersistentFlags().StringVar(&config.SessionFile, "session", "",
		"Path to the session export file")
	rootCmd.PersistentFlags().StringVar(&config.LogLevel, "log-level",
		"info",
		"Sets the log level (zap log level values)")
	rootCmd.PersistentFlags().BoolVar(&config.OutputJSON, "json", false,
		"Print results as JSON instead of a table")
	rootCmd.PersistentFlags().StringVar(&config.RendererPath, "renderer-path", "",
		"Path to an external renderer binary (empty: resolve from PATH)")

	// add commands here
	rootCmd.AddCommand(analyzeCmd.NewFuelCmd())
	rootCmd.AddCommand(analyzeCmd.NewAccelCmd())
	rootCmd.AddCommand(analyzeCmd.NewStintsCmd())
	rootCmd.AddCommand(analyzeCmd.NewCornersCmd())
	rootCmd.AddCommand(analyzeCmd.NewDominanceCmd())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".f1an" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".f1an")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	bindFlags(rootCmd, viper.GetViper())
	for _, cmd := range rootCmd.Commands() {
		bindFlags(cmd, viper.GetViper())
	}
}

// Bind each cobra flag to its associated viper configuration
// (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Environment variables can't have dashes in them, so bind them to their
		// equivalent keys with underscores, e.g. --log-level to F1AN_LOG_LEVEL
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name,
				fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not bind env var %s: %v", f.Name, err)
			}
		}
		// Apply the viper config value to the flag when the flag is not set and viper
		// has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				fmt.Fprintf(os.Stderr, "Could set flag value for %s: %v", f.Name, err)
			}
		}
	})
}
