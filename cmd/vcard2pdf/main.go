// Copyright Fieber IT, 2026. All rights reserved.

// Package main is the entry point for the vcard2pdf CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the vcard2pdf CLI.
var rootCmd = &cobra.Command{
	Use:   "vcard2pdf",
	Short: "Render vCard contact files into PDF contact sheets",
	Long: `vcard2pdf converts vCard 3.0 files (.vcf) into A4 PDF contact sheets
with a fixed layout: name, organization, labelled phone/email/address/website
rows, social media links, photo, and notes.

The render subcommand converts individual files or a whole directory; inspect
prints the parsed form of a single card for debugging.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./vcard2pdf.yaml or ~/.config/vcard2pdf/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("vcard2pdf")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "vcard2pdf"))
		}
	}

	viper.SetEnvPrefix("VCARD2PDF")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
