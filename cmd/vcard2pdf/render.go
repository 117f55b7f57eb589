package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fieberit/vcard2pdf/internal/labels"
	"github.com/fieberit/vcard2pdf/internal/layout"
	"github.com/fieberit/vcard2pdf/internal/ledger"
	"github.com/fieberit/vcard2pdf/internal/pipeline"
	"github.com/fieberit/vcard2pdf/pkg/types"
)

var renderCmd = &cobra.Command{
	Use:   "render [files...]",
	Short: "Render .vcf files into PDF contact sheets",
	Long: `Render converts vCard files into A4 PDF contact sheets. Pass individual
.vcf files, or use --batch to convert every .vcf file in the source
directory. Files whose output is already up to date are skipped; --force
re-renders them.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().String("source-dir", "", `directory scanned for .vcf files in batch mode (default ".")`)
	renderCmd.Flags().String("out-dir", "", `directory for PDF output (default ".")`)
	renderCmd.Flags().Bool("batch", false, "render every .vcf file in source-dir")
	renderCmd.Flags().Bool("force", false, "re-render files that are up to date")
	renderCmd.Flags().String("locale", "", "built-in label catalog: en or de (default en)")
	renderCmd.Flags().String("labels", "", "YAML file with label overrides")
	renderCmd.Flags().Bool("no-ledger", false, "disable the render ledger (skip by output existence only)")
	renderCmd.Flags().String("copyright", "", "copyright line for the page footer")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	batch, _ := cmd.Flags().GetBool("batch")
	if len(args) == 0 && !batch {
		return fmt.Errorf("provide one or more .vcf files, or --batch to convert a directory")
	}

	cfg := types.RenderConfig{
		SourceDir:  stringSetting(cmd, "source-dir", "source_dir", "."),
		OutDir:     stringSetting(cmd, "out-dir", "out_dir", "."),
		Locale:     stringSetting(cmd, "locale", "locale", ""),
		LabelsFile: stringSetting(cmd, "labels", "labels_file", ""),
		Copyright:  stringSetting(cmd, "copyright", "copyright", ""),
		Force:      boolSetting(cmd, "force", "force"),
		NoLedger:   boolSetting(cmd, "no-ledger", "no_ledger"),
	}

	catalog, err := labels.ForLocale(cfg.Locale)
	if err != nil {
		return err
	}
	if cfg.LabelsFile != "" {
		catalog, err = labels.LoadOverrides(cfg.LabelsFile, catalog)
		if err != nil {
			return err
		}
	}

	paths := args
	if batch {
		paths, err = pipeline.ScanDir(cfg.SourceDir)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			fmt.Fprintf(os.Stderr, "No .vcf files found in %s\n", cfg.SourceDir)
			return nil
		}
	}

	var led pipeline.Ledger
	if !cfg.NoLedger {
		l, err := ledger.Open(cfg.OutDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: render ledger disabled: %v\n", err)
		} else {
			defer l.Close()
			led = l
		}
	}

	renderer := layout.New(layout.Options{
		Labels:    catalog,
		Version:   version,
		Copyright: cfg.Copyright,
	})

	result := pipeline.RenderBatch(renderer, led, paths, cfg, os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed rendering", result.Failed)
	}
	return nil
}

// stringSetting resolves a string setting: an explicitly set flag wins,
// then the viper config/env value, then the fallback.
func stringSetting(cmd *cobra.Command, flag, key, fallback string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}

// boolSetting resolves a bool setting: true when either the flag or the
// viper config/env value is set.
func boolSetting(cmd *cobra.Command, flag, key string) bool {
	if v, _ := cmd.Flags().GetBool(flag); v {
		return true
	}
	return viper.GetBool(key)
}
