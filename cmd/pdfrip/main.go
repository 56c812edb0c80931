// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdfrip CLI, an OCR-based
// PDF-to-Markdown converter for documents whose embedded text layer is
// missing or unusable.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdfrip/internal/history"
	"github.com/pdiddy/pdfrip/internal/ocr"
	"github.com/pdiddy/pdfrip/internal/render"
	"github.com/pdiddy/pdfrip/internal/rip"
	"github.com/pdiddy/pdfrip/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command: it performs the conversion itself, with
// version and history as subcommands.
var rootCmd = &cobra.Command{
	Use:   "pdfrip <pdf>",
	Short: "Convert a PDF to Markdown using OCR",
	Long: `pdfrip renders each page of a PDF to an image at a configurable DPI,
runs Tesseract OCR over it, and writes the recovered text to a single
markdown file with one "## Page N" section per page. It is meant for
PDFs whose embedded text layer is missing, corrupted, or non-standard.

Pages are processed strictly in order; the run either writes the
complete output file or nothing at all.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath := args[0]

		output, _ := cmd.Flags().GetString("output")
		opts := rip.Options{
			DPI:           intSetting(cmd, "dpi", "dpi"),
			PagesPerChunk: intSetting(cmd, "pages-per-chunk", "pages_per_chunk"),
		}
		opts.Languages, _ = cmd.Flags().GetStringSlice("lang")
		if !cmd.Flags().Changed("lang") && viper.IsSet("languages") {
			opts.Languages = viper.GetStringSlice("languages")
		}

		outputDir := viper.GetString("output_dir")
		outputPath := rip.ResolveOutputPath(inputPath, output, outputDir)

		engine := ocr.NewTesseractEngine()
		info, err := rip.Run(cmd.Context(), render.Open, engine, inputPath, outputPath, opts, os.Stderr)
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "complete: %s (%d pages in %s)\n",
			info.OutputPath, info.Pages, info.Duration.Round(time.Millisecond))

		noHistory, _ := cmd.Flags().GetBool("no-history")
		if !noHistory && viper.GetBool("history.enabled") {
			recordRun(cmd, info, opts)
		}
		return nil
	},
}

// intSetting resolves an integer option: an explicitly set flag wins,
// then a config-file value, then the flag default.
func intSetting(cmd *cobra.Command, flag, key string) int {
	v, _ := cmd.Flags().GetInt(flag)
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetInt(key)
	}
	return v
}

// recordRun stores a completed run in the history database. History is
// advisory, so failures only produce a warning.
func recordRun(cmd *cobra.Command, info *rip.RunInfo, opts rip.Options) {
	store, err := history.NewStore(types.HistoryConfig{Dir: viper.GetString("history.dir")})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history disabled: %v\n", err)
		return
	}
	defer store.Close()

	rec := types.RunRecord{
		InputPath:     info.InputPath,
		OutputPath:    info.OutputPath,
		Pages:         info.Pages,
		DPI:           opts.DPI,
		PagesPerChunk: opts.PagesPerChunk,
		Languages:     opts.Languages,
		Duration:      info.Duration,
	}
	if err := store.Record(cmd.Context(), rec); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record run: %v\n", err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdfrip.yaml or ~/.config/pdfrip/config.yaml)")

	rootCmd.Flags().StringP("output", "o", "", "output markdown path (default: output/<pdf-name>.md)")
	rootCmd.Flags().IntP("pages-per-chunk", "p", 10, "number of pages per progress update")
	rootCmd.Flags().IntP("dpi", "d", 300, "DPI for rendering pages (higher = better quality but slower)")
	rootCmd.Flags().StringSliceP("lang", "l", nil, "OCR language hint(s), e.g. eng, deu (default: engine default)")
	rootCmd.Flags().Bool("no-history", false, "do not record this run in the history database")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdfrip")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdfrip"))
		}
	}

	viper.SetDefault("output_dir", "output")
	viper.SetDefault("history.dir", ".pdfrip")
	viper.SetDefault("history.enabled", true)

	viper.SetEnvPrefix("PDFRIP")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
