// Package main provides the CLI entry point for docgen.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mem-portfolio/docgen/pkg/docgen"
	"github.com/mem-portfolio/docgen/pkg/docgen/content"
)

var (
	verbose    bool
	contentDir string
	logger     *zap.Logger
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "docgen",
		Short: "Generate the MEM, Inc. memorandum and PPM survey decks",
		Long: `docgen builds the VC financing memorandum (.docx), the PPM survey
presentation and the investor deck (.pptx) from embedded content.`,
		SilenceUsage:      true,
		PersistentPreRunE: setupLogger,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every slide and build step")
	rootCmd.PersistentFlags().StringVar(&contentDir, "content", "", "Directory with content files overriding the embedded ones")

	rootCmd.AddCommand(
		newMemoCmd(),
		newSurveyDeckCmd(),
		newInvestorDeckCmd(),
		newAllCmd(),
		newContentCmd(),
	)
	return rootCmd
}

func setupLogger(cmd *cobra.Command, args []string) error {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	logger = l
	return nil
}

func options() docgen.Options {
	opts := docgen.DefaultOptions()
	opts.ContentDir = contentDir
	opts.Logger = logger
	return opts
}

func report(cmd *cobra.Command, results ...*docgen.Result) {
	out := cmd.OutOrStdout()
	for _, r := range results {
		for _, line := range r.Lines {
			fmt.Fprintf(out, "✓ %s\n", line)
		}
	}
}

func newMemoCmd() *cobra.Command {
	var output string
	var pdf bool

	cmd := &cobra.Command{
		Use:   "memo",
		Short: "Build the VC financing memorandum",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := options()
			opts.MemoPath = output
			opts.PDF = pdf

			res, err := docgen.BuildMemo(cmd.Context(), opts)
			if err != nil {
				return err
			}
			report(cmd, res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default: "+docgen.DefaultMemoFile+")")
	cmd.Flags().BoolVar(&pdf, "pdf", false, "Also write a PDF next to the document")
	return cmd
}

func newSurveyDeckCmd() *cobra.Command {
	var output, input, sheet string

	cmd := &cobra.Command{
		Use:   "survey-deck",
		Short: "Read the survey workbook and build the survey presentation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := options()
			opts.SurveyDeckPath = output
			opts.SurveyPath = input
			opts.Sheet = sheet

			res, err := docgen.BuildSurveyDeck(cmd.Context(), opts)
			if err != nil {
				return err
			}
			report(cmd, res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default: "+docgen.DefaultSurveyDeckFile+")")
	cmd.Flags().StringVarP(&input, "input", "i", docgen.DefaultSurveyFile, "Survey workbook")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Survey worksheet (default: Sheet1)")
	return cmd
}

func newInvestorDeckCmd() *cobra.Command {
	var output, appendixPath string

	cmd := &cobra.Command{
		Use:   "investor-deck",
		Short: "Build the investor deck",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := options()
			opts.InvestorDeckPath = output
			opts.AppendixPath = appendixPath

			res, err := docgen.BuildInvestorDeck(cmd.Context(), opts)
			if err != nil {
				return err
			}
			report(cmd, res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default: "+docgen.DefaultInvestorDeckFile+")")
	cmd.Flags().StringVar(&appendixPath, "appendix", "", "Also write the chart data to this .xlsx file")
	return cmd
}

func newAllCmd() *cobra.Command {
	var outputDir, input string

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Build the memorandum and both presentations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := options()
			opts.OutputDir = outputDir
			opts.SurveyPath = input

			results, err := docgen.BuildAll(cmd.Context(), opts)
			report(cmd, results...)
			return err
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "d", ".", "Directory for the generated files")
	cmd.Flags().StringVarP(&input, "input", "i", docgen.DefaultSurveyFile, "Survey workbook")
	return cmd
}

func newContentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Inspect the embedded content files",
	}

	var force bool
	export := &cobra.Command{
		Use:   "export DIR",
		Short: "Write the embedded content files to DIR for editing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			written, err := content.Export(args[0], force)
			for _, p := range written {
				fmt.Fprintf(cmd.OutOrStdout(), "✓ %s\n", p)
			}
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			return nil
		},
	}
	export.Flags().BoolVar(&force, "force", false, "Overwrite existing files")

	list := &cobra.Command{
		Use:   "list",
		Short: "List the content files and where each is read from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := content.Names()
			if err != nil {
				return err
			}
			src := content.Source{Dir: contentDir}
			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, src.Origin(name))
			}
			return nil
		},
	}

	cmd.AddCommand(export, list)
	return cmd
}
