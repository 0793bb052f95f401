package cli

import (
	"context"
	"fmt"

	"jobmatcher/internal/analytics"
	"jobmatcher/internal/common"
	"jobmatcher/internal/types"

	"github.com/spf13/cobra"
)

var insightsCmd = &cobra.Command{
	Use:   "insights [jobs-file]",
	Short: "Aggregate market insights over a job corpus",
	Long: `Aggregate market insights over a corpus of job postings. The command
takes one argument: the path to a JSON file holding an array of job
postings.

The insights cover in-demand skills, pooled salary statistics, and the
distribution of postings across locations and categories. Use --charts
to emit flattened label and value series ready for plotting instead.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if insightsConfig.OutputFormat == "" {
			insightsConfig.OutputFormat = cfg.App.DefaultFormat
		}
		format, err := common.NormalizeOutputFormat(insightsConfig.OutputFormat, cfg.App.SupportedFormats)
		if err != nil {
			return err
		}
		insightsConfig.OutputFormat = format
		return nil
	},
	RunE: runInsights,
}

var (
	insightsConfig common.CommandConfig
	insightsCharts bool
)

func init() {
	insightsCmd.Flags().StringVarP(&insightsConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	insightsCmd.Flags().StringVar(&insightsConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	insightsCmd.Flags().BoolVar(&insightsCharts, "charts", false, "Emit chart series instead of the insights summary")

	// Add completion for format flag
	_ = insightsCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runInsights(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	createInput := func(contents []string) ([]types.JobRecord, error) {
		if len(contents) != 1 {
			return nil, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return common.ParseJobs(contents[0])
	}

	logDetails := func(jobs []types.JobRecord, cmdCfg common.CommandConfig) {
		logger.Info("Starting market insights aggregation",
			"job_count", len(jobs),
			"charts", insightsCharts,
			"output_format", cmdCfg.OutputFormat)
	}

	insightsOperation := func(ctx context.Context, jobs []types.JobRecord) (any, error) {
		if insightsCharts {
			return analytics.PrepareChartData(jobs, nil), nil
		}
		return analytics.Insights(jobs), nil
	}

	err := common.RunFileCommand(
		cmd.Context(),
		logger,
		insightsConfig,
		args,
		createInput,
		insightsOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to aggregate insights: %w", err)
	}
	logger.Info("Market insights aggregation completed successfully")
	return nil
}
