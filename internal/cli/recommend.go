package cli

import (
	"context"
	"fmt"
	"strings"

	"jobmatcher/internal/common"
	"jobmatcher/internal/config"
	"jobmatcher/internal/errors"
	"jobmatcher/internal/extraction"
	"jobmatcher/internal/matching"
	"jobmatcher/internal/types"

	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend [profile-file] [jobs-file]",
	Short: "Recommend jobs for a candidate profile",
	Long: `Recommend the best matching jobs for a candidate profile.
The command takes two arguments: the path to a JSON profile file and the
path to a JSON file holding an array of job postings. Jobs are ranked by
TF-IDF similarity between the profile and each posting, and each
recommendation lists the skills the posting asks for that the profile
does not yet have.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if recommendConfig.OutputFormat == "" {
			recommendConfig.OutputFormat = cfg.App.DefaultFormat
		}
		format, err := common.NormalizeOutputFormat(recommendConfig.OutputFormat, cfg.App.SupportedFormats)
		if err != nil {
			return err
		}
		recommendConfig.OutputFormat = format
		return common.ValidateTopN(recommendTopN, cfg.Server.MaxJobsPerRequest)
	},
	RunE: runRecommend,
}

var (
	recommendConfig common.CommandConfig
	recommendTopN   int
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	recommendCmd.Flags().StringVar(&recommendConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	recommendCmd.Flags().IntVarP(&recommendTopN, "top", "n", 0, "Number of recommendations to return (default from config)")

	// Add completion for format flag
	_ = recommendCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

type recommendInput struct {
	Profile types.Profile
	Jobs    []types.JobRecord
}

func runRecommend(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	topN := recommendTopN
	if topN <= 0 {
		topN = cfg.Matching.TopN
	}

	createInput := func(contents []string) (recommendInput, error) {
		if len(contents) != 2 {
			return recommendInput{}, fmt.Errorf("expected 2 file paths, got %d", len(contents))
		}
		profile, err := common.ParseProfile(contents[0])
		if err != nil {
			return recommendInput{}, err
		}
		jobs, err := common.ParseJobs(contents[1])
		if err != nil {
			return recommendInput{}, err
		}
		return recommendInput{Profile: profile, Jobs: jobs}, nil
	}

	logDetails := func(input recommendInput, cmdCfg common.CommandConfig) {
		logger.Info("Starting job recommendation",
			"skill_count", len(input.Profile.Skills),
			"job_count", len(input.Jobs),
			"top_n", topN,
			"output_format", cmdCfg.OutputFormat)
	}

	recommendOperation := func(ctx context.Context, input recommendInput) ([]types.Recommendation, error) {
		profile, err := fillProfileSkills(ctx, cfg, logger, input.Profile)
		if err != nil {
			return nil, err
		}
		return matching.NewRecommender(logger).Recommend(profile, input.Jobs, topN), nil
	}

	err := common.RunFileCommand(
		cmd.Context(),
		logger,
		recommendConfig,
		args,
		createInput,
		recommendOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to recommend jobs: %w", err)
	}
	logger.Info("Job recommendation completed successfully")
	return nil
}

// fillProfileSkills runs the configured extractor over the profile's
// free text when no skill list was provided.
func fillProfileSkills(ctx context.Context, cfg *config.Config, logger *errors.Logger, profile types.Profile) (types.Profile, error) {
	if len(profile.Skills) > 0 {
		return profile, nil
	}

	text := strings.TrimSpace(profile.Experience + "\n" + profile.Education)
	if text == "" {
		return profile, nil
	}

	extractor, err := extraction.NewExtractor(&cfg.Extractor, logger)
	if err != nil {
		return profile, err
	}
	defer func() {
		if closeErr := extractor.Close(); closeErr != nil {
			logger.LogError(closeErr, "Failed to close extractor")
		}
	}()

	skills, err := extractor.ExtractSkills(ctx, text)
	if err != nil {
		return profile, err
	}
	profile.Skills = skills
	return profile, nil
}
