package cli

import (
	"context"
	"fmt"

	"jobmatcher/internal/ats"
	"jobmatcher/internal/common"
	"jobmatcher/internal/types"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score [profile-file] [job-file]",
	Short: "Score a profile against a job description",
	Long: `Score a candidate profile against a single job posting the way an
applicant tracking system would. The command takes two arguments: the
path to a JSON profile file and the path to a JSON job posting file.

The score combines keyword overlap, skill coverage, experience and
education signals into a 0-100 compatibility score with improvement
suggestions.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if scoreConfig.OutputFormat == "" {
			scoreConfig.OutputFormat = cfg.App.DefaultFormat
		}
		format, err := common.NormalizeOutputFormat(scoreConfig.OutputFormat, cfg.App.SupportedFormats)
		if err != nil {
			return err
		}
		scoreConfig.OutputFormat = format
		return nil
	},
	RunE: runScore,
}

var scoreConfig common.CommandConfig

func init() {
	scoreCmd.Flags().StringVarP(&scoreConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	scoreCmd.Flags().StringVar(&scoreConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = scoreCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

type scoreInput struct {
	Profile types.Profile
	Job     types.JobRecord
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	createInput := func(contents []string) (scoreInput, error) {
		if len(contents) != 2 {
			return scoreInput{}, fmt.Errorf("expected 2 file paths, got %d", len(contents))
		}
		profile, err := common.ParseProfile(contents[0])
		if err != nil {
			return scoreInput{}, err
		}
		job, err := common.ParseJob(contents[1])
		if err != nil {
			return scoreInput{}, err
		}
		return scoreInput{Profile: profile, Job: job}, nil
	}

	logDetails := func(input scoreInput, cmdCfg common.CommandConfig) {
		logger.Info("Starting ATS scoring",
			"skill_count", len(input.Profile.Skills),
			"job_title", input.Job.Title,
			"output_format", cmdCfg.OutputFormat)
	}

	scoreOperation := func(ctx context.Context, input scoreInput) (types.ATSScore, error) {
		profile, err := fillProfileSkills(ctx, cfg, logger, input.Profile)
		if err != nil {
			return types.ATSScore{}, err
		}
		return ats.NewScorer(logger).Score(profile, input.Job), nil
	}

	err := common.RunFileCommand(
		cmd.Context(),
		logger,
		scoreConfig,
		args,
		createInput,
		scoreOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to score profile: %w", err)
	}
	logger.Info("ATS scoring completed successfully")
	return nil
}
