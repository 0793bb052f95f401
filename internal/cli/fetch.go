package cli

import (
	"fmt"

	"jobmatcher/internal/common"
	"jobmatcher/internal/jobsource"

	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [query]",
	Short: "Fetch job postings from the job search API",
	Long: `Fetch job postings matching a search query from the configured job
search API and write them out as a JSON corpus. The output can be fed
straight into the recommend and insights commands.

Credentials are read from the jobsource section of the configuration
(JOBMATCHER_JOBSOURCE_APPID and JOBMATCHER_JOBSOURCE_APPKEY).`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

var (
	fetchOutput    string
	fetchResults   int
	fetchPage      int
	fetchSalaryMin float64
	fetchSalaryMax float64
)

func init() {
	fetchCmd.Flags().StringVarP(&fetchOutput, "output", "o", "", "Output file path (default: stdout)")
	fetchCmd.Flags().IntVarP(&fetchResults, "results", "r", 20, "Number of results to fetch")
	fetchCmd.Flags().IntVar(&fetchPage, "page", 1, "Result page to fetch")
	fetchCmd.Flags().Float64Var(&fetchSalaryMin, "salary-min", 0, "Minimum salary filter")
	fetchCmd.Flags().Float64Var(&fetchSalaryMax, "salary-max", 0, "Maximum salary filter")
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	client, err := jobsource.NewClient(jobsource.Config{
		BaseURL:           cfg.JobSource.BaseURL,
		AppID:             cfg.JobSource.AppID,
		AppKey:            cfg.JobSource.AppKey,
		Country:           cfg.JobSource.Country,
		Timeout:           cfg.JobSource.Timeout,
		RequestsPerSecond: cfg.JobSource.RequestsPerSecond,
		Burst:             cfg.JobSource.Burst,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to create job source client: %w", err)
	}

	logger.Info("Fetching jobs",
		"query", args[0],
		"results", fetchResults,
		"page", fetchPage)

	jobs, err := client.Search(cmd.Context(), jobsource.SearchQuery{
		What:           args[0],
		SalaryMin:      fetchSalaryMin,
		SalaryMax:      fetchSalaryMax,
		ResultsPerPage: fetchResults,
		Page:           fetchPage,
	})
	if err != nil {
		return fmt.Errorf("failed to fetch jobs: %w", err)
	}

	store := jobsource.NewStore()
	store.Put(jobs)
	logger.Info("Jobs fetched", "count", store.Len())

	outputHandler := common.NewOutputHandler(logger)
	return outputHandler.HandleOutput(store.Jobs(), common.CommandConfig{
		OutputFile:   fetchOutput,
		OutputFormat: "json",
	})
}
