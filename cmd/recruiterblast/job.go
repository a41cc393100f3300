package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/recruiter-blast/internal/llm"
	"github.com/jonathan/recruiter-blast/internal/scrape"
)

var jobCmd = &cobra.Command{
	Use:   "job <job-post-url>",
	Short: "Fetch job post details",
	Long: "Fetch the title, description, location, and apply link of a LinkedIn " +
		"job post. With --summarize the description is distilled into structured " +
		"responsibilities, requirements, and highlights via Gemini.",
	Args: cobra.ExactArgs(1),
	RunE: runJob,
}

var jobSummarize bool

func init() {
	jobCmd.Flags().BoolVar(&jobSummarize, "summarize", false, "Summarize the description with Gemini")

	rootCmd.AddCommand(jobCmd)
}

func runJob(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	scraper, err := scrape.NewLinkedInScraper(cfg, args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	post, err := scraper.FetchJobPostDetails(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch job post: %w", err)
	}

	if jobSummarize && post.Description != "" {
		client, err := llm.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return err
		}
		defer client.Close()

		info, err := client.ParseJobDescriptionInfo(ctx, post.Description)
		if err != nil {
			return fmt.Errorf("failed to summarize job description: %w", err)
		}
		info.Apply(&post)
	}

	return printJSON(cmd, post)
}
