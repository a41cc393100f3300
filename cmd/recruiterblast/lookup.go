package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/recruiter-blast/internal/contact"
	"github.com/jonathan/recruiter-blast/internal/scrape"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <job-post-url>",
	Short: "Resolve a job post into recruiter contacts",
	Long: "Fetch the company behind a LinkedIn job post, search its recruiting " +
		"staff, generate candidate email addresses for each person, and print " +
		"compose links covering every address.",
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

var (
	lookupSubject string
	lookupBody    string
)

func init() {
	lookupCmd.Flags().StringVar(&lookupSubject, "subject", "", "Subject line for the compose links")
	lookupCmd.Flags().StringVar(&lookupBody, "body", "", "Body text for the compose links")

	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	scraper, err := scrape.NewLinkedInScraper(cfg, args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	company, recruiters, err := scraper.FetchCompanyAndRecruiterData(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch company and recruiters: %w", err)
	}

	miner := contact.NewMiner(ctx, cfg)
	report := contact.BuildReport(company, recruiters,
		miner.PublishedEmails(ctx, company.Domain),
		miner.SuggestedFormat(ctx, company.Domain),
		lookupSubject, lookupBody)

	return printJSON(cmd, report)
}
