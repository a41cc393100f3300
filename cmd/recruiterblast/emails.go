package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/recruiter-blast/internal/email"
)

var emailsCmd = &cobra.Command{
	Use:   "emails",
	Short: "Generate candidate email addresses for a person",
	Long: "Generate the candidate email address permutations for a first and " +
		"last name at a company domain.",
	RunE: runEmails,
}

var (
	emailsFirst  string
	emailsLast   string
	emailsDomain string
)

func init() {
	emailsCmd.Flags().StringVar(&emailsFirst, "first", "", "First name (required)")
	emailsCmd.Flags().StringVar(&emailsLast, "last", "", "Last name (required)")
	emailsCmd.Flags().StringVar(&emailsDomain, "domain", "", "Company domain, e.g. gitlab.com (required)")
	_ = emailsCmd.MarkFlagRequired("first")
	_ = emailsCmd.MarkFlagRequired("last")
	_ = emailsCmd.MarkFlagRequired("domain")

	rootCmd.AddCommand(emailsCmd)
}

func runEmails(cmd *cobra.Command, _ []string) error {
	emails, err := email.Permutations(emailsFirst, emailsLast, emailsDomain)
	if err != nil {
		return err
	}
	return printJSON(cmd, map[string]any{"emails": emails})
}
