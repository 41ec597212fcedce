package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	resultsCountry string
	resultsChapter string
	resultsJson    bool
)

func init() {
	resultsCmd.Flags().StringVar(&resultsCountry, "country", "", "Only show pilots from this country (name or code).")
	resultsCmd.Flags().StringVar(&resultsChapter, "chapter", "", "Only show pilots whose chapter contains this text.")
	resultsCmd.Flags().BoolVar(&resultsJson, "json", false, "Print the results page as json.")
	rootCmd.AddCommand(resultsCmd)
}

var resultsCmd = &cobra.Command{
	Use:   "results [--country <country>] [--chapter <chapter>] [--json]",
	Short: "Fetches the leaderboard and prints it with national ranks.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		page, err := svc.Page(cmd.Context(), resultsCountry, resultsChapter)
		if resultsJson {
			if writeErr := writeJSON(stdout, page); writeErr != nil {
				return writeErr
			}
			return err
		}
		if err != nil {
			return err
		}

		renderResults(stdout, page.Results)
		if len(page.Results) < page.Total {
			fmt.Fprintf(stdout, "showing %d of %d pilots\n", len(page.Results), page.Total)
		}
		if page.SuggestedCountry != "" {
			fmt.Fprintf(os.Stderr, "no pilots from %q, did you mean %q?\n", page.SelectedCountry, page.SuggestedCountry)
		}
		return nil
	},
}
