package commands

import (
	"github.com/spf13/cobra"
)

var chaptersCountry string

func init() {
	chaptersCmd.Flags().StringVar(&chaptersCountry, "country", "", "Only list chapters with pilots from this country.")
	rootCmd.AddCommand(chaptersCmd)
}

var chaptersCmd = &cobra.Command{
	Use:   "chapters [--country <country>]",
	Short: "Lists the chapters present on the leaderboard.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		chapters, err := svc.ChaptersByCountry(cmd.Context(), chaptersCountry)
		if err != nil {
			return err
		}
		renderList(stdout, "Chapter", chapters)
		return nil
	},
}
