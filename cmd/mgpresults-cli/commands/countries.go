package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(countriesCmd)
}

var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "Lists the countries present on the leaderboard.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		run, err := svc.Load(cmd.Context())
		if err != nil {
			return err
		}
		renderList(stdout, "Country", run.Snapshot.Countries())
		return nil
	},
}
