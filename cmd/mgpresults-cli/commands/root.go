package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"mgpresults/internal/components/chrono"
	"mgpresults/internal/components/telemetry"
	"mgpresults/internal/leaderboard"
	"mgpresults/internal/scrapers/multigp"
	"mgpresults/internal/service"
	"mgpresults/lib/restyutil"

	"github.com/spf13/cobra"
)

var (
	sourceUrl string
	timeout   time.Duration
	verbose   bool
	dumpDir   string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&sourceUrl, "url", multigp.DefaultResultsUrl, "The season results page to read.")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "How long to wait for the results page.")
	rootCmd.PersistentFlags().StringVar(&dumpDir, "dump", "", "Write every http exchange to a new run directory inside this directory.")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging.")
}

var rootCmd = &cobra.Command{
	Use:   "mgpresults-cli",
	Short: "mgpresults-cli shows the MultiGP season leaderboard with national ranks.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(verbose)
	},
	SilenceUsage: true,
}

func newService() (service.Service, error) {
	tel := telemetry.SlogAPI{}

	opts := multigp.ClientOptions{
		Url:     sourceUrl,
		Timeout: timeout,
	}
	if dumpDir != "" {
		output, err := restyutil.NewFilesystemOutput(dumpDir)
		if err != nil {
			return service.Service{}, err
		}
		slog.Info("dumping http exchanges", "dir", output.Dir())
		opts.Dump = output
	}

	client, err := multigp.NewClient(opts, tel)
	if err != nil {
		return service.Service{}, err
	}
	clock, err := chrono.NewStandardImpl("Local")
	if err != nil {
		return service.Service{}, err
	}
	return service.NewService(
		client,
		leaderboard.NewBuilder(leaderboard.DefaultCountries(), tel),
		clock,
		tel,
	), nil
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
