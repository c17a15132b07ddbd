package main

import (
	"errors"
	netHttp "net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ghscout/ghscout/internal/adapter/github"
	"github.com/ghscout/ghscout/internal/adapter/github/limiter"
	"github.com/ghscout/ghscout/internal/api/http"
	"github.com/ghscout/ghscout/internal/app"
	"github.com/ghscout/ghscout/internal/database"
	"github.com/ghscout/ghscout/internal/ui"
)

func main() {
	l := logrus.New()
	l.Level = logrus.InfoLevel

	// Local .env is optional, real environment always wins.
	_ = godotenv.Load()

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		l.Fatalf("couldn't parse config: %v", err)
	}

	if err := newRootCmd(conf, l).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(conf Config, l *logrus.Logger) *cobra.Command {
	var gui bool

	rootCmd := &cobra.Command{
		Use:   "ghscout",
		Short: "Explore GitHub organization members and user commit activity",
		Long: `ghscout queries the GitHub REST API to list the public members of an
organization or to summarize, per repository, the commits a user authored.

By default it runs an interactive terminal prompt. With --gui it serves
a local web page with the same searches.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, cleanup, err := buildService(conf, l)
			if err != nil {
				l.Error(err)
				return err
			}
			defer cleanup()

			if gui {
				mux := http.NewMux(service, conf.GUIRequestTimeout)
				server := http.NewServer(conf.GUIServerAddress, mux, l.WithField("component", "guiServer"))
				server.Run()
				return nil
			}

			presenter := ui.NewTermPresenter(cmd.OutOrStdout())
			prompt := ui.NewPrompt(service, presenter, cmd.InOrStdin(), cmd.OutOrStdout())
			return prompt.Run(cmd.Context())
		},
	}
	rootCmd.Flags().BoolVarP(&gui, "gui", "g", false, "serve a local web page instead of the terminal prompt")

	rootCmd.AddCommand(newOrgCmd(conf, l))
	rootCmd.AddCommand(newUserCmd(conf, l))

	return rootCmd
}

func newOrgCmd(conf Config, l *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "org <name>",
		Short: "List public members of an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, cleanup, err := buildService(conf, l)
			if err != nil {
				l.Error(err)
				return err
			}
			defer cleanup()

			presenter := ui.NewTermPresenter(cmd.OutOrStdout())
			members, warnings, err := service.OrgMembers(cmd.Context(), args[0])
			if err != nil {
				presenter.Error(err)
				return err
			}
			presenter.MembersResult(args[0], members, warnings)
			return nil
		},
	}
}

func newUserCmd(conf Config, l *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "user <name>",
		Short: "List repositories a user has committed to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, cleanup, err := buildService(conf, l)
			if err != nil {
				l.Error(err)
				return err
			}
			defer cleanup()

			presenter := ui.NewTermPresenter(cmd.OutOrStdout())
			profile, summaries, warnings, err := service.UserActivity(cmd.Context(), args[0])
			if err != nil {
				presenter.Error(err)
				return err
			}
			presenter.ActivityResult(profile, summaries, warnings)
			return nil
		},
	}
}

// buildService wires the github client chain and the app service.
// The returned cleanup closes the disk cache database.
func buildService(conf Config, l *logrus.Logger) (*app.Service, func(), error) {
	if conf.GithubToken == "" {
		return nil, nil, errors.New(
			"authorization token not present: set the GITHUB_TOKEN environment variable " +
				"with a personal access token generated at https://github.com/settings/tokens",
		)
	}

	httpClient := &netHttp.Client{
		Timeout: conf.GithubHTTPTimeout,
	}
	limitedHTTPClient := limiter.NewHTTPDoer(
		httpClient,
		conf.GithubAPIRateLimit,
	)

	kvStore, err := database.NewBoltKVStore(
		conf.GithubDBPath,
		conf.GithubDBBucketName,
	)
	if err != nil {
		return nil, nil, err
	}

	githubClient := github.NewClient(
		limitedHTTPClient,
		conf.GithubAPIAddress,
		conf.GithubToken,
	)
	githubDiskCachedClient := github.NewClientWithDiskCache(
		githubClient,
		kvStore,
		conf.GithubDBDataTTL,
		l.WithField("component", "githubDiskCachedClient"),
	)
	githubCachedClient, err := github.NewCachedClient(
		githubDiskCachedClient,
		conf.GithubClientCacheSize,
		conf.GithubClientCacheTTL,
	)
	if err != nil {
		kvStore.Close()
		return nil, nil, err
	}

	service := app.NewService(
		githubCachedClient,
		l.WithField("component", "service"),
	)

	return service, func() { kvStore.Close() }, nil
}
