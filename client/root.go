package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
	"go-currency-converter/config"
	"go-currency-converter/console"
	"go-currency-converter/exchange"
	"go-currency-converter/freecurrency"
)

type rootParams struct {
	envFile  string
	logLevel string
}

// RootCommand the currency-converter command line
type RootCommand struct {
	baseCmd *cobra.Command
	params  rootParams
}

// NewRootCommand builds the root command reading the menu from in and writing
// results to out. Logs go to errOut.
func NewRootCommand(in io.Reader, out io.Writer, errOut io.Writer) *RootCommand {
	rc := &RootCommand{}
	rc.baseCmd = &cobra.Command{
		Use:           "currency-converter",
		Short:         "interactive currency conversion with the freecurrencyapi exchange rates",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return rc.run(cmd, in, out, errOut)
		},
	}

	flags := rc.baseCmd.Flags()
	flags.StringVar(&rc.params.envFile, "env-file", config.DefaultEnvFile, "file with API_KEY and API_URL definitions")
	flags.StringVar(&rc.params.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	return rc
}

func (rc *RootCommand) run(cmd *cobra.Command, in io.Reader, out io.Writer, errOut io.Writer) error {
	filter, err := levelOption(rc.params.logLevel)
	if err != nil {
		return err
	}

	cfg, err := config.Load(rc.params.envFile)
	if err != nil {
		return fmt.Errorf("Failed to load environment variables: %w", err)
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(errOut))
	logger = level.NewFilter(logger, filter)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	fetcher := freecurrency.NewFetcher()
	fetcher = freecurrency.NewLoggingFetcher(log.With(logger, "component", "freecurrency"), fetcher)

	service := exchange.NewService(cfg, fetcher)
	service = exchange.NewLoggingService(log.With(logger, "component", "exchange"), service)

	level.Info(logger).Log("msg", "starting", "api_url", cfg.APIURL())

	return console.NewController(service, in, out).Run(cmd.Context())
}

func levelOption(name string) (level.Option, error) {
	switch name {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	default:
		return nil, fmt.Errorf("unknown log level: %v", name)
	}
}

// Execute runs the command and exits the process with status 1 on failure
func (rc *RootCommand) Execute(args []string) {
	rc.baseCmd.SetArgs(args)
	if err := rc.baseCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)

		os.Exit(1)
	}
}
