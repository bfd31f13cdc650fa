package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/khanhnv2901/headerhawk/internal/checker"
	consts "github.com/khanhnv2901/headerhawk/internal/constants"
	"github.com/khanhnv2901/headerhawk/internal/report"
)

var cfgFile string
var logger *zap.SugaredLogger

var saveResults bool

// ScanSettings captures the effective runtime configuration after merging
// flags, the optional config file, and built-in defaults.
type ScanSettings struct {
	Timeout    time.Duration
	Delay      time.Duration
	UserAgent  string
	OutputPath string
}

var settings ScanSettings

var rootCmd = &cobra.Command{
	Use:   "headerhawk [urls...]",
	Short: "Inspect security-relevant HTTP response headers for a batch of URLs",
	Long: `HeaderHawk fetches each URL once and reports whether the response
carries Content-Security-Policy, X-Frame-Options, Strict-Transport-Security,
and Referrer-Policy. Results render as a console table and can be exported
to CSV with --save.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// init config
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			viper.AddConfigPath("$HOME")
			viper.SetConfigName(".headerhawk")
			viper.SetConfigType("yaml")
		}

		_ = viper.ReadInConfig()

		settings = ScanSettings{
			Timeout:    consts.DefaultTimeout,
			Delay:      consts.RateLimitDelay,
			UserAgent:  consts.UserAgent,
			OutputPath: consts.ResultsFilename,
		}
		if v := viper.GetInt("timeout_secs"); v > 0 {
			settings.Timeout = time.Duration(v) * time.Second
		}
		if viper.IsSet("delay_secs") {
			if v := viper.GetInt("delay_secs"); v >= 0 {
				settings.Delay = time.Duration(v) * time.Second
			}
		}
		if v := viper.GetString("user_agent"); v != "" {
			settings.UserAgent = v
		}

		// flags take precedence over the config file
		applyFlagOverrides(cmd.Flags(), &settings)

		// init logger
		l, _ := zap.NewProduction()
		logger = l.Sugar()

		return nil
	},
	RunE: runScan,
}

// applyFlagOverrides lets explicitly-set command-line flags win over
// whatever the config file provided.
func applyFlagOverrides(flags *pflag.FlagSet, s *ScanSettings) {
	if flags.Changed("timeout") {
		if v, err := flags.GetInt("timeout"); err == nil && v > 0 {
			s.Timeout = time.Duration(v) * time.Second
		}
	}
	if flags.Changed("delay") {
		if v, err := flags.GetInt("delay"); err == nil && v >= 0 {
			s.Delay = time.Duration(v) * time.Second
		}
	}
}

func runScan(cmd *cobra.Command, args []string) error {
	defer func() { _ = logger.Sync() }()

	printBanner(settings.UserAgent)

	urls := args
	if len(urls) == 0 {
		urls = promptForURLs(cmd.InOrStdin())
	}

	if err := checker.ValidateBatch(urls); err != nil {
		return err
	}

	fmt.Println(colorInfo("Analyzing security headers..."))
	fmt.Printf("%s %s between requests\n", colorInfo("Rate limiting:"), settings.Delay)
	fmt.Println()

	fetcher := &checker.HeaderFetcher{
		Timeout:   settings.Timeout,
		UserAgent: settings.UserAgent,
		Logger:    logger,
	}
	runner := &checker.Runner{
		Delay:     settings.Delay,
		Timeout:   settings.Timeout,
		Checklist: checker.DefaultChecklist,
	}

	records, runErr := runner.Run(context.Background(), urls, fetcher, func(index, total int, target checker.Target) {
		fmt.Println(colorInfo(fmt.Sprintf("Processing %s (%d/%d)", target.URL, index, total)))
		logger.Infow("processing target", "url", target.URL, "index", index, "total", total)
	})

	fmt.Println()
	report.WriteTable(cmd.OutOrStdout(), records, checker.DefaultChecklist)

	if saveResults {
		if err := report.WriteCSV(settings.OutputPath, records, checker.DefaultChecklist); err != nil {
			fmt.Println(colorError(fmt.Sprintf("Failed to save results: %v", err)))
		} else {
			fmt.Println(colorSuccess("Results saved to " + settings.OutputPath))
		}
	}

	// Per-URL failures never change the exit code; only a run where
	// nothing was fetchable is fatal.
	return runErr
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(colorError(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.headerhawk.yaml)")

	rootCmd.Flags().BoolVar(&saveResults, "save", false, "save results to "+consts.ResultsFilename)
	rootCmd.Flags().Int("timeout", int(consts.DefaultTimeout/time.Second), "per-request timeout in seconds")
	rootCmd.Flags().Int("delay", int(consts.RateLimitDelay/time.Second), "delay between consecutive requests in seconds")

	rootCmd.AddCommand(versionCmd)
}
