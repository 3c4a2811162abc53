package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/r0b0tAnthony/sensu-plugins-http/internal/check"
)

var cfgFile string
var logger = zap.NewNop().Sugar()

var rootCmd = &cobra.Command{
	Use:   "check-http-json",
	Short: "Monitoring checks against HTTP endpoints serving JSON status data",
	Long: `check-http-json polls an HTTP(S) endpoint exposing JSON status data and
emits a single OK/WARNING/CRITICAL/UNKNOWN verdict line plus the matching
exit code (0/1/2/3), for consumption by a monitoring supervisor.

Each invocation is one stateless request: resolve the target URL, perform
the exchange under a timeout, validate the JSON response, evaluate the
check-specific rules and exit.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// init config
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			viper.AddConfigPath("$HOME")
			viper.SetConfigName(".check-http-json")
			viper.SetConfigType("yaml")
		}
		_ = viper.ReadInConfig()
		if err := applyConfigFile(cmd.Flags()); err != nil {
			return fmt.Errorf("invalid config file value: %w", err)
		}

		// init logger; a check must print exactly one stdout line, so
		// diagnostics go to stderr and only when asked for
		if cliConfig.Verbose {
			l, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l.Sugar()
		} else {
			logger = zap.NewNop().Sugar()
		}

		return nil
	},
}

// Execute runs the root command. Anything cobra rejects (unknown flags, bad
// values) surfaces as UNKNOWN, matching the configuration-error taxonomy.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("%s: %v\n", formatStatus(check.StatusUnknown), err)
		exitFunc(check.StatusUnknown.ExitCode())
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.check-http-json.yaml)")
	rootCmd.PersistentFlags().BoolVar(&cliConfig.Verbose, "verbose", false, "log diagnostic detail to stderr")

	// add subcommands
	rootCmd.AddCommand(volumeCmd)
	rootCmd.AddCommand(servicesCmd)
	rootCmd.AddCommand(versionCmd)
}
