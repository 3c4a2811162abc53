package cmd

import (
	"github.com/spf13/cobra"

	"github.com/r0b0tAnthony/sensu-plugins-http/internal/check"
)

var servicesCmd = &cobra.Command{
	Use:   "services SERVICE [SERVICE...]",
	Short: "Check that the named services are present and enabled",
	Long: `Fetch the service status array from the target endpoint and verify every
service named on the command line:

- a requested service whose srv_enable field is not true is CRITICAL
- a requested service absent from the response is CRITICAL

All violations are reported together in one verdict line.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			finish(check.Unknown("No services specified"))
			return nil
		}
		return runCheck(cmd, func(body []byte) check.Result {
			return check.EvaluateServices(body, args)
		})
	},
}

func init() {
	addTargetFlags(servicesCmd)

	// accepted for compatibility with the original plugin's flag surface;
	// they do not affect evaluation
	servicesCmd.Flags().BoolVarP(&cliConfig.Services.IncludeWarnings, "include-warnings", "w", cliConfig.Services.IncludeWarnings, "accepted for compatibility; no effect")
	servicesCmd.Flags().BoolVarP(&cliConfig.Services.IncludeCriticals, "include-criticals", "c", cliConfig.Services.IncludeCriticals, "accepted for compatibility; no effect")
	servicesCmd.Flags().BoolVarP(&cliConfig.Services.IncludeOKs, "include-oks", "o", cliConfig.Services.IncludeOKs, "accepted for compatibility; no effect")
}
