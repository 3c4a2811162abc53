package cmd

import (
	"github.com/spf13/cobra"

	"github.com/r0b0tAnthony/sensu-plugins-http/internal/check"
)

var volumeCmd = &cobra.Command{
	Use:   "volume",
	Short: "Check health and disk usage of a named volume",
	Long: `Fetch the volume status array from the target endpoint and judge the
volume named by --volume-name:

- status other than "HEALTHY" is CRITICAL
- disk usage at or above --critical is CRITICAL
- disk usage at or above --warning is WARNING

Multiple violations are reported together in one verdict line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cliConfig.Volume.Name == "" {
			finish(check.Unknown("No volume specified"))
			return nil
		}
		return runCheck(cmd, func(body []byte) check.Result {
			return check.EvaluateVolume(body,
				cliConfig.Volume.Name,
				cliConfig.Volume.WarningPct,
				cliConfig.Volume.CriticalPct,
			)
		})
	},
}

func init() {
	addTargetFlags(volumeCmd)
	volumeCmd.Flags().StringVarP(&cliConfig.Volume.Name, "volume-name", "v", "", "name of the volume to check (required)")
	volumeCmd.Flags().Float64VarP(&cliConfig.Volume.WarningPct, "warning", "w", cliConfig.Volume.WarningPct, "disk usage percentage that triggers WARNING")
	volumeCmd.Flags().Float64VarP(&cliConfig.Volume.CriticalPct, "critical", "c", cliConfig.Volume.CriticalPct, "disk usage percentage that triggers CRITICAL")
}
