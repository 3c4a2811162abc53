package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultTimeoutSeconds = 15
	defaultWarningPct     = 85.0
	defaultCriticalPct    = 95.0
	defaultMethod         = "GET"
)

// CLIConfig captures runtime configuration shared across commands.
type CLIConfig struct {
	Target   TargetConfig
	Request  RequestConfig
	Volume   VolumeConfig
	Services ServicesConfig
	Verbose  bool
}

// TargetConfig groups the flags that resolve the request URL.
type TargetConfig struct {
	URL   string
	Host  string
	Path  string
	Query string
	Port  int
	SSL   bool
}

// RequestConfig consolidates flag-driven settings for the HTTP exchange.
type RequestConfig struct {
	Method        string
	BodyFile      string
	Headers       string
	Username      string
	Password      string
	TimeoutSecs   int
	WholeResponse bool
	Insecure      bool
}

// VolumeConfig groups volume-check runtime options.
type VolumeConfig struct {
	Name        string
	WarningPct  float64
	CriticalPct float64
}

// ServicesConfig groups services-check runtime options. The include flags
// are accepted for compatibility with the original plugin but do not affect
// evaluation.
type ServicesConfig struct {
	IncludeWarnings  bool
	IncludeCriticals bool
	IncludeOKs       bool
}

var cliConfig = newCLIConfig()

func newCLIConfig() *CLIConfig {
	return &CLIConfig{
		Request: RequestConfig{
			Method:      defaultMethod,
			TimeoutSecs: defaultTimeoutSeconds,
		},
		Volume: VolumeConfig{
			WarningPct:  defaultWarningPct,
			CriticalPct: defaultCriticalPct,
		},
		Services: ServicesConfig{
			IncludeWarnings:  true,
			IncludeCriticals: true,
		},
	}
}

// addTargetFlags adds the target and request flags shared by all check
// commands. This reduces duplication and ensures consistent flag
// definitions across commands. The flags are local, not persistent: -h is
// taken by --host, and a local set keeps cobra's auto-generated commands
// free to use their default -h help shorthand.
func addTargetFlags(cmd *cobra.Command) {
	fs := cmd.Flags()

	fs.StringVarP(&cliConfig.Target.URL, "url", "u", "", "full target URL (overrides --host/--path/--query/--port/--ssl)")
	fs.StringVarP(&cliConfig.Target.Host, "host", "h", "", "target host")
	fs.StringVarP(&cliConfig.Target.Path, "path", "p", "", "request path")
	fs.StringVarP(&cliConfig.Target.Query, "query", "q", "", "query string joined to the path with '?'")
	fs.IntVarP(&cliConfig.Target.Port, "port", "P", 0, "target port (defaults to 443 for https, else 80)")
	fs.BoolVarP(&cliConfig.Target.SSL, "ssl", "s", false, "use https when building the URL from --host")
	fs.StringVarP(&cliConfig.Request.Method, "method", "m", cliConfig.Request.Method, "HTTP method (GET or POST)")
	fs.StringVarP(&cliConfig.Request.BodyFile, "body-file", "b", "", "file whose contents become the request body")
	fs.StringVarP(&cliConfig.Request.Headers, "header", "H", "", `comma-separated request headers ("Name: Value,Name: Value")`)
	fs.IntVarP(&cliConfig.Request.TimeoutSecs, "timeout", "t", cliConfig.Request.TimeoutSecs, "overall request timeout in seconds")
	fs.BoolVarP(&cliConfig.Request.WholeResponse, "whole-response", "W", false, "include the full response body in status-code failures")
	fs.StringVarP(&cliConfig.Request.Username, "username", "U", "", "basic auth username")
	fs.StringVarP(&cliConfig.Request.Password, "password", "a", "", "basic auth password")
	fs.BoolVar(&cliConfig.Request.Insecure, "insecure", false, "skip TLS certificate verification")

	// claim the help flag (long form only) before cobra registers its
	// default -h shorthand, which would collide with --host
	fs.Bool("help", false, "help for "+cmd.Name())
}

// applyConfigFile overrides every flag the user did not set explicitly with
// the matching key from the config file, if present. Precedence ends up:
// explicit flag, then config file, then flag default.
func applyConfigFile(fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed || !viper.IsSet(f.Name) {
			return
		}
		if setErr := fs.Set(f.Name, viper.GetString(f.Name)); setErr != nil {
			err = setErr
		}
	})
	return err
}
