package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/r0b0tAnthony/sensu-plugins-http/internal/check"
)

// exitFunc terminates the process with the verdict's exit code. Swappable
// so tests can observe the code instead of exiting.
var exitFunc = os.Exit

type evaluator func(body []byte) check.Result

// runCheck executes the common check pipeline and terminates the process
// with the resulting verdict. This is the shared execution path of both the
// volume and services commands; only the evaluator differs.
func runCheck(cmd *cobra.Command, evaluate evaluator) error {
	finish(executeCheck(cmd.Context(), evaluate))
	return nil
}

func executeCheck(ctx context.Context, evaluate evaluator) check.Result {
	target, err := check.ResolveTarget(check.TargetOptions{
		URL:   cliConfig.Target.URL,
		Host:  cliConfig.Target.Host,
		Path:  cliConfig.Target.Path,
		Query: cliConfig.Target.Query,
		Port:  cliConfig.Target.Port,
		SSL:   cliConfig.Target.SSL,
	})
	if err != nil {
		return check.Unknown("%v", err)
	}

	method := strings.ToUpper(cliConfig.Request.Method)
	if method != http.MethodGet && method != http.MethodPost {
		return check.Unknown("invalid method %q: must be GET or POST", cliConfig.Request.Method)
	}

	headers, err := check.ParseRawHeaders(cliConfig.Request.Headers)
	if err != nil {
		return check.Unknown("%v", err)
	}

	var body []byte
	if cliConfig.Request.BodyFile != "" {
		body, err = os.ReadFile(cliConfig.Request.BodyFile)
		if err != nil {
			return check.Unknown("cannot read body file: %v", err)
		}
	}

	client := &check.Client{
		Method:        method,
		Body:          body,
		Username:      cliConfig.Request.Username,
		Password:      cliConfig.Request.Password,
		Headers:       headers,
		Timeout:       time.Duration(cliConfig.Request.TimeoutSecs) * time.Second,
		Insecure:      cliConfig.Request.Insecure,
		WholeResponse: cliConfig.Request.WholeResponse,
	}

	logger.Debugw("issuing request",
		"method", method,
		"url", target.URL(),
		"timeout_secs", cliConfig.Request.TimeoutSecs,
	)
	start := time.Now()
	payload, failure := client.Exchange(ctx, target)
	logger.Debugw("exchange finished",
		"duration_ms", time.Since(start).Milliseconds(),
		"failed", failure != nil,
	)
	if failure != nil {
		return *failure
	}

	return evaluate(payload)
}

// finish prints the single verdict line and exits with its status code.
func finish(res check.Result) {
	fmt.Printf("%s: %s\n", formatStatus(res.Status), res.Message)
	exitFunc(res.Status.ExitCode())
}
