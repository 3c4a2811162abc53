// Package check implements the monitoring-check pipeline shared by the
// volume and services commands.
//
// A run walks four stages:
//
//   - ResolveTarget builds the request URL from either a full --url or
//     discrete host/path/query/port fields.
//   - Client.Exchange performs the single HTTP exchange under the configured
//     timeout and validates the response status code.
//   - An evaluator (EvaluateVolume, EvaluateServices) decodes the JSON array
//     into typed records and walks them, accumulating Findings.
//   - Findings.Verdict collapses the accumulated findings into one Result,
//     CRITICAL taking precedence over WARNING over OK.
//
// Every stage returns values; nothing in this package touches global state
// or terminates the process. The cmd package owns printing and exit codes.
package check
