package check

import (
	"encoding/json"
	"strings"
)

// ServiceRecord is one entry of the service status array served by the
// endpoint.
type ServiceRecord struct {
	Name    string `json:"srv_service"`
	Enabled bool   `json:"srv_enable"`
}

// EvaluateServices decodes the response body as a service status array and
// verifies that every requested service is present and enabled. Findings
// for disabled services appear in record order; findings for missing
// services follow in the order the services were requested.
func EvaluateServices(body []byte, names []string) Result {
	var records []ServiceRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return Critical("invalid JSON from request")
	}

	requested := make(map[string]bool, len(names))
	for _, name := range names {
		requested[name] = true
	}

	var findings Findings
	found := make(map[string]bool, len(names))
	for _, record := range records {
		if !requested[record.Name] {
			continue
		}
		found[record.Name] = true
		if !record.Enabled {
			findings.Critical("%s is not enabled", record.Name)
		}
	}
	for _, name := range names {
		if !found[name] {
			findings.Critical("%s not found", name)
		}
	}

	return findings.Verdict(strings.Join(names, ", ") + " services are enabled")
}
