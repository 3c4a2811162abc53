package check

import (
	"encoding/json"
	"strconv"
	"strings"
)

// VolumeRecord is one entry of the volume status array served by the
// endpoint.
type VolumeRecord struct {
	Name    string `json:"vol_name"`
	Status  string `json:"status"`
	UsedPct string `json:"used_pct"`
}

const volumeHealthy = "HEALTHY"

// EvaluateVolume decodes the response body as a volume status array and
// judges the named volume against the warning and critical usage
// thresholds. Threshold comparisons are inclusive: usage at exactly the
// warning threshold is WARNING, at exactly the critical threshold CRITICAL.
func EvaluateVolume(body []byte, name string, warnPct, critPct float64) Result {
	var records []VolumeRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return Critical("invalid JSON from request")
	}

	var volume *VolumeRecord
	for i := range records {
		if records[i].Name == name {
			volume = &records[i]
			break
		}
	}
	if volume == nil {
		return Critical("Could not find volume %s", name)
	}

	var findings Findings
	if volume.Status != volumeHealthy {
		findings.Critical("%s status is %s", name, volume.Status)
	}

	used, err := strconv.ParseFloat(strings.TrimSuffix(volume.UsedPct, "%"), 64)
	if err != nil {
		return Critical("cannot parse used_pct %q for volume %s", volume.UsedPct, name)
	}
	switch {
	case used >= critPct:
		findings.Critical("%s usage is %s", name, volume.UsedPct)
	case used >= warnPct:
		findings.Warning("%s usage is %s", name, volume.UsedPct)
	}

	return findings.Verdict(okVolumeMessage(name, warnPct))
}

func okVolumeMessage(name string, warnPct float64) string {
	return "Volume " + name + " status is " + volumeHealthy +
		" and disk usage is under " + strconv.FormatFloat(warnPct, 'f', -1, 64) + "%"
}
