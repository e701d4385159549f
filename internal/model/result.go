package model

import "time"

// Unknown marks a maximum (or default) that could not be determined.
const Unknown int64 = -1

// Result is the outcome of evaluating one check, or one instance of an
// instance check, in one region.
type Result struct {
	Key         string `json:"key"`
	Description string `json:"description"`
	Scope       string `json:"scope"`
	Service     string `json:"service"`
	Region      string `json:"region"`
	InstanceID  string `json:"instance_id,omitempty"`
	ServiceCode string `json:"service_code,omitempty"`
	QuotaCode   string `json:"quota_code,omitempty"`

	Current    int64 `json:"current"`
	Maximum    int64 `json:"maximum"`
	AWSDefault int64 `json:"aws_default"`

	// UsageFraction is nil when the maximum is unknown or zero.
	UsageFraction *float64 `json:"usage_fraction"`

	Error string `json:"error,omitempty"`
	Err   error  `json:"-"`
}

func (r Result) Failed() bool {
	return r.Err != nil || r.Error != ""
}

// Indeterminate reports whether utilization could not be assessed.
func (r Result) Indeterminate() bool {
	return r.UsageFraction == nil
}

type Level string

const (
	LevelOK      Level = "OK"
	LevelWarning Level = "WARNING"
	LevelError   Level = "ERROR"
	LevelUnknown Level = "UNKNOWN"
	LevelFailed  Level = "FAILED"
)

// Thresholds are usage fractions at which a result is flagged.
type Thresholds struct {
	Warning float64 `yaml:"warning" json:"warning"`
	Error   float64 `yaml:"error" json:"error"`
}

func (r Result) Level(t Thresholds) Level {
	switch {
	case r.Failed():
		return LevelFailed
	case r.UsageFraction == nil:
		return LevelUnknown
	case t.Error > 0 && *r.UsageFraction >= t.Error:
		return LevelError
	case t.Warning > 0 && *r.UsageFraction >= t.Warning:
		return LevelWarning
	}
	return LevelOK
}

type Report struct {
	Results     []Result  `json:"results"`
	Total       int       `json:"total"`
	Regions     []string  `json:"regions"`
	GeneratedAt time.Time `json:"generated_at"`
	FromCache   bool      `json:"from_cache"`
}

type Region struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type Check struct {
	Key           string `json:"key"`
	Description   string `json:"description"`
	Scope         string `json:"scope"`
	Service       string `json:"service"`
	ServiceCode   string `json:"service_code,omitempty"`
	QuotaCode     string `json:"quota_code,omitempty"`
	InstanceLabel string `json:"instance_label,omitempty"`
}
