package safety

import (
	"encoding/json"
	"fmt"
)

// RiskLevel classifies how dangerous an operation against a path is
// judged to be. Levels are ordered: Safe < Low < Medium < High < Critical.
type RiskLevel int

const (
	RiskSafe RiskLevel = iota
	RiskLow
	RiskMedium
	RiskHigh
	RiskCritical
)

var riskNames = map[RiskLevel]string{
	RiskSafe:     "Safe",
	RiskLow:      "Low",
	RiskMedium:   "Medium",
	RiskHigh:     "High",
	RiskCritical: "Critical",
}

// String returns the level name used on the wire.
func (r RiskLevel) String() string {
	if name, ok := riskNames[r]; ok {
		return name
	}
	return fmt.Sprintf("RiskLevel(%d)", int(r))
}

// MarshalJSON encodes the level as its name string.
func (r RiskLevel) MarshalJSON() ([]byte, error) {
	name, ok := riskNames[r]
	if !ok {
		return nil, fmt.Errorf("invalid risk level: %d", int(r))
	}
	return json.Marshal(name)
}

// UnmarshalJSON decodes a level name string.
func (r *RiskLevel) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for level, n := range riskNames {
		if n == name {
			*r = level
			return nil
		}
	}
	return fmt.Errorf("unknown risk level: %q", name)
}

// Verdict is the complete output of one classification call.
//
// Invariant: IsSafe is true iff BlockedReasons is empty. Warnings and
// BlockedReasons preserve rule evaluation order; RiskLevel depends only
// on the multiset of findings, not their order.
type Verdict struct {
	IsSafe         bool      `json:"is_safe"`
	RiskLevel      RiskLevel `json:"risk_level"`
	Warnings       []string  `json:"warnings"`
	BlockedReasons []string  `json:"blocked_reasons"`
}

// buildVerdict folds an ordered finding list into a verdict.
//
// The reduction is commutative: blocking findings dominate with the
// maximum of their attached risks (floored at High as a catch-all for
// blocking rules that carry no level of their own), otherwise the risk
// grows with the warning count.
func buildVerdict(findings []Finding) Verdict {
	v := Verdict{
		Warnings:       []string{},
		BlockedReasons: []string{},
	}

	blockRisk := RiskSafe
	for _, f := range findings {
		if f.Blocking {
			v.BlockedReasons = append(v.BlockedReasons, f.Message)
			if f.Risk > blockRisk {
				blockRisk = f.Risk
			}
		} else {
			v.Warnings = append(v.Warnings, f.Message)
		}
	}

	switch {
	case len(v.BlockedReasons) > 0:
		v.IsSafe = false
		v.RiskLevel = maxRisk(RiskHigh, blockRisk)
	case len(v.Warnings) == 0:
		v.IsSafe = true
		v.RiskLevel = RiskSafe
	case len(v.Warnings) <= 2:
		v.IsSafe = true
		v.RiskLevel = RiskLow
	default:
		v.IsSafe = true
		v.RiskLevel = RiskMedium
	}

	return v
}

func maxRisk(a, b RiskLevel) RiskLevel {
	if a > b {
		return a
	}
	return b
}
