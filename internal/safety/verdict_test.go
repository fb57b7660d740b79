package safety

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRiskLevelOrdering(t *testing.T) {
	assert.True(t, RiskSafe < RiskLow)
	assert.True(t, RiskLow < RiskMedium)
	assert.True(t, RiskMedium < RiskHigh)
	assert.True(t, RiskHigh < RiskCritical)
}

func TestRiskLevelJSONRoundTrip(t *testing.T) {
	for _, level := range []RiskLevel{RiskSafe, RiskLow, RiskMedium, RiskHigh, RiskCritical} {
		data, err := json.Marshal(level)
		require.NoError(t, err)

		var decoded RiskLevel
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, level, decoded)
	}
}

func TestRiskLevelJSONUnknown(t *testing.T) {
	var level RiskLevel
	assert.Error(t, json.Unmarshal([]byte(`"Extreme"`), &level))

	_, err := json.Marshal(RiskLevel(42))
	assert.Error(t, err)
}

func TestVerdictJSONShape(t *testing.T) {
	c := New(
		WithProbe(MapProbe{"/home/alice/Documents": true}),
		WithPlatform(Linux),
		WithHome("/home/alice"),
	)

	data, err := json.Marshal(c.Classify("/home/alice/Documents"))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"is_safe": true,
		"risk_level": "Low",
		"warnings": ["User sensitive directory - review operations carefully"],
		"blocked_reasons": []
	}`, string(data))
}

func TestBuildVerdictCommutative(t *testing.T) {
	a := Finding{Message: "warn one"}
	b := Finding{Message: "warn two"}
	c := Finding{Blocking: true, Risk: RiskCritical, Message: "blocked"}

	forward := buildVerdict([]Finding{a, b, c})
	reversed := buildVerdict([]Finding{c, b, a})

	// Ordering of the sequences differs; the risk computation does not.
	assert.Equal(t, forward.RiskLevel, reversed.RiskLevel)
	assert.Equal(t, forward.IsSafe, reversed.IsSafe)
	assert.Equal(t, RiskCritical, forward.RiskLevel)
}

func TestBuildVerdictHighFloorForBlocks(t *testing.T) {
	// A blocking finding with no risk of its own still lands at High.
	v := buildVerdict([]Finding{{Blocking: true, Message: "blocked"}})

	assert.False(t, v.IsSafe)
	assert.Equal(t, RiskHigh, v.RiskLevel)
}

func TestBuildVerdictWarningCounts(t *testing.T) {
	warnings := func(n int) []Finding {
		fs := make([]Finding, n)
		for i := range fs {
			fs[i] = Finding{Message: "warn"}
		}
		return fs
	}

	assert.Equal(t, RiskSafe, buildVerdict(warnings(0)).RiskLevel)
	assert.Equal(t, RiskLow, buildVerdict(warnings(1)).RiskLevel)
	assert.Equal(t, RiskLow, buildVerdict(warnings(2)).RiskLevel)
	assert.Equal(t, RiskMedium, buildVerdict(warnings(3)).RiskLevel)
	assert.Equal(t, RiskMedium, buildVerdict(warnings(7)).RiskLevel)
}
