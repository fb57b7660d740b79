package safety

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diskwise/backend/internal/safety"
)

func newTestProvider() *Provider {
	classifier := safety.New(
		safety.WithProbe(safety.MapProbe{
			"/srv/data":   true,
			"/etc/cron.d": true,
		}),
		safety.WithPlatform(safety.Linux),
		safety.WithHome("/home/alice"),
	)
	return NewProvider(classifier)
}

func TestValidateSafePath(t *testing.T) {
	p := newTestProvider()

	result, err := p.Execute(context.Background(), "safety.validate", map[string]interface{}{
		"path": "/srv/data",
	}, nil)

	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, true, result.Data["is_safe"])
	assert.Equal(t, "Safe", result.Data["risk_level"])
	assert.Empty(t, result.Data["blocked_reasons"])
}

func TestValidateBlockedPath(t *testing.T) {
	p := newTestProvider()

	result, err := p.Execute(context.Background(), "safety.validate", map[string]interface{}{
		"path": "/etc/cron.d",
	}, nil)

	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, false, result.Data["is_safe"])
	assert.Equal(t, "High", result.Data["risk_level"])
	assert.Equal(t, []string{"System directory access is blocked"}, result.Data["blocked_reasons"])
}

func TestValidateRequiresPath(t *testing.T) {
	p := newTestProvider()

	result, err := p.Execute(context.Background(), "safety.validate", map[string]interface{}{}, nil)

	require.NoError(t, err)
	assert.False(t, result.Success)
	require.NotNil(t, result.Error)
	assert.Equal(t, "path required", *result.Error)
}

func TestLevels(t *testing.T) {
	p := newTestProvider()

	result, err := p.Execute(context.Background(), "safety.levels", nil, nil)

	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, []string{"Safe", "Low", "Medium", "High", "Critical"}, result.Data["levels"])
}

func TestProtected(t *testing.T) {
	p := newTestProvider()

	result, err := p.Execute(context.Background(), "safety.protected", map[string]interface{}{
		"platform": "windows",
	}, nil)

	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, "windows", result.Data["platform"])
	assert.Contains(t, result.Data["directories"], `C:\Windows`)
}

func TestProtectedUnknownPlatform(t *testing.T) {
	p := newTestProvider()

	result, err := p.Execute(context.Background(), "safety.protected", map[string]interface{}{
		"platform": "beos",
	}, nil)

	require.NoError(t, err)
	assert.False(t, result.Success)
}

func TestUnknownTool(t *testing.T) {
	p := newTestProvider()

	result, err := p.Execute(context.Background(), "safety.bogus", nil, nil)

	require.NoError(t, err)
	assert.False(t, result.Success)
}
