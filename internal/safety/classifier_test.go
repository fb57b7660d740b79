package safety

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClassifier(probe Probe) *Classifier {
	return New(
		WithProbe(probe),
		WithPlatform(Linux),
		WithHome("/home/alice"),
	)
}

func TestClassifyNonexistentPath(t *testing.T) {
	c := newTestClassifier(MapProbe{})

	v := c.Classify("/tmp/does-not-exist-xyz")

	assert.False(t, v.IsSafe)
	assert.Equal(t, RiskCritical, v.RiskLevel)
	assert.Equal(t, []string{"Path does not exist"}, v.BlockedReasons)
	assert.Empty(t, v.Warnings)
}

func TestClassifyFileNotDirectory(t *testing.T) {
	c := newTestClassifier(MapProbe{"/data/report.txt": false})

	v := c.Classify("/data/report.txt")

	assert.False(t, v.IsSafe)
	assert.Equal(t, RiskCritical, v.RiskLevel)
	assert.Equal(t, []string{"Path is not a directory"}, v.BlockedReasons)
}

func TestClassifyProbeErrorDegradesToNotExist(t *testing.T) {
	c := newTestClassifier(failingProbe{})

	v := c.Classify("/restricted")

	assert.False(t, v.IsSafe)
	assert.Equal(t, RiskCritical, v.RiskLevel)
	assert.Equal(t, []string{"Path does not exist"}, v.BlockedReasons)
}

type failingProbe struct{}

func (failingProbe) Stat(string) (PathInfo, error) {
	return PathInfo{}, errors.New("permission denied")
}

func TestClassifySystemDirectories(t *testing.T) {
	tests := []struct {
		name     string
		platform Platform
		path     string
	}{
		{"etc itself", Linux, "/etc"},
		{"nested under etc", Linux, "/etc/cron.d"},
		{"usr lib", Linux, "/usr/lib/systemd"},
		{"var log", Linux, "/var/log/journal"},
		{"macos uses posix list", MacOS, "/sbin"},
		{"windows system32", Windows, `C:\System32\drivers`},
		{"windows case folded", Windows, `c:\windows\temp`},
		{"windows program files", Windows, `C:\Program Files (x86)\App`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(
				WithProbe(MapProbe{tt.path: true}),
				WithPlatform(tt.platform),
				WithHome(""),
			)

			v := c.Classify(tt.path)

			assert.False(t, v.IsSafe)
			assert.Equal(t, RiskHigh, v.RiskLevel)
			assert.Equal(t, []string{"System directory access is blocked"}, v.BlockedReasons)
		})
	}
}

func TestClassifySystemDirectoryNoPrefixFalsePositive(t *testing.T) {
	// /binary-data must not match the /bin deny entry.
	c := newTestClassifier(MapProbe{"/binary-data": true})

	v := c.Classify("/binary-data")

	assert.True(t, v.IsSafe)
	assert.Empty(t, v.BlockedReasons)
}

func TestClassifyWindowsDenyListNotAppliedOnLinux(t *testing.T) {
	// A directory literally named like a Windows system root is fine on
	// a POSIX identity.
	path := "/srv/C:" // colon draws a character warning only
	c := New(WithProbe(MapProbe{path: true}), WithPlatform(Linux), WithHome(""))

	v := c.Classify(path)

	assert.True(t, v.IsSafe)
	assert.Empty(t, v.BlockedReasons)
}

func TestClassifyTraversalPatterns(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"dotdot component", "/srv/../srv/data"},
		{"literal dotdot name", "/srv/foo..bar"},
		{"dot slash", "/srv/./data"},
		{"dot backslash", `/srv/.\data`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClassifier(MapProbe{tt.path: true})

			v := c.Classify(tt.path)

			assert.False(t, v.IsSafe)
			assert.Equal(t, RiskCritical, v.RiskLevel)
			assert.Equal(t, []string{"Path contains traversal patterns"}, v.BlockedReasons)
		})
	}
}

func TestClassifySensitiveDirectories(t *testing.T) {
	probe := MapProbe{
		"/home/alice":            true,
		"/home/alice/Documents":  true,
		"/home/alice/.ssh":       true,
		"/home/alice/scratch":    true,
		"/home/bob/Documents":    true,
		"/home/alice/Docs/inner": true,
	}
	c := newTestClassifier(probe)

	// A well-known home subdirectory yields a single warning, Low.
	v := c.Classify("/home/alice/Documents")
	require.True(t, v.IsSafe)
	assert.Equal(t, RiskLow, v.RiskLevel)
	assert.Equal(t, []string{"User sensitive directory - review operations carefully"}, v.Warnings)
	assert.Empty(t, v.BlockedReasons)

	// Home itself warns too.
	v = c.Classify("/home/alice")
	assert.Equal(t, RiskLow, v.RiskLevel)
	assert.Len(t, v.Warnings, 1)

	// Dotfiles on the sensitive list warn.
	v = c.Classify("/home/alice/.ssh")
	assert.Len(t, v.Warnings, 1)

	// Unlisted subdirectories and other users' homes do not warn.
	assert.Equal(t, RiskSafe, c.Classify("/home/alice/scratch").RiskLevel)
	assert.Equal(t, RiskSafe, c.Classify("/home/bob/Documents").RiskLevel)
	assert.Equal(t, RiskSafe, c.Classify("/home/alice/Docs/inner").RiskLevel)
}

func TestClassifyNoHomeDisablesSensitiveRule(t *testing.T) {
	c := New(
		WithProbe(MapProbe{"/home/alice/Documents": true}),
		WithPlatform(Linux),
		WithHome(""),
	)

	v := c.Classify("/home/alice/Documents")

	assert.True(t, v.IsSafe)
	assert.Equal(t, RiskSafe, v.RiskLevel)
}

func TestClassifyApplicationDirectories(t *testing.T) {
	for _, marker := range []string{"node_modules", ".git", "target", "build", "dist", ".vscode", ".idea"} {
		path := "/srv/project/" + marker
		c := newTestClassifier(MapProbe{path: true})

		v := c.Classify(path)

		require.True(t, v.IsSafe, marker)
		assert.Equal(t, RiskLow, v.RiskLevel, marker)
		assert.Equal(t, []string{"Application directory - may affect installed programs"}, v.Warnings, marker)
	}
}

func TestClassifyDepthWarning(t *testing.T) {
	shallow := "/a/b/c/d/e/f/g/h/i/j" // 10 components, at the limit
	deep := "/a/b/c/d/e/f/g/h/i/j/k" // 11 components
	c := newTestClassifier(MapProbe{shallow: true, deep: true})

	assert.Equal(t, RiskSafe, c.Classify(shallow).RiskLevel)

	v := c.Classify(deep)
	assert.Equal(t, RiskLow, v.RiskLevel)
	assert.Equal(t, []string{"Very deep directory path - may cause performance issues"}, v.Warnings)
}

func TestClassifyCharacterWarning(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"non-ascii", "/srv/données"},
		{"question mark", "/srv/what?"},
		{"asterisk", "/srv/glob*"},
		{"pipe", "/srv/a|b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClassifier(MapProbe{tt.path: true})

			v := c.Classify(tt.path)

			assert.True(t, v.IsSafe)
			assert.Contains(t, v.Warnings, "Path contains special characters that may cause issues")
		})
	}
}

func TestClassifyLengthWarning(t *testing.T) {
	long := "/srv/" + strings.Repeat("d", 1100)
	c := newTestClassifier(MapProbe{long: true})

	v := c.Classify(long)

	assert.True(t, v.IsSafe)
	assert.Contains(t, v.Warnings, "Very long path - may cause system limitations")

	// The Windows threshold is far lower.
	winPath := `D:\data\` + strings.Repeat("d", 300)
	wc := New(WithProbe(MapProbe{winPath: true}), WithPlatform(Windows), WithHome(""))
	assert.Contains(t, wc.Classify(winPath).Warnings, "Very long path - may cause system limitations")
}

func TestClassifyRiskGrowsWithWarningCount(t *testing.T) {
	none := "/srv/data"
	one := "/srv/project/dist"
	// Deep, app marker, and a special character: three warnings.
	three := "/a/b/c/d/e/f/g/h/i/j/node_modules/x?"
	c := newTestClassifier(MapProbe{none: true, one: true, three: true})

	assert.Equal(t, RiskSafe, c.Classify(none).RiskLevel)
	assert.Equal(t, RiskLow, c.Classify(one).RiskLevel)

	v := c.Classify(three)
	require.Len(t, v.Warnings, 3)
	assert.Equal(t, RiskMedium, v.RiskLevel)
	assert.True(t, v.IsSafe)
}

func TestClassifySystemDirectoryShortCircuitsWarnings(t *testing.T) {
	// A blocked path collects no advisory warnings.
	path := "/etc/systemd?"
	c := newTestClassifier(MapProbe{path: true})

	v := c.Classify(path)

	assert.False(t, v.IsSafe)
	assert.Equal(t, RiskHigh, v.RiskLevel)
	assert.Empty(t, v.Warnings)
}

func TestClassifyIdempotent(t *testing.T) {
	c := newTestClassifier(MapProbe{"/home/alice/Documents": true})

	first := c.Classify("/home/alice/Documents")
	second := c.Classify("/home/alice/Documents")

	assert.Equal(t, first, second)
}

func TestClassifySafeVerdictShape(t *testing.T) {
	c := newTestClassifier(MapProbe{"/srv/data": true})

	v := c.Classify("/srv/data")

	assert.True(t, v.IsSafe)
	assert.Equal(t, RiskSafe, v.RiskLevel)
	// Slices are non-nil so the wire format always carries arrays.
	assert.NotNil(t, v.Warnings)
	assert.NotNil(t, v.BlockedReasons)
}
