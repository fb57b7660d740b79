package safety

import (
	"strings"
)

// Block reasons and warning messages surfaced in verdicts. The UI keys
// its copy off these strings, so they stay stable.
const (
	reasonNotExist  = "Path does not exist"
	reasonNotDir    = "Path is not a directory"
	reasonSystemDir = "System directory access is blocked"
	reasonTraversal = "Path contains traversal patterns"

	warnSensitiveDir = "User sensitive directory - review operations carefully"
	warnAppDir       = "Application directory - may affect installed programs"
	warnDeepPath     = "Very deep directory path - may cause performance issues"
	warnBadChars     = "Path contains special characters that may cause issues"
	warnLongPath     = "Very long path - may cause system limitations"
)

// maxPathDepth is the component count past which a path draws a warning.
const maxPathDepth = 10

// appDirMarkers are substrings that identify tool and application
// directories a cleanup could corrupt.
var appDirMarkers = []string{
	"node_modules",
	".git",
	"target",
	"build",
	"dist",
	".vscode",
	".idea",
}

// sensitiveHomeSubdirs are well-known subdirectories of the user's home
// that deserve a review warning before destructive operations.
var sensitiveHomeSubdirs = []string{
	"Documents",
	"Desktop",
	"Pictures",
	"Videos",
	"Music",
	"Downloads",
	".ssh",
	".gnupg",
	".config",
	".local",
}

// Finding is the outcome of a single rule: either a blocking reason that
// forces the verdict unsafe, or a non-blocking advisory warning.
type Finding struct {
	Blocking bool
	Risk     RiskLevel // meaningful for blocking findings only
	Message  string
}

// Rule is a stateless predicate over a path plus platform and home
// directory facts. It reports at most one finding.
type Rule func(p pathFacts) (Finding, bool)

// ruleSet is evaluated in this order. Order determines warning ordering
// in the verdict; the risk computation itself is order-independent.
var ruleSet = []Rule{
	systemDirectoryRule,
	traversalRule,
	sensitiveDirectoryRule,
	applicationDirectoryRule,
	depthRule,
	characterRule,
	lengthRule,
}

func block(risk RiskLevel, reason string) (Finding, bool) {
	return Finding{Blocking: true, Risk: risk, Message: reason}, true
}

func warn(message string) (Finding, bool) {
	return Finding{Message: message}, true
}

func none() (Finding, bool) {
	return Finding{}, false
}

// pathFacts carries the normalized view of a path that rules match on.
type pathFacts struct {
	raw      string
	clean    string
	segments []string
	platform Platform
	home     string
}

func newPathFacts(path string, platform Platform, home string) pathFacts {
	return pathFacts{
		raw:      path,
		clean:    normalize(path),
		segments: splitSegments(path),
		platform: platform,
		home:     home,
	}
}

// systemDirectoryRule blocks paths equal to or nested under a protected
// platform directory. Matching is a segment-wise ancestor check so that
// /binary-data does not match /bin.
func systemDirectoryRule(p pathFacts) (Finding, bool) {
	for _, dir := range p.platform.systemDirectories() {
		if isAncestor(splitSegments(dir), p.segments, p.platform.caseInsensitive()) {
			return block(RiskHigh, reasonSystemDir)
		}
	}
	return none()
}

// traversalRule blocks raw path strings carrying relative navigation
// patterns, including directories literally named with them.
func traversalRule(p pathFacts) (Finding, bool) {
	if strings.Contains(p.raw, "..") ||
		strings.Contains(p.raw, "./") ||
		strings.Contains(p.raw, ".\\") {
		return block(RiskCritical, reasonTraversal)
	}
	return none()
}

// sensitiveDirectoryRule warns when the path is the user's home or one of
// its well-known subdirectories.
func sensitiveDirectoryRule(p pathFacts) (Finding, bool) {
	if p.home == "" {
		return none()
	}
	home := splitSegments(p.home)
	fold := p.platform.caseInsensitive()

	if sameSegments(p.segments, home, fold) {
		return warn(warnSensitiveDir)
	}
	if len(p.segments) == len(home)+1 && isAncestor(home, p.segments, fold) {
		last := p.segments[len(p.segments)-1]
		for _, subdir := range sensitiveHomeSubdirs {
			if last == subdir || (fold && strings.EqualFold(last, subdir)) {
				return warn(warnSensitiveDir)
			}
		}
	}
	return none()
}

// applicationDirectoryRule warns on paths containing tool or build
// directory markers.
func applicationDirectoryRule(p pathFacts) (Finding, bool) {
	for _, marker := range appDirMarkers {
		if strings.Contains(p.raw, marker) {
			return warn(warnAppDir)
		}
	}
	return none()
}

func depthRule(p pathFacts) (Finding, bool) {
	if len(p.segments) > maxPathDepth {
		return warn(warnDeepPath)
	}
	return none()
}

// characterRule warns on non-ASCII characters and characters that are
// reserved or fragile in file operations.
func characterRule(p pathFacts) (Finding, bool) {
	for _, c := range p.raw {
		if c > 127 || strings.ContainsRune(`<>:"|?*`, c) {
			return warn(warnBadChars)
		}
	}
	return none()
}

func lengthRule(p pathFacts) (Finding, bool) {
	if len(p.clean) > p.platform.maxPathLength() {
		return warn(warnLongPath)
	}
	return none()
}

// splitSegments splits a path into components, treating both separator
// styles uniformly so rules work on foreign-platform paths.
func splitSegments(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
}

// normalize collapses separator runs and trims trailing separators,
// keeping a lone root intact.
func normalize(path string) string {
	var b strings.Builder
	b.Grow(len(path))
	prevSep := false
	for _, r := range path {
		sep := r == '/' || r == '\\'
		if sep && prevSep {
			continue
		}
		prevSep = sep
		b.WriteRune(r)
	}
	out := b.String()
	for len(out) > 1 && (out[len(out)-1] == '/' || out[len(out)-1] == '\\') {
		out = out[:len(out)-1]
	}
	return out
}

// isAncestor reports whether root equals path or is one of its ancestors,
// comparing component-by-component.
func isAncestor(root, path []string, fold bool) bool {
	if len(path) < len(root) {
		return false
	}
	return sameSegments(path[:len(root)], root, fold)
}

func sameSegments(a, b []string, fold bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if fold {
			if !strings.EqualFold(a[i], b[i]) {
				return false
			}
		} else if a[i] != b[i] {
			return false
		}
	}
	return true
}
