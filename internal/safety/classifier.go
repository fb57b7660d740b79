package safety

import "os"

// Classifier evaluates paths against the rule set. It is immutable after
// construction and safe for concurrent use.
type Classifier struct {
	probe    Probe
	platform Platform
	home     string
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithProbe replaces the filesystem probe.
func WithProbe(probe Probe) Option {
	return func(c *Classifier) { c.probe = probe }
}

// WithPlatform fixes the platform identity the rules run against.
func WithPlatform(platform Platform) Option {
	return func(c *Classifier) { c.platform = platform }
}

// WithHome fixes the user home directory. An empty value disables the
// sensitive-directory rule.
func WithHome(home string) Option {
	return func(c *Classifier) { c.home = home }
}

// New creates a classifier. Defaults probe the real filesystem on the
// current platform with the current user's home directory.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		probe:    OSProbe(),
		platform: CurrentPlatform(),
	}
	if home, err := os.UserHomeDir(); err == nil {
		c.home = home
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify produces a safety verdict for a directory path. It never
// fails: unknown or unreadable paths degrade to an unsafe Critical
// verdict rather than an error.
func (c *Classifier) Classify(path string) Verdict {
	info, err := c.probe.Stat(path)
	if err != nil || !info.Exists {
		// Probe faults (e.g. permission denied) are conservatively
		// treated as nonexistent.
		f, _ := block(RiskCritical, reasonNotExist)
		return buildVerdict([]Finding{f})
	}
	if !info.IsDir {
		f, _ := block(RiskCritical, reasonNotDir)
		return buildVerdict([]Finding{f})
	}

	facts := newPathFacts(path, c.platform, c.home)

	var findings []Finding
	for _, rule := range ruleSet {
		f, ok := rule(facts)
		if !ok {
			continue
		}
		findings = append(findings, f)
		if f.Blocking {
			break
		}
	}
	return buildVerdict(findings)
}
