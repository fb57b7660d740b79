package safety

import "runtime"

// Platform identifies the OS conventions a classification runs against.
// It is an explicit input so the same binary can evaluate every rule set.
type Platform string

const (
	Windows Platform = "windows"
	MacOS   Platform = "macos"
	Linux   Platform = "linux"
	Other   Platform = "other"
)

// CurrentPlatform maps the running OS to a platform identity.
func CurrentPlatform() Platform {
	switch runtime.GOOS {
	case "windows":
		return Windows
	case "darwin":
		return MacOS
	case "linux":
		return Linux
	default:
		return Other
	}
}

// ProtectedDirectories returns a copy of the platform's system
// deny-list for callers that display or serialize it.
func ProtectedDirectories(p Platform) []string {
	dirs := p.systemDirectories()
	out := make([]string, len(dirs))
	copy(out, dirs)
	return out
}

// systemDirectories returns the deny-list of protected roots for the
// platform. Destructive operations under any of these are blocked.
func (p Platform) systemDirectories() []string {
	if p == Windows {
		return windowsSystemDirs
	}
	return posixSystemDirs
}

// maxPathLength returns the length past which paths draw a warning.
// Windows caps at 260 chars without extended-length support, so the
// threshold sits just below it.
func (p Platform) maxPathLength() int {
	if p == Windows {
		return 250
	}
	return 1000
}

// caseInsensitive reports whether path comparisons fold case.
func (p Platform) caseInsensitive() bool {
	return p == Windows
}

var windowsSystemDirs = []string{
	`C:\Windows`,
	`C:\Program Files`,
	`C:\Program Files (x86)`,
	`C:\ProgramData`,
	`C:\System32`,
	`C:\SysWOW64`,
}

var posixSystemDirs = []string{
	"/bin",
	"/sbin",
	"/usr/bin",
	"/usr/sbin",
	"/etc",
	"/boot",
	"/sys",
	"/proc",
	"/dev",
	"/lib",
	"/lib64",
	"/usr/lib",
	"/usr/lib64",
	"/var/log",
}
