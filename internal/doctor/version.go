package doctor

import (
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// versionRe extracts the first dotted version number from tool output,
// e.g. "5.2.21" from "GNU bash, version 5.2.21(1)-release".
var versionRe = regexp.MustCompile(`\d+\.\d+(\.\d+)?`)

// toolVersion runs "<tool> --version" and extracts a version number from the
// first line of output.
func toolVersion(tool string) (string, error) {
	out, err := exec.Command(tool, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("running %s --version: %w", tool, err)
	}
	firstLine := strings.SplitN(string(out), "\n", 2)[0]
	match := versionRe.FindString(firstLine)
	if match == "" {
		return "", fmt.Errorf("no version number in %q", firstLine)
	}
	return match, nil
}

// MeetsMinVersion reports whether version satisfies ">= min" under semver
// comparison. Both arguments tolerate a leading "v" and short forms ("4.0").
func MeetsMinVersion(version, min string) (bool, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", version, err)
	}
	c, err := semver.NewConstraint(">= " + strings.TrimPrefix(min, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing minimum version %q: %w", min, err)
	}
	return c.Check(v), nil
}
