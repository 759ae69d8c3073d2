package scaffold

import (
	"os/exec"
	"os/user"
	"strings"

	"github.com/shellsmith-labs/shellsmith/internal/config"
)

// ResolveAuthor returns the author name for generated scripts. Resolution
// order: explicit value (flag) → configured "author" key (config file or
// SHELLSMITH_AUTHOR) → git's user.name → the invoking account name.
func ResolveAuthor(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if configured := config.Get(config.KeyAuthor); configured != "" {
		return configured
	}
	if name := gitUserName(); name != "" {
		return name
	}
	return accountName()
}

// gitUserName reads git's configured user.name, empty if git is missing or
// the key is unset.
func gitUserName() string {
	out, err := exec.Command("git", "config", "--get", "user.name").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// accountName returns the invoking user's account name.
func accountName() string {
	u, err := user.Current()
	if err != nil || u.Username == "" {
		return "unknown"
	}
	return u.Username
}
