package gitlog

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/dshills/standup/internal/daterange"
)

// Commits returns the author's commits inside the window, one line per
// commit formatted "- <short-hash> <subject>", most recent first (native
// log order). An empty slice means nothing was committed in the window and
// is not an error.
func Commits(author string, w daterange.Window) ([]string, error) {
	out, err := gitOutput("log",
		"--author="+author,
		"--since="+daterange.FormatTime(w.Since),
		"--until="+daterange.FormatTime(w.Until),
		"--pretty=format:- %h %s",
	)
	if err != nil {
		return nil, fmt.Errorf("git log: %w", err)
	}

	var lines []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// DefaultAuthor returns the git user.name configured for the current
// repository, used when no author is given on the command line.
func DefaultAuthor() (string, error) {
	out, err := gitOutput("config", "user.name")
	if err != nil {
		return "", fmt.Errorf("git config user.name: %w", err)
	}
	name := strings.TrimSpace(out)
	if name == "" {
		return "", fmt.Errorf("git user.name is not configured")
	}
	return name, nil
}

// InRepo reports whether the working directory is inside a git repository.
func InRepo() bool {
	_, err := gitOutput("rev-parse", "--git-dir")
	return err == nil
}

func gitOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return string(out), fmt.Errorf("%s: %s", err, string(exitErr.Stderr))
		}
		return "", err
	}
	return string(out), nil
}
