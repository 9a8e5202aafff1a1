package tui

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// clipboardTools lists copy commands per OS, in order of preference.
var clipboardTools = map[string][][]string{
	"darwin": {{"pbcopy"}},
	"linux": {
		{"wl-copy"},
		{"xclip", "-selection", "clipboard"},
		{"xsel", "--clipboard", "--input"},
	},
	"windows": {{"clip"}},
}

// copyToClipboard copies text to the system clipboard using the first
// available tool.
func copyToClipboard(text string) error {
	tools, ok := clipboardTools[runtime.GOOS]
	if !ok {
		return fmt.Errorf("clipboard not supported on %s", runtime.GOOS)
	}

	for _, t := range tools {
		if _, err := exec.LookPath(t[0]); err != nil {
			continue
		}
		cmd := exec.Command(t[0], t[1:]...)
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("clipboard: %w", err)
		}
		return nil
	}

	return fmt.Errorf("no clipboard tool found (tried %s)", toolNames(tools))
}

func toolNames(tools [][]string) string {
	names := make([]string, len(tools))
	for i, t := range tools {
		names[i] = t[0]
	}
	return strings.Join(names, ", ")
}
