package terminal

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Env var name fragments that never cross into a PTY.
var sensitiveEnvFragments = []string{"KEY", "SECRET", "TOKEN", "PASSWORD", "CREDENTIAL", "PRIVATE"}

// sanitizeEnv drops every variable whose name contains a sensitive
// fragment, case-insensitive.
func sanitizeEnv(env []string) []string {
	out := make([]string, 0, len(env))
	for _, kv := range env {
		name, _, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		upper := strings.ToUpper(name)
		leaked := false
		for _, fragment := range sensitiveEnvFragments {
			if strings.Contains(upper, fragment) {
				leaked = true
				break
			}
		}
		if !leaked {
			out = append(out, kv)
		}
	}
	return out
}

// allowedShells is the per-OS shell whitelist.
func allowedShells() []string {
	if runtime.GOOS == "windows" {
		return []string{"powershell.exe", "pwsh.exe", "cmd.exe"}
	}
	return []string{"/bin/bash", "/bin/sh", "/bin/zsh", "/usr/bin/bash", "/usr/bin/zsh", "/usr/bin/fish"}
}

// resolveShell validates a requested shell against the whitelist. An empty
// request picks the first whitelisted shell that exists on disk.
func resolveShell(requested string) (string, error) {
	shells := allowedShells()
	if requested == "" {
		for _, shell := range shells {
			if _, err := os.Stat(shell); err == nil {
				return shell, nil
			}
		}
		return "", fmt.Errorf("no allowed shell found on this host")
	}
	for _, shell := range shells {
		if requested == shell {
			return shell, nil
		}
	}
	return "", fmt.Errorf("shell %q is not allowed", requested)
}
