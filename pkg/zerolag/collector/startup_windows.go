//go:build windows

package collector

import (
	"context"

	"golang.org/x/sys/windows/registry"

	"github.com/zerolag/zerolag/pkg/zerolag/types"
)

// registryStartupReader reads the common Run keys where Windows
// registers login-launch programs.
type registryStartupReader struct{}

// DefaultStartupReader returns the Windows registry reader.
func DefaultStartupReader() StartupReader {
	return registryStartupReader{}
}

type runKeyLocation struct {
	scope string
	root  registry.Key
	path  string
}

var runKeyLocations = []runKeyLocation{
	{"HKCU", registry.CURRENT_USER, `Software\Microsoft\Windows\CurrentVersion\Run`},
	{"HKLM", registry.LOCAL_MACHINE, `Software\Microsoft\Windows\CurrentVersion\Run`},
	{"HKLM", registry.LOCAL_MACHINE, `Software\Wow6432Node\Microsoft\Windows\CurrentVersion\Run`},
}

// Read enumerates the Run keys. Locations that refuse access are
// skipped rather than failing the whole read.
func (registryStartupReader) Read(ctx context.Context) ([]types.StartupItem, error) {
	var items []types.StartupItem
	for _, loc := range runKeyLocations {
		if err := ctx.Err(); err != nil {
			return items, err
		}

		key, err := registry.OpenKey(loc.root, loc.path, registry.QUERY_VALUE)
		if err != nil {
			logger.Debug("startup registry key unavailable",
				"scope", loc.scope, "path", loc.path, "error", err)
			continue
		}

		names, err := key.ReadValueNames(-1)
		if err != nil {
			_ = key.Close()
			continue
		}
		for _, name := range names {
			command, _, err := key.GetStringValue(name)
			if err != nil {
				continue
			}
			items = append(items, types.StartupItem{
				Scope:   loc.scope,
				Name:    name,
				Command: command,
			})
		}
		_ = key.Close()
	}
	return items, nil
}
