//go:build !windows

package collector

// DefaultStartupReader returns the no-op reader: only Windows has a
// supported startup-item source today.
func DefaultStartupReader() StartupReader {
	return NoopStartupReader{}
}
