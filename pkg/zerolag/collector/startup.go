package collector

import (
	"context"

	"github.com/zerolag/zerolag/pkg/zerolag/types"
)

// StartupReader enumerates programs registered to launch at login.
// The scoring engine never branches on platform; it only consumes
// whatever the chosen reader returns, possibly nothing.
type StartupReader interface {
	Read(ctx context.Context) ([]types.StartupItem, error)
}

// NoopStartupReader is the reader for platforms without a supported
// startup-item source. It always reports zero items.
type NoopStartupReader struct{}

// Read returns no items and no error.
func (NoopStartupReader) Read(context.Context) ([]types.StartupItem, error) {
	return nil, nil
}

var _ StartupReader = NoopStartupReader{}
