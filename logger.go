package variant

import (
	"go.uber.org/zap"

	"github.com/wippyai/variant/alt"
	"github.com/wippyai/variant/lifecycle"
)

// SetLogger configures the logger of the packages that build shared
// per-instantiation state. This must be called before any variant is used.
func SetLogger(l *zap.Logger) {
	alt.SetLogger(l)
	lifecycle.SetLogger(l)
}
