package tree

import (
	"github.com/renato0307/kflux/internal/k8s"
	"github.com/renato0307/kflux/internal/logging"
)

// swallow logs a collaborator failure that the tree turns into an empty
// result. Missing kinds and objects are expected (no Flux) and stay at debug.
func swallow(op string, err error, attrs ...any) {
	reason := k8s.Reason(err)
	args := append([]any{"op", op, "reason", reason, "error", err}, attrs...)

	if reason == k8s.ReasonNotFound {
		logging.Debug("tree fetch failed", args...)
		return
	}
	logging.Warn("tree fetch failed", args...)
}
