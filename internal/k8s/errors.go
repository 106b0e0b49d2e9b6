package k8s

import (
	"context"
	"errors"
	"net"
	"strings"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	apimeta "k8s.io/apimachinery/pkg/api/meta"
)

// Coarse error reasons attached to log records when a failure is swallowed
const (
	ReasonForbidden    = "forbidden"
	ReasonUnauthorized = "unauthorized"
	ReasonNotFound     = "not_found"
	ReasonNetwork      = "network"
	ReasonInternal     = "internal"
)

// Reason classifies err for logging. It returns "" for a nil error.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case apierrors.IsForbidden(err):
		return ReasonForbidden
	case apierrors.IsUnauthorized(err):
		return ReasonUnauthorized
	case IsNotFound(err):
		return ReasonNotFound
	case IsNetworkError(err):
		return ReasonNetwork
	default:
		return ReasonInternal
	}
}

// IsNotFound reports a missing object, a missing kind or an unknown context
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	return apierrors.IsNotFound(err) ||
		apimeta.IsNoMatchError(err) ||
		errors.Is(err, ErrContextNotFound)
}

// IsNetworkError reports connection failures and timeouts
func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) ||
		apierrors.IsTimeout(err) ||
		apierrors.IsServerTimeout(err) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "network is unreachable") ||
		strings.Contains(msg, "i/o timeout")
}
