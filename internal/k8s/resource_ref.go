package k8s

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// URIScheme prefixes every resource locator
const URIScheme = "kflux"

const uriSuffix = ".yaml"

// ErrInvalidResourceURI is returned by ParseResourceURI
var ErrInvalidResourceURI = errors.New("invalid resource uri")

// ResourceRef identifies one object on one cluster
type ResourceRef struct {
	Context   string
	Namespace string
	Kind      string
	Name      string
}

// URI renders the locator kflux://<context>/<namespace>/<kind>/<name>.yaml.
// Segments are path-escaped so context names with slashes or colons survive.
func (r ResourceRef) URI() string {
	return fmt.Sprintf("%s://%s/%s/%s/%s%s",
		URIScheme,
		url.PathEscape(r.Context),
		url.PathEscape(r.Namespace),
		url.PathEscape(r.Kind),
		url.PathEscape(r.Name),
		uriSuffix,
	)
}

func (r ResourceRef) String() string {
	if r.Namespace == "" {
		return fmt.Sprintf("%s/%s", r.Kind, r.Name)
	}
	return fmt.Sprintf("%s/%s/%s", r.Kind, r.Namespace, r.Name)
}

// ParseResourceURI is the inverse of ResourceRef.URI
func ParseResourceURI(uri string) (ResourceRef, error) {
	rest, ok := strings.CutPrefix(uri, URIScheme+"://")
	if !ok {
		return ResourceRef{}, fmt.Errorf("%w: missing %s:// prefix: %q", ErrInvalidResourceURI, URIScheme, uri)
	}
	rest, ok = strings.CutSuffix(rest, uriSuffix)
	if !ok {
		return ResourceRef{}, fmt.Errorf("%w: missing %s suffix: %q", ErrInvalidResourceURI, uriSuffix, uri)
	}

	parts := strings.Split(rest, "/")
	if len(parts) != 4 {
		return ResourceRef{}, fmt.Errorf("%w: expected 4 segments, got %d: %q", ErrInvalidResourceURI, len(parts), uri)
	}

	segments := make([]string, len(parts))
	for i, p := range parts {
		s, err := url.PathUnescape(p)
		if err != nil {
			return ResourceRef{}, fmt.Errorf("%w: %v", ErrInvalidResourceURI, err)
		}
		segments[i] = s
	}

	ref := ResourceRef{
		Context:   segments[0],
		Namespace: segments[1],
		Kind:      segments[2],
		Name:      segments[3],
	}
	if ref.Kind == "" || ref.Name == "" {
		return ResourceRef{}, fmt.Errorf("%w: kind and name are required: %q", ErrInvalidResourceURI, uri)
	}
	return ref, nil
}
