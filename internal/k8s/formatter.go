package k8s

import (
	"bytes"
	"fmt"

	apimeta "k8s.io/apimachinery/pkg/api/meta"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/cli-runtime/pkg/printers"
)

// FormatYAML prints obj the way `kubectl get -o yaml` does, minus managed
// fields. The object is modified in place.
func FormatYAML(obj runtime.Object) (string, error) {
	if accessor, err := apimeta.Accessor(obj); err == nil {
		accessor.SetManagedFields(nil)
	}

	// TypeSetter fills apiVersion/kind, which typed objects lose on decode
	printer := printers.NewTypeSetter(Scheme).ToPrinter(&printers.YAMLPrinter{})

	var buf bytes.Buffer
	if err := printer.PrintObj(obj, &buf); err != nil {
		return "", fmt.Errorf("failed to print YAML: %w", err)
	}

	return buf.String(), nil
}
