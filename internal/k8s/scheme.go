package k8s

import (
	"fmt"

	helmv2 "github.com/fluxcd/helm-controller/api/v2"
	kustomizev1 "github.com/fluxcd/kustomize-controller/api/v1"
	sourcev1 "github.com/fluxcd/source-controller/api/v1"
	appsv1 "k8s.io/api/apps/v1"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// Scheme knows the core types, CRDs and the Flux toolkit APIs
var Scheme = runtime.NewScheme()

func init() {
	utilruntime.Must(clientgoscheme.AddToScheme(Scheme))
	utilruntime.Must(apiextensionsv1.AddToScheme(Scheme))
	utilruntime.Must(kustomizev1.AddToScheme(Scheme))
	utilruntime.Must(helmv2.AddToScheme(Scheme))
	utilruntime.Must(sourcev1.AddToScheme(Scheme))
}

// kindRegistry maps the kinds that appear in resource locators to their
// API group version
var kindRegistry = map[string]schema.GroupVersionKind{
	KindKustomization:  kustomizev1.GroupVersion.WithKind(KindKustomization),
	KindHelmRelease:    helmv2.GroupVersion.WithKind(KindHelmRelease),
	KindGitRepository:  sourcev1.GroupVersion.WithKind(KindGitRepository),
	KindHelmRepository: sourcev1.GroupVersion.WithKind(KindHelmRepository),
	KindBucket:         sourcev1.GroupVersion.WithKind(KindBucket),
	KindDeployment:     appsv1.SchemeGroupVersion.WithKind(KindDeployment),
}

// newObjectForKind returns an empty typed object for a locator kind
func newObjectForKind(kind string) (client.Object, error) {
	gvk, ok := kindRegistry[kind]
	if !ok {
		return nil, fmt.Errorf("unsupported kind %q", kind)
	}

	obj, err := Scheme.New(gvk)
	if err != nil {
		return nil, fmt.Errorf("failed to create object for %s: %w", gvk, err)
	}

	cobj, ok := obj.(client.Object)
	if !ok {
		return nil, fmt.Errorf("unexpected object type: %T", obj)
	}
	return cobj, nil
}
