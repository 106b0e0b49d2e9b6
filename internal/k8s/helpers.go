package k8s

import "sort"

// sortResources orders items by namespace then name so that rebuilding a
// tree from the same data yields the same tree
func sortResources[T Resource](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].GetNamespace() != items[j].GetNamespace() {
			return items[i].GetNamespace() < items[j].GetNamespace()
		}
		return items[i].GetName() < items[j].GetName()
	})
}

// sourceKindOrder is the order source groups are returned in
var sourceKindOrder = map[string]int{
	KindGitRepository:  0,
	KindHelmRepository: 1,
	KindBucket:         2,
}

// sortSources groups sources by kind, then sorts each group like sortResources
func sortSources(items []Source) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Kind != items[j].Kind {
			return sourceKindOrder[items[i].Kind] < sourceKindOrder[items[j].Kind]
		}
		if items[i].Namespace != items[j].Namespace {
			return items[i].Namespace < items[j].Namespace
		}
		return items[i].Name < items[j].Name
	})
}
