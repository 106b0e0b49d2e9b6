package render

import "github.com/renato0307/kflux/internal/tree"

var glyphs = map[tree.Icon]string{
	tree.IconCloud:          "◯",
	tree.IconCloudFlux:      "◉",
	tree.IconDeployment:     "▣",
	tree.IconKustomization:  "◈",
	tree.IconHelmRelease:    "⎈",
	tree.IconGitRepository:  "⑂",
	tree.IconHelmRepository: "▤",
	tree.IconBucket:         "▥",
	tree.IconFolder:         "□",
	tree.IconLink:           "↗",
	tree.IconWarning:        "!",
}

// Glyph returns the single-cell character for icon, "" for IconNone
func Glyph(icon tree.Icon) string {
	return glyphs[icon]
}
