package goldmark

import (
	"fmt"

	"github.com/yaklabco/mdblock/pkg/classify"
)

// Disagreement kinds.
const (
	DisagreeRuleCount  = "rule-count"
	DisagreeFenceCount = "fence-count"
	DisagreeFenceInfo  = "fence-info"
)

// Disagreement is one difference between the classifier and goldmark.
type Disagreement struct {
	Path string `json:"path"`

	// Line is the classifier's line for the difference, or 0 for whole-file counts.
	Line int `json:"line,omitempty"`

	Kind       string `json:"kind"`
	Classifier string `json:"classifier"`
	Goldmark   string `json:"goldmark"`
}

// String formats the disagreement as "path:line: kind: classifier=X goldmark=Y".
func (d Disagreement) String() string {
	loc := d.Path
	if d.Line > 0 {
		loc = fmt.Sprintf("%s:%d", d.Path, d.Line)
	}
	return fmt.Sprintf("%s: %s: classifier=%s goldmark=%s", loc, d.Kind, d.Classifier, d.Goldmark)
}

// Compare lists the differences between a classified document and a goldmark census.
// Fences are compared pairwise in document order.
func Compare(doc *classify.Document, census *Census) []Disagreement {
	var out []Disagreement

	if rules := doc.Counts[classify.KindRule]; rules != census.ThematicBreaks {
		out = append(out, Disagreement{
			Path:       doc.Path,
			Kind:       DisagreeRuleCount,
			Classifier: fmt.Sprint(rules),
			Goldmark:   fmt.Sprint(census.ThematicBreaks),
		})
	}

	if len(doc.Fences) != len(census.Fences) {
		out = append(out, Disagreement{
			Path:       doc.Path,
			Kind:       DisagreeFenceCount,
			Classifier: fmt.Sprint(len(doc.Fences)),
			Goldmark:   fmt.Sprint(len(census.Fences)),
		})
	}

	for i := range min(len(doc.Fences), len(census.Fences)) {
		ours, theirs := doc.Fences[i], census.Fences[i]
		if ours.Info == theirs.Info {
			continue
		}
		out = append(out, Disagreement{
			Path:       doc.Path,
			Line:       ours.OpenLine,
			Kind:       DisagreeFenceInfo,
			Classifier: fmt.Sprintf("%q", ours.Info),
			Goldmark:   fmt.Sprintf("%q", theirs.Info),
		})
	}

	return out
}
