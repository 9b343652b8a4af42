package summary

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/classify"
	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/results"
)

// ComparisonRow pairs the counts of one language across two documents.
type ComparisonRow struct {
	Language classify.Language `json:"language"`
	PassA    int               `json:"pass_a"`
	PassB    int               `json:"pass_b"`
	TotalA   int               `json:"total_a"`
	TotalB   int               `json:"total_b"`
}

// Delta is the change in passing tests from the first document to the second.
func (r ComparisonRow) Delta() int {
	return r.PassB - r.PassA
}

// Comparison holds side-by-side pass counts of two independently summarized
// documents. Test identities are never matched across documents.
type Comparison struct {
	Mode Mode            `json:"mode"`
	Rows []ComparisonRow `json:"rows"`
}

// Compare pairs two summaries by language. Languages present in either
// summary are listed in canonical order.
func Compare(a, b Summary) Comparison {
	cmp := Comparison{Mode: a.Mode, Rows: []ComparisonRow{}}
	for _, lang := range classify.Languages() {
		sa, okA := a.Language(lang)
		sb, okB := b.Language(lang)
		if !okA && !okB {
			continue
		}
		cmp.Rows = append(cmp.Rows, ComparisonRow{
			Language: lang,
			PassA:    sa.Pass,
			PassB:    sb.Pass,
			TotalA:   sa.Total,
			TotalB:   sb.Total,
		})
	}
	return cmp
}

// VerdictFunc turns a parsed document into the verdicts to be summarized.
type VerdictFunc func(doc *results.Document) []classify.Verdict

// CompareDocuments classifies and summarizes two documents concurrently and
// pairs the results. The two pipelines share no state.
func CompareDocuments(ctx context.Context, a, b *results.Document, verdicts VerdictFunc, mode Mode) (Comparison, [2]Summary, error) {
	var sums [2]Summary
	g, ctx := errgroup.WithContext(ctx)
	for i, doc := range []*results.Document{a, b} {
		i, doc := i, doc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sums[i] = Summarize(verdicts(doc), mode)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Comparison{}, sums, err
	}
	return Compare(sums[0], sums[1]), sums, nil
}
