package cli

import (
	"time"

	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/classify"
	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/config"
	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/export"
	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/filter"
	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/results"
)

// load reads and parses the results file at path.
func (a *app) load(path string) (*results.Document, error) {
	start := time.Now()
	doc, err := results.ReadFile(path)
	if err != nil {
		a.logger.Debug("failed to load results", "path", path, "error", err)
		return nil, err
	}
	a.logger.Debug("loaded results", "path", path, "tests", doc.Len(), "elapsed", time.Since(start))
	return doc, nil
}

// verdicts classifies doc and applies the name and language filters. The
// representative of each base name is picked among the tests the filters
// kept, so --language c still reports a.c when a.f90 exists.
func (a *app) verdicts(doc *results.Document) []classify.Verdict {
	opts := a.opts.Classify
	opts.Representative = false
	all := classify.Classify(doc, opts)

	kept := filter.Verdicts(all, a.opts.Criteria)
	if a.opts.Classify.Representative {
		kept = classify.Representatives(kept)
	}
	a.logger.Debug("classified tests", "verdicts", len(all), "kept", len(kept))
	return kept
}

// loadVerdicts is load followed by verdicts.
func (a *app) loadVerdicts(path string) ([]classify.Verdict, error) {
	doc, err := a.load(path)
	if err != nil {
		return nil, err
	}
	return a.verdicts(doc), nil
}

// jsonOutput reports whether results should be printed as JSON.
func (a *app) jsonOutput() bool {
	return a.opts.Format == config.FormatJSON
}

// writeJSON prints value as JSON, filtered through --jq when set.
func (a *app) writeJSON(value any) error {
	return export.WriteJSON(a.out.Out(), value, a.jq)
}
