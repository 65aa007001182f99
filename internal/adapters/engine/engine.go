// Package engine adapts the lingua language detector to the classify domain
package engine

import (
	"fmt"
	"strings"

	"langsniff/internal/core/langcode"
	"langsniff/internal/core/langhint"
	perr "langsniff/internal/platform/errors"
	"langsniff/internal/services/classify/domain"

	"github.com/pemistahl/lingua-go"
)

// Options tune the underlying detector
type Options struct {
	LowAccuracy         bool    // trigram-only models, faster and lighter, worse on short text
	Preload             bool    // load every candidate model up front instead of lazily
	MinRelativeDistance float64 // 0 disables; lingua requires [0, 0.99)
}

// Engine implements domain.EnginePort. The detector is read-only once built
type Engine struct {
	reg  *langcode.Registry
	det  lingua.LanguageDetector
	only langcode.Code // single candidate: no model is consulted
}

// New builds a detector restricted to codes, or over every language when codes is empty.
// Codes must already be resolved by reg. Options lingua rejects are ErrorCodeDetection errors
func New(reg *langcode.Registry, codes []langcode.Code, opt Options) (eng *Engine, err error) {
	langs := reg.Languages(codes)
	if len(langs) == 1 {
		return &Engine{reg: reg, only: reg.CodeOf(langs[0])}, nil
	}

	// the builder panics on invalid settings
	defer func() {
		if r := recover(); r != nil {
			eng, err = nil, perr.Wrapf(fmt.Errorf("%v", r), perr.ErrorCodeDetection,
				"build detector for %d languages", len(langs))
		}
	}()

	var b lingua.LanguageDetectorBuilder
	if len(langs) > 1 {
		b = lingua.NewLanguageDetectorBuilder().FromLanguages(langs...)
	} else {
		b = lingua.NewLanguageDetectorBuilder().FromAllLanguages()
	}
	if opt.LowAccuracy {
		b = b.WithLowAccuracyMode()
	}
	if opt.Preload {
		b = b.WithPreloadedLanguageModels()
	}
	if opt.MinRelativeDistance > 0 {
		b = b.WithMinimumRelativeDistance(opt.MinRelativeDistance)
	}
	return &Engine{reg: reg, det: b.Build()}, nil
}

// Detect implements domain.EnginePort
func (e *Engine) Detect(text string) (domain.Score, bool) {
	if e.only != "" {
		if langhint.LetterCount(text) == 0 {
			return domain.Score{}, false
		}
		return domain.Score{Code: e.only, Confidence: 1}, true
	}
	lang, ok := e.det.DetectLanguageOf(text)
	if !ok {
		return domain.Score{}, false
	}
	code := e.reg.CodeOf(lang)
	if code == "" {
		return domain.Score{}, false
	}
	return domain.Score{Code: code, Confidence: e.det.ComputeLanguageConfidence(text, lang)}, true
}

// Rank implements domain.EnginePort
func (e *Engine) Rank(text string) []domain.Score {
	if e.only != "" {
		if top, ok := e.Detect(text); ok {
			return []domain.Score{top}
		}
		return nil
	}
	values := e.det.ComputeLanguageConfidenceValues(text)
	out := make([]domain.Score, 0, len(values))
	for _, v := range values {
		code := e.reg.CodeOf(v.Language())
		if code == "" {
			continue
		}
		out = append(out, domain.Score{Code: code, Confidence: v.Value()})
	}
	return out
}

// Spans implements domain.EnginePort
func (e *Engine) Spans(text string) []domain.Span {
	if e.only != "" {
		if langhint.LetterCount(text) == 0 {
			return nil
		}
		start := len(text) - len(strings.TrimLeft(text, " \t\r\n"))
		end := len(strings.TrimRight(text, " \t\r\n"))
		return []domain.Span{{Start: start, End: end, Code: e.only}}
	}
	results := e.det.DetectMultipleLanguagesOf(text)
	out := make([]domain.Span, 0, len(results))
	for _, r := range results {
		out = append(out, domain.Span{
			Start: r.StartIndex(),
			End:   r.EndIndex(),
			Code:  e.reg.CodeOf(r.Language()),
		})
	}
	return out
}
