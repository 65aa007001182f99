// Package service implements the classify service
package service

import (
	"context"
	"sync"

	"langsniff/internal/core/langhint"
	"langsniff/internal/core/normalize"
	perr "langsniff/internal/platform/errors"
	"langsniff/internal/platform/logger"
	"langsniff/internal/services/classify/domain"
)

// Config for the classify service
type Config struct {
	Workers       int     // <= 1 classifies sequentially
	MinConfidence float64 // results below this are undetermined; 0 disables
	MinLetters    int     // units with fewer letters are undetermined; 0 disables
	All           bool    // keep the full ranking on each result
	Multi         bool    // split units into single-language spans
}

// Service implements domain.ClassifierPort
type Service struct {
	Engine domain.EnginePort
	Norm   *normalize.Normalizer
	Cfg    Config
}

// New constructs a new classify service
func New(engine domain.EnginePort, cfg Config) *Service {
	if engine == nil {
		panic("classify service: nil engine")
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.MinConfidence < 0 {
		cfg.MinConfidence = 0
	}
	return &Service{
		Engine: engine,
		Norm:   normalize.New(),
		Cfg:    cfg,
	}
}

// Classify produces the result of one unit. It never fails: a unit the engine
// cannot place is returned undetermined, with an empty code and zero confidence
func (s *Service) Classify(u domain.Unit) domain.Result {
	res := domain.Result{Unit: u}

	if s.Cfg.Multi {
		// spans index into the text exactly as the caller gave it
		if langhint.LongEnough(u.Text, s.Cfg.MinLetters) {
			res.Spans = s.spans(u.Text)
		}
		return res
	}

	text := s.Norm.Normalize(u.Text)
	if text == "" || !langhint.LongEnough(text, s.Cfg.MinLetters) {
		return res
	}

	if s.Cfg.All {
		ranking := s.Engine.Rank(text)
		kept := ranking[:0:0]
		for _, sc := range ranking {
			if sc.Code != "" && sc.Confidence > 0 && sc.Confidence >= s.Cfg.MinConfidence {
				kept = append(kept, sc)
			}
		}
		if len(kept) == 0 {
			return res
		}
		res.Ranking = kept
		res.Code, res.Confidence = kept[0].Code, clamp(kept[0].Confidence)
		return res
	}

	top, ok := s.Engine.Detect(text)
	if !ok || top.Code == "" || top.Confidence <= 0 || top.Confidence < s.Cfg.MinConfidence {
		return res
	}
	res.Code, res.Confidence = top.Code, clamp(top.Confidence)
	return res
}

func (s *Service) spans(text string) []domain.Span {
	out := s.Engine.Spans(text)
	kept := out[:0:0]
	for _, sp := range out {
		if sp.Start < 0 || sp.End > len(text) || sp.Start >= sp.End || sp.Code == "" {
			continue
		}
		sp.Text = text[sp.Start:sp.End]
		kept = append(kept, sp)
	}
	return kept
}

// ClassifyAll classifies units and returns results in the same order as units.
// With more than one worker units run concurrently and land in their index slot.
// A panic inside the engine fails the run with ErrorCodePanic instead of crashing it
func (s *Service) ClassifyAll(ctx context.Context, units []domain.Unit) ([]domain.Result, error) {
	log := logger.Component(ctx, "classify")
	out := make([]domain.Result, len(units))

	if s.Cfg.Workers <= 1 || len(units) < 2 {
		for i, u := range units {
			if err := ctx.Err(); err != nil {
				return nil, perr.Wrap(err, perr.ErrorCodeCanceled, "classification interrupted")
			}
			r, err := s.guarded(u)
			if err != nil {
				return nil, err
			}
			out[i] = r
			trace(log, out[i])
		}
		return out, nil
	}

	sem := make(chan struct{}, s.Cfg.Workers)
	wg := sync.WaitGroup{}
	errs := make([]error, len(units))

	log.Debug().Int("units", len(units)).Int("workers", s.Cfg.Workers).Msg("parallel classification")

	for i := range units {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer func() { <-sem; wg.Done() }()
			if ctx.Err() != nil {
				return
			}
			out[i], errs[i] = s.guarded(units[i])
		}(i)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeCanceled, "classification interrupted")
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	for i := range out {
		trace(log, out[i])
	}
	return out, nil
}

// guarded runs Classify and turns a panic into an error naming the unit
func (s *Service) guarded(u domain.Unit) (r domain.Result, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = perr.PanicErrf("classify unit %d: %v", u.Index, p)
		}
	}()
	return s.Classify(u), nil
}

func trace(log *logger.Logger, r domain.Result) {
	if e := log.Debug(); e.Enabled() {
		p := langhint.Analyze(r.Unit.Text)
		e.Int("unit", r.Unit.Index).
			Str("script", p.Script).
			Int("letters", p.Letters).
			Str("code", r.Code.String()).
			Bool("undetermined", r.Undetermined()).
			Float64("confidence", r.Confidence).
			Int("spans", len(r.Spans)).
			Msg("classified")
	}
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
