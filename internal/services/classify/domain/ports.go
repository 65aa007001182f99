package domain

import "context"

// EnginePort is the statistical detector. Implementations are built for a fixed
// candidate set and must be safe for concurrent use
type EnginePort interface {
	// Detect returns the top language and its confidence, ok=false when undetermined
	Detect(text string) (top Score, ok bool)

	// Rank returns every candidate ordered by descending confidence
	Rank(text string) []Score

	// Spans splits mixed-language text into contiguous single-language sections
	Spans(text string) []Span
}

// ClassifierPort classifies units in input order
type ClassifierPort interface {
	Classify(unit Unit) Result
	ClassifyAll(ctx context.Context, units []Unit) ([]Result, error)
}

// Ports are dependencies injected into the classify module
type Ports struct {
	Engine EnginePort // optional; the module builds the lingua engine when nil
}
