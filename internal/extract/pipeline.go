package extract

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"voxpense/internal/currency"
	"voxpense/internal/model"
)

// Pipeline converts a finalized transcript into an Expense. Parse is pure
// given the read-only registry: no shared mutable state, safe to call
// concurrently from any goroutine.
type Pipeline struct {
	now        func() time.Time
	registry   *currency.Registry
	detector   *currency.Detector
	amounts    *AmountExtractor
	classifier *Classifier
	scorer     *Scorer
	source     model.Source
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithClock injects the capture-time source, used by tests to pin dates.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// WithSource sets the provenance recorded on produced expenses.
func WithSource(source model.Source) Option {
	return func(p *Pipeline) { p.source = source }
}

// WithWeights overrides the confidence indicator weights.
func WithWeights(w Weights) Option {
	return func(p *Pipeline) {
		p.scorer = NewScorer(p.classifier, p.detector, w)
	}
}

// NewPipeline wires the extraction steps over an injected registry. Passing
// a reduced registry makes the pipeline trivially testable.
func NewPipeline(registry *currency.Registry, opts ...Option) *Pipeline {
	detector := currency.NewDetector(registry)
	classifier := NewClassifier()
	p := &Pipeline{
		now:        time.Now,
		registry:   registry,
		detector:   detector,
		amounts:    NewAmountExtractor(registry),
		classifier: classifier,
		scorer:     NewScorer(classifier, detector, DefaultWeights()),
		source:     model.SourceManualVoice,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse runs the full extraction chain: normalize, extract amount, detect
// currency, classify, extract auxiliary fields, validate, assemble. Any
// step failure short-circuits with a typed *Error; the result is never
// partially filled.
func (p *Pipeline) Parse(transcript, locale, defaultCurrency string) (*model.Expense, error) {
	trimmed := strings.TrimSpace(transcript)
	if trimmed == "" {
		return nil, newError(KindEmptyTranscript, "transcript is empty")
	}
	// Matching happens on the lower-cased text; the stored transcript keeps
	// its original casing for audit.
	lowered := strings.ToLower(trimmed)

	amount, err := p.amounts.Extract(lowered)
	if err != nil {
		return nil, err
	}

	code := p.detector.Detect(trimmed, locale, defaultCurrency)
	if !p.registry.Has(code) {
		return nil, newError(KindUnsupportedCurrency, "currency %q is not in the registry", code)
	}

	category := p.classifier.Classify(lowered)
	if category == "" {
		return nil, newError(KindEmptyCategory, "classification produced no category")
	}

	now := p.now()
	score := p.scorer.Score(trimmed)

	expense := &model.Expense{
		ID:              uuid.NewString(),
		Amount:          amount,
		Currency:        code,
		Category:        category,
		Merchant:        ExtractMerchant(trimmed),
		Notes:           ExtractNotes(trimmed),
		TransactionDate: ExtractDate(lowered, now),
		Source:          p.source,
		VoiceTranscript: transcript,
		ConfidenceScore: &score,
	}
	if err := expense.Validate(); err != nil {
		return nil, newError(KindInvalidExpense, "invalid expense: %v", err)
	}

	slog.Debug("parsed transcript",
		"amount", expense.Amount,
		"currency", expense.Currency,
		"category", expense.Category,
		"confidence", score)
	return expense, nil
}

// Confidence exposes the scorer for callers that want the completeness
// score without running a full parse.
func (p *Pipeline) Confidence(transcript string) float64 {
	return p.scorer.Score(transcript)
}
