package extract

import (
	"strings"

	"voxpense/internal/currency"
)

// Weights are the additive indicator weights used by the Scorer. The
// defaults are tuned empirically; callers may override them through
// configuration, but the additive capped structure is fixed.
type Weights struct {
	Digits              float64
	CategoryKeyword     float64
	ActionVerb          float64
	MerchantPreposition float64
	CurrencyIndicator   float64
}

// DefaultWeights returns the standard indicator weights.
func DefaultWeights() Weights {
	return Weights{
		Digits:              0.3,
		CategoryKeyword:     0.3,
		ActionVerb:          0.2,
		MerchantPreposition: 0.1,
		CurrencyIndicator:   0.1,
	}
}

// Scorer produces a [0,1] completeness score for a transcript, independent
// of whether extraction succeeds. It measures how much expense-shaped signal
// the text carries, so a UI can decide whether to ask for confirmation
// before committing. This is not the speech engine's acoustic confidence.
type Scorer struct {
	classifier *Classifier
	detector   *currency.Detector
	weights    Weights
}

// NewScorer builds a scorer that shares the classifier's keyword table and
// the detector's registry, so the score and the pipeline see the same
// signals.
func NewScorer(classifier *Classifier, detector *currency.Detector, weights Weights) *Scorer {
	return &Scorer{classifier: classifier, detector: detector, weights: weights}
}

var actionVerbs = []string{"spent", "paid", "cost", "bought", "purchase"}

var merchantPrepositions = []string{"at", "from", "to"}

// Score sums the indicator weights for the transcript, capped at 1.0.
// Adding an indicator to a transcript never lowers its score.
func (s *Scorer) Score(text string) float64 {
	lowered := strings.ToLower(text)
	score := 0.0

	if strings.ContainsAny(lowered, "0123456789") {
		score += s.weights.Digits
	}
	if _, ok := s.classifier.Match(lowered); ok {
		score += s.weights.CategoryKeyword
	}
	if containsAnyWord(lowered, actionVerbs) {
		score += s.weights.ActionVerb
	}
	if containsAnyWord(lowered, merchantPrepositions) {
		score += s.weights.MerchantPreposition
	}
	if s.detector.Mentions(text) {
		score += s.weights.CurrencyIndicator
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

func containsAnyWord(lowered string, words []string) bool {
	fields := strings.FieldsFunc(lowered, func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
	})
	for _, f := range fields {
		for _, w := range words {
			if f == w {
				return true
			}
			// "purchase" also covers "purchased" and "purchases".
			if w == "purchase" && strings.HasPrefix(f, "purchase") {
				return true
			}
		}
	}
	return false
}
