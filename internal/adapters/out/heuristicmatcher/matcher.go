// Package heuristicmatcher suggests inventory products for catalog line items
// using deterministic name similarity. It stands in at the same interface an
// external matching service would implement, so the core never knows which
// one produced a verdict.
package heuristicmatcher

import (
	"context"
	"fmt"
	"strings"

	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/product"
	"procurement/internal/core/domain/services"
)

const (
	// exactMatchConfidence is deliberately below 1.0: only an established
	// mapping may claim full confidence.
	exactMatchConfidence = 0.95

	// categoryBonus rewards candidates sharing the catalog item's category.
	categoryBonus = 0.05

	// minConfidence is the floor under which no suggestion is made at all.
	minConfidence = 0.1
)

// Matcher scores catalog names against inventory product names.
type Matcher struct{}

// NewMatcher creates a name-similarity matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// Match returns the best scoring inventory product for the line item, or an
// empty verdict when nothing in the inventory resembles it.
func (m *Matcher) Match(_ context.Context, item *order.Item, inventory []*product.Product) (services.MatchResult, error) {
	itemTokens := tokenize(item.Name())

	var best *product.Product
	bestScore := 0.0

	for _, candidate := range inventory {
		score := similarity(itemTokens, tokenize(candidate.Name()))
		if score > 0 && strings.EqualFold(item.Category(), candidate.Category()) && candidate.Category() != "" {
			score += categoryBonus
		}
		if score > 1 {
			score = 1
		}
		if score > bestScore {
			best = candidate
			bestScore = score
		}
	}

	if best == nil || bestScore < minConfidence {
		return services.MatchResult{
			Confidence: 0,
			Reason:     "no similar product in inventory",
		}, nil
	}

	productID := best.ID()
	reason := fmt.Sprintf("name similarity with %q", best.Name())
	if normalize(item.Name()) == normalize(best.Name()) {
		bestScore = exactMatchConfidence
		reason = "exact name match"
	}

	return services.MatchResult{
		ProductID:  &productID,
		Confidence: bestScore,
		Reason:     reason,
	}, nil
}

func normalize(name string) string {
	return strings.Join(tokenize(name), " ")
}

// tokenize lowercases the name and splits it into words, dropping
// punctuation so "Huile d'olive" and "huile olive" compare equal.
func tokenize(name string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '\'', ',', '.', '(', ')', '-', '/':
			return ' '
		}
		return r
	}, strings.ToLower(name))

	fields := strings.Fields(cleaned)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		// Articles and prepositions carry no signal.
		switch field {
		case "de", "du", "des", "le", "la", "les", "d", "l", "et":
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}

// similarity is the Jaccard index of the two token sets.
func similarity(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	setA := make(map[string]struct{}, len(a))
	for _, token := range a {
		setA[token] = struct{}{}
	}

	setB := make(map[string]struct{}, len(b))
	intersection := 0
	for _, token := range b {
		if _, dup := setB[token]; dup {
			continue
		}
		setB[token] = struct{}{}
		if _, ok := setA[token]; ok {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}
