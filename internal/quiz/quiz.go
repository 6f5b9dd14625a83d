package quiz

import (
	"errors"
	"fmt"
)

// Package identifiers the quiz can recommend.
const (
	WeddingBasic    = "wedding_basic"
	WeddingPremium  = "wedding_premium"
	PortraitSession = "portrait_session"
	ProductShoot    = "product_shoot"
	WebStarter      = "web_starter"
	WebBusiness     = "web_business"
)

// Question is one multiple-choice step; each option adds fixed weights to
// candidate packages.
type Question struct {
	ID      string
	Options map[string]map[string]int // option id -> package -> weight
}

// Questions is the fixed question order. Tie-breaks resolve to the package
// whose weight appears first in this order, so the order is part of the
// contract.
var Questions = []Question{
	{
		ID: "q1_service",
		Options: map[string]map[string]int{
			"wedding":  {WeddingBasic: 3, WeddingPremium: 3},
			"portrait": {PortraitSession: 3},
			"product":  {ProductShoot: 3},
			"website":  {WebStarter: 3, WebBusiness: 3},
		},
	},
	{
		ID: "q2_budget",
		Options: map[string]map[string]int{
			"low":  {WeddingBasic: 2, PortraitSession: 1, WebStarter: 2},
			"mid":  {WeddingBasic: 1, ProductShoot: 1, WebStarter: 1, WebBusiness: 1},
			"high": {WeddingPremium: 3, WebBusiness: 2},
		},
	},
	{
		ID: "q3_duration",
		Options: map[string]map[string]int{
			"short":  {PortraitSession: 2, ProductShoot: 1},
			"medium": {WeddingBasic: 1, WebStarter: 1},
			"long":   {WeddingPremium: 2, WebBusiness: 1},
		},
	},
	{
		ID: "q4_album",
		Options: map[string]map[string]int{
			"yes": {WeddingPremium: 2, WeddingBasic: 1},
			"no":  {ProductShoot: 1, WebStarter: 1},
		},
	},
	{
		ID: "q5_coverage",
		Options: map[string]map[string]int{
			"photo": {WeddingBasic: 1, PortraitSession: 1},
			"video": {ProductShoot: 1, WebBusiness: 1},
			"both":  {WeddingPremium: 2},
		},
	},
}

// packageOrder fixes accumulation order within a single option, so first
// appearance is well defined even when one option weights several packages.
var packageOrder = []string{
	WeddingBasic,
	WeddingPremium,
	PortraitSession,
	ProductShoot,
	WebStarter,
	WebBusiness,
}

var ErrNoAnswers = errors.New("no answers to score")

// Recommend sums option weights per package over the fixed question order and
// returns the package with the highest total, plus the full score table.
// Questions with no answer are skipped; an unknown option is an error.
func Recommend(answers map[string]string) (string, map[string]int, error) {
	scores := map[string]int{}
	firstSeen := map[string]int{}
	seen := 0
	answered := 0

	for _, q := range Questions {
		opt, ok := answers[q.ID]
		if !ok || opt == "" {
			continue
		}
		weights, ok := q.Options[opt]
		if !ok {
			return "", nil, fmt.Errorf("unknown option %q for %s", opt, q.ID)
		}
		answered++
		for _, pkg := range packageOrder {
			w, ok := weights[pkg]
			if !ok {
				continue
			}
			if _, ok := firstSeen[pkg]; !ok {
				firstSeen[pkg] = seen
				seen++
			}
			scores[pkg] += w
		}
	}

	if answered == 0 {
		return "", nil, ErrNoAnswers
	}

	best := ""
	for pkg, score := range scores {
		if best == "" {
			best = pkg
			continue
		}
		if score > scores[best] || (score == scores[best] && firstSeen[pkg] < firstSeen[best]) {
			best = pkg
		}
	}

	return best, scores, nil
}
