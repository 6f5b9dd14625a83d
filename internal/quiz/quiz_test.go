package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommendWeddingPremium(t *testing.T) {
	answers := map[string]string{
		"q1_service":  "wedding",
		"q2_budget":   "high",
		"q3_duration": "long",
		"q4_album":    "yes",
		"q5_coverage": "both",
	}

	pkg, scores, err := Recommend(answers)
	assert.NoError(t, err)
	assert.Equal(t, WeddingPremium, pkg)
	assert.Equal(t, 12, scores[WeddingPremium])
	assert.Greater(t, scores[WeddingPremium], scores[WeddingBasic])
}

func TestRecommendAccumulationIsOrderIndependent(t *testing.T) {
	answers := map[string]string{
		"q1_service":  "website",
		"q2_budget":   "mid",
		"q3_duration": "medium",
		"q4_album":    "no",
		"q5_coverage": "video",
	}

	// Same multiset of answers must always produce the same totals; run it
	// repeatedly since map iteration order varies between runs.
	_, want, err := Recommend(answers)
	assert.NoError(t, err)
	for i := 0; i < 50; i++ {
		pkg, got, err := Recommend(answers)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
		assert.NotEmpty(t, pkg)
	}
}

func TestRecommendTieBreaksToFirstSeen(t *testing.T) {
	// q1 "wedding" gives both wedding packages 3 points and nothing else
	// distinguishes them; wedding_basic appears first in the accumulation
	// order and must win the tie every time.
	answers := map[string]string{"q1_service": "wedding"}

	for i := 0; i < 50; i++ {
		pkg, scores, err := Recommend(answers)
		assert.NoError(t, err)
		assert.Equal(t, scores[WeddingBasic], scores[WeddingPremium])
		assert.Equal(t, WeddingBasic, pkg)
	}
}

func TestRecommendSkipsUnansweredQuestions(t *testing.T) {
	pkg, _, err := Recommend(map[string]string{
		"q1_service":  "portrait",
		"q3_duration": "short",
	})
	assert.NoError(t, err)
	assert.Equal(t, PortraitSession, pkg)
}

func TestRecommendEmptyAnswers(t *testing.T) {
	_, _, err := Recommend(map[string]string{})
	assert.ErrorIs(t, err, ErrNoAnswers)

	_, _, err = Recommend(nil)
	assert.ErrorIs(t, err, ErrNoAnswers)
}

func TestRecommendUnknownOption(t *testing.T) {
	_, _, err := Recommend(map[string]string{"q1_service": "skydiving"})
	assert.Error(t, err)
}
