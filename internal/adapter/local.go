package adapter

import (
	"math/rand/v2"
	"slices"
)

// defaultSuggestions is the bundled offline pool.
var defaultSuggestions = []string{
	"You make the people around you feel heard.",
	"Whatever you're working through right now, you've got this.",
	"Your sense of humour brightens every conversation.",
	"Take a break today, you've earned it.",
	"The way you help others doesn't go unnoticed.",
	"Keep sharing your ideas, they're better than you think.",
	"Someone out there is grateful you exist.",
	"Your kindness is more contagious than you realise.",
	"Proud of how far you've come this year.",
	"Don't forget to drink some water and stretch.",
	"Your playlist recommendations are always on point.",
	"It's okay to slow down sometimes.",
	"Thanks for always being so patient with everyone.",
	"You handle tough days better than most people would.",
}

type localSuggester struct {
	pool []string
}

// NewLocalSuggester returns a [LocalSuggester] over pool. A nil or empty pool
// selects the bundled default pool.
func NewLocalSuggester(pool []string) LocalSuggester {
	if len(pool) == 0 {
		pool = defaultSuggestions
	}
	return &localSuggester{pool: slices.Clone(pool)}
}

// Suggest implements [LocalSuggester] by sampling without replacement.
func (l *localSuggester) Suggest(count int) []string {
	if count <= 0 {
		return []string{}
	}

	picked := slices.Clone(l.pool)
	rand.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})

	if count > len(picked) {
		count = len(picked)
	}
	return picked[:count]
}
