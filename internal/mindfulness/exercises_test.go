package mindfulness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogFilter(t *testing.T) {
	all := Catalog("")
	assert.Len(t, all, 12)

	counts := map[ExerciseType]int{}
	for _, e := range all {
		counts[e.Type]++
		assert.NotEmpty(t, e.ID)
		assert.NotEmpty(t, e.Content)
	}
	assert.Equal(t, 3, counts[ExerciseBreathing])
	assert.Equal(t, 4, counts[ExerciseReflection])
	assert.Equal(t, 5, counts[ExerciseQuote])

	breathing := Catalog(ExerciseBreathing)
	assert.Len(t, breathing, 3)
	for _, e := range breathing {
		assert.Equal(t, ExerciseBreathing, e.Type)
	}

	assert.Empty(t, Catalog("yoga"))
}
