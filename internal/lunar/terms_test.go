package lunar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermsForYear(t *testing.T) {
	terms, err := TermsForYear(2025)
	require.NoError(t, err)
	require.Len(t, terms, 24)

	for i, term := range terms {
		assert.Equal(t, 2025, term.Date.Year())
		assert.NotEmpty(t, term.Name)
		if i > 0 {
			assert.True(t, terms[i-1].Date.Before(term.Date), "terms must be ordered by date")
		}
	}

	names := make(map[string]time.Time, len(terms))
	for _, term := range terms {
		names[term.Name] = term.Date
	}
	require.Len(t, names, 24, "term names must be unique")

	// Boundary terms must carry their proper names, not table aliases.
	assert.Contains(t, names, "冬至")
	assert.Contains(t, names, "小寒")
	assert.Contains(t, names, "清明")

	assert.Equal(t, time.December, names["冬至"].Month())
	assert.Equal(t, time.January, names["小寒"].Month())
	assert.Equal(t, time.April, names["清明"].Month())
}

func TestTermsForYearOutOfRange(t *testing.T) {
	_, err := TermsForYear(1899)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = TermsForYear(2101)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
