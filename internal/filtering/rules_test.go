package filtering

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/twich/internal/domain/entity"
)

func TestDefaultRuleSet(t *testing.T) {
	rs := DefaultRuleSet()

	require.Len(t, rs.Block, len(DefaultBlockPatterns))
	for i, rule := range rs.Block {
		assert.Equal(t, DefaultBlockPatterns[i], rule.Pattern())
	}

	require.Len(t, rs.Sanitize, len(DefaultSanitizeSelectors))
	for i, rule := range rs.Sanitize {
		assert.Equal(t, DefaultSanitizeSelectors[i], rule.Selector())
	}
}

func TestBuildRuleSet_AppendsExtrasAndDropsDuplicates(t *testing.T) {
	rs, err := BuildRuleSet(
		[]string{"https://tracker.example/pixel*", "*://*.doubleclick.net/*"},
		[]string{".overlay-ad", "  [class*=banner]  "},
	)
	require.NoError(t, err)

	require.Len(t, rs.Block, len(DefaultBlockPatterns)+1)
	assert.Equal(t, "https://tracker.example/pixel*", rs.Block[len(rs.Block)-1].Pattern())

	require.Len(t, rs.Sanitize, len(DefaultSanitizeSelectors)+1)
	assert.Equal(t, ".overlay-ad", rs.Sanitize[len(rs.Sanitize)-1].Selector())
}

func TestBuildRuleSet_ReportsEveryInvalidEntry(t *testing.T) {
	_, err := BuildRuleSet(
		[]string{"no-scheme.example", "https:///path"},
		[]string{"div[", "   "},
	)
	require.Error(t, err)

	assert.True(t, errors.Is(err, ErrInvalidRuleSet))
	assert.True(t, errors.Is(err, entity.ErrInvalidBlockPattern))
	assert.True(t, errors.Is(err, entity.ErrInvalidSelector))
	assert.Contains(t, err.Error(), "no-scheme.example")
	assert.Contains(t, err.Error(), "https:///path")
	assert.Contains(t, err.Error(), "div[")
}
