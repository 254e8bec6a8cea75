package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategories(t *testing.T) {
	got, err := parseCategories("high=1,2,3;low=4, 5")
	require.NoError(t, err)
	assert.Equal(t, map[string][]int{
		"high": {1, 2, 3},
		"low":  {4, 5},
	}, got)
}

func TestParseCategories_Empty(t *testing.T) {
	got, err := parseCategories("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseCategories_Invalid(t *testing.T) {
	_, err := parseCategories("high")
	assert.Error(t, err)
	_, err = parseCategories("high=1,x")
	assert.Error(t, err)
}
