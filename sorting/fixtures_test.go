package sorting

import (
	"os"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type sortCase struct {
	Name       string `yaml:"name"`
	Input      []int  `yaml:"input"`
	Ascending  []int  `yaml:"ascending"`
	Descending []int  `yaml:"descending"`
}

func loadFixtures(t *testing.T) []sortCase {
	t.Helper()

	data, err := os.ReadFile("testdata/cases.yaml")
	require.NoError(t, err)

	var cases []sortCase

	require.NoError(t, yaml.Unmarshal(data, &cases))
	require.NotEmpty(t, cases)

	return cases
}

// input returns a private copy of the case input, so parallel subtests never
// share a backing array.
func (c sortCase) input() []int {
	return append(make([]int, 0, len(c.Input)), c.Input...)
}

// equalElements compares contents only, so an empty fixture matches both a nil
// and an empty slice.
func equalElements(t *testing.T, want, got []int) {
	t.Helper()

	require.True(t, slices.Equal(want, got), "want %v, got %v", want, got)
}
