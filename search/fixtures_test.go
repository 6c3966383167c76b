package search

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type searchCase struct {
	Name   string `yaml:"name"`
	Input  []int  `yaml:"input"`
	Target int    `yaml:"target"`
	Want   int    `yaml:"want"`
}

type searchFixtures struct {
	Sorted   []searchCase `yaml:"sorted"`
	Unsorted []searchCase `yaml:"unsorted"`
}

func loadFixtures(t *testing.T) searchFixtures {
	t.Helper()

	data, err := os.ReadFile("testdata/cases.yaml")
	require.NoError(t, err)

	var fixtures searchFixtures

	require.NoError(t, yaml.Unmarshal(data, &fixtures))
	require.NotEmpty(t, fixtures.Sorted)
	require.NotEmpty(t, fixtures.Unsorted)

	return fixtures
}
