package normalize

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var updateGolden = flag.Bool("update", false, "regenerate golden test files")

type goldenCase struct {
	Name           string `yaml:"name"`
	Input          string `yaml:"input"`
	RemoveArticles bool   `yaml:"remove_articles"`
	Want           string `yaml:"want"`
}

const goldenPath = "../data/golden/normalize.yaml"

func TestGolden(t *testing.T) {
	if *updateGolden {
		updateGoldenFile(t)
		return
	}

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Skip("golden file not found, run with -update to generate")
		}
		t.Fatalf("reading golden file: %v", err)
	}

	var cases []goldenCase
	require.NoError(t, yaml.Unmarshal(data, &cases), "parsing golden file")

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tc.Input, tc.RemoveArticles); got != tc.Want {
				t.Errorf("Normalize(%q, %v) = %q, want %q", tc.Input, tc.RemoveArticles, got, tc.Want)
			}
		})
	}
}

func updateGoldenFile(t *testing.T) {
	t.Helper()

	data, err := os.ReadFile(goldenPath)
	require.NoError(t, err, "reading golden file for update")

	var cases []goldenCase
	require.NoError(t, yaml.Unmarshal(data, &cases), "parsing golden file for update")

	for i := range cases {
		cases[i].Want = Normalize(cases[i].Input, cases[i].RemoveArticles)
	}

	out, err := yaml.Marshal(cases)
	require.NoError(t, err, "marshaling golden data")
	require.NoError(t, os.WriteFile(goldenPath, out, 0o644), "writing golden file")

	t.Log("golden file updated, review with: git diff data/golden/normalize.yaml")
}
