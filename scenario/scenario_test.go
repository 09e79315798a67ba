package scenario_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfdl-go/runtime/scenario"
)

func TestSeedSuitePasses(t *testing.T) {
	f, err := os.Open("testdata/seeds.yaml")
	require.NoError(t, err)
	defer f.Close()

	suite, err := scenario.Load(f)
	require.NoError(t, err)
	require.Len(t, suite.Cases, 10)

	for _, result := range suite.Run() {
		assert.Truef(t, result.Pass, "%s: %s", result.Case.Name, result.Detail)
	}
}

func TestUnknownSchemaFailsCleanly(t *testing.T) {
	suite := &scenario.Suite{Cases: []scenario.Case{{Name: "bogus", Schema: "does-not-exist", WireHex: ""}}}
	results := suite.Run()
	require.Len(t, results, 1)
	assert.False(t, results[0].Pass)
}
