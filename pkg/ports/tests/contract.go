package tests

import (
	"testing"

	"github.com/aretw0/turing/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DefinitionLoaderContractTest is a reusable test suite that verifies if an
// adapter complies with ports.DefinitionLoader.
func DefinitionLoaderContractTest(t *testing.T, loader ports.DefinitionLoader, setupData map[string][]byte) {
	t.Helper()

	t.Run("GetDefinition_Success", func(t *testing.T) {
		for name, expected := range setupData {
			content, err := loader.GetDefinition(name)
			require.NoError(t, err, "getting %s", name)
			assert.Equal(t, string(expected), string(content))
		}
	})

	t.Run("GetDefinition_NotFound", func(t *testing.T) {
		_, err := loader.GetDefinition("non-existent.json")
		assert.Error(t, err)
	})

	t.Run("ListDefinitions", func(t *testing.T) {
		names, err := loader.ListDefinitions()
		require.NoError(t, err)
		assert.Len(t, names, len(setupData))
		assert.IsNonDecreasing(t, names)
		for name := range setupData {
			assert.Contains(t, names, name)
		}
	})
}
