package partition

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSchemaNameIsDeterministic(t *testing.T) {
	id := uuid.MustParse("a3bb189e-8bf9-3888-9912-ace4e6543002")
	assert.Equal(t, "ws_a3bb189e8bf938889912ace4e6543002", SchemaName(id))
	assert.Equal(t, SchemaName(id), SchemaName(id))
}

func TestSchemaNameIsSafeForDDL(t *testing.T) {
	for i := 0; i < 50; i++ {
		name := SchemaName(uuid.New())
		assert.True(t, strings.HasPrefix(name, "ws_"))
		assert.Len(t, name, 3+32)
		for _, r := range name[3:] {
			isHex := (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')
			assert.True(t, isHex, "unexpected rune %q in %s", r, name)
		}
	}
}

func TestSchemaNameDistinctPerWorkspace(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		name := SchemaName(uuid.New())
		assert.False(t, seen[name])
		seen[name] = true
	}
}
