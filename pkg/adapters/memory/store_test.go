package memory_test

import (
	"testing"

	"github.com/aymanimtyaz/stateengine/pkg/adapters/memory"
	"github.com/aymanimtyaz/stateengine/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunStateStoreContract(t, store)
}
