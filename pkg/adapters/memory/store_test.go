package memory_test

import (
	"testing"

	"github.com/aretw0/finite/pkg/adapters/memory"
	"github.com/aretw0/finite/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunStoreContract(t, store)
}
