package memory_test

import (
	"testing"

	"github.com/MarkBJohnsAdmin/distribution/pkg/adapters/memory"
	"github.com/MarkBJohnsAdmin/distribution/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunResultStoreContract(t, memory.New())
}
