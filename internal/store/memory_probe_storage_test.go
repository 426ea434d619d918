package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/MKhiriev/probe-doctor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func probe(i int) models.ReceivedProbe {
	return models.ReceivedProbe{
		ProbePayload: models.ProbePayload{HypothesisID: fmt.Sprintf("H%d", i)},
	}
}

func ids(probes []models.ReceivedProbe) []string {
	out := make([]string, 0, len(probes))
	for _, p := range probes {
		out = append(out, p.HypothesisID)
	}
	return out
}

func TestMemoryProbeStorage_Empty(t *testing.T) {
	s := NewMemoryProbeStorage(3)

	assert.Equal(t, 0, s.Len())
	list := s.List()
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestMemoryProbeStorage_BelowCapacity(t *testing.T) {
	s := NewMemoryProbeStorage(3)
	s.Add(probe(1))
	s.Add(probe(2))

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"H1", "H2"}, ids(s.List()))
}

func TestMemoryProbeStorage_EvictsOldest(t *testing.T) {
	s := NewMemoryProbeStorage(3)
	for i := 1; i <= 5; i++ {
		s.Add(probe(i))
	}

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"H3", "H4", "H5"}, ids(s.List()))
}

func TestMemoryProbeStorage_ExactlyFull(t *testing.T) {
	s := NewMemoryProbeStorage(2)
	s.Add(probe(1))
	s.Add(probe(2))

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"H1", "H2"}, ids(s.List()))
}

// TestMemoryProbeStorage_ListIsACopy verifies that callers cannot modify the
// stored ring through the returned slice.
func TestMemoryProbeStorage_ListIsACopy(t *testing.T) {
	s := NewMemoryProbeStorage(2)
	s.Add(probe(1))

	list := s.List()
	list[0].HypothesisID = "changed"

	assert.Equal(t, []string{"H1"}, ids(s.List()))
}

func TestMemoryProbeStorage_DefaultCapacity(t *testing.T) {
	s := NewMemoryProbeStorage(0)
	for i := 0; i < DefaultProbeCapacity+10; i++ {
		s.Add(probe(i))
	}

	assert.Equal(t, DefaultProbeCapacity, s.Len())
	assert.Equal(t, "H10", s.List()[0].HypothesisID)
}

func TestMemoryProbeStorage_Concurrent(t *testing.T) {
	s := NewMemoryProbeStorage(10)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Add(probe(i))
			_ = s.List()
		}(i)
	}
	wg.Wait()

	require.Equal(t, 10, s.Len())
	assert.Len(t, s.List(), 10)
}

func TestNewStorages(t *testing.T) {
	st := NewStorages(5)
	require.NotNil(t, st.ProbeStorage)
	assert.Equal(t, 0, st.ProbeStorage.Len())
}
