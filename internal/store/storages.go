package store

// DefaultProbeCapacity is how many payloads the stand-in server remembers.
const DefaultProbeCapacity = 100

type Storages struct {
	ProbeStorage ProbeStorage
}

// NewStorages builds the in-memory storages. A non-positive capacity means
// [DefaultProbeCapacity].
func NewStorages(capacity int) *Storages {
	return &Storages{
		ProbeStorage: NewMemoryProbeStorage(capacity),
	}
}
