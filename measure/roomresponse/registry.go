package roomresponse

import (
	"sync"

	"github.com/sonara/roomresponse/measure/sweep"
)

// Reference is an immutable record describing a decoded reference
// sweep: its raw samples and the sample rate they were captured or
// synthesized at. Reference values are created once at Registry
// construction and never mutated afterward.
type Reference struct {
	ID         string
	Samples    []float64
	SampleRate int
}

// Loader produces the raw samples and sample rate for a catalogue
// entry. Callers backing a reference signal by an on-disk file (or any
// other store) supply a Loader; the registry itself assumes no
// specific storage format beyond "decodable to mono PCM".
type Loader func() (samples []float64, sampleRate int, err error)

// Entry describes one catalogue slot before loading.
type Entry struct {
	ID     string
	Loader Loader
}

// Registry holds decoded reference sweeps keyed by signal id. It is
// immutable after New returns: construction loads every entry in the
// supplied catalogue, and a Loader failure marks that one entry absent
// without failing construction as a whole. Registry is safe for
// concurrent use by multiple Analyze calls; nothing in it is mutated
// post-construction.
type Registry struct {
	refs map[string]Reference
}

// New builds a Registry from the given catalogue entries. Entries
// whose Loader returns an error, or whose Loader is nil, are recorded
// as absent (Get returns false for their id) rather than failing
// construction.
func New(entries []Entry) *Registry {
	r := &Registry{refs: make(map[string]Reference, len(entries))}
	for _, e := range entries {
		if e.Loader == nil {
			continue
		}
		samples, sr, err := e.Loader()
		if err != nil || len(samples) == 0 || sr <= 0 {
			continue
		}
		r.refs[e.ID] = Reference{ID: e.ID, Samples: samples, SampleRate: sr}
	}
	return r
}

// Get returns the reference signal registered under id, and whether it
// was found (and successfully loaded).
func (r *Registry) Get(id string) (Reference, bool) {
	if r == nil {
		return Reference{}, false
	}
	ref, ok := r.refs[id]
	return ref, ok
}

// IDs lists the signal ids currently available in the registry.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.refs))
	for id := range r.refs {
		ids = append(ids, id)
	}
	return ids
}

// defaultCanonicalSweep is shared across the default catalogue's two
// aliases so both ids resolve to byte-identical samples, computed
// once regardless of how many Registries are built in a process.
var defaultCanonicalSweep = sync.OnceValues(func() ([]float64, int, error) {
	s := &sweep.LogSweep{
		StartFreq:  20,
		EndFreq:    20000,
		Duration:   10,
		SampleRate: 44100,
	}
	samples, err := s.Generate()
	if err != nil {
		return nil, 0, err
	}
	return samples, int(s.SampleRate), nil
})

// DefaultCatalogue returns the built-in catalogue: a 10-second,
// 20 Hz-20 kHz exponential sine sweep at 44.1 kHz, synthesized
// in-process (not file-backed) and registered under both the current
// and legacy reference ids so either resolves.
func DefaultCatalogue() []Entry {
	loader := func() ([]float64, int, error) {
		return defaultCanonicalSweep()
	}
	return []Entry{
		{ID: "sine_sweep_20_20k", Loader: loader},
		{ID: "exp_sweep_20_20k_44", Loader: loader},
	}
}

// NewDefaultRegistry builds a Registry from DefaultCatalogue, merged
// with any additional caller-supplied entries (e.g. file-backed
// Loaders for custom reference signals). Caller entries with an id
// already present in the default catalogue take precedence.
func NewDefaultRegistry(extra ...Entry) *Registry {
	entries := DefaultCatalogue()
	entries = append(entries, extra...)
	// Later entries win on id collision, matching map-assignment
	// order in New.
	return New(entries)
}
