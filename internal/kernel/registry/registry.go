// Package registry provides the backend registry for the geometry kernels.
//
// Each backend (scalar, 128-bit lanes, 256-bit) registers one OpEntry from an
// init() function in its arch package. An entry carries one operation table
// per element width it accelerates, so a (element width, register width) pair
// maps to exactly one set of function pointers. The kernel package asks the
// registry once for the highest-priority entry the CPU supports.
package registry

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-geom/internal/cpu"
)

// Element is the closed set of element types a backend may accelerate.
type Element interface {
	~float32 | ~float64
}

// Ops is the table of vectorizable operations for one element width.
//
// Vectors are passed as one register image ([4]T, lanes x,y,z,w). Matrices
// are passed column-major as [col][row]. Everything is passed by value, so
// no backend ever sees a pointer into caller storage.
type Ops[T Element] struct {
	// Mul4 returns the lane-wise product a[i] * b[i].
	Mul4 func(a, b [4]T) [4]T

	// Div4 returns the lane-wise quotient a[i] / b[i]. Callers guarantee that
	// no lane of b is zero.
	Div4 func(a, b [4]T) [4]T

	// Scale4 returns v[i] * s.
	Scale4 func(v [4]T, s T) [4]T

	// DivScale4 returns v[i] / s. Callers guarantee s != 0.
	DivScale4 func(v [4]T, s T) [4]T

	// Dot4 returns sum(a[i] * b[i]).
	Dot4 func(a, b [4]T) T

	// MatMul returns the 4x4 product l * r.
	MatMul func(l, r [4][4]T) [4][4]T

	// MatVec returns the transform m * v.
	MatVec func(m [4][4]T, v [4]T) [4]T

	// Transpose returns the transpose of m.
	Transpose func(m [4][4]T) [4][4]T
}

// Missing returns the names of the operations that are nil.
func (o *Ops[T]) Missing() []string {
	var missing []string
	if o.Mul4 == nil {
		missing = append(missing, "Mul4")
	}
	if o.Div4 == nil {
		missing = append(missing, "Div4")
	}
	if o.Scale4 == nil {
		missing = append(missing, "Scale4")
	}
	if o.DivScale4 == nil {
		missing = append(missing, "DivScale4")
	}
	if o.Dot4 == nil {
		missing = append(missing, "Dot4")
	}
	if o.MatMul == nil {
		missing = append(missing, "MatMul")
	}
	if o.MatVec == nil {
		missing = append(missing, "MatVec")
	}
	if o.Transpose == nil {
		missing = append(missing, "Transpose")
	}
	return missing
}

// OpEntry represents one registered backend.
type OpEntry struct {
	// Name is a human-readable identifier for this backend (e.g., "avx2", "neon").
	Name string

	// SIMDLevel indicates the SIMD instruction set required for this backend.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible backends exist.
	// Higher priority backends are preferred. Suggested priorities:
	//   - Generic (SIMDNone): 0
	//   - SSE2: 10
	//   - NEON: 15
	//   - AVX2: 20
	Priority int

	// F32 holds the float32 operation table.
	F32 Ops[float32]

	// F64 holds the float64 operation table.
	F64 Ops[float64]
}

// Alignment returns the byte alignment aligned storage needs for this backend:
// the register width of its SIMD level, or the natural float64 alignment for
// the scalar backend.
func (e *OpEntry) Alignment() int {
	if n := e.SIMDLevel.RegisterBytes(); n > 0 {
		return n
	}
	return 8
}

// Validate reports an error naming every missing operation.
func (e *OpEntry) Validate() error {
	f32 := e.F32.Missing()
	f64 := e.F64.Missing()
	if len(f32) == 0 && len(f64) == 0 {
		return nil
	}
	return fmt.Errorf("registry: backend %q missing float32 %v float64 %v", e.Name, f32, f64)
}

// OpRegistry manages the registration and lookup of backends.
//
// Backends register themselves via init() functions. At runtime, Lookup()
// selects the highest-priority backend compatible with the current CPU.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry instance used by the kernel package.
var Global = &OpRegistry{}

// Register adds a backend to the registry.
//
// This function is typically called from init() functions in arch packages.
// It is safe to call concurrently, but all registrations should complete
// before the first call to Lookup().
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup finds the best backend for the given CPU features.
//
// Returns a copy of the highest-priority entry compatible with the CPU, or nil when no
// compatible backend is registered (which means the generic fallback is
// missing from the build).
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, entry := range r.entries {
		if cpu.Supports(features, entry.SIMDLevel) {
			return &entry
		}
	}

	return nil
}

// Find returns a copy of the entry registered under name, or nil.
func (r *OpRegistry) Find(name string) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, entry := range r.entries {
		if entry.Name == name {
			return &entry
		}
	}
	return nil
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *OpRegistry) sortByPriority() {
	// Insertion sort: a build registers at most three or four backends.
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries in registration or
// priority order (priority order once Lookup has run).
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
