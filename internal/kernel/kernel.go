package kernel

import (
	"sync"

	"github.com/cwbudde/algo-geom/internal/cpu"
	"github.com/cwbudde/algo-geom/internal/kernel/registry"
)

var (
	selected     *registry.OpEntry
	selectedOnce sync.Once
	selectedMu   sync.RWMutex
)

func initSelected() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("kernel: no backend registered (missing generic fallback?)")
	}
	if err := entry.Validate(); err != nil {
		panic("kernel: " + err.Error())
	}
	selected = entry
}

func backend() *registry.OpEntry {
	selectedMu.RLock()
	defer selectedMu.RUnlock()

	selectedOnce.Do(initSelected)
	return selected
}

// Backend describes the selected backend.
type Backend struct {
	Name      string
	SIMDLevel cpu.SIMDLevel
	// Alignment is the byte alignment of one register image for aligned
	// vector storage under this backend.
	Alignment int
}

// Selected returns the backend the float32/float64 kernels dispatch to.
func Selected() Backend {
	e := backend()
	return Backend{Name: e.Name, SIMDLevel: e.SIMDLevel, Alignment: e.Alignment()}
}

// Reselect drops the cached backend so the next call resolves it again from
// cpu.DetectFeatures(). It is meant for tests and the kernelinfo command,
// which force features with cpu.SetForcedFeatures; it must not race with
// kernel calls that are expected to see one fixed backend.
func Reselect() {
	selectedMu.Lock()
	defer selectedMu.Unlock()

	selected = nil
	selectedOnce = sync.Once{}
}
