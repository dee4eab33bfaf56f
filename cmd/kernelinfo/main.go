// Command kernelinfo prints the CPU features and the geometry kernel
// backends compiled into this binary, and checks the selected backend
// against the scalar reference.
//
// Usage:
//
//	kernelinfo [flags]
//
// Examples:
//
//	kernelinfo
//	kernelinfo -force sse2
//	kernelinfo -force generic -rounds 0
//	kernelinfo -rounds 100000 -seed 7
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-geom/internal/cpu"
	"github.com/cwbudde/algo-geom/internal/kernel"
	"github.com/cwbudde/algo-geom/internal/kernel/registry"
)

func main() {
	force := flag.String("force", "", "force a backend by name (see the backend table)")
	rounds := flag.Int("rounds", 1000, "random inputs per operation for the self-check (0 disables it)")
	seed := flag.Int64("seed", 1, "seed for the self-check inputs")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: kernelinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints CPU features, registered kernel backends and the selected one,\n")
		fmt.Fprintf(os.Stderr, "then compares the selected backend against the scalar reference.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  kernelinfo\n")
		fmt.Fprintf(os.Stderr, "  kernelinfo -force sse2\n")
		fmt.Fprintf(os.Stderr, "  kernelinfo -rounds 100000 -seed 7\n")
	}
	flag.Parse()

	if *force != "" {
		if err := forceBackend(strings.ToLower(strings.TrimSpace(*force))); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(2)
		}
	}

	printFeatures(cpu.DetectFeatures())
	printBackends(kernel.Selected())

	if *rounds <= 0 {
		return
	}

	results := selfCheck(*rounds, *seed)
	if !printCheck(results) {
		os.Exit(1)
	}
}

// forceBackend overrides feature detection so that the named backend wins.
func forceBackend(name string) error {
	entry := registry.Global.Find(name)
	if entry == nil {
		var names []string
		for _, e := range registry.Global.ListEntries() {
			names = append(names, e.Name)
		}
		return fmt.Errorf("unknown backend %q (registered: %s)", name, strings.Join(names, ", "))
	}

	cpu.SetForcedFeatures(featuresFor(entry.SIMDLevel))
	kernel.Reselect()

	if got := kernel.Selected().Name; got != name {
		return fmt.Errorf("forcing %q selected %q instead", name, got)
	}
	return nil
}

func featuresFor(level cpu.SIMDLevel) cpu.Features {
	f := cpu.Features{Architecture: cpu.DetectFeatures().Architecture}
	switch level {
	case cpu.SIMDNone:
		f.ForceGeneric = true
	case cpu.SIMDSSE2:
		f.HasSSE2 = true
	case cpu.SIMDAVX:
		f.HasSSE2, f.HasAVX = true, true
	case cpu.SIMDAVX2:
		f.HasSSE2, f.HasAVX, f.HasAVX2 = true, true, true
	case cpu.SIMDAVX512:
		f.HasSSE2, f.HasAVX, f.HasAVX2, f.HasAVX512 = true, true, true, true
	case cpu.SIMDNEON:
		f.HasNEON = true
	}
	return f
}

func printFeatures(f cpu.Features) {
	fmt.Printf("Architecture: %s\n", f.Architecture)
	fmt.Printf("Features:     SSE2=%t AVX=%t AVX2=%t AVX512=%t NEON=%t ForceGeneric=%t\n",
		f.HasSSE2, f.HasAVX, f.HasAVX2, f.HasAVX512, f.HasNEON, f.ForceGeneric)
	fmt.Printf("Widest level: %s\n\n", f.MaxLevel())
}

func printBackends(sel kernel.Backend) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Backend\tLevel\tPriority\tAlignment [bytes]\tSupported\tSelected\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "-------\t-----\t--------\t-----------------\t---------\t--------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	features := cpu.DetectFeatures()
	for _, e := range registry.Global.ListEntries() {
		mark := ""
		if e.Name == sel.Name {
			mark = "*"
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%t\t%s\n",
			e.Name,
			e.SIMDLevel,
			e.Priority,
			e.Alignment(),
			cpu.Supports(features, e.SIMDLevel),
			mark,
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
	fmt.Println()
}
