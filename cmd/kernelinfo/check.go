package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-geom/internal/kernel"
	"github.com/cwbudde/algo-geom/internal/kernel/arch/generic"
)

// checkResult is the worst relative deviation of one operation from the
// scalar reference.
type checkResult struct {
	op     string
	maxRel float64
	tol    float64
}

func (r checkResult) ok() bool { return r.maxRel <= r.tol }

type tracker map[string]*checkResult

func (t tracker) observe(op string, tol float64, got, want []float64) {
	r, ok := t[op]
	if !ok {
		r = &checkResult{op: op, tol: tol}
		t[op] = r
	}
	for i := range got {
		d := math.Abs(got[i]-want[i]) / math.Max(1, math.Abs(want[i]))
		if d > r.maxRel || math.IsNaN(d) {
			r.maxRel = d
			if math.IsNaN(d) {
				r.maxRel = math.Inf(1)
			}
		}
	}
}

var checkOrder = []string{
	"Mul4/f32", "Div4/f32", "Scale4/f32", "DivScale4/f32", "Dot4/f32", "MatMul/f32", "MatVec/f32", "Transpose/f32",
	"Mul4/f64", "Div4/f64", "Scale4/f64", "DivScale4/f64", "Dot4/f64", "MatMul/f64", "MatVec/f64", "Transpose/f64",
}

// selfCheck runs the selected backend and the scalar reference on the same
// random inputs.
func selfCheck(rounds int, seed int64) []checkResult {
	rng := rand.New(rand.NewSource(seed))
	next := func() float64 { return rng.Float64()*20 - 10 }
	nonZero := func() float64 {
		for {
			if v := next(); math.Abs(v) > 1e-2 {
				return v
			}
		}
	}
	v64 := func(f func() float64) [4]float64 { return [4]float64{f(), f(), f(), f()} }
	m64 := func() [4][4]float64 { return [4][4]float64{v64(next), v64(next), v64(next), v64(next)} }

	t := tracker{}
	for i := 0; i < rounds; i++ {
		a, b, d := v64(next), v64(next), v64(nonZero)
		s := nonZero()
		l, r := m64(), m64()

		t.observe("Mul4/f64", 1e-15, lanes(kernel.Mul4(a, b)), lanes(generic.Mul4(a, b)))
		t.observe("Div4/f64", 1e-15, lanes(kernel.Div4(a, d)), lanes(generic.Div4(a, d)))
		t.observe("Scale4/f64", 1e-15, lanes(kernel.Scale4(a, s)), lanes(generic.Scale4(a, s)))
		t.observe("DivScale4/f64", 1e-15, lanes(kernel.DivScale4(a, s)), lanes(generic.DivScale4(a, s)))
		t.observe("Dot4/f64", 1e-12, []float64{kernel.Dot4(a, b)}, []float64{generic.Dot4(a, b)})
		t.observe("MatMul/f64", 1e-12, flat(kernel.MatMul(l, r)), flat(generic.MatMul(l, r)))
		t.observe("MatVec/f64", 1e-12, lanes(kernel.MatVec(l, a)), lanes(generic.MatVec(l, a)))
		t.observe("Transpose/f64", 0, flat(kernel.Transpose(l)), flat(generic.Transpose(l)))

		a32, b32, d32 := to32(a), to32(b), to32(d)
		s32 := float32(s)
		l32, r32 := to32m(l), to32m(r)

		t.observe("Mul4/f32", 1e-7, lanes(kernel.Mul4(a32, b32)), lanes(generic.Mul4(a32, b32)))
		t.observe("Div4/f32", 1e-7, lanes(kernel.Div4(a32, d32)), lanes(generic.Div4(a32, d32)))
		t.observe("Scale4/f32", 1e-7, lanes(kernel.Scale4(a32, s32)), lanes(generic.Scale4(a32, s32)))
		t.observe("DivScale4/f32", 1e-7, lanes(kernel.DivScale4(a32, s32)), lanes(generic.DivScale4(a32, s32)))
		t.observe("Dot4/f32", 1e-4, []float64{float64(kernel.Dot4(a32, b32))}, []float64{float64(generic.Dot4(a32, b32))})
		t.observe("MatMul/f32", 1e-4, flat(kernel.MatMul(l32, r32)), flat(generic.MatMul(l32, r32)))
		t.observe("MatVec/f32", 1e-4, lanes(kernel.MatVec(l32, a32)), lanes(generic.MatVec(l32, a32)))
		t.observe("Transpose/f32", 0, flat(kernel.Transpose(l32)), flat(generic.Transpose(l32)))
	}

	out := make([]checkResult, 0, len(checkOrder))
	for _, op := range checkOrder {
		out = append(out, *t[op])
	}
	return out
}

func lanes[T float32 | float64](v [4]T) []float64 {
	return []float64{float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3])}
}

func flat[T float32 | float64](m [4][4]T) []float64 {
	out := make([]float64, 0, 16)
	for c := range m {
		out = append(out, lanes(m[c])...)
	}
	return out
}

func to32(v [4]float64) [4]float32 {
	return [4]float32{float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3])}
}

func to32m(m [4][4]float64) [4][4]float32 {
	return [4][4]float32{to32(m[0]), to32(m[1]), to32(m[2]), to32(m[3])}
}

// printCheck prints the table and reports whether every operation passed.
func printCheck(results []checkResult) bool {
	fmt.Printf("Self-check against scalar reference (backend %s):\n", kernel.Selected().Name)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "Operation\tMax rel. error\tTolerance\tResult\n")
	_, _ = fmt.Fprintf(tw, "---------\t--------------\t---------\t------\n")

	pass := true
	for _, r := range results {
		status := "ok"
		if !r.ok() {
			status = "FAIL"
			pass = false
		}
		_, _ = fmt.Fprintf(tw, "%s\t%.3g\t%.0e\t%s\n", r.op, r.maxRel, r.tol, status)
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}

	if !pass {
		_, _ = fmt.Fprintf(os.Stderr, "error: backend %s disagrees with the scalar reference\n", kernel.Selected().Name)
	}
	return pass
}
