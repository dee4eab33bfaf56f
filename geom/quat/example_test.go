package quat

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-geom/geom/vec"
)

func ExampleQuat_Rotate() {
	q := FromAxisAngle(vec.New3(0, 0, 1.0), math.Pi/2)
	v := q.Rotate(vec.New3(1.0, 0, 0))
	fmt.Println(v.ApproxEqual(vec.New3(0, 1.0, 0), 1e-12))
	// Output:
	// true
}

func ExampleQuat_Mul() {
	a := New(0.0, 1, 0, 0)
	b := New(0.0, 0, 1, 0)
	fmt.Println(a.Mul(b))
	// Output:
	// Quat(w=0, x=0, y=0, z=1)
}
