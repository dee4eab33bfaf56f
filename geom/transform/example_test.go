package transform

import (
	"fmt"

	"github.com/cwbudde/algo-geom/geom/mat"
	"github.com/cwbudde/algo-geom/geom/vec"
)

func ExampleTranslate() {
	m := Translate(mat.Identity[float64](), vec.New3(1.0, 2.0, 3.0))
	fmt.Println(m.MulVec4(vec.Point4(1.0, 1.0, 1.0)))
	// Output:
	// Vec4(2, 3, 4, 1)
}
