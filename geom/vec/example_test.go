package vec

import "fmt"

func ExampleVec3_Cross() {
	a := New3(1.0, 2.0, 3.0)
	b := New3(4.0, 5.0, 6.0)
	fmt.Println(a.Dot(b), a.Cross(b))
	// Output:
	// 32 Vec3(-3, 6, -3)
}

func ExampleVec4_DivScalar() {
	v := New4(1.0, 2.0, 3.0, 4.0)
	fmt.Println(v.DivScalar(2))
	fmt.Println(v.DivScalar(0))
	// Output:
	// Vec4(0.5, 1, 1.5, 2)
	// Vec4(0, 0, 0, 0)
}

func ExampleVec3A_Normalized() {
	v := NewA3[float32](0, 3, 4)
	fmt.Println(v.Normalized())
	fmt.Println(Vec3A[float32]{}.Normalized())
	// Output:
	// Vec3A(0, 0.6, 0.8)
	// Vec3A(0, 0, 0)
}
