package variant_test

import (
	"fmt"

	"github.com/wippyai/variant"
)

func ExampleNew3() {
	v := variant.New3[int, float64, string](42)

	n, _ := v.Get0()
	_, err := v.Get1()
	fmt.Println(v.Index(), *n, err != nil)

	// Output: 0 42 true
}

func ExampleMatch2() {
	v := variant.New2[int, string]("gopher")

	kind := variant.Match2(&v,
		func(n int) string { return fmt.Sprintf("number %d", n) },
		func(s string) string { return "text " + s },
	)
	fmt.Println(kind)

	// Output: text gopher
}

func ExampleVariant2_Assign() {
	a := variant.New2[int, string](1)
	b := variant.New2[int, string]("old")

	b.Assign(&a)
	fmt.Println(b.String())

	// Output: int(1)
}
