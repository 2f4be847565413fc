package htmlfilter_test

import (
	"fmt"

	"github.com/njchilds90/htmlfilter"
)

func ExampleSanitize() {
	input := `<p onclick="alert('xss')">Hello <script>alert('xss')</script>world</p>`
	clean, _ := htmlfilter.Sanitize(input, htmlfilter.NewPermissive(0))
	fmt.Println(clean)
	// Output: <p>Hello world</p>
}

func ExampleSanitize_basic() {
	input := `<b>bold</b> <span>plain</span>`
	clean, _ := htmlfilter.Sanitize(input, htmlfilter.Basic{})
	fmt.Println(clean)
	// Output: <b>bold</b> plain
}

func ExampleSanitize_rejectAll() {
	input := `<div onclick="x">Click <b>me</b></div>`
	clean, _ := htmlfilter.Sanitize(input, htmlfilter.RejectAll{})
	fmt.Println(clean)
	// Output: Click me
}

func ExampleNewPermissive() {
	// Break words longer than ten bytes so they can wrap.
	f := htmlfilter.NewPermissive(10)
	clean, _ := htmlfilter.Sanitize(`<p>Llanfairpwllgwyngyll</p>`, f)
	fmt.Println(clean)
	// Output: <p>Llanfairpwl<wbr>&shy;lgwyngyll</p>
}

func ExampleStripTags() {
	input := `<p>Hello <b>world</b></p>`
	text, _ := htmlfilter.StripTags(input)
	fmt.Println(text)
	// Output: Hello world
}
