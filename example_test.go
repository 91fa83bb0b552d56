package jsoncompare

import (
	"fmt"
	"os"
)

func Example() {
	expected := `{"name":"grault","count":3,"tags":["a","b"]}`
	actual := `{"name":"garply","count":3,"tags":["b","a"]}`

	c, err := New(Lenient)
	if err != nil {
		panic(err)
	}

	result := c.CompareStrings(expected, actual)
	fmt.Println(result.Failed())
	for _, f := range result.Diffs() {
		fmt.Println(f.Path)
	}

	// Output: true
	// $.name
}

func ExampleFormatPretty() {
	c, err := New(Strict)
	if err != nil {
		panic(err)
	}

	result := c.CompareStrings(`{"a":1,"b":2}`, `{"a":1,"b":3,"c":4}`)
	if err := FormatPretty(os.Stdout, result, false); err != nil {
		panic(err)
	}

	// Output: + $.c: 4
	// ~ $.b: 2 => 3
}

func ExampleComparator_Compare() {
	expected := map[string]interface{}{"items": []interface{}{
		map[string]interface{}{"id": 1, "v": "x"},
	}}
	actual := map[string]interface{}{"items": []interface{}{
		map[string]interface{}{"id": 1, "v": "y"},
	}}

	c, err := New(Lenient)
	if err != nil {
		panic(err)
	}

	result := c.Compare(expected, actual)
	fmt.Println(result.Diffs()[0].Path)

	// Output: $.items[?(@.id==1)].v
}
