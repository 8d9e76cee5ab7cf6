package xrange_test

import (
	"fmt"

	"github.com/dataway/ciscoconfparse/pkg/util/xrange"
)

func ExampleParse() {
	r, err := xrange.Parse("Eth2/1-3,5,9-10")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, item := range r.Items() {
		fmt.Println(item)
	}
	// Output:
	// Eth2/1
	// Eth2/2
	// Eth2/3
	// Eth2/5
	// Eth2/9
	// Eth2/10
}

func ExampleRange_Compressed() {
	r := xrange.MustParse("Eth2/1,2,3,5,6")
	fmt.Println(r.Compressed())
	// Output:
	// Eth2/1-3,5,6
}

func ExampleRange_Add() {
	r := xrange.MustParse("Eth2/1-3")
	if err := r.Add("5-7"); err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := r.Remove("2"); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(r)
	// Output:
	// Eth2/1,3,5-7
}
