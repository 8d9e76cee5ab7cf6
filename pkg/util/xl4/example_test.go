package xl4_test

import (
	"fmt"

	"github.com/dataway/ciscoconfparse/pkg/util/xl4"
)

func ExampleParse() {
	o, err := xl4.Parse("tcp", "range ftp-data ftp", xl4.SyntaxASA)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(o)
	fmt.Println(o.Matches(21))
	fmt.Println(o.Matches(22))
	// Output:
	// <L4Object tcp [{20 21}]>
	// true
	// false
}
