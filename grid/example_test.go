// File: grid/example_test.go
package grid_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridsearch/grid"
)

// ExampleParse reads a text grid and extracts a window from it.
func ExampleParse() {
	g, err := grid.Parse(strings.NewReader("abcd\nbcpi\ncduu\n"))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%d×%d\n", g.Rows, g.Cols)

	w, _ := g.Window(1, 2, 2, 2)
	fmt.Print(grid.Format(w))
	// Output:
	// 3×4
	// pi
	// uu
}
