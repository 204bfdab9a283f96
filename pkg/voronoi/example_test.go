package voronoi_test

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"

	"github.com/0x0FACED/winged-fortune/pkg/voronoi"
)

func ExampleCompute() {
	sites := voronoi.Sites([]r2.Point{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}})
	d, err := voronoi.Compute(sites)
	if err != nil {
		panic(err)
	}

	fmt.Println("polygons:", len(d.Polygons))
	fmt.Println("vertices:", len(d.Vertices))
	fmt.Println("edges:", len(d.Edges))
	for _, v := range d.FiniteVertices() {
		fmt.Printf("vertex: (%g, %g)\n", math.Round(v.X)+0, math.Round(v.Y)+0)
	}
	// Output:
	// polygons: 4
	// vertices: 4
	// edges: 6
	// vertex: (0, 0)
}
