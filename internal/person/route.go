package person

import (
	"math"

	"bindprop/internal/algo"
	"bindprop/internal/parsing"
)

// SetRouteText parses "x0 y0 x1 y1 ..." and installs the result as a new
// shared route. An odd number of coordinates is a violation; parsing stops
// at the first token that is not a number.
func (p *Person) SetRouteText(text string) []Point {
	coords := parsing.Doubles(text, 16)
	pts := algo.CopyTuples(coords, make([]Point, 0, len(coords)/2),
		func(x, y float64) Point { return Point{X: x, Y: y} })
	p.Route.Set(&pts)
	return pts
}

// ShareRoute makes p and other hold the same route handle.
func (p *Person) ShareRoute(other *Person) {
	other.Route.Set(p.Route.Get())
}

// RouteLength is the summed segment length of the route; zero without one.
func (p *Person) RouteLength() float64 {
	if !p.Route.Valid() {
		return 0
	}
	pts := p.Route.Deref()
	var total float64
	for i := 1; i < len(pts); i++ {
		total += math.Hypot(pts[i].X-pts[i-1].X, pts[i].Y-pts[i-1].Y)
	}
	return total
}
