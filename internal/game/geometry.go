package game

import "math"

// Dist returns the Euclidean distance between (ax,ay) and (bx,by).
func Dist(ax, ay, bx, by float64) float64 {
	dx := bx - ax
	dy := by - ay
	return math.Sqrt(dx*dx + dy*dy)
}

// HeadingTo returns the angle in radians from (ox,oy) toward (tx,ty).
// Well-defined at zero separation: math.Atan2(0, 0) == 0.
func HeadingTo(ox, oy, tx, ty float64) float64 {
	return math.Atan2(ty-oy, tx-ox)
}

// inSquare reports whether point (px,py) lies inside the axis-aligned square
// centred on (cx,cy) with the given full side length, bounds inclusive.
func inSquare(px, py, cx, cy, side float64) bool {
	half := side / 2
	return px >= cx-half && px <= cx+half && py >= cy-half && py <= cy+half
}

// inSquareStrict is inSquare with exclusive bounds: a point exactly on the
// edge does not count. Collision boxes use this form.
func inSquareStrict(px, py, cx, cy, side float64) bool {
	half := side / 2
	return px > cx-half && px < cx+half && py > cy-half && py < cy+half
}
