// pkg/geom/vec.go
package geom

import "math"

// Vec3 — точка или направление в мировом пространстве. Ось Y направлена вверх,
// земля — плоскость Y = 0.
type Vec3 struct {
	X, Y, Z float64
}

// Up is the world up axis.
var Up = Vec3{Y: 1}

func V(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// Dist returns the Euclidean distance between two points.
func (v Vec3) Dist(o Vec3) float64 { return v.Sub(o).Len() }

// Flat drops the vertical component.
func (v Vec3) Flat() Vec3 { return Vec3{X: v.X, Z: v.Z} }

// Normalize returns a unit vector, or the zero vector for zero input.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < 1e-12 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

func (v Vec3) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// Lerp выполняет линейную интерполяцию между точками.
func Lerp(a, b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}

// AngleBetween returns the angle between two directions in degrees.
// A zero vector yields 0.
func AngleBetween(a, b Vec3) float64 {
	a, b = a.Normalize(), b.Normalize()
	if a.IsZero() || b.IsZero() {
		return 0
	}
	return RadToDeg(math.Acos(clamp(a.Dot(b), -1, 1)))
}

// Slerp поворачивает единичный вектор a к единичному вектору b на долю t
// по дуге большого круга. t ограничивается диапазоном [0, 1].
func Slerp(a, b Vec3, t float64) Vec3 {
	t = clamp(t, 0, 1)
	a, b = a.Normalize(), b.Normalize()
	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a
	}
	dot := clamp(a.Dot(b), -1, 1)
	theta := math.Acos(dot)
	if theta < 1e-6 {
		return Lerp(a, b, t).Normalize()
	}
	sinTheta := math.Sin(theta)
	if sinTheta < 1e-6 {
		// Противоположные направления: вращаем вокруг вертикали.
		return RotateY(a, math.Pi*t)
	}
	wa := math.Sin((1-t)*theta) / sinTheta
	wb := math.Sin(t*theta) / sinTheta
	return a.Scale(wa).Add(b.Scale(wb)).Normalize()
}

// RotateY rotates v around the world up axis by angle radians.
func RotateY(v Vec3, angle float64) Vec3 {
	s, c := math.Sin(angle), math.Cos(angle)
	return Vec3{X: v.X*c + v.Z*s, Y: v.Y, Z: -v.X*s + v.Z*c}
}

// YawOf returns the heading of dir around the up axis in degrees.
// Yaw 0 faces +Z, yaw 90 faces +X.
func YawOf(dir Vec3) float64 {
	return RadToDeg(math.Atan2(dir.X, dir.Z))
}

// PitchOf returns the elevation of dir above the ground plane in degrees.
func PitchOf(dir Vec3) float64 {
	return RadToDeg(math.Atan2(dir.Y, math.Hypot(dir.X, dir.Z)))
}

// FromYawPitch builds a unit direction from angles in degrees.
func FromYawPitch(yaw, pitch float64) Vec3 {
	y, p := DegToRad(yaw), DegToRad(pitch)
	cp := math.Cos(p)
	return Vec3{X: math.Sin(y) * cp, Y: math.Sin(p), Z: math.Cos(y) * cp}
}

// RayPlaneY intersects a ray with the horizontal plane Y = planeY.
func RayPlaneY(origin, dir Vec3, planeY float64) (Vec3, bool) {
	if math.Abs(dir.Y) < 1e-9 {
		return Vec3{}, false
	}
	t := (planeY - origin.Y) / dir.Y
	if t < 0 {
		return Vec3{}, false
	}
	return origin.Add(dir.Scale(t)), true
}

func DegToRad(d float64) float64 { return d * math.Pi / 180 }

func RadToDeg(r float64) float64 { return r * 180 / math.Pi }

// DeltaAngle возвращает кратчайшую разницу углов (в градусах) в диапазоне [-180, 180].
func DeltaAngle(from, to float64) float64 {
	d := math.Mod(to-from, 360)
	if d > 180 {
		d -= 360
	} else if d < -180 {
		d += 360
	}
	return d
}

// MoveTowardsAngle поворачивает угол current к target не более чем на maxDelta градусов.
func MoveTowardsAngle(current, target, maxDelta float64) float64 {
	d := DeltaAngle(current, target)
	if math.Abs(d) <= maxDelta {
		return current + d
	}
	if d > 0 {
		return current + maxDelta
	}
	return current - maxDelta
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
