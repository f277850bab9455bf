package value

type Vector2 struct {
	X, Y float32
}

type Vector3 struct {
	X, Y, Z float32
}

type Vector4 struct {
	X, Y, Z, W float32
}

// Quaternion is a rotation with vector part XYZ and scalar part W.
type Quaternion struct {
	X, Y, Z, W float32
}

// IdentityQuaternion is the rotation that leaves vectors unchanged.
var IdentityQuaternion = Quaternion{W: 1}

// Rect is an axis-aligned 2D rectangle anchored at its minimum corner.
type Rect struct {
	X, Y, Width, Height float32
}

// Min returns the minimum corner.
func (r Rect) Min() Vector2 {
	return Vector2{X: r.X, Y: r.Y}
}

// Max returns the maximum corner.
func (r Rect) Max() Vector2 {
	return Vector2{X: r.X + r.Width, Y: r.Y + r.Height}
}

// Bounds is an axis-aligned bounding box described by its center and full size.
type Bounds struct {
	Center Vector3
	Size   Vector3
}

// Extents returns half the size.
func (b Bounds) Extents() Vector3 {
	return Vector3{X: b.Size.X / 2, Y: b.Size.Y / 2, Z: b.Size.Z / 2}
}

func (b Bounds) Min() Vector3 {
	e := b.Extents()
	return Vector3{X: b.Center.X - e.X, Y: b.Center.Y - e.Y, Z: b.Center.Z - e.Z}
}

func (b Bounds) Max() Vector3 {
	e := b.Extents()
	return Vector3{X: b.Center.X + e.X, Y: b.Center.Y + e.Y, Z: b.Center.Z + e.Z}
}

type IntVector2 struct {
	X, Y int32
}

type IntVector3 struct {
	X, Y, Z int32
}

type IntVector4 struct {
	X, Y, Z, W int32
}
