// Package camera implements the raycaster's viewpoint: position, direction
// scaled by focal length, camera plane, pitch and per-camera lighting (§3
// Camera).
package camera

import (
	"github.com/jinzhu/copier"

	"raycastengine/internal/color"
	"raycastengine/internal/vector"
)

// Lighting holds the per-camera brightness parameters §4.7 reads.
type Lighting struct {
	Brightness    float64
	MaxBrightness float64
	Color         color.Color
}

// Camera is the renderer's viewpoint. Direction has magnitude FocalLength;
// Plane is perpendicular to Direction with base length 1 (scaled by the
// screen aspect at render time). Position.Z doubles as the normalized
// camera height within the current grid cell ("cameraZ" in §4.2/§4.4).
type Camera struct {
	Position    vector.Vector3
	Direction   vector.Vector2
	Plane       vector.Vector2
	FocalLength float64
	Pitch       int
	Lighting    Lighting
}

// New constructs a Camera facing yaw radians (measured from the +X axis),
// with the camera plane derived as the perpendicular of the unit heading
// (§3 invariant: cameraPlane = (-dy, dx)).
func New(position vector.Vector3, yaw, focalLength float64, pitch int, lighting Lighting) *Camera {
	c := &Camera{
		FocalLength: focalLength,
		Pitch:       pitch,
		Lighting:    lighting,
	}
	c.Position = position
	c.setHeading(yaw)
	return c
}

func (c *Camera) setHeading(yaw float64) {
	heading := vector.New2(1, 0).Rotate(yaw).Normalize()
	c.Direction = heading.Scale(c.FocalLength)
	c.Plane = heading.Perpendicular()
}

// SetYaw reorients the camera to face yaw radians, recomputing Direction and
// Plane together so the perpendicularity invariant always holds.
func (c *Camera) SetYaw(yaw float64) {
	c.setHeading(yaw)
}

// Rotate turns the camera by dtheta radians, rotating Direction and Plane
// together (the teacher's pattern: both vectors are rotated by the same
// angle so their relative angle — and hence the field of view — never
// drifts).
func (c *Camera) Rotate(dtheta float64) {
	c.Direction = c.Direction.Rotate(dtheta)
	c.Plane = c.Plane.Rotate(dtheta)
}

// Move translates the camera's position by delta.
func (c *Camera) Move(delta vector.Vector3) {
	c.Position = c.Position.Add(delta)
}

// Snapshot returns a deep copy of the camera suitable for a host to hand to
// Renderer.Render while its live camera keeps changing for the next frame
// (§5: Scene and Camera are read-only during a render).
func (c *Camera) Snapshot() *Camera {
	clone := &Camera{}
	_ = copier.Copy(clone, c)
	return clone
}
