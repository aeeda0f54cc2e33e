package render

import (
	"github.com/taigrr/prism/pkg/math3d"
)

// Camera is an orbit camera: it circles a target point at a fixed distance,
// with the orientation held as a quaternion so successive drags compose
// without gimbal lock.
type Camera struct {
	// Target in world space the camera orbits and looks at.
	Target math3d.Vec3

	// Orientation rotates the default eye offset (+Z behind the target).
	Orientation math3d.Quat

	// Distance from the target along the rotated offset.
	Distance math3d.Scalar

	// Projection parameters
	FOV         math3d.Scalar // Vertical field of view in degrees
	AspectRatio math3d.Scalar // Width / Height
	Near        math3d.Scalar // Near clipping plane
	Far         math3d.Scalar // Far clipping plane

	// Cached matrices (computed on demand)
	viewMatrix     math3d.Mat4
	projMatrix     math3d.Mat4
	viewProjMatrix math3d.Mat4
	viewDirty      bool
	projDirty      bool
	viewProjDirty  bool
}

// NewCamera creates an orbit camera with default settings.
func NewCamera() *Camera {
	return &Camera{
		Target:      math3d.Zero3(),
		Orientation: math3d.QIdentity(),
		Distance:    5,
		FOV:         60,
		AspectRatio: 16.0 / 9.0,
		Near:        0.1,
		Far:         1000,
		viewDirty:     true,
		projDirty:     true,
		viewProjDirty: true,
	}
}

// SetTarget sets the orbit target.
func (c *Camera) SetTarget(target math3d.Vec3) {
	c.Target = target
	c.viewDirty = true
	c.viewProjDirty = true
}

// SetDistance sets the orbit distance, clamped to stay in front of the near
// plane.
func (c *Camera) SetDistance(d math3d.Scalar) {
	if d < c.Near*2 {
		d = c.Near * 2
	}
	c.Distance = d
	c.viewDirty = true
	c.viewProjDirty = true
}

// Zoom scales the orbit distance by factor.
func (c *Camera) Zoom(factor math3d.Scalar) {
	c.SetDistance(c.Distance * factor)
}

// SetOrientation replaces the orbit orientation.
func (c *Camera) SetOrientation(q math3d.Quat) {
	c.Orientation = q.Normalize()
	c.viewDirty = true
	c.viewProjDirty = true
}

// Orbit rotates the camera around the target: yaw degrees about the world up
// axis and pitch degrees about the camera's local right axis.
func (c *Camera) Orbit(yaw, pitch math3d.Scalar) {
	q := c.Orientation
	if yaw != 0 {
		q = q.Mul(math3d.QFromAngleAxis(yaw, math3d.Up()))
	}
	if pitch != 0 {
		right := q.RotateVec3(math3d.Right())
		q = q.Mul(math3d.QFromAngleAxis(pitch, right))
	}
	c.SetOrientation(q)
}

// SlerpTo moves the orientation toward q by t, for smoothed input.
func (c *Camera) SlerpTo(q math3d.Quat, t math3d.Scalar) {
	c.SetOrientation(c.Orientation.Slerp(q, t))
}

// Eye returns the camera position in world space.
func (c *Camera) Eye() math3d.Vec3 {
	offset := c.Orientation.RotateVec3(math3d.V3(0, 0, 1)).Scale(c.Distance)
	return c.Target.Add(offset)
}

// Up returns the camera's up direction.
func (c *Camera) Up() math3d.Vec3 {
	return c.Orientation.RotateVec3(math3d.Up())
}

// SetFOV sets the vertical field of view in degrees.
func (c *Camera) SetFOV(fov math3d.Scalar) {
	c.FOV = fov
	c.projDirty = true
	c.viewProjDirty = true
}

// SetAspectRatio sets the aspect ratio.
func (c *Camera) SetAspectRatio(aspect math3d.Scalar) {
	c.AspectRatio = aspect
	c.projDirty = true
	c.viewProjDirty = true
}

// SetClipPlanes sets the near and far clipping planes.
func (c *Camera) SetClipPlanes(near, far math3d.Scalar) {
	c.Near = near
	c.Far = far
	c.projDirty = true
	c.viewProjDirty = true
}

// ViewMatrix returns the view matrix.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	if c.viewDirty {
		c.viewMatrix = math3d.LookAt(c.Eye(), c.Target, c.Up())
		c.viewDirty = false
	}
	return c.viewMatrix
}

// ProjectionMatrix returns the projection matrix.
func (c *Camera) ProjectionMatrix() math3d.Mat4 {
	if c.projDirty {
		c.projMatrix = math3d.Perspective(c.FOV, c.AspectRatio, c.Near, c.Far)
		c.projDirty = false
	}
	return c.projMatrix
}

// ViewProjectionMatrix returns the combined view-projection matrix.
func (c *Camera) ViewProjectionMatrix() math3d.Mat4 {
	if c.viewProjDirty {
		c.viewProjMatrix = c.ProjectionMatrix().Mul(c.ViewMatrix())
		c.viewProjDirty = false
	}
	return c.viewProjMatrix
}

// WorldToScreen transforms a world point to screen coordinates.
// Returns (screenX, screenY, depth, inFront). Points behind the camera
// report inFront=false; points in front may still land outside the screen
// and are clipped by the framebuffer.
func (c *Camera) WorldToScreen(worldPos math3d.Vec3, screenWidth, screenHeight int) (x, y, depth math3d.Scalar, inFront bool) {
	clipPos := c.ViewProjectionMatrix().MulVec4(math3d.V4FromV3(worldPos, 1))

	if clipPos.W <= 0 {
		return 0, 0, 0, false
	}

	// Perspective divide to NDC (-1 to 1)
	ndc := clipPos.PerspectiveDivide()

	x = (ndc.X + 1) * 0.5 * math3d.Scalar(screenWidth)
	y = (1 - ndc.Y) * 0.5 * math3d.Scalar(screenHeight) // Y is flipped
	depth = ndc.Z

	return x, y, depth, true
}
