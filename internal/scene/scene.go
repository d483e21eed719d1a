package scene

import (
	"image/color"

	"xmas-tree/internal/animation"
	"xmas-tree/internal/orbit"
	"xmas-tree/internal/primitives"
	"xmas-tree/internal/snow"
	"xmas-tree/internal/sprite"
	"xmas-tree/internal/tree"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	cameraFovy       = 50
	orbitSensitivity = 0.005
	zoomStep         = 0.1

	glowSpriteSize = 64
	glowBlurRadius = 6

	snowSize   = 0.12
	snowAlpha  = 204
	bulbRadius = 0.06
	haloBase   = 0.3
	haloGrowth = 0.12
	starHalo   = 1.6

	groundY      = -4.6
	groundRadius = 3.2
	groundSides  = 48
)

var (
	// Reused every frame to avoid per-frame color allocations.
	snowColor   = rl.NewColor(255, 255, 255, snowAlpha)
	groundColor = rl.NewColor(0, 0, 0, 128)
	starColor   = rl.NewColor(255, 215, 0, 255)
	cameraStart = [3]float32{0, 1, 8}
)

// Scene holds the camera and draws the tree. Update runs the orbit controls; Draw renders
// between BeginMode3D and EndMode3D.
type Scene struct {
	Camera rl.Camera3D
	orbit  orbit.Orbit
	prims  *primitives.Registry

	// Glow sprite used for snow and halos. GPU upload is deferred to the first Draw, after the window exists.
	glowTex    rl.Texture2D
	glowLoaded bool

	ShowGround bool
}

// New returns a scene with a perspective camera at (0, 1, 8), fovy 50°, looking at the origin.
func New() *Scene {
	s := &Scene{
		orbit:      orbit.FromPosition(cameraStart, [3]float32{}, orbit.DefaultLimits()),
		prims:      primitives.NewRegistry(),
		ShowGround: true,
	}
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = cameraFovy
	s.Camera.Projection = rl.CameraPerspective
	s.syncCamera()
	return s
}

func (s *Scene) syncCamera() {
	p := s.orbit.Position()
	s.Camera.Position = rl.NewVector3(p[0], p[1], p[2])
}

// Update runs once per frame: left-drag orbits around the tree, the wheel zooms. Panning is disabled.
// When captured is true another widget owns the mouse and the camera stays put.
func (s *Scene) Update(captured bool) {
	if !captured {
		if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
			d := rl.GetMouseDelta()
			s.orbit.Rotate(-d.X*orbitSensitivity, -d.Y*orbitSensitivity)
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			s.orbit.Zoom(1 - wheel*zoomStep)
		}
	}
	s.syncCamera()
}

func (s *Scene) ensureGlowLoaded() {
	if s.glowLoaded {
		return
	}
	s.glowLoaded = true
	img := rl.NewImageFromImage(sprite.Glow(glowSpriteSize, glowBlurRadius))
	s.glowTex = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
}

// Draw renders one frame of the tree and its snow.
func (s *Scene) Draw(f tree.Frame, flakes *snow.Field) {
	s.ensureGlowLoaded()
	s.prims.SetView(s.orbit.Position())

	group := rl.MatrixRotateY(f.Angle)
	bob := rl.MatrixMultiply(
		rl.MatrixRotateXYZ(rl.NewVector3(f.Float.Tilt[0], f.Float.Tilt[1], f.Float.Tilt[2])),
		rl.MatrixTranslate(0, f.Float.OffsetY, 0),
	)
	inner := rl.MatrixMultiply(bob, group)

	rl.BeginMode3D(s.Camera)
	if s.ShowGround {
		rl.DrawCylinder(rl.NewVector3(0, groundY, 0), groundRadius, groundRadius, 0.01, groundSides, groundColor)
	}
	s.drawLayers(f, inner)
	s.drawOrnaments(f, inner)
	s.drawLights(f, inner)
	s.drawStar(f, inner)
	s.drawSnow(flakes, group)
	s.drawHalos(f, inner)
	rl.EndMode3D()
}

func place(pos [3]float32, sx, sy, sz float32, parent rl.Matrix) rl.Matrix {
	local := rl.MatrixMultiply(rl.MatrixScale(sx, sy, sz), rl.MatrixTranslate(pos[0], pos[1], pos[2]))
	return rl.MatrixMultiply(local, parent)
}

func (s *Scene) drawLayers(f tree.Frame, parent rl.Matrix) {
	for _, l := range f.Layers {
		s.prims.Draw(primitives.Cone, place(l.Center, l.Radius, l.Height, l.Radius, parent), f.Palette.Tree, primitives.Matte)
	}
}

func (s *Scene) drawOrnaments(f tree.Frame, parent rl.Matrix) {
	for _, o := range f.Ornaments {
		s.prims.Draw(primitives.Sphere, place(o.Position, o.Scale, o.Scale, o.Scale, parent), f.Palette.Ornament, primitives.Metallic)
	}
}

func (s *Scene) drawLights(f tree.Frame, parent rl.Matrix) {
	finish := primitives.Finish{Emissive: f.LightEmissive}
	for _, l := range f.Lights {
		s.prims.Draw(primitives.Sphere, place(l.Position, bulbRadius, bulbRadius, bulbRadius, parent), f.Palette.Lights, finish)
	}
}

// drawStar draws the octahedron unlit in the star color: spin about Y, rock about Z, then sit on top of the tree.
func (s *Scene) drawStar(f tree.Frame, parent rl.Matrix) {
	local := rl.MatrixMultiply(rl.MatrixRotateZ(f.StarTilt), rl.MatrixRotateY(f.StarSpin))
	p := animation.StarPosition
	local = rl.MatrixMultiply(local, rl.MatrixTranslate(p[0], p[1], p[2]))
	m := rl.MatrixMultiply(local, parent)

	verts := animation.Vertices()
	var world [6]rl.Vector3
	for i, v := range verts {
		world[i] = rl.Vector3Transform(rl.NewVector3(v[0], v[1], v[2]), m)
	}
	for _, face := range animation.Faces() {
		rl.DrawTriangle3D(world[face[0]], world[face[1]], world[face[2]], starColor)
	}
}

// drawSnow draws flakes as camera-facing sprites. Snow turns with the group but does not float.
func (s *Scene) drawSnow(flakes *snow.Field, group rl.Matrix) {
	if flakes == nil || !rl.IsTextureValid(s.glowTex) {
		return
	}
	flakes.Each(func(_ int, p [3]float32) {
		pos := rl.Vector3Transform(rl.NewVector3(p[0], p[1], p[2]), group)
		rl.DrawBillboard(s.Camera, s.glowTex, pos, snowSize, snowColor)
	})
}

// drawHalos adds a soft additive glow around each bulb and the star, scaled by intensity.
func (s *Scene) drawHalos(f tree.Frame, parent rl.Matrix) {
	if !rl.IsTextureValid(s.glowTex) || f.Intensity <= 0 {
		return
	}
	rl.BeginBlendMode(rl.BlendAdditive)
	tint := haloTint(f.Palette.Glow, f.Intensity)
	size := haloBase + haloGrowth*f.Intensity
	for _, l := range f.Lights {
		pos := rl.Vector3Transform(rl.NewVector3(l.Position[0], l.Position[1], l.Position[2]), parent)
		rl.DrawBillboard(s.Camera, s.glowTex, pos, size, tint)
	}
	p := animation.StarPosition
	star := rl.Vector3Transform(rl.NewVector3(p[0], p[1], p[2]), parent)
	rl.DrawBillboard(s.Camera, s.glowTex, star, starHalo, haloTint(starColor, f.StarEmissive))
	rl.EndBlendMode()
}

// haloTint fades c by intensity (0–3 maps to alpha 0–240).
func haloTint(c color.RGBA, intensity float32) color.RGBA {
	a := intensity * 80
	if a > 240 {
		a = 240
	}
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: uint8(a)}
}

// Unload releases GPU resources. Call before the window closes.
func (s *Scene) Unload() {
	if s.glowLoaded && rl.IsTextureValid(s.glowTex) {
		rl.UnloadTexture(s.glowTex)
	}
	s.prims.Unload()
}
