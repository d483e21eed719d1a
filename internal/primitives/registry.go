package primitives

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Kind names a cached mesh.
type Kind string

const (
	Cone   Kind = "cone"
	Sphere Kind = "sphere"
)

// Finish selects the surface response of the lit shader.
type Finish struct {
	// Specular strength (0–1) and power; metal ornaments are tight and bright, needles are dull.
	Specular float32
	Power    float32
	// Emissive adds the albedo color times this factor regardless of lighting. Lights and the star use it.
	Emissive float32
}

var (
	Matte    = Finish{Specular: 0.15, Power: 16}
	Metallic = Finish{Specular: 0.9, Power: 96}
)

// Mesh resolution. The cone matches the tree layer's 32 sides.
const (
	coneSlices   = 32
	sphereRings  = 16
	sphereSlices = 16
)

// cached holds the mesh and material for one kind. Meshes are created on first Draw, after the GL context exists.
type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
	// offset recenters the mesh in model space before scaling (raylib cones sit on Y=0).
	offset [3]float32
}

// Registry maps kinds to GPU meshes sharing one lit shader.
type Registry struct {
	cache  map[Kind]cached
	shader rl.Shader
	loaded bool
	locs   shaderLocs

	viewPos [3]float32
	lights  Lighting
}

type shaderLocs struct {
	viewPos   int32
	keyDir    int32
	keyColor  int32
	fillDir   int32
	fillColor int32
	ambient   int32
	specular  int32
	power     int32
	emissive  int32
}

// Lighting is the scene's light rig: a key light from above-right, a dim green fill from below-left and ambient.
type Lighting struct {
	KeyDir    [3]float32
	KeyColor  [3]float32
	FillDir   [3]float32
	FillColor [3]float32
	Ambient   [3]float32
}

// DefaultLighting mirrors a spotlight at (10,10,10), a point light at (-10,-10,-10) tinted #046307 and ambient 0.2.
func DefaultLighting() Lighting {
	return Lighting{
		KeyDir:    [3]float32{1, 1, 1},
		KeyColor:  [3]float32{1, 0.98, 0.95},
		FillDir:   [3]float32{-1, -1, -1},
		FillColor: [3]float32{4.0 / 255, 99.0 / 255, 7.0 / 255},
		Ambient:   [3]float32{0.2, 0.2, 0.2},
	}
}

// NewRegistry returns an empty registry with the default light rig.
func NewRegistry() *Registry {
	return &Registry{
		cache:  make(map[Kind]cached),
		lights: DefaultLighting(),
	}
}

// SetView sets the camera position for this frame. Call once per frame before drawing.
func (r *Registry) SetView(viewPos [3]float32) {
	r.viewPos = viewPos
}

func (r *Registry) ensureShader() {
	if r.loaded {
		return
	}
	r.loaded = true
	r.shader = rl.LoadShaderFromMemory(litVS, litFS)
	if !rl.IsShaderValid(r.shader) {
		return
	}
	loc := func(name string) int32 { return rl.GetShaderLocation(r.shader, name) }
	r.locs = shaderLocs{
		viewPos:   loc("viewPos"),
		keyDir:    loc("keyDir"),
		keyColor:  loc("keyColor"),
		fillDir:   loc("fillDir"),
		fillColor: loc("fillColor"),
		ambient:   loc("ambient"),
		specular:  loc("specularStrength"),
		power:     loc("specularPower"),
		emissive:  loc("emissive"),
	}
}

func (r *Registry) ensure(kind Kind) (cached, bool) {
	if c, ok := r.cache[kind]; ok {
		return c, true
	}
	r.ensureShader()
	var c cached
	switch kind {
	case Cone:
		c.mesh = rl.GenMeshCone(1, 1, coneSlices)
		c.offset = [3]float32{0, -0.5, 0}
	case Sphere:
		c.mesh = rl.GenMeshSphere(1, sphereRings, sphereSlices)
	default:
		return cached{}, false
	}
	c.mtl = rl.LoadMaterialDefault()
	if rl.IsShaderValid(r.shader) {
		c.mtl.Shader = r.shader
	}
	r.cache[kind] = c
	return c, true
}

func (r *Registry) setUniforms(f Finish) {
	if !rl.IsShaderValid(r.shader) {
		return
	}
	vec3 := func(loc int32, v [3]float32) {
		if loc >= 0 {
			rl.SetShaderValueV(r.shader, loc, []float32{v[0], v[1], v[2]}, rl.ShaderUniformVec3, 1)
		}
	}
	scalar := func(loc int32, v float32) {
		if loc >= 0 {
			rl.SetShaderValue(r.shader, loc, []float32{v}, rl.ShaderUniformFloat)
		}
	}
	vec3(r.locs.viewPos, r.viewPos)
	vec3(r.locs.keyDir, r.lights.KeyDir)
	vec3(r.locs.keyColor, r.lights.KeyColor)
	vec3(r.locs.fillDir, r.lights.FillDir)
	vec3(r.locs.fillColor, r.lights.FillColor)
	vec3(r.locs.ambient, r.lights.Ambient)
	scalar(r.locs.specular, f.Specular)
	scalar(r.locs.power, f.Power)
	scalar(r.locs.emissive, f.Emissive)
}

// Draw draws one instance of kind. model places a unit mesh (radius 1, height 1) in the world;
// it is applied after the mesh is recentred. Must be called between BeginMode3D and EndMode3D.
func (r *Registry) Draw(kind Kind, model rl.Matrix, tint color.RGBA, f Finish) {
	c, ok := r.ensure(kind)
	if !ok {
		return
	}
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.NewColor(tint.R, tint.G, tint.B, tint.A)
	}
	r.setUniforms(f)
	transform := model
	if c.offset != [3]float32{} {
		transform = rl.MatrixMultiply(rl.MatrixTranslate(c.offset[0], c.offset[1], c.offset[2]), model)
	}
	rl.DrawMesh(c.mesh, c.mtl, transform)
}

// Unload releases meshes and the shader. Call before the window closes.
func (r *Registry) Unload() {
	for k, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		delete(r.cache, k)
	}
	if r.loaded && rl.IsShaderValid(r.shader) {
		rl.UnloadShader(r.shader)
	}
	r.loaded = false
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 keyDir;
uniform vec3 keyColor;
uniform vec3 fillDir;
uniform vec3 fillColor;
uniform vec3 ambient;
uniform float specularStrength;
uniform float specularPower;
uniform float emissive;
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragNormal);
  vec3 V = normalize(viewPos - fragPosition);
  vec3 base = colDiffuse.rgb;
  vec3 L = normalize(keyDir);
  float key = max(dot(N, L), 0.0);
  float fill = max(dot(N, normalize(fillDir)), 0.0);
  vec3 H = normalize(L + V);
  float spec = key > 0.0 ? pow(max(dot(N, H), 0.0), specularPower) * specularStrength : 0.0;
  vec3 lit = ambient * base + base * key * keyColor + base * fill * fillColor + keyColor * spec;
  finalColor = vec4(lit + base * emissive, colDiffuse.a);
}
`
)
