package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// waterFS shades the tank: a vertical gradient with drifting caustic bands.
const waterFS = `#version 330
in vec2 fragTexCoord;
in vec4 fragColor;
out vec4 finalColor;

uniform float time;
uniform vec2 resolution;

void main() {
    vec2 uv = gl_FragCoord.xy / resolution;
    vec3 deep = vec3(0.02, 0.16, 0.32);
    vec3 shallow = vec3(0.10, 0.45, 0.62);
    vec3 col = mix(deep, shallow, uv.y);
    float band = sin(uv.x * 18.0 + time * 0.9) * sin(uv.y * 11.0 - time * 0.6);
    col += 0.035 * smoothstep(0.55, 1.0, band);
    finalColor = vec4(col, 1.0);
}
`

// WaterBackground renders the animated tank behind the creatures.
type WaterBackground struct {
	shader        rl.Shader
	timeLoc       int32
	resolutionLoc int32
	initialized   bool
}

// NewWaterBackground creates a water background. Init runs lazily on the
// first Draw, after the window exists.
func NewWaterBackground() *WaterBackground {
	return &WaterBackground{}
}

// Init compiles the shader (must be called after raylib window is created).
func (w *WaterBackground) Init() {
	if w.initialized {
		return
	}
	w.shader = rl.LoadShaderFromMemory("", waterFS)
	w.timeLoc = rl.GetShaderLocation(w.shader, "time")
	w.resolutionLoc = rl.GetShaderLocation(w.shader, "resolution")
	w.initialized = true
}

// Draw fills a width x height area with the water shader.
func (w *WaterBackground) Draw(time float32, width, height int32) {
	if !w.initialized {
		w.Init()
	}

	rl.SetShaderValue(w.shader, w.resolutionLoc, []float32{float32(width), float32(height)}, rl.ShaderUniformVec2)
	rl.SetShaderValue(w.shader, w.timeLoc, []float32{time}, rl.ShaderUniformFloat)

	rl.BeginShaderMode(w.shader)
	rl.DrawRectangle(0, 0, width, height, rl.White)
	rl.EndShaderMode()
}

// Unload frees resources.
func (w *WaterBackground) Unload() {
	if w.initialized {
		rl.UnloadShader(w.shader)
		w.initialized = false
	}
}
