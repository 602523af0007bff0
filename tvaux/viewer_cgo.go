//go:build !tinygo && cgo

package tvaux

import (
	"errors"
	"math"
	"time"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/soypat/geometry/ms3"
	"github.com/soypat/glgl/v4.6-core/glgl"
)

const meshVertexShader = `#version 460
in vec3 aPos;
in vec3 aNormal;
uniform mat4 uMVP;
out vec3 vNormal;
void main() {
	vNormal = aNormal;
	gl_Position = uMVP * vec4(aPos, 1.0);
}
` + "\x00"

const meshFragShader = `#version 460
in vec3 vNormal;
out vec4 fragColor;
void main() {
	vec3 n = normalize(vNormal);
	float dif = clamp(dot(n, normalize(vec3(0.6, 1.0, 0.4))), 0.0, 1.0);
	float amb = 0.5 + 0.5 * n.y;
	vec3 col = vec3(0.2, 0.3, 0.25) * amb + vec3(0.55, 0.7, 0.55) * dif;
	fragColor = vec4(sqrt(col), 1.0);
}
` + "\x00"

// view opens a window and draws the mesh with an orbiting camera until the
// window closes. Drag rotates, scroll zooms.
func view(model []ms3.Triangle, cfg UIConfig) error {
	if len(model) == 0 {
		return errEmptyModel
	}
	window, terminate, err := startGLFW(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	defer terminate()

	prog, err := glgl.CompileProgram(glgl.ShaderSource{
		Vertex:   meshVertexShader,
		Fragment: meshFragShader,
	})
	if err != nil {
		return err
	}
	prog.Bind()

	// Interleave position+normal per triangle corner; flat shading from the
	// facet normal keeps the upload independent of index layout.
	vertices := make([]float32, 0, len(model)*18)
	var center ms3.Vec
	var radius float32 = 1e-6
	for _, tri := range model {
		c := ms3.Scale(1.0/3.0, ms3.Add(ms3.Add(tri[0], tri[1]), tri[2]))
		center = ms3.Add(center, ms3.Scale(1/float32(len(model)), c))
	}
	for _, tri := range model {
		n := ms3.Unit(tri.Normal())
		for _, v := range tri {
			vertices = append(vertices, v.X, v.Y, v.Z, n.X, n.Y, n.Z)
			if d := ms3.Norm(ms3.Sub(v, center)); d > radius {
				radius = d
			}
		}
	}

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 4*len(vertices), gl.Ptr(vertices), gl.STATIC_DRAW)

	posAttrib, err := prog.AttribLocation("aPos\x00")
	if err != nil {
		return err
	}
	normAttrib, err := prog.AttribLocation("aNormal\x00")
	if err != nil {
		return err
	}
	gl.EnableVertexAttribArray(posAttrib)
	gl.VertexAttribPointer(posAttrib, 3, gl.FLOAT, false, 24, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(normAttrib)
	gl.VertexAttribPointer(normAttrib, 3, gl.FLOAT, false, 24, gl.PtrOffset(12))

	mvpUniform, err := prog.UniformLocation("uMVP\x00")
	if err != nil {
		return err
	}

	gl.Enable(gl.DEPTH_TEST)

	var (
		yaw            = 0.8
		pitch          = 0.5
		camDist        = float64(radius) * 2.5
		lastMouseX     float64
		lastMouseY     float64
		firstMouseMove = true
		isMousePressed = false
	)
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if !isMousePressed {
			return
		}
		if firstMouseMove {
			lastMouseX, lastMouseY = xpos, ypos
			firstMouseMove = false
		}
		yaw += (xpos - lastMouseX) * 0.005
		pitch -= (ypos - lastMouseY) * 0.005
		maxPitch := math.Pi/2 - 0.01
		pitch = math.Max(-maxPitch, math.Min(maxPitch, pitch))
		lastMouseX, lastMouseY = xpos, ypos
	})
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		camDist -= yoff * (camDist*0.1 + 0.01)
		camDist = math.Max(float64(radius)*0.05, math.Min(float64(radius)*20, camDist))
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		switch action {
		case glfw.Press:
			isMousePressed = true
			firstMouseMove = true
		case glfw.Release:
			isMousePressed = false
		}
	})

	for !window.ShouldClose() {
		width, height := window.GetSize()
		gl.Viewport(0, 0, int32(width), int32(height))
		gl.ClearColor(0.08, 0.09, 0.1, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		eye := mgl32.Vec3{
			center.X + float32(camDist*math.Cos(pitch)*math.Sin(yaw)),
			center.Y + float32(camDist*math.Sin(pitch)),
			center.Z + float32(camDist*math.Cos(pitch)*math.Cos(yaw)),
		}
		viewMat := mgl32.LookAtV(eye, mgl32.Vec3{center.X, center.Y, center.Z}, mgl32.Vec3{0, 1, 0})
		proj := mgl32.Perspective(mgl32.DegToRad(45), float32(width)/float32(height),
			radius*0.01, radius*50)
		mvp := proj.Mul4(viewMat)

		prog.Bind()
		gl.UniformMatrix4fv(mvpUniform, 1, false, &mvp[0])
		gl.BindVertexArray(vao)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(model)*3))

		window.SwapBuffers()
		glfw.PollEvents()
		time.Sleep(time.Second / 60)
	}
	return nil
}

func startGLFW(width, height int) (*glfw.Window, func(), error) {
	if err := glfw.Init(); err != nil {
		return nil, nil, err
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(width, height, "transvox mesh viewer", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, nil, err
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, nil, errors.New("initializing OpenGL: " + err.Error())
	}
	return window, glfw.Terminate, nil
}
