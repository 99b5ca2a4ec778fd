// Copyright 2026 The webbview Authors
// SPDX-License-Identifier: MIT

package frameloop

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Default window parameters for the 3D view.
const (
	defaultWidth  = 1280
	defaultHeight = 720
	defaultTitle  = "Webb Telescope Viewer"
)

// glfwHost paces frames with a GLFW window. The rendering API is WebGPU,
// so OpenGL context creation is disabled on the window.
type glfwHost struct {
	window *glfw.Window
}

func newGLFWHost() *glfwHost {
	return &glfwHost{}
}

func (h *glfwHost) init() error {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("frameloop: failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(defaultWidth, defaultHeight, defaultTitle, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("frameloop: failed to create window: %w", err)
	}
	h.window = win
	return nil
}

// now returns GLFW's monotonic timer in milliseconds.
func (h *glfwHost) now() float64 {
	return glfw.GetTime() * 1000.0
}

func (h *glfwHost) poll() {
	glfw.PollEvents()
}

func (h *glfwHost) shouldClose() bool {
	return h.window.ShouldClose()
}

func (h *glfwHost) terminate() {
	if h.window != nil {
		h.window.Destroy()
		h.window = nil
	}
	glfw.Terminate()
}
