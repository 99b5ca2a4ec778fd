// Copyright 2026 The webbview Authors
// SPDX-License-Identifier: MIT

// Package frameloop hosts the render loop: it paces per-frame callbacks,
// feeds timestamps into the quality controller, and tears the scene down
// in the order the resource model requires.
//
// Teardown ordering is the load-bearing part. The frame callback is
// unregistered before any resource is released, so a late frame can never
// touch a disposed geometry or material.
package frameloop

import (
	"context"
	"sync/atomic"

	"github.com/webbview/adaptive"
	"github.com/webbview/adaptive/lifecycle"
	"github.com/webbview/adaptive/scenegraph"
)

// FrameFunc is called once per frame with the frame's FPS stats and a
// snapshot of the current quality configuration.
type FrameFunc func(adaptive.FrameStats, adaptive.QualityConfig)

// host abstracts the windowing layer so the loop logic is testable
// without a display.
type host interface {
	init() error
	// now returns the current time in milliseconds.
	now() float64
	poll()
	shouldClose() bool
	terminate()
}

// Loop drives the controller and the per-frame callback on a single
// goroutine, and owns teardown of the scene.
type Loop struct {
	ctrl    *adaptive.Controller
	manager *lifecycle.Manager
	root    *scenegraph.Node
	devices scenegraph.DeviceHandle

	frame atomic.Pointer[FrameFunc]

	host    host
	stopped atomic.Bool
}

// LoopOption configures a Loop during creation.
type LoopOption func(*Loop)

// WithManager sets the lifecycle manager used at teardown.
func WithManager(m *lifecycle.Manager) LoopOption {
	return func(l *Loop) {
		l.manager = m
	}
}

// WithSceneRoot sets the scene graph root disposed at teardown.
func WithSceneRoot(root *scenegraph.Node) LoopOption {
	return func(l *Loop) {
		l.root = root
	}
}

// WithFrameFunc registers the per-frame callback.
func WithFrameFunc(fn FrameFunc) LoopOption {
	return func(l *Loop) {
		if fn != nil {
			l.frame.Store(&fn)
		}
	}
}

// WithDeviceHandle stores the host application's GPU device handle for
// collaborators reached through the frame callback.
func WithDeviceHandle(dh scenegraph.DeviceHandle) LoopOption {
	return func(l *Loop) {
		l.devices = dh
	}
}

// withHost overrides the windowing host. Tests use this.
func withHost(h host) LoopOption {
	return func(l *Loop) {
		l.host = h
	}
}

// New creates a loop around a controller.
func New(ctrl *adaptive.Controller, opts ...LoopOption) *Loop {
	l := &Loop{
		ctrl:    ctrl,
		devices: scenegraph.NullDeviceHandle{},
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.host == nil {
		l.host = newGLFWHost()
	}
	return l
}

// DeviceHandle returns the host application's device handle.
func (l *Loop) DeviceHandle() scenegraph.DeviceHandle {
	return l.devices
}

// Stop requests the loop to exit after the current frame. Safe to call
// from any goroutine.
func (l *Loop) Stop() {
	l.stopped.Store(true)
}

// Run executes the render loop until the window closes, Stop is called,
// or ctx is cancelled, then tears the scene down. Run must be called from
// the main goroutine; GLFW requires its thread.
//
// Teardown runs synchronously inside Run, in order: the frame callback
// registration is cancelled first, then every resource reachable from the
// scene root is released through the lifecycle manager.
func (l *Loop) Run(ctx context.Context) error {
	if err := l.host.init(); err != nil {
		return err
	}

	var cause error
	for !l.host.shouldClose() && !l.stopped.Load() {
		if err := ctx.Err(); err != nil {
			cause = err
			break
		}

		stats := l.ctrl.Frame(l.host.now())
		if fn := l.frame.Load(); fn != nil {
			(*fn)(stats, l.ctrl.Config())
		}
		l.host.poll()
	}

	// Cancel the callback registration, then dispose. A dangling
	// callback observing released resources is the failure mode this
	// ordering exists to prevent.
	l.frame.Store(nil)
	if l.manager != nil {
		l.manager.DisposeAll(l.root)
	}
	l.root = nil
	l.host.terminate()

	return cause
}
