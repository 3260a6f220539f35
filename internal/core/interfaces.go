// Copyright (c) 2026 ToeiRei
// Rankscope - keyword ranking explorer
// This source code is licensed under the MIT license found in the LICENSE file.

// Package core contains the deterministic analyses behind the CLI: series
// selection, per-engine aggregation and the mapping of their results onto
// chart descriptions. Side effects (drawing, windows, files) sit behind the
// small interfaces below so UIs can plug in their own implementations.
package core

import "github.com/toeirei/rankscope/internal/chart"

// Renderer displays charts. Implementations block until the chart has been
// shown, e.g. until an interactive window is dismissed.
type Renderer interface {
	RenderLine(c chart.Line) error
	RenderBars(c chart.Bars) error
}

// RendererFuncs adapts plain functions to Renderer. Nil fields are no-ops.
type RendererFuncs struct {
	Line func(chart.Line) error
	Bars func(chart.Bars) error
}

// RenderLine implements Renderer.
func (f RendererFuncs) RenderLine(c chart.Line) error {
	if f.Line == nil {
		return nil
	}
	return f.Line(c)
}

// RenderBars implements Renderer.
func (f RendererFuncs) RenderBars(c chart.Bars) error {
	if f.Bars == nil {
		return nil
	}
	return f.Bars(c)
}
