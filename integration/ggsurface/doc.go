// Copyright 2026 The heartfield Authors
// SPDX-License-Identifier: MIT

// Package ggsurface renders a particle heart through a gg drawing context.
//
// Surface implements heart.Surface on top of *gg.Context, so a Field can be
// drawn with gg's anti-aliased path renderer and its output combined with
// other gg drawing (captions, backgrounds, overlays). The data flow is:
//
//	heart.Field (tick) -> Surface -> gg.Context -> Pixmap -> PNG / texture
//
// # Blending
//
// gg fills are source-over only. While the field is in lighter mode, Surface
// routes particle fills into a layer that is composited with gg.BlendScreen
// when normal mode is restored. Screen only brightens, so overlapping
// particles still glow, but the result is softer than the true additive
// blending of heart.RasterSurface.
//
// # Usage
//
//	s := ggsurface.New()
//	f := heart.New(container, heart.WithSurfaceFactory(s.Factory()))
//	defer f.Dispose()
//
//	f.Tick()
//	_ = s.SavePNG("heart.png")
//
// # Thread Safety
//
// Surface is NOT safe for concurrent use.
package ggsurface
