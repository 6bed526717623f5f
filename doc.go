// Package heart renders a decorative field of particles arranged into a heart
// silhouette that drifts gently and shies away from the pointer.
//
// # Overview
//
// A [Field] owns a drawing [Surface], the particle collection and the frame
// loop. It asks the shape sampler ([SampleHeart]) for home positions, builds
// one [Particle] per position, and on every [Field.Tick] updates and draws each
// particle with additive blending.
//
// # Quick Start
//
//	import "github.com/vitapredict/heart"
//
//	f := heart.New(container, heart.WithSeed(42))
//	if f == nil {
//	    return // no container
//	}
//	defer f.Dispose()
//
//	f.PointerMove(120, 80)
//	f.Tick()
//
// # Hosts
//
// The package never starts timers or goroutines. A host supplies a [Container]
// (size, device pixel ratio, child attachment) and usually a [FrameScheduler]
// that invokes the frame callback once per display refresh. Ready-made hosts
// live under host/: headless (PNG frames), window (ebiten) and term (tcell).
//
// # Rendering
//
// Drawing goes through the small [Canvas] interface: clear a rectangle, switch
// between normal and additive blending, fill a disc. The default [Surface] is a
// software rasterizer ([NewRasterSurface]); integration/ggsurface draws through
// github.com/gogpu/gg instead.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left of the container
//   - X increases right, Y increases down
//   - All simulation values are in logical units; surfaces scale by the
//     device pixel ratio (clamped to [MaxPixelRatio])
//
// # Determinism
//
// Every random draw comes from an injected [Rand]. Pass [WithSeed] or
// [WithRand] to make sampling and particle parameters reproducible.
package heart
