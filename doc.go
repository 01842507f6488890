// Package strata is a multi-plane parallax tile compositor for [Ebitengine].
//
// Strata renders stacks of independently scrolling tiled planes into a
// single screen image. Instead of painting every layer across the whole
// viewport back-to-front, it walks the frontmost layer's tiles, merges
// horizontal runs of equal opacity, and recurses into deeper layers only
// beneath runs that do not fully cover the screen. Opaque foreground runs
// suppress all work behind them, so overdraw is eliminated rather than
// merely blended away.
//
// # Quick start
//
// Build tile maps from text, stack them into a LayerSet, and hand the set
// to the built-in game loop:
//
//	clouds, _ := strata.ParseTileMap("0123456789", []string{
//		"    12    ",
//		"  345678  ",
//		"0000000000",
//	})
//	set := strata.NewLayerSet(32, 32)
//	front := set.AddLayer(clouds, cloudKeyed, cloudOpaque)
//	back := set.AddLayer(hills, hillKeyed, hillOpaque)
//	front.SetNext(back)
//	front.SetVelocity(40, 0)
//	back.Link(front, 0.5, 0.5)
//	if err := set.Validate(); err != nil {
//		log.Fatal(err)
//	}
//	strata.Run(set, strata.RunConfig{Title: "Parallax", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself and drive a
// [Compositor] (or [LayerSet.Advance] and [Render] directly) from your own
// Update and Draw.
//
// # Layers and the depth chain
//
// A [Layer] pairs a [TileMap] with a continuous pixel-space position and a
// kinematics mode: free velocity integration, boundary reflection, or a
// position link that slaves it to another layer at a fixed ratio (the
// classic parallax coupling). Each layer optionally names a next layer;
// the renderer recurses along that chain wherever the tiles above are not
// fully opaque.
//
// Tiles are classified by symbol: blank means nothing is drawn at all,
// '0' marks a fully opaque tile, and every other alphabet symbol is keyed
// artwork carrying a transparent color key. Artwork is supplied as
// vertical strip textures indexed by symbol ordinal.
//
// # Statistics
//
// Every layer counts blits, recursive calls, and painted pixels per frame;
// [Compositor.FrameStats] aggregates them and tracks running peaks, which
// makes the overdraw savings directly observable.
//
// [Ebitengine]: https://ebitengine.org
package strata
