package core

// Renderer is the drawing capability the grid calls into. Calls are
// synchronous and side-effect-only; they never mutate game state. The grid
// invokes RenderTile immediately after each applied Action for the zone
// currently containing the player, and RenderZone when the player's zone
// changes. A nil renderer on the grid silently skips all drawing, which
// happens transiently during construction and in tests.
type Renderer interface {
	// RenderTile draws a single tile within the given zone.
	RenderTile(g *Grid, t *Tile, z Zone)

	// RenderZone redraws the whole zone.
	RenderZone(g *Grid, z Zone)
}
