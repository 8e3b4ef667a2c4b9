package runner

// reap removes every reapable body whose centroid has crossed the despawn
// line. Visuals go with them through the scene's remove hook.
func (g *Game) reap() int {
	n := 0
	for h, b := range g.scene.All() {
		if b.Kind().Reapable() && b.Centroid().X() < g.cfg.World.DespawnX {
			g.scene.RemoveHandle(h)
			n++
		}
	}
	return n
}
