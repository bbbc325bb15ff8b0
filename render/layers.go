package render

import "github.com/lixenwraith/shooter-snake/status"

// RegisterGameLayers installs the standard layer stack
// reg enables the HUD debug line and may be nil
func (o *RenderOrchestrator) RegisterGameLayers(ps *ParticleSystem, reg *status.Registry) {
	o.Register(NewBoardRenderer(), PriorityBoard)
	o.Register(NewResourceRenderer(), PriorityResources)
	o.Register(NewSnakeRenderer(), PriorityEntities)
	o.Register(NewProjectileRenderer(), PriorityProjectiles)
	if ps != nil {
		o.Register(ps, PriorityParticle)
	}
	o.Register(NewHUDRenderer(reg), PriorityUI)
	o.Register(NewOverlayRenderer(), PriorityOverlay)
}
