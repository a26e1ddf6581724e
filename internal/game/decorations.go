package game

import (
	"CubeWalker/internal/config"

	perlin "github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	decorationScale = 0.5
	noiseFrequency  = 0.173
)

// ScatterDecorations lays a grid over the ground and keeps the cells where
// Perlin noise beats the threshold, up to cfg.Count of them. Cells within one
// spacing of an avoided point (player spawn, obstacles) are skipped. The same
// seed always yields the same layout.
func ScatterDecorations(cfg config.DecorationConfig, groundScale mgl32.Vec3, avoid []mgl32.Vec3) []mgl32.Vec3 {
	if cfg.Count <= 0 || cfg.Spacing <= 0 {
		return nil
	}

	p := perlin.NewPerlin(2, 2, 3, cfg.Seed)
	halfX, halfZ := groundScale.X()/2, groundScale.Z()/2
	y := float32(decorationScale / 2)

	var positions []mgl32.Vec3
	for z := -halfZ + cfg.Spacing/2; z < halfZ; z += cfg.Spacing {
		for x := -halfX + cfg.Spacing/2; x < halfX; x += cfg.Spacing {
			cell := mgl32.Vec3{x, y, z}
			if blocked(cell, avoid, cfg.Spacing) {
				continue
			}
			if p.Noise2D(float64(x)*noiseFrequency+0.5, float64(z)*noiseFrequency+0.5) < cfg.Threshold {
				continue
			}
			positions = append(positions, cell)
			if len(positions) == cfg.Count {
				return positions
			}
		}
	}
	return positions
}

func blocked(cell mgl32.Vec3, avoid []mgl32.Vec3, spacing float32) bool {
	for _, a := range avoid {
		dx, dz := cell.X()-a.X(), cell.Z()-a.Z()
		if dx*dx+dz*dz < spacing*spacing {
			return true
		}
	}
	return false
}
