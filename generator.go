package cubeworld

import (
	"log"

	"github.com/aquilax/go-perlin"
)

const (
	noiseAlpha  = 2.0 // smoothing
	noiseBeta   = 2.0 // frequency
	noiseOctave = int32(3)
	noiseScale  = 0.1

	MaterialGrass Material = 'G'
	MaterialSoil  Material = 'N'
)

// GenerateWorld builds size x size columns of terrain from a perlin
// heightmap. Every column is at least one cube and at most maxHeight cubes
// tall, with grass on top of soil. The same seed always gives the same world.
func GenerateWorld(seed int64, size, maxHeight int) *World {
	noise := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, seed)
	w := NewWorld()
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			n := (noise.Noise2D(float64(x)*noiseScale, float64(y)*noiseScale) + 1) / 2
			height := clamp(1+int(n*float64(maxHeight)), 1, maxHeight)
			for z := 0; z < height; z++ {
				m := MaterialSoil
				if z == height-1 {
					m = MaterialGrass
				}
				corner := NewLattice(x, y, z)
				w.cubes[corner] = NewCube(corner, m)
			}
		}
	}
	w.UpdateAll()
	log.Printf("Generated %d cubes from seed %d", w.Len(), seed)
	return w
}
