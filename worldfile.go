package cubeworld

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// DefaultWorldSize is the edge of the cube of cells written by SaveWorldFile.
const DefaultWorldSize = 32

const compressedSuffix = ".zst"

// ReadWorld parses a world file: layers of rows of material characters,
// one layer per z starting at 0, separated by blank lines. The result is
// indexed [z][y][x].
func ReadWorld(r io.Reader) ([][][]Material, error) {
	scanner := bufio.NewScanner(r)
	var layers [][][]Material
	var layer [][]Material
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			layers = append(layers, layer)
			layer = nil
			continue
		}
		row := make([]Material, len(line))
		for i := 0; i < len(line); i++ {
			if line[i] >= 0x80 {
				return nil, fmt.Errorf("layer %d row %d: non-ASCII material: %w", len(layers), len(layer), ErrWorldFormat)
			}
			row[i] = Material(line[i])
		}
		layer = append(layer, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading world: %w", err)
	}
	layers = append(layers, layer)
	return layers, nil
}

// NewWorldFromLayers builds a world with a cube for every non-empty cell.
func NewWorldFromLayers(layers [][][]Material) *World {
	w := NewWorld()
	for z, layer := range layers {
		for y, row := range layer {
			for x, m := range row {
				if m == MaterialEmpty {
					continue
				}
				corner := NewLattice(x, y, z)
				w.cubes[corner] = NewCube(corner, m)
			}
		}
	}
	w.UpdateAll()
	return w
}

// WriteWorld writes the cells of w within [0, size) on every axis.
func WriteWorld(out io.Writer, w *World, size int) error {
	bw := bufio.NewWriter(out)
	line := make([]byte, size+1)
	line[size] = '\n'
	for z := 0; z < size; z++ {
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				line[x] = byte(MaterialEmpty)
				if c, found := w.Get(NewLattice(x, y, z)); found {
					line[x] = byte(c.Material)
				}
			}
			if _, err := bw.Write(line); err != nil {
				return fmt.Errorf("error writing world: %w", err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("error writing world: %w", err)
		}
	}
	return bw.Flush()
}

// LoadWorldFile reads a world file, decompressing it if the name ends in
// .zst.
func LoadWorldFile(fileName string) (*World, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("could not open world file %s: %w", fileName, err)
	}
	defer file.Close()

	var r io.Reader = file
	if strings.HasSuffix(fileName, compressedSuffix) {
		dec, err := zstd.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("could not decompress world file %s: %w", fileName, err)
		}
		defer dec.Close()
		r = dec
	}

	layers, err := ReadWorld(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing world file %s: %w", fileName, err)
	}
	w := NewWorldFromLayers(layers)
	log.Printf("Loaded %d cubes from %s", w.Len(), fileName)
	return w, nil
}

// SaveWorldFile writes w to a new file and fails if one already exists. A
// failed save removes the partial file.
func SaveWorldFile(fileName string, w *World) error {
	if err := os.MkdirAll(filepath.Dir(fileName), 0o755); err != nil {
		return fmt.Errorf("could not create directory for %s: %w", fileName, err)
	}
	file, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("could not create world file %s: %w", fileName, err)
	}

	err = encodeWorld(file, w, strings.HasSuffix(fileName, compressedSuffix))
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		if rerr := os.Remove(fileName); rerr != nil {
			log.Printf("Could not remove partial world file %s: %v", fileName, rerr)
		}
		return fmt.Errorf("error saving world file %s: %w", fileName, err)
	}
	log.Printf("Saved %d cubes to %s", w.Len(), fileName)
	return nil
}

// encodeWorld writes the saved region of w, zstd-compressed if asked. The
// encoder is closed before returning so its final flush is reported.
func encodeWorld(out io.Writer, w *World, compressed bool) error {
	if !compressed {
		return WriteWorld(out, w, DefaultWorldSize)
	}
	enc, err := zstd.NewWriter(out)
	if err != nil {
		return fmt.Errorf("could not start compression: %w", err)
	}
	if err := WriteWorld(enc, w, DefaultWorldSize); err != nil {
		enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("error compressing world: %w", err)
	}
	return nil
}
