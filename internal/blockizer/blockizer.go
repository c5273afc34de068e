// Package blockizer partitions a plane into the 8x8 blocks the rest of
// the pipeline operates on, and reassembles a plane from them.
//
// Grounded on the intent of original_source/encoder/blockizer
// (block_x/block_y raster iteration over a strided plane); that sketch
// pads out-of-bounds samples with zero, but spec §4.2 requires edge
// replication, which is what Partition implements here.
package blockizer

import "github.com/IRodriguez13/bitgrain/internal/block"

// Plane is a row-major W x H array of 8-bit samples with stride W.
type Plane struct {
	Width, Height int
	Stride        int
	Pix           []byte
}

// NewPlane allocates a zeroed plane of the given dimensions.
func NewPlane(width, height int) *Plane {
	return &Plane{Width: width, Height: height, Stride: width, Pix: make([]byte, width*height)}
}

// At returns the sample at (x,y).
func (p *Plane) At(x, y int) byte {
	return p.Pix[y*p.Stride+x]
}

// Set stores the sample at (x,y).
func (p *Plane) Set(x, y int, v byte) {
	p.Pix[y*p.Stride+x] = v
}

// Dims returns the number of 8x8 blocks needed to cover width x height.
func Dims(width, height int) (blocksX, blocksY int) {
	return (width + block.Size - 1) / block.Size, (height + block.Size - 1) / block.Size
}

// Partition splits p into 8x8 blocks in raster order (left-to-right,
// top-to-bottom). When width or height is not a multiple of 8, the
// last column/row of blocks is padded by replicating the last valid
// sample in that row/column.
func Partition(p *Plane) []block.Block {
	blocksX, blocksY := Dims(p.Width, p.Height)
	blocks := make([]block.Block, 0, blocksX*blocksY)

	for by := 0; by < blocksY; by++ {
		for bx := 0; bx < blocksX; bx++ {
			var b block.Block
			for y := 0; y < block.Size; y++ {
				srcY := clamp(by*block.Size+y, p.Height-1)
				for x := 0; x < block.Size; x++ {
					srcX := clamp(bx*block.Size+x, p.Width-1)
					b.Set(x, y, int16(p.At(srcX, srcY)))
				}
			}
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// Reassemble writes blocks back into a plane of size width x height,
// discarding any padded columns/rows introduced by Partition.
func Reassemble(blocks []block.Block, width, height int) *Plane {
	p := NewPlane(width, height)
	blocksX, _ := Dims(width, height)

	for i, b := range blocks {
		bx := i % blocksX
		by := i / blocksX
		for y := 0; y < block.Size; y++ {
			dstY := by*block.Size + y
			if dstY >= height {
				continue
			}
			for x := 0; x < block.Size; x++ {
				dstX := bx*block.Size + x
				if dstX >= width {
					continue
				}
				v := b.At(x, y)
				if v < 0 {
					v = 0
				} else if v > 255 {
					v = 255
				}
				p.Set(dstX, dstY, byte(v))
			}
		}
	}
	return p
}

func clamp(v, max int) int {
	if v > max {
		return max
	}
	if v < 0 {
		return 0
	}
	return v
}
