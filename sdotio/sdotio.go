// Package sdotio persists and restores a solve's inputs and state: the
// weights ψ, the seeds, and the domain Ω, as a single binary blob.
//
// Blob is little-endian encoded as follows:
//
//	 0 -  3  magic 'S' 'D' 'O' 'T'
//	 4 -  7  format version             (uint32)
//	 8 - 11  len(Psi)                   (uint32)
//	 ...     Psi                        (float64 * len(Psi))
//	 ...     len(Seeds)                 (uint32)
//	 ...     Seeds, flattened (x,y)     (float64 * 2*len(Seeds))
//	 ...     len(Omega.Vertices)        (uint32)
//	 ...     Omega.Vertices, flattened  (float64 * 2*len(Omega.Vertices))
//	 ...     len(Omega.Triangles)       (uint32)
//	 ...     Omega.Triangles, flattened (uint32 * 3*len(Omega.Triangles))
//
// The layout is grounded on gonum.org/v1/gonum/mat's MarshalBinary
// codec for Dense and VecDense (io.go): a small fixed header written
// with encoding/binary in little-endian order, followed by raw payload
// arrays. Write reports the number of bytes written, as that package's
// MarshalBinaryTo does; Read is a plain function that returns a new Blob
// and does not report how many bytes it consumed.
package sdotio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ot2d/sdot/domain"
	"github.com/ot2d/sdot/geom2d"
)

const (
	formatVersion = 1
)

var magic = [4]byte{'S', 'D', 'O', 'T'}

// ErrBadMagic is returned by Read when the input does not begin with
// the sdotio magic bytes.
var ErrBadMagic = errors.New("sdotio: bad magic, not an sdot blob")

// ErrBadVersion is returned by Read when the blob's format version is
// not one this package understands.
var ErrBadVersion = errors.New("sdotio: unsupported format version")

// Blob is the persisted snapshot of a solve: the weights, the seeds
// they were computed for, and the domain they were computed in.
type Blob struct {
	Psi   []float64
	Seeds []geom2d.Point
	Omega domain.Mesh
}

// Write encodes b to w and returns the number of bytes written.
func Write(w io.Writer, b Blob) (int64, error) {
	buf := bufio.NewWriter(w)
	bw := &byteCounter{w: buf}

	if err := binary.Write(bw, binary.LittleEndian, magic); err != nil {
		return bw.n, err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(formatVersion)); err != nil {
		return bw.n, err
	}
	if err := writeFloats(bw, b.Psi); err != nil {
		return bw.n, err
	}
	if err := writeFloats(bw, flattenPoints(b.Seeds)); err != nil {
		return bw.n, err
	}
	if err := writeFloats(bw, flattenPoints(b.Omega.Vertices)); err != nil {
		return bw.n, err
	}
	if err := writeTriangles(bw, b.Omega.Triangles); err != nil {
		return bw.n, err
	}
	return bw.n, buf.Flush()
}

// Read decodes a Blob from r.
func Read(r io.Reader) (Blob, error) {
	var got [4]byte
	if err := binary.Read(r, binary.LittleEndian, &got); err != nil {
		return Blob{}, fmt.Errorf("sdotio: reading magic: %w", err)
	}
	if got != magic {
		return Blob{}, ErrBadMagic
	}
	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return Blob{}, fmt.Errorf("sdotio: reading version: %w", err)
	}
	if version != formatVersion {
		return Blob{}, fmt.Errorf("%w: got %d, want %d", ErrBadVersion, version, formatVersion)
	}

	psi, err := readFloats(r)
	if err != nil {
		return Blob{}, fmt.Errorf("sdotio: reading psi: %w", err)
	}
	seedsFlat, err := readFloats(r)
	if err != nil {
		return Blob{}, fmt.Errorf("sdotio: reading seeds: %w", err)
	}
	vertsFlat, err := readFloats(r)
	if err != nil {
		return Blob{}, fmt.Errorf("sdotio: reading domain vertices: %w", err)
	}
	tris, err := readTriangles(r)
	if err != nil {
		return Blob{}, fmt.Errorf("sdotio: reading domain triangles: %w", err)
	}

	return Blob{
		Psi:   psi,
		Seeds: unflattenPoints(seedsFlat),
		Omega: domain.Mesh{Vertices: unflattenPoints(vertsFlat), Triangles: tris},
	}, nil
}

func writeFloats(w io.Writer, v []float64) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(v))); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, v)
}

func readFloats(r io.Reader) ([]float64, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	v := make([]float64, n)
	if n == 0 {
		return v, nil
	}
	if err := binary.Read(r, binary.LittleEndian, v); err != nil {
		return nil, err
	}
	return v, nil
}

func writeTriangles(w io.Writer, tris [][3]uint32) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(tris))); err != nil {
		return err
	}
	flat := make([]uint32, 0, 3*len(tris))
	for _, t := range tris {
		flat = append(flat, t[0], t[1], t[2])
	}
	return binary.Write(w, binary.LittleEndian, flat)
}

func readTriangles(r io.Reader) ([][3]uint32, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	flat := make([]uint32, 3*n)
	if err := binary.Read(r, binary.LittleEndian, flat); err != nil {
		return nil, err
	}
	tris := make([][3]uint32, n)
	for i := range tris {
		tris[i] = [3]uint32{flat[3*i], flat[3*i+1], flat[3*i+2]}
	}
	return tris, nil
}

func flattenPoints(pts []geom2d.Point) []float64 {
	flat := make([]float64, 0, 2*len(pts))
	for _, p := range pts {
		flat = append(flat, p.X, p.Y)
	}
	return flat
}

func unflattenPoints(flat []float64) []geom2d.Point {
	pts := make([]geom2d.Point, len(flat)/2)
	for i := range pts {
		pts[i] = geom2d.Point{X: flat[2*i], Y: flat[2*i+1]}
	}
	return pts
}

// byteCounter wraps a writer to track the total bytes written, since
// encoding/binary.Write doesn't report partial writes on its own.
type byteCounter struct {
	w io.Writer
	n int64
}

func (b *byteCounter) Write(p []byte) (int, error) {
	n, err := b.w.Write(p)
	b.n += int64(n)
	return n, err
}
