package sdotio

import (
	"bytes"
	"testing"

	"github.com/ot2d/sdot/domain"
	"github.com/ot2d/sdot/geom2d"
)

func TestWriteReadRoundTrip(t *testing.T) {
	t.Parallel()
	want := Blob{
		Psi:   []float64{1.5, -2.25, 0},
		Seeds: []geom2d.Point{{X: 0.25, Y: 0.5}, {X: 0.75, Y: 0.5}, {X: 0.1, Y: 0.9}},
		Omega: domain.UnitSquare(),
	}

	var buf bytes.Buffer
	n, err := Write(&buf, want)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("Write reported %d bytes, buffer holds %d", n, buf.Len())
	}

	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if len(got.Psi) != len(want.Psi) {
		t.Fatalf("len(Psi) = %d, want %d", len(got.Psi), len(want.Psi))
	}
	for i := range want.Psi {
		if got.Psi[i] != want.Psi[i] {
			t.Errorf("Psi[%d] = %v, want %v", i, got.Psi[i], want.Psi[i])
		}
	}
	if len(got.Seeds) != len(want.Seeds) {
		t.Fatalf("len(Seeds) = %d, want %d", len(got.Seeds), len(want.Seeds))
	}
	for i := range want.Seeds {
		if got.Seeds[i] != want.Seeds[i] {
			t.Errorf("Seeds[%d] = %v, want %v", i, got.Seeds[i], want.Seeds[i])
		}
	}
	if len(got.Omega.Vertices) != len(want.Omega.Vertices) {
		t.Fatalf("len(Omega.Vertices) = %d, want %d", len(got.Omega.Vertices), len(want.Omega.Vertices))
	}
	for i := range want.Omega.Vertices {
		if got.Omega.Vertices[i] != want.Omega.Vertices[i] {
			t.Errorf("Omega.Vertices[%d] = %v, want %v", i, got.Omega.Vertices[i], want.Omega.Vertices[i])
		}
	}
	if len(got.Omega.Triangles) != len(want.Omega.Triangles) {
		t.Fatalf("len(Omega.Triangles) = %d, want %d", len(got.Omega.Triangles), len(want.Omega.Triangles))
	}
	for i := range want.Omega.Triangles {
		if got.Omega.Triangles[i] != want.Omega.Triangles[i] {
			t.Errorf("Omega.Triangles[%d] = %v, want %v", i, got.Omega.Triangles[i], want.Omega.Triangles[i])
		}
	}
}

func TestReadRejectsBadMagic(t *testing.T) {
	t.Parallel()
	_, err := Read(bytes.NewReader([]byte("NOTSDOTATALL00000000")))
	if err != ErrBadMagic {
		t.Errorf("err = %v, want ErrBadMagic", err)
	}
}

func TestReadRejectsBadVersion(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	buf.Write(magic[:])
	buf.Write([]byte{99, 0, 0, 0}) // version 99, little-endian uint32
	_, err := Read(&buf)
	if err == nil {
		t.Fatal("expected an error for an unsupported version")
	}
}

func TestReadRejectsTruncatedInput(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	_, err := Write(&buf, Blob{Psi: []float64{1, 2, 3}})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	truncated := buf.Bytes()[:buf.Len()-4]
	if _, err := Read(bytes.NewReader(truncated)); err == nil {
		t.Fatal("expected an error reading truncated input")
	}
}
