package geom2d

import "testing"

func TestToSigned(t *testing.T) {
	t.Parallel()
	if got, want := ToSigned(NoIndex), int32(-1); got != want {
		t.Errorf("ToSigned(NoIndex) = %d, want %d", got, want)
	}
	if got, want := ToSigned(0), int32(0); got != want {
		t.Errorf("ToSigned(0) = %d, want %d", got, want)
	}
	if got, want := ToSigned(42), int32(42); got != want {
		t.Errorf("ToSigned(42) = %d, want %d", got, want)
	}
}
