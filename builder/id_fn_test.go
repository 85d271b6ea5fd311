package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vgraph/builder"
)

func TestSequential(t *testing.T) {
	fn := builder.Sequential("p")

	require.Equal(t, "p0", fn(0))
	require.Equal(t, "p5", fn(5))
	require.Equal(t, "p42", fn(42))
	require.Panics(t, func() { fn(-1) })
}

func TestAlphabetic(t *testing.T) {
	fn := builder.Alphabetic()

	cases := map[int]string{
		0:   "A",
		1:   "B",
		25:  "Z",
		26:  "AA",
		27:  "AB",
		51:  "AZ",
		52:  "BA",
		701: "ZZ",
		702: "AAA",
	}
	for idx, want := range cases {
		require.Equal(t, want, fn(idx), "idx=%d", idx)
	}
	require.Panics(t, func() { fn(-1) })
}

func TestHex(t *testing.T) {
	fn := builder.Hex("n")

	require.Equal(t, "n0", fn(0))
	require.Equal(t, "na", fn(10))
	require.Equal(t, "nff", fn(255))
	require.Panics(t, func() { fn(-1) })
}
