package dotpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		segments []string
	}{
		{"pagination", []string{"pagination"}},
		{"pagination.page", []string{"pagination", "page"}},
		{"pagination.filters.search", []string{"pagination", "filters", "search"}},
		{"a.b.c.d", []string{"a", "b", "c", "d"}},
		{"with space.x", []string{"with space", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.segments, p.Segments())
			assert.Equal(t, len(tt.segments), p.Len())
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, input := range []string{"", ".", "a..b", ".a", "a.", "a.b..", "..a"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedPath)
		})
	}
}

func TestJoin_RoundTrip(t *testing.T) {
	inputs := []string{
		"a",
		"pagination",
		"pagination.page",
		"pagination.filters.order",
		"x.y.z.w.v",
		"Items.ProductID",
	}

	for _, s := range inputs {
		p, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, Join(p))
		assert.Equal(t, s, p.String())
	}
}

func TestNew(t *testing.T) {
	p, err := New("a", "b")
	require.NoError(t, err)
	assert.Equal(t, "a.b", p.String())

	_, err = New("a", "", "b")
	assert.ErrorIs(t, err, ErrMalformedPath)

	root, err := New()
	require.NoError(t, err)
	assert.True(t, root.IsEmpty())
	assert.Equal(t, "", root.String())
}

func TestPath_Append_DoesNotAlias(t *testing.T) {
	base := MustParse("a.b")
	left := base.Append("c")
	right := base.Append("d")

	assert.Equal(t, "a.b", base.String())
	assert.Equal(t, "a.b.c", left.String())
	assert.Equal(t, "a.b.d", right.String())

	segs := left.Segments()
	segs[0] = "mutated"
	assert.Equal(t, "a.b.c", left.String())
}

func TestPath_Navigation(t *testing.T) {
	p := MustParse("pagination.filters.sort")

	assert.Equal(t, "sort", p.Last())
	assert.Equal(t, "pagination.filters", p.Parent().String())
	assert.Equal(t, "pagination", p.Parent().Parent().String())
	assert.True(t, p.Parent().Parent().Parent().IsEmpty())
	assert.Equal(t, "", Path{}.Last())
	assert.Equal(t, "filters", p.Segment(1))

	assert.True(t, p.HasPrefix(MustParse("pagination")))
	assert.True(t, p.HasPrefix(MustParse("pagination.filters")))
	assert.True(t, p.HasPrefix(p))
	assert.True(t, p.HasPrefix(Path{}))
	assert.False(t, p.HasPrefix(MustParse("pagination.page")))
	assert.False(t, MustParse("pagination").HasPrefix(p))

	assert.True(t, p.Contains("filters"))
	assert.False(t, p.Contains("page"))

	assert.True(t, p.Equal(MustParse("pagination.filters.sort")))
	assert.False(t, p.Equal(MustParse("pagination.filters")))
}

func TestParseAll(t *testing.T) {
	paths, err := ParseAll([]string{"a", "a.b"})
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, "a.b", paths[1].String())

	_, err = ParseAll([]string{"a", "a..b"})
	assert.ErrorIs(t, err, ErrMalformedPath)
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("") })
}
