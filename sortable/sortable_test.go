package sortable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type version struct {
	major, minor int
}

func (v version) Equals(other version) bool {
	return v == other
}

func (v version) LessThan(other version) bool {
	if v.major != other.major {
		return v.major < other.major
	}

	return v.minor < other.minor
}

func TestAscendingDescending(t *testing.T) {
	t.Parallel()

	asc := Ascending[Int]()
	desc := Descending[Int]()

	assert.True(t, asc(Int(5), Int(3)))
	assert.False(t, asc(Int(3), Int(5)))
	assert.False(t, asc(Int(4), Int(4)))

	assert.True(t, desc(Int(3), Int(5)))
	assert.False(t, desc(Int(5), Int(3)))
	assert.False(t, desc(Int(4), Int(4)))
}

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b version
		want int
	}{
		{name: "equal", a: version{1, 2}, b: version{1, 2}, want: 0},
		{name: "older major", a: version{1, 9}, b: version{2, 0}, want: -1},
		{name: "newer minor", a: version{2, 3}, b: version{2, 1}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
		})
	}
}

func TestWrappers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []Int{5, 3, 8}, Ints([]int{5, 3, 8}))
	assert.Empty(t, Ints(nil))
	assert.Equal(t, []Byte{'g', 'o'}, Bytes([]byte("go")))

	assert.True(t, Byte('a').LessThan(Byte('b')))
	assert.True(t, String("x").Equals(String("x")))
	assert.True(t, String("abc").LessThan(String("abd")))
	assert.Equal(t, 1, Compare(String("b"), String("a")))
}
