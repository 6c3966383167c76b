package compare

import (
	"cmp"
	"strings"
	"sync"
	"testing"

	"github.com/emirpasic/gods/utils"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func TestAscendingDescending(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b int
		asc  bool
		desc bool
	}{
		{name: "greater", a: 5, b: 3, asc: true, desc: false},
		{name: "smaller", a: 1, b: 8, asc: false, desc: true},
		{name: "equal", a: 4, b: 4, asc: false, desc: false},
		{name: "negative", a: -2, b: -7, asc: true, desc: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.asc, Ascending(tt.a, tt.b))
			assert.Equal(t, tt.desc, Descending(tt.a, tt.b))
		})
	}
}

func TestOrdering_Reverse(t *testing.T) {
	t.Parallel()

	asc := Ordering[string](Ascending[string])
	desc := asc.Reverse()

	assert.True(t, desc("a", "b"))
	assert.False(t, desc("b", "a"))
	assert.False(t, desc("a", "a"))
	assert.True(t, desc.Reverse()("b", "a"))
}

func TestOrdering_CustomEvensFirst(t *testing.T) {
	t.Parallel()

	// Evens before odds, ascending within each group.
	var evensFirst Ordering[int] = func(a, b int) bool {
		aOdd, bOdd := a%2 != 0, b%2 != 0
		if aOdd != bOdd {
			return aOdd
		}

		return a > b
	}

	assert.True(t, evensFirst(3, 2))
	assert.False(t, evensFirst(2, 3))
	assert.True(t, evensFirst(6, 4))
	assert.False(t, evensFirst(4, 4))
}

func TestFromCompare(t *testing.T) {
	t.Parallel()

	byLength := FromCompare(func(a, b string) int {
		return cmp.Compare(len(a), len(b))
	})

	assert.True(t, byLength("three", "one"))
	assert.False(t, byLength("one", "three"))
	assert.False(t, byLength("one", "two"))

	lexical := FromCompare(strings.Compare)

	assert.True(t, lexical("b", "a"))
	assert.False(t, lexical("a", "b"))
}

func TestFromComparator(t *testing.T) {
	t.Parallel()

	ints := FromComparator[int](utils.IntComparator)

	assert.True(t, ints(9, 1))
	assert.False(t, ints(1, 9))
	assert.False(t, ints(4, 4))

	strs := FromComparator[string](utils.StringComparator).Reverse()

	assert.True(t, strs("apple", "pear"))
	assert.False(t, strs("pear", "apple"))
}

func TestNatural(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		asc  bool
	}{
		{name: "numeric suffix", a: "file10", b: "file2", asc: true},
		{name: "numeric suffix reversed", a: "file2", b: "file10", asc: false},
		{name: "plain text", a: "beta", b: "alpha", asc: true},
		{name: "equal", a: "img7", b: "img7", asc: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.asc, NaturalAscending(tt.a, tt.b))

			if tt.a == tt.b {
				assert.False(t, NaturalDescending(tt.a, tt.b))
			} else {
				assert.Equal(t, !tt.asc, NaturalDescending(tt.a, tt.b))
			}
		})
	}
}

func TestCollated(t *testing.T) {
	t.Parallel()

	t.Run("english", func(t *testing.T) {
		t.Parallel()

		order := Collated(language.English)

		assert.True(t, order("banana", "apple"))
		assert.False(t, order("apple", "banana"))
		assert.False(t, order("cherry", "cherry"))
	})

	t.Run("ignore case", func(t *testing.T) {
		t.Parallel()

		order := Collated(language.English, collate.IgnoreCase)

		assert.False(t, order("Apple", "apple"))
		assert.False(t, order("apple", "Apple"))
		assert.True(t, order("Banana", "apple"))
	})
}

func TestCollated_SharedAcrossGoroutines(t *testing.T) {
	t.Parallel()

	order := Collated(language.English, collate.IgnoreCase)

	var wg sync.WaitGroup

	results := make([][2]bool, 16)

	for i := range results {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 200 {
				results[i] = [2]bool{order("Banana", "apple"), order("apple", "Banana")}
			}
		}()
	}

	wg.Wait()

	for _, r := range results {
		assert.Equal(t, [2]bool{true, false}, r)
	}
}
