package sortable

// Byte is a sortable wrapper type for the built-in byte type.
type Byte byte

// Compile-time check that Byte implements Sortable[Byte].
var _ Sortable[Byte] = (*Byte)(nil)

// Equals returns true if this Byte has the same value as the other Byte.
func (b Byte) Equals(other Byte) bool {
	return byte(b) == byte(other)
}

// LessThan returns true if this Byte is numerically less than the other Byte.
func (b Byte) LessThan(other Byte) bool {
	return byte(b) < byte(other)
}

// Bytes converts a byte slice into a new slice of Byte.
func Bytes(values []byte) []Byte {
	out := make([]Byte, len(values))
	for i, v := range values {
		out[i] = Byte(v)
	}

	return out
}
