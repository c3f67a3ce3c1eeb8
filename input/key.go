package input

// Key identifies a movement key
type Key uint8

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyCount
)

// String returns the key name
func (k Key) String() string {
	switch k {
	case KeyW:
		return "W"
	case KeyA:
		return "A"
	case KeyS:
		return "S"
	case KeyD:
		return "D"
	default:
		return "?"
	}
}

// KeySet is a bitmask of pressed movement keys
type KeySet uint8

// With returns the set including k
func (s KeySet) With(k Key) KeySet {
	return s | 1<<k
}

// Has reports whether k is in the set
func (s KeySet) Has(k Key) bool {
	return s&(1<<k) != 0
}

// Keys builds a set from the given keys
func Keys(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}
