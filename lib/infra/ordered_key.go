package infra

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that permits any unsigned integer type.
// If future releases of Go add new predeclared unsigned integer types,
// this constraint will be modified to include them.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is a constraint that permits any integer type.
// If future releases of Go add new predeclared integer types,
// this constraint will be modified to include them.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint that permits any floating-point type.
// If future releases of Go add new predeclared floating-point types,
// this constraint will be modified to include them.
type Float interface {
	~float32 | ~float64
}

// OrderedKey
// byte => ~uint8
type OrderedKey interface {
	Integer | Float | ~string
}

// LessFunc is the comparator policy: a strict weak order over keys.
// Two keys are equal when neither is less than the other.
// A LessFunc must stay consistent for the whole lifetime of the
// container it is bound to.
type LessFunc[K any] func(i, j K) bool

// OrderedLess is the default comparator for naturally ordered key types.
func OrderedLess[K OrderedKey](i, j K) bool {
	return i < j
}

// KeyCompareFunc supports transparent (heterogeneous) lookup: the caller
// captures some external query comparable with K and reports its ordering
// relative to a stored key.
//  1. query == k (return 0)
//  2. query > k (return 1), turn to right part.
//  3. query < k (return -1), turn to left part.
type KeyCompareFunc[K any] func(k K) int64
