package errors

import (
	"errors"
	"fmt"
	"sync"
)

const (
	majorBitSize = 7
	minorBitSize = 10
	indexBitSize = 32 - majorBitSize - minorBitSize

	maxIndexValue = (1 << indexBitSize) - 1
	maxMinorValue = (1 << minorBitSize) - 1
	maxMajorValue = (1 << majorBitSize) - 1
)

// Class is the error classification model.
// It is composed of the major, minor and index subclassifications.
// Each subclassifaction is a different length number, where
// major is composed of 7, minor 10 and index of 15 bits.
// Example:
//
//	 44205263 in a binary form is 00000010101000101000010011001111 which decomposes into:
//		0000001 - major (7 bit) - 1
//
//			   0101000101 - minor (10 bit) - 325
//
//						 000010011001111 - index (15 bit) - 1231
//
// Major should be a global scope division like 'Mutator', 'Config' etc.
// Minor should divide the 'major' into subclasses like the mutator names or mutator operators.
// Index is the most precise classification - i.e. Mutator - name - unknown.
type Class uint32

// Major is the top level classification of the Class.
func (c Class) Major() Major {
	return Major(uint32(c) >> (minorBitSize + indexBitSize))
}

// Minor is the mid level classification of the Class, unique within given major.
func (c Class) Minor() Minor {
	return Minor((uint32(c) >> indexBitSize) & maxMinorValue)
}

// Index is the most precise classification, unique within given major and minor.
func (c Class) Index() Index {
	return Index(uint32(c) & maxIndexValue)
}

// String implements fmt.Stringer interface.
func (c Class) String() string {
	return fmt.Sprintf("%d.%d.%d", c.Major(), c.Minor(), c.Index())
}

// Major is a 7 bit top level error classification.
type Major uint8

// InBounds checks if the major value is not greater than the allowed size.
func (m Major) InBounds() bool {
	return m != 0 && m <= maxMajorValue
}

// Minor is a 10 bit mid level error classification.
type Minor uint16

// InBounds checks if the minor value is in the possible 10-bit range.
func (m Minor) InBounds() bool {
	return m != 0 && m <= maxMinorValue
}

// Index is a 15 bit lowest level error classification.
type Index uint16

// InBounds checks if the index value is in the possible 15-bit range.
func (i Index) InBounds() bool {
	return i != 0 && i <= maxIndexValue
}

var registry = newContainer()

type container struct {
	lock      sync.Mutex
	lastMajor Major
	minors    map[Major]Minor
	indexes   map[Class]Index
}

func newContainer() *container {
	return &container{
		minors:  make(map[Major]Minor),
		indexes: make(map[Class]Index),
	}
}

// NewMajor registers new major error classification.
// Returns an error if there are already a maximum number of the majors.
func NewMajor() (Major, error) {
	registry.lock.Lock()
	defer registry.lock.Unlock()

	if registry.lastMajor >= maxMajorValue {
		return 0, errors.New("too many majors registered")
	}
	registry.lastMajor++
	return registry.lastMajor, nil
}

// MustNewMajor registers new major error classification. Panics on error.
func MustNewMajor() Major {
	m, err := NewMajor()
	if err != nil {
		panic(err)
	}
	return m
}

// NewMinor registers new minor classification for the provided 'major'.
func NewMinor(major Major) (Minor, error) {
	registry.lock.Lock()
	defer registry.lock.Unlock()

	if !registry.majorRegistered(major) {
		return 0, errors.New("provided invalid major")
	}
	next := registry.minors[major] + 1
	if !next.InBounds() {
		return 0, errors.New("too many minors registered")
	}
	registry.minors[major] = next
	return next, nil
}

// MustNewMinor registers new minor classification for the 'major'. Panics on error.
func MustNewMinor(major Major) Minor {
	m, err := NewMinor(major)
	if err != nil {
		panic(err)
	}
	return m
}

// NewIndex registers new index classification for the provided 'major' and 'minor'.
func NewIndex(major Major, minor Minor) (Index, error) {
	registry.lock.Lock()
	defer registry.lock.Unlock()

	if !registry.minorRegistered(major, minor) {
		return 0, errors.New("provided invalid minor")
	}
	key := compose(major, minor, 0)
	next := registry.indexes[key] + 1
	if !next.InBounds() {
		return 0, errors.New("too many indexes registered")
	}
	registry.indexes[key] = next
	return next, nil
}

// MustNewIndex registers new index classification. Panics on error.
func MustNewIndex(major Major, minor Minor) Index {
	i, err := NewIndex(major, minor)
	if err != nil {
		panic(err)
	}
	return i
}

// NewClass composes the class from registered 'major', 'minor' and 'index'.
// If any of the arguments is not registered the function returns an error.
func NewClass(major Major, minor Minor, index Index) (Class, error) {
	registry.lock.Lock()
	defer registry.lock.Unlock()

	if !registry.majorRegistered(major) {
		return 0, errors.New("provided invalid major")
	}
	if !registry.minorRegistered(major, minor) {
		return 0, errors.New("provided invalid minor")
	}
	if !index.InBounds() || index > registry.indexes[compose(major, minor, 0)] {
		return 0, errors.New("provided invalid index")
	}
	return compose(major, minor, index), nil
}

// MustNewClass composes the class from provided arguments. Panics on error.
func MustNewClass(major Major, minor Minor, index Index) Class {
	c, err := NewClass(major, minor, index)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *container) majorRegistered(major Major) bool {
	return major.InBounds() && major <= c.lastMajor
}

func (c *container) minorRegistered(major Major, minor Minor) bool {
	return c.majorRegistered(major) && minor.InBounds() && minor <= c.minors[major]
}

func compose(major Major, minor Minor, index Index) Class {
	return Class(uint32(major)<<(minorBitSize+indexBitSize) | uint32(minor)<<indexBitSize | uint32(index))
}
