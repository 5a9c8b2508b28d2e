package bitarray

import (
	"bytes"
	"fmt"
	"math/bits"
	"strings"

	"github.com/pkg/errors"
)

// bits per bucket
const bucketSize = 8

const maxStringedBuckets = 8

var (
	// ErrInvalidArgument reports a nil bitarray, a non-positive size or an
	// index out of range.
	ErrInvalidArgument = errors.New("bitarray: invalid argument")
	// ErrOutOfMemory reports that the backing buffer cannot be allocated.
	ErrOutOfMemory = errors.New("bitarray: out of memory")
)

// BitArray is a fixed size sequence of bits stored in byte buckets. Bit i
// lives in bucket i/8 at position i%8, lowest bit first.
//
// Bits in the last bucket beyond the logical size stay 0 after every
// operation; Any, All and Count rely on that.
type BitArray struct {
	data []byte
	size int
}

// New constructs a bitarray of the given size with every bit set to 0.
func New(size int) (*BitArray, error) {
	if size < 1 {
		return nil, errors.Wrapf(ErrInvalidArgument, "size %v", size)
	}
	buckets := (size + bucketSize - 1) / bucketSize
	if buckets < 1 {
		// size+7 overflowed
		return nil, errors.Wrapf(ErrOutOfMemory, "size %v", size)
	}
	return &BitArray{data: make([]byte, buckets), size: size}, nil
}

// Clone returns an independent bitarray with the same size and bit contents.
func (ba *BitArray) Clone() (*BitArray, error) {
	if err := ba.check(); err != nil {
		return nil, err
	}
	data := make([]byte, len(ba.data))
	copy(data, ba.data)
	return &BitArray{data: data, size: ba.size}, nil
}

// Free releases the backing buffer. It is safe to call on a nil bitarray and
// more than once; a freed bitarray fails every other operation as invalid.
func (ba *BitArray) Free() {
	if ba == nil {
		return
	}
	ba.data = nil
	ba.size = 0
}

// Size returns the number of logical bits. It will never be changed for the
// given receiver.
func (ba *BitArray) Size() int {
	if ba == nil {
		return 0
	}
	return ba.size
}

// Buckets returns the number of backing bytes, ceil(Size/8).
func (ba *BitArray) Buckets() int {
	if ba == nil {
		return 0
	}
	return len(ba.data)
}

// Set sets the bit at index to 1.
func (ba *BitArray) Set(index int) error {
	if err := ba.checkIndex(index); err != nil {
		return err
	}
	ba.data[index/bucketSize] |= 1 << (index % bucketSize)
	return nil
}

// Reset sets the bit at index to 0.
func (ba *BitArray) Reset(index int) error {
	if err := ba.checkIndex(index); err != nil {
		return err
	}
	ba.data[index/bucketSize] &^= 1 << (index % bucketSize)
	return nil
}

// Flip toggles the bit at index.
func (ba *BitArray) Flip(index int) error {
	if err := ba.checkIndex(index); err != nil {
		return err
	}
	ba.data[index/bucketSize] ^= 1 << (index % bucketSize)
	return nil
}

// Fill sets every logical bit to 1, keeping the padding bits of the last
// bucket at 0.
func (ba *BitArray) Fill() error {
	if err := ba.check(); err != nil {
		return err
	}
	for i := range ba.data {
		ba.data[i] = 0xFF
	}
	ba.data[len(ba.data)-1] = ba.lastMask()
	return nil
}

// Clear sets every bit to 0.
func (ba *BitArray) Clear() error {
	if err := ba.check(); err != nil {
		return err
	}
	for i := range ba.data {
		ba.data[i] = 0
	}
	return nil
}

// Test reports whether the bit at index is 1.
func (ba *BitArray) Test(index int) (bool, error) {
	if err := ba.checkIndex(index); err != nil {
		return false, err
	}
	return ba.data[index/bucketSize]&(1<<(index%bucketSize)) != 0, nil
}

// Any reports whether at least one bit is 1.
func (ba *BitArray) Any() (bool, error) {
	if err := ba.check(); err != nil {
		return false, err
	}
	for _, bucket := range ba.data {
		if bucket != 0 {
			return true, nil
		}
	}
	return false, nil
}

// All reports whether every logical bit is 1. The last bucket is compared
// against the mask of its logical bit positions, not against 0xFF.
func (ba *BitArray) All() (bool, error) {
	if err := ba.check(); err != nil {
		return false, err
	}
	last := len(ba.data) - 1
	for _, bucket := range ba.data[:last] {
		if bucket != 0xFF {
			return false, nil
		}
	}
	return ba.data[last] == ba.lastMask(), nil
}

// None reports whether no bit is 1.
func (ba *BitArray) None() (bool, error) {
	any, err := ba.Any()
	if err != nil {
		return false, err
	}
	return !any, nil
}

// Count returns the number of bits set to 1. Raw bucket popcounts equal the
// logical count because padding bits are always 0.
func (ba *BitArray) Count() (int, error) {
	if err := ba.check(); err != nil {
		return 0, err
	}
	count := 0
	for _, bucket := range ba.data {
		count += bits.OnesCount8(bucket)
	}
	return count, nil
}

// And returns a new bitarray with the bitwise and of the operands.
//
// The result takes the larger of the two sizes; the shorter operand is zero
// extended, so result buckets past its end are 0.
func And(first, second *BitArray) (*BitArray, error) {
	return combine(first, second, func(x, y byte) byte { return x & y })
}

// Or returns a new bitarray with the bitwise or of the operands.
//
// The result takes the larger of the two sizes; the shorter operand is zero
// extended, so result buckets past its end equal the longer operand's.
func Or(first, second *BitArray) (*BitArray, error) {
	return combine(first, second, func(x, y byte) byte { return x | y })
}

// Xor returns a new bitarray with the bitwise exclusive or of the operands.
//
// The result takes the larger of the two sizes; the shorter operand is zero
// extended, so result buckets past its end equal the longer operand's.
func Xor(first, second *BitArray) (*BitArray, error) {
	return combine(first, second, func(x, y byte) byte { return x ^ y })
}

// Not returns a new bitarray of the same size with every logical bit
// inverted. The padding bits of the last bucket are forced back to 0.
func Not(operand *BitArray) (*BitArray, error) {
	if err := operand.check(); err != nil {
		return nil, err
	}
	result, err := New(operand.size)
	if err != nil {
		return nil, err
	}
	for i, bucket := range operand.data {
		result.data[i] = ^bucket
	}
	result.data[len(result.data)-1] &= result.lastMask()
	return result, nil
}

// Equal reports whether the operands have the same size and bit contents.
// Raw bucket comparison is exact because padding bits are always 0.
func Equal(first, second *BitArray) bool {
	if first == nil || second == nil {
		return first == second
	}
	return first.size == second.size && bytes.Equal(first.data, second.data)
}

// Iterator returns a closure function, which may be called many times to
// iterate through all bits. It yields the bit index and value, and reports
// false after reaching the end.
func (ba *BitArray) Iterator() func() (index int, value bool, ok bool) {
	index := 0
	return func() (int, bool, bool) {
		if ba == nil || ba.data == nil || index >= ba.size {
			return 0, false, false
		}
		value := ba.data[index/bucketSize]&(1<<(index%bucketSize)) != 0
		index++
		return index - 1, value, true
	}
}

func (ba *BitArray) String() string {
	if ba == nil || ba.data == nil {
		return "[0]{}"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "[%v]{", ba.size)

	buckets := len(ba.data)
	if buckets <= maxStringedBuckets {
		ba.writeBuckets(&b, 0, buckets)
	} else {
		half := maxStringedBuckets / 2
		ba.writeBuckets(&b, 0, half)
		fmt.Fprintf(&b, " <more %v bits> ", (buckets-2*half)*bucketSize)
		ba.writeBuckets(&b, buckets-half, buckets)
	}

	b.WriteString("}")
	return b.String()
}

// writeBuckets renders buckets [from;to), lowest bit first, space separated.
// The last bucket renders only its logical bits.
func (ba *BitArray) writeBuckets(b *strings.Builder, from int, to int) {
	for i := from; i < to; i++ {
		if i != from {
			b.WriteString(" ")
		}
		n := bucketSize
		if i == len(ba.data)-1 {
			if remainder := ba.size % bucketSize; remainder != 0 {
				n = remainder
			}
		}
		for j := 0; j < n; j++ {
			if ba.data[i]&(1<<j) != 0 {
				b.WriteString("1")
			} else {
				b.WriteString("0")
			}
		}
	}
}

// combine allocates the result of a bucket-wise binary operation, sized to
// the larger operand, with the result's padding forced back to 0.
func combine(first, second *BitArray, op func(x, y byte) byte) (*BitArray, error) {
	if err := first.check(); err != nil {
		return nil, err
	}
	if err := second.check(); err != nil {
		return nil, err
	}
	result, err := New(max(first.size, second.size))
	if err != nil {
		return nil, err
	}
	for i := range result.data {
		result.data[i] = op(first.bucketAt(i), second.bucketAt(i))
	}
	result.data[len(result.data)-1] &= result.lastMask()
	return result, nil
}

// bucketAt reads the bucket at index, zero extending past the end.
func (ba *BitArray) bucketAt(index int) byte {
	if index >= len(ba.data) {
		return 0
	}
	return ba.data[index]
}

// lastMask is the mask of the logical bit positions within the last bucket.
func (ba *BitArray) lastMask() byte {
	if remainder := ba.size % bucketSize; remainder != 0 {
		return byte(1)<<remainder - 1
	}
	return 0xFF
}

func (ba *BitArray) check() error {
	if ba == nil || ba.data == nil {
		return errors.Wrap(ErrInvalidArgument, "nil bitarray")
	}
	return nil
}

func (ba *BitArray) checkIndex(index int) error {
	if err := ba.check(); err != nil {
		return err
	}
	if index < 0 || index >= ba.size {
		return errors.Wrapf(ErrInvalidArgument, "index out of range [%v] with size %v", index, ba.size)
	}
	return nil
}
