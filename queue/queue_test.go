package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFIFO(t *testing.T) {
	q := New[int]()
	assert.Equal(t, 0, q.Len())

	for i := 1; i <= 5; i++ {
		q.Enqueue(i * 10)
	}
	assert.Equal(t, 5, q.Len())

	for i := 1; i <= 5; i++ {
		value, ok := q.Dequeue()
		assert.True(t, ok)
		assert.Equal(t, i*10, value)
	}
	assert.Equal(t, 0, q.Len())

	_, ok := q.Dequeue()
	assert.False(t, ok)
}

func TestPeek(t *testing.T) {
	q := New[string]()

	_, ok := q.Peek()
	assert.False(t, ok)

	q.Enqueue("first")
	q.Enqueue("second")

	value, ok := q.Peek()
	assert.True(t, ok)
	assert.Equal(t, "first", value)
	assert.Equal(t, 2, q.Len())

	value, ok = q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, "first", value)

	value, ok = q.Peek()
	assert.True(t, ok)
	assert.Equal(t, "second", value)
}

func TestContains(t *testing.T) {
	q := New(WithComparator[int](func(first, second int) int { return first - second }))

	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)

	assert.True(t, q.Contains(2))
	assert.False(t, q.Contains(4))

	// without a comparator membership is always false
	plain := New[int]()
	plain.Enqueue(2)
	assert.False(t, plain.Contains(2))
}

func TestClearRunsDestructor(t *testing.T) {
	freed := []int{}
	q := New(WithDestructor[int](func(value int) { freed = append(freed, value) }))

	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)
	q.Clear()

	assert.Equal(t, []int{1, 2, 3}, freed)
	assert.Equal(t, 0, q.Len())

	// cleared queue is reusable
	q.Enqueue(4)
	assert.Equal(t, 1, q.Len())
}

func TestClearWithoutDestructor(t *testing.T) {
	q := New[int]()
	q.Enqueue(1)
	q.Enqueue(2)
	q.Clear()
	assert.Equal(t, 0, q.Len())
}

func TestFree(t *testing.T) {
	freed := 0
	q := New(WithDestructor[string](func(string) { freed++ }))

	q.Enqueue("a")
	q.Enqueue("b")
	q.Free()

	assert.Equal(t, 2, freed)
	assert.Equal(t, 0, q.Len())

	q.Free() // idempotent

	var nilQueue *Queue[string]
	nilQueue.Free() // no-op
	nilQueue.Clear()
	assert.Equal(t, 0, nilQueue.Len())
	_, ok := nilQueue.Dequeue()
	assert.False(t, ok)
	_, ok = nilQueue.Peek()
	assert.False(t, ok)
	assert.False(t, nilQueue.Contains("a"))
}

func TestDequeueReleasesSlot(t *testing.T) {
	type payload struct{ data []byte }

	q := New[*payload]()
	q.Enqueue(&payload{data: make([]byte, 8)})
	q.Enqueue(nil)

	value, ok := q.Dequeue()
	assert.True(t, ok)
	assert.NotNil(t, value)

	value, ok = q.Dequeue()
	assert.True(t, ok)
	assert.Nil(t, value)
}
