package linkedlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSliceEmpty(t *testing.T) {
	l := FromSlice([]int{})
	assert.Equal(t, 0, l.Len())
	assert.Nil(t, l.Head())
	assert.Nil(t, l.Tail())

	l = FromSlice[int](nil)
	assert.True(t, l.IsEmpty())
}

func TestFromSliceSingle(t *testing.T) {
	l := FromSlice([]int{42})
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, 42, l.Head().Value)
	assert.Equal(t, 42, l.Tail().Value)
	checkInvariants(t, l)
}

func TestFromSliceMultiple(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 1, l.Head().Value)
	assert.Equal(t, 3, l.Tail().Value)
	require.NotNil(t, l.Head().Next())
	assert.Equal(t, 2, l.Head().Next().Value)
	assert.Equal(t, 3, l.Head().Next().Next().Value)
	checkInvariants(t, l)
}

func TestToSlice(t *testing.T) {
	assert.Equal(t, []int{}, ToSlice(New[int]()))
	assert.Equal(t, []int{}, ToSlice[int](nil))

	l := New[int]()
	l.AddFirst(NewNode(42))
	assert.Equal(t, []int{42}, ToSlice(l))
}

func TestToSliceDoesNotMutate(t *testing.T) {
	l := FromSlice([]string{"a", "b"})
	out := ToSlice(l)
	out[0] = "z"

	assert.Equal(t, "a", l.Head().Value)
	assert.Equal(t, 2, l.Len())
	checkInvariants(t, l)
}

func TestRoundTrip(t *testing.T) {
	cases := [][]int{
		{},
		{7},
		{1, 2, 3},
		{3, 3, 1, 0, -5, 3},
	}
	for _, c := range cases {
		assert.Equal(t, c, ToSlice(FromSlice(c)))
	}

	words := []string{"head", "", "tail"}
	assert.Equal(t, words, ToSlice(FromSlice(words)))
}
