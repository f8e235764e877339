package linkedlist

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfBounds 下标越界
var ErrIndexOutOfBounds = errors.New("index out of bounds")

func outOfBounds(index, size int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfBounds, index, size)
}
