package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRead(t *testing.T) {
	t.Run("not-exist maps to not found", func(t *testing.T) {
		assert.Equal(t, KindNotFound, classifyRead(fs.ErrNotExist))
	})

	t.Run("permission maps to access denied", func(t *testing.T) {
		assert.Equal(t, KindAccessDenied, classifyRead(fs.ErrPermission))
	})

	t.Run("wrapped errors classify through the chain", func(t *testing.T) {
		err := fmt.Errorf("open tasks.json: %w", fs.ErrNotExist)
		assert.Equal(t, KindNotFound, classifyRead(err))
	})

	t.Run("anything else maps to read failed", func(t *testing.T) {
		assert.Equal(t, KindReadFailed, classifyRead(errors.New("i/o timeout")))
		assert.Equal(t, KindReadFailed, classifyRead(syscall.EIO))
	})
}

func TestClassifyWrite(t *testing.T) {
	t.Run("permission maps to write denied", func(t *testing.T) {
		assert.Equal(t, KindWriteDenied, classifyWrite(fs.ErrPermission))
	})

	t.Run("ENOSPC maps to no space", func(t *testing.T) {
		assert.Equal(t, KindNoSpace, classifyWrite(syscall.ENOSPC))
		err := fmt.Errorf("write tasks.json: %w", syscall.ENOSPC)
		assert.Equal(t, KindNoSpace, classifyWrite(err))
	})

	t.Run("anything else maps to write failed", func(t *testing.T) {
		assert.Equal(t, KindWriteFailed, classifyWrite(errors.New("broken pipe")))
	})
}

func TestError(t *testing.T) {
	t.Run("message includes path and kind", func(t *testing.T) {
		err := &Error{Kind: KindBadJSON, Path: "tasks.json"}
		assert.Contains(t, err.Error(), "tasks.json")
		assert.Contains(t, err.Error(), "invalid JSON")
	})

	t.Run("unwraps to the underlying cause", func(t *testing.T) {
		cause := fs.ErrPermission
		err := &Error{Kind: KindAccessDenied, Path: "tasks.json", Err: cause}
		assert.ErrorIs(t, err, fs.ErrPermission)
	})
}
