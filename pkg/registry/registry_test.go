package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/arthur-debert/iconrules/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	ID   int
	Name string
}

func TestRegister(t *testing.T) {
	reg := New[testItem]()
	assert.Equal(t, 0, reg.Count())

	t.Run("register_valid_item", func(t *testing.T) {
		require.NoError(t, reg.Register("item1", testItem{ID: 1, Name: "test"}))
		assert.Equal(t, 1, reg.Count())
		assert.True(t, reg.Has("item1"))
	})

	t.Run("register_with_empty_name", func(t *testing.T) {
		err := reg.Register("", testItem{ID: 2})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)
	})

	t.Run("register_duplicate", func(t *testing.T) {
		err := reg.Register("item1", testItem{ID: 3})
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists), "got %v", err)
	})
}

func TestGet(t *testing.T) {
	reg := New[testItem]()
	MustRegister(reg, "a", testItem{ID: 1, Name: "alpha"})

	item, err := reg.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "alpha", item.Name)

	_, err = reg.Get("missing")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestList(t *testing.T) {
	reg := New[int]()
	MustRegister(reg, "zeta", 1)
	MustRegister(reg, "alpha", 2)
	MustRegister(reg, "mid", 3)

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, reg.List())
}

func TestMustRegisterPanicsOnDuplicate(t *testing.T) {
	reg := New[int]()
	MustRegister(reg, "x", 1)
	assert.Panics(t, func() { MustRegister(reg, "x", 2) })
}

func TestConcurrentAccess(t *testing.T) {
	reg := New[int]()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = reg.Register(fmt.Sprintf("item%d", n), n)
		}(i)
		go func() {
			defer wg.Done()
			_ = reg.List()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, reg.Count())
}
