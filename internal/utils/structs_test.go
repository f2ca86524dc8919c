package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type mergeTarget struct {
	Name    string
	Amount  int64
	Tags    []string
	private string
}

func TestMergeNonZero(t *testing.T) {
	t.Run("non-zero fields overwrite", func(t *testing.T) {
		dst := &mergeTarget{Name: "old", Amount: 125000, Tags: []string{"a"}}
		src := &mergeTarget{Name: "new"}

		MergeNonZero(dst, src)

		assert.Equal(t, "new", dst.Name)
		assert.Equal(t, int64(125000), dst.Amount, "zero src field must not erase dst")
		assert.Equal(t, []string{"a"}, dst.Tags)
	})

	t.Run("empty src changes nothing", func(t *testing.T) {
		dst := &mergeTarget{Name: "kept", Amount: 42}
		MergeNonZero(dst, &mergeTarget{})

		assert.Equal(t, "kept", dst.Name)
		assert.Equal(t, int64(42), dst.Amount)
	})

	t.Run("mismatched types panic", func(t *testing.T) {
		type other struct{ Name string }
		assert.Panics(t, func() {
			MergeNonZero(&mergeTarget{}, &other{})
		})
	})

	t.Run("non-pointer panics", func(t *testing.T) {
		assert.Panics(t, func() {
			MergeNonZero(mergeTarget{}, &mergeTarget{})
		})
	})
}

func TestStructTagValues(t *testing.T) {
	type row struct {
		Key       string `db:"key"`
		Value     string `db:"value"`
		Ignored   string `db:"-"`
		Untagged  string
		UpdatedAt string `db:"updated_at"`
	}

	assert.Equal(t, []string{"key", "value", "updated_at"}, StructTagValues(row{}))
	assert.Equal(t, []string{"key", "value", "updated_at"}, StructTagValues(&row{}))
}

func TestNanoID(t *testing.T) {
	a := NanoID()
	b := NanoID()

	assert.Len(t, a, 12)
	assert.NotEqual(t, a, b)
}
