package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orbosis/pkg/types"
)

func TestCurrent_ColdStartIsNil(t *testing.T) {
	assert.Nil(t, New().Current())
}

func TestSet_ReturnsCopies(t *testing.T) {
	c := New()

	original := &types.Profile{FullName: "Asha Rao", Role: types.RoleDonor}
	c.Set(original)

	// Mutating the caller's value must not leak into the session.
	original.FullName = "changed"

	got := c.Current()
	require.NotNil(t, got)
	assert.Equal(t, "Asha Rao", got.FullName)

	// Nor does mutating what Current handed out.
	got.FullName = "also changed"
	assert.Equal(t, "Asha Rao", c.Current().FullName)
}

func TestClear(t *testing.T) {
	c := New()
	c.Set(&types.Profile{FullName: "Asha Rao"})
	c.Clear()
	assert.Nil(t, c.Current())
}

func TestSubscribe_ReceivesUpdates(t *testing.T) {
	c := New()
	ch, cancel := c.Subscribe()
	defer cancel()

	c.Set(&types.Profile{FullName: "Asha Rao"})

	select {
	case got := <-ch:
		require.NotNil(t, got)
		assert.Equal(t, "Asha Rao", got.FullName)
	case <-time.After(time.Second):
		t.Fatal("no notification")
	}

	c.Clear()

	select {
	case got := <-ch:
		assert.Nil(t, got, "clear notifies with nil")
	case <-time.After(time.Second):
		t.Fatal("no sign-out notification")
	}
}

func TestSubscribe_SlowReaderSeesLatestOnly(t *testing.T) {
	c := New()
	ch, cancel := c.Subscribe()
	defer cancel()

	c.Set(&types.Profile{FullName: "first"})
	c.Set(&types.Profile{FullName: "second"})
	c.Set(&types.Profile{FullName: "third"})

	select {
	case got := <-ch:
		require.NotNil(t, got)
		assert.Equal(t, "third", got.FullName)
	case <-time.After(time.Second):
		t.Fatal("no notification")
	}

	select {
	case extra := <-ch:
		t.Fatalf("unexpected backlog entry: %+v", extra)
	default:
	}
}

func TestSubscribe_CancelIsIdempotent(t *testing.T) {
	c := New()
	ch, cancel := c.Subscribe()

	cancel()
	cancel()

	_, open := <-ch
	assert.False(t, open, "channel should be closed after cancel")

	// Publishing after cancel must not panic.
	c.Set(&types.Profile{FullName: "Asha Rao"})
}
