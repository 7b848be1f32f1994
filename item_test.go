package landlord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem_NewItem(t *testing.T) {
	i, err := NewItem("A", 10, 1)
	require.NoError(t, err)
	assert.Equal(t, "A", i.Label())
	assert.Equal(t, 10.0, i.Cost())
	assert.Equal(t, 1, i.Size())
}

func TestItem_NewItem_Validation(t *testing.T) {
	_, err := NewItem("", 1, 1)
	assert.Error(t, err)

	_, err = NewItem("A", -1, 1)
	assert.Error(t, err)

	_, err = NewItem("A", 1, 0)
	assert.Error(t, err)
}

func TestItem_EqualByLabel(t *testing.T) {
	a1, _ := NewItem("A", 10, 1)
	a2, _ := NewItem("A", 999, 5) // same label, different cost/size
	b, _ := NewItem("B", 10, 1)

	assert.True(t, a1.Equal(a2))
	assert.False(t, a1.Equal(b))
}

func TestItem_Less(t *testing.T) {
	a, _ := NewItem("A", 1, 1)
	b, _ := NewItem("B", 1, 1)
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
}
