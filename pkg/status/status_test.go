package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMappingsAreMutualInverses(t *testing.T) {
	for _, s := range All {
		d, err := ToDisplay(s)
		require.NoError(t, err)
		back, err := ToStorage(d)
		require.NoError(t, err)
		assert.Equal(t, s, back)
	}

	for _, d := range AllDisplay {
		s, err := ToStorage(d)
		require.NoError(t, err)
		back, err := ToDisplay(s)
		require.NoError(t, err)
		assert.Equal(t, d, back)
	}
}

func TestUnknownStatusIsRejected(t *testing.T) {
	cases := []string{"", "NEW", "in progress", "In-Progress", "done", "scrapped"}
	for _, c := range cases {
		_, err := ToStorage(c)
		assert.ErrorIs(t, err, ErrUnknown, "display %q", c)
	}

	// Display forms are not valid storage forms and vice versa.
	_, err := ToDisplay("in-progress")
	assert.ErrorIs(t, err, ErrUnknown)
	_, err = ToStorage("In Progress")
	assert.ErrorIs(t, err, ErrUnknown)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(New))
	assert.False(t, IsTerminal(InProgress))
	assert.True(t, IsTerminal(Repaired))
	assert.True(t, IsTerminal(Scrap))
}

func TestColumnOrder(t *testing.T) {
	assert.Equal(t, []string{"new", "in-progress", "repaired", "scrap"}, AllDisplay)
	assert.Equal(t, []string{"New", "In Progress", "Repaired", "Scrap"}, All)
}
