package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	pdf, err := Generate(210, []Item{
		{Name: "Latte", Quantity: 2, Price: 100},
		{Name: "Croissant", Quantity: 1, Price: 10},
	})
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestGenerateWithoutItems(t *testing.T) {
	pdf, err := Generate(99.5, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}
