package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/glosswalk/core"
)

func TestNormalize(t *testing.T) {
	md, err := New().Normalize(`A state of <strong>mental</strong> strain, see <a href="https://x.test/anxiety">anxiety</a>.`)
	require.NoError(t, err)
	assert.Equal(t, "A state of **mental** strain, see [anxiety](https://x.test/anxiety).", md)
}

func TestBody(t *testing.T) {
	n := New()

	body, err := Body(n, core.Definition{Text: "Plain only."})
	require.NoError(t, err)
	assert.Equal(t, "Plain only.", body)

	body, err = Body(n, core.Definition{Text: "Bold text.", HTML: "<b>Bold</b> text."})
	require.NoError(t, err)
	assert.Equal(t, "**Bold** text.", body)

	body, err = Body(n, core.Definition{Text: "", HTML: "<span></span>"})
	require.NoError(t, err)
	assert.Equal(t, "", body)
}
