package progressbar

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManualProgressBar(t *testing.T) {
	var out bytes.Buffer
	p := NewManualProgressBar(4, 2, &out)

	assert.Equal(t, 0.0, p.Progress())
	assert.True(t, strings.HasPrefix(p.String(), "|    | [0.00%"))

	p.Increment()
	assert.Equal(t, 0.5, p.Progress())
	assert.True(t, strings.HasPrefix(p.String(), "|██  | [50.00%"))

	p.Increment()
	p.Increment()
	assert.Equal(t, 1.0, p.Progress(), "progress should not exceed max")

	p.Display()
	assert.Contains(t, out.String(), "|████| [100.00%")

	p.Close()
	assert.True(t, strings.HasSuffix(out.String(), "\n"))
}

func TestManualProgressBarZeroMax(t *testing.T) {
	p := NewManualProgressBar(2, 0, &bytes.Buffer{})
	assert.Equal(t, 1.0, p.Progress())
}
