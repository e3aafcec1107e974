package cli

import (
	"strings"
	"testing"

	"github.com/floodstat/floodstat/internal/teatest"
	"github.com/stretchr/testify/assert"
)

func longReport(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = "row"
	}
	return strings.Join(lines, "\n")
}

func TestPager_QuitKeys(t *testing.T) {
	for _, k := range []string{"q", "esc", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			d := teatest.New(t, newPagerModel("report"), 40, 10)
			assert.False(t, d.Quitting())
			d.Press(k)
			assert.True(t, d.Quitting())
		})
	}
}

func TestPager_SizesViewport(t *testing.T) {
	assert.Equal(t, "loading...", newPagerModel("x").View())

	d := teatest.New(t, newPagerModel(longReport(50)), 40, 11)
	assert.Equal(t, 10, d.Model().(pagerModel).vp.Height)
	assert.Contains(t, d.View(), "[TOP]")
	assert.Contains(t, d.View(), "close")
}

func TestPager_ScrollIndicator(t *testing.T) {
	d := teatest.New(t, newPagerModel(longReport(50)), 40, 11)

	d.Press("G")
	assert.Contains(t, d.View(), "[END]")

	d.Press("g", "down", "down")
	assert.Contains(t, d.View(), "%]")

	d.Press("home")
	assert.Contains(t, d.View(), "[TOP]")
}
