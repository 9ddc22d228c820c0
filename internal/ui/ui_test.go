package ui

import (
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/input"
	"go-space-shooter/internal/render"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tick(m *Menu, tr *input.Tracker, dt float64) (int, bool) {
	tr.Poll()
	return m.Update(dt, tr)
}

func TestMenuNavigationAndRepeat(t *testing.T) {
	m, err := NewMenu("SHOOTER", []string{"Start", "Option", "Quit"})
	require.NoError(t, err)
	keys := input.Fixed{}
	tr := input.NewTracker(keys)

	keys[input.KeyDown] = true
	tick(m, tr, 0.016)
	assert.Equal(t, 1, m.Selected, "нажатие двигает сразу")

	tick(m, tr, 0.1)
	assert.Equal(t, 1, m.Selected, "удержание ждёт repeat-интервал")
	tick(m, tr, 0.1)
	assert.Equal(t, 2, m.Selected)

	keys[input.KeyDown] = false
	tick(m, tr, 0.016)
	keys[input.KeyDown] = true
	tick(m, tr, 0.016)
	assert.Equal(t, 0, m.Selected, "курсор зациклен")

	keys[input.KeyDown] = false
	keys[input.KeyUp] = true
	tick(m, tr, 0.016)
	assert.Equal(t, 2, m.Selected)
}

func TestMenuConfirmIsEdgeTriggered(t *testing.T) {
	m, err := NewMenu("", []string{"Start", "Quit"})
	require.NoError(t, err)
	keys := input.Fixed{input.KeyConfirm: true}
	tr := input.NewTracker(keys)

	sel, ok := tick(m, tr, 0.016)
	assert.True(t, ok)
	assert.Equal(t, 0, sel)

	_, ok = tick(m, tr, 0.016)
	assert.False(t, ok)
}

func TestMenuDrawHighlightsSelection(t *testing.T) {
	m, err := NewMenu("TITLE", []string{"Start", "Quit"})
	require.NoError(t, err)
	m.Selected = 1
	rec := &render.Recorder{}
	m.Draw(rec)
	assert.Equal(t, []string{"TITLE", "Start", "> Quit <"}, rec.Texts())
	assert.Equal(t, config.HighlightColor, rec.Calls[2].Color)
}

func TestHUD(t *testing.T) {
	rec := &render.Recorder{}
	HUD{Score: 12, Lives: 2, Level: 3, Weapon: "fan", Notice: true}.Draw(rec)
	assert.Equal(t, []string{"Score: 12", "Lives: 2", "Level 3", "fan", "DIFFICULTY UP: LEVEL 3"}, rec.Texts())
}
