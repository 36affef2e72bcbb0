//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"lifeview/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Source feeds the HUD. Sources may additionally implement
// core.ParameterControlsProvider and core.IntParameterSetter to expose -/+
// controls.
type Source interface {
	core.ActionProvider
	Parameters() core.ParameterSnapshot
}

// HUD renders the control panel to the right of the grid.
type HUD struct {
	src        Source
	width      int
	title      string
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []hudControlState
	intSetter    core.IntParameterSetter
	actions      []core.Action
	actionRects  []image.Rectangle
	statusTop    int
	panelOffsetX int

	pixel *ebiten.Image
}

type hudControlState struct {
	control  core.ParameterControl
	rects    controlRects
	value    int
	hasValue bool
}

// NewHUD constructs a HUD for src with the given panel width.
func NewHUD(src Source, title string, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{src: src, width: width, title: title}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := src.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		rows := layoutControls(len(controls), width)
		h.controls = make([]hudControlState, len(rows))
		for i := range rows {
			h.controls[i] = hudControlState{control: controls[i], rects: rows[i]}
		}
	}
	if setter, ok := src.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	h.actions = src.Actions()
	top := controlsTop + len(h.controls)*lineHeight + buttonGap
	h.actionRects, h.statusTop = layoutActions(len(h.actions), width, top)
	return h
}

// Update refreshes the cached snapshot and handles clicks inside the panel.
// It returns the error of an action button, if one was pressed and failed.
func (h *HUD) Update(panelOffsetX int) error {
	if h == nil || h.width <= 0 {
		return nil
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.src.Parameters()
	h.refreshControlValues()
	return h.handleInput()
}

// Contains reports whether the screen point lies on the panel.
func (h *HUD) Contains(x, y int) bool {
	return h != nil && h.width > 0 && x >= h.panelOffsetX && x < h.panelOffsetX+h.width && y >= 0
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	h.drawActions()
	h.drawStatus()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok || param.Type != core.ParamTypeInt {
			state.hasValue = false
			continue
		}
		v, err := strconv.Atoi(param.Value)
		if err != nil {
			state.hasValue = false
			continue
		}
		state.value = v
		state.hasValue = true
	}
}

func (h *HUD) handleInput() error {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return nil
	}
	mx, my := ebiten.CursorPosition()
	if !h.Contains(mx, my) {
		return nil
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.rects.minus) {
			h.adjust(state, -1)
			return nil
		}
		if pointInRect(px, my, state.rects.plus) {
			h.adjust(state, 1)
			return nil
		}
	}
	for i, rect := range h.actionRects {
		if pointInRect(px, my, rect) {
			return h.actions[i].Run()
		}
	}
	return nil
}

func (h *HUD) adjust(state *hudControlState, direction int) {
	if h.intSetter == nil {
		return
	}
	target, ok := h.target(state, direction)
	if !ok {
		return
	}
	if h.intSetter.SetIntParameter(state.control.Key, target) {
		state.value = target
	}
}

func (h *HUD) target(state *hudControlState, direction int) (int, bool) {
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	target := state.control.Clamp(state.value + direction*step)
	return target, target != state.value
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.rects.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})

		value, valueColor := "--", color.RGBA{R: 160, G: 160, B: 170, A: 255}
		if state.hasValue {
			value, valueColor = strconv.Itoa(state.value), color.RGBA{R: 220, G: 220, B: 230, A: 255}
		}
		bounds := text.BoundString(face, value)
		valueX := state.rects.minus.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, value, face, valueX, labelY, valueColor)

		_, canDec := h.target(state, -1)
		_, canInc := h.target(state, 1)
		h.drawButton(state.rects.minus, "-", state.hasValue && canDec && h.intSetter != nil)
		h.drawButton(state.rects.plus, "+", state.hasValue && canInc && h.intSetter != nil)
	}
}

func (h *HUD) drawActions() {
	for i, rect := range h.actionRects {
		h.drawButton(rect, h.actions[i].Label(), true)
	}
}

func (h *HUD) drawStatus() {
	face := basicfont.Face7x13
	y := h.statusTop + statusLine
	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
		y += statusLine
		for _, param := range group.Params {
			line := param.Label + ": " + param.Value
			text.Draw(h.panel, line, face, panelPadding+8, y, color.RGBA{R: 170, G: 170, B: 180, A: 255})
			y += statusLine
		}
		y += statusLine / 2
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
