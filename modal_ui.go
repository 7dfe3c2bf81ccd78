package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/middlechamber/common"
	"github.com/milk9111/middlechamber/sim"
	"github.com/milk9111/middlechamber/sim/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// wrapWidth is the body line length in basicfont columns.
const wrapWidth = 64

type modalButton struct {
	label   string
	onClick func()
}

type modalTheme struct {
	face      ebtext.Face
	panelImg  *imageui.NineSlice
	buttonImg *widget.ButtonImage
	text      color.Color
	accent    color.Color
	btnText   *widget.ButtonTextColor
	inputImg  *widget.TextInputImage
	inputText *widget.TextInputColor
}

func newModalTheme() *modalTheme {
	btn := imageui.NewNineSliceColor(color.NRGBA{R: 0x3a, G: 0x2e, B: 0x22, A: 0xff})
	hover := imageui.NewNineSliceColor(color.NRGBA{R: 0x5a, G: 0x46, B: 0x30, A: 0xff})
	return &modalTheme{
		face:      ebtext.NewGoXFace(basicfont.Face7x13),
		panelImg:  imageui.NewNineSliceColor(color.NRGBA{R: 0x0c, G: 0x09, B: 0x06, A: 220}),
		buttonImg: &widget.ButtonImage{Idle: btn, Hover: hover, Pressed: hover},
		text:      colornames.Antiquewhite,
		accent:    colornames.Goldenrod,
		btnText:   &widget.ButtonTextColor{Idle: colornames.White},
		inputImg: &widget.TextInputImage{
			Idle:     imageui.NewNineSliceColor(color.NRGBA{R: 0xf5, G: 0xf0, B: 0xe6, A: 0xff}),
			Disabled: imageui.NewNineSliceColor(color.NRGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}),
		},
		inputText: &widget.TextInputColor{
			Idle:     color.Black,
			Disabled: color.Gray{Y: 120},
			Caret:    color.Black,
		},
	}
}

func (t *modalTheme) label(s string, c color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(s, &t.face, c),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

func (t *modalTheme) button(b modalButton) *widget.Button {
	onClick := b.onClick
	return widget.NewButton(
		widget.ButtonOpts.Image(t.buttonImg),
		widget.ButtonOpts.Text(b.label, &t.face, t.btnText),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter, Stretch: true})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

// panel builds a centered vertical panel: a title, wrapped body text and a
// column of buttons.
func (t *modalTheme) panel(title, body string, buttons ...modalButton) (*ebitenui.UI, *widget.Container) {
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(t.panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth*2/3, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	if title != "" {
		panel.AddChild(t.label(title, t.accent))
	}
	for _, para := range strings.Split(body, "\n") {
		for _, line := range common.Wrap(para, wrapWidth) {
			panel.AddChild(t.label(line, t.text))
		}
	}
	for _, b := range buttons {
		panel.AddChild(t.button(b))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}, panel
}

// NewInteractionUI shows the pending dialogue or quiz. Every button ends in
// World.Resolve.
func NewInteractionUI(g *Game, it sim.Interaction) *ebitenui.UI {
	t := g.theme
	if it.Kind == sim.KindDialogue {
		ui, _ := t.panel(it.Speaker, it.Body, modalButton{
			label:   "Continue (Enter)",
			onClick: func() { g.resolve(sim.OutcomeContinue) },
		})
		return ui
	}

	q := it.Question
	title := it.Speaker
	if title == "" {
		title = "Question"
	}
	buttons := make([]modalButton, 0, len(q.Answers))
	for i, answer := range q.Answers {
		choice := i
		buttons = append(buttons, modalButton{
			label:   fmt.Sprintf("%d. %s", i+1, answer),
			onClick: func() { g.answer(q, choice) },
		})
	}
	ui, _ := t.panel(title, q.Text, buttons...)
	return ui
}

func NewPauseUI(g *Game) *ebitenui.UI {
	ui, _ := g.theme.panel("Paused", "", []modalButton{
		{label: "Resume", onClick: func() { g.world.Resume() }},
		{label: "Restart", onClick: g.restart},
		{label: "Main Menu", onClick: g.menu},
	}...)
	return ui
}

func NewMenuUI(g *Game) *ebitenui.UI {
	body := "Climb the winding stairs, answer the Senior Warden, gather the Working Tools and reach the Middle Chamber.\n" +
		"Arrows or A/D to move. Space, W or Up to jump; press again in the air to double jump. Esc pauses."
	ui, _ := g.theme.panel("The Middle Chamber", body, []modalButton{
		{label: "Begin", onClick: g.start},
	}...)
	return ui
}

func NewEndUI(g *Game) *ebitenui.UI {
	w := g.world
	var title, body string
	buttons := []modalButton{
		{label: "Play Again", onClick: g.restart},
		{label: "Main Menu", onClick: g.menu},
	}
	if w.State == sim.StateVictory {
		title = "You have reached the Middle Chamber"
		body = g.summary()
		buttons = append([]modalButton{{label: "Copy Result (C)", onClick: g.copySummary}}, buttons...)
	} else {
		title = "The way is barred"
		body = fmt.Sprintf("An incorrect answer ends the ascent.\nScore: %d", w.Score)
		if q, ok := g.lastQuestionAsked(); ok && q.Explanation != "" {
			body += "\n" + q.Explanation
		}
	}
	ui, _ := g.theme.panel(title, body, buttons...)
	return ui
}

// identityForm collects the fields the first gate checks.
type identityForm struct {
	name      *widget.TextInput
	rank      *widget.TextInput
	initiated *widget.TextInput
	officer   *widget.TextInput
}

func (f *identityForm) identity(userID string) component.Identity {
	return component.Identity{
		Name:           strings.TrimSpace(f.name.GetText()),
		Rank:           strings.TrimSpace(f.rank.GetText()),
		InitiationDate: strings.TrimSpace(f.initiated.GetText()),
		GrandOfficer:   component.ParseHonor(f.officer.GetText()),
		UserID:         userID,
	}
}

func NewIdentityUI(g *Game) *ebitenui.UI {
	t := g.theme
	form := &identityForm{}
	submit := func() { g.submitIdentity(form.identity(g.world.Identity.UserID)) }

	input := func(value string) *widget.TextInput {
		in := widget.NewTextInput(
			widget.TextInputOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(260, 20),
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter, Stretch: true}),
			),
			widget.TextInputOpts.Image(t.inputImg),
			widget.TextInputOpts.Color(t.inputText),
			widget.TextInputOpts.Face(&t.face),
			widget.TextInputOpts.SubmitOnEnter(true),
			widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
				submit()
			}),
		)
		in.SetText(value)
		return in
	}

	id := g.world.Identity
	officer := ""
	if id.GrandOfficer != component.HonorUnknown {
		officer = id.GrandOfficer.String()
	}
	form.name = input(id.Name)
	form.rank = input(id.Rank)
	form.initiated = input(id.InitiationDate)
	form.officer = input(officer)

	ui, panel := t.panel("Junior Deacon", "Who comes here? State your name, rank and date of initiation before you approach.")
	for _, row := range []struct {
		label string
		in    *widget.TextInput
	}{
		{"Name", form.name},
		{"Rank", form.rank},
		{"Initiated (YYYY-MM-DD)", form.initiated},
		{"Grand Officer? (yes/no, optional)", form.officer},
	} {
		panel.AddChild(t.label(row.label, t.text))
		panel.AddChild(row.in)
	}
	panel.AddChild(t.button(modalButton{label: "Present Yourself", onClick: submit}))
	form.name.Focus(true)
	return ui
}
