package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/thirdperson/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

// SettingsUI is the panel shown while the game is paused. Every control
// goes through the same systems functions as the hotkeys.
type SettingsUI struct {
	UI  *ebitenui.UI
	ecs *ecs.ECS

	sensitivityLabel *widget.Label
	invertButton     *widget.Button
	coupleButton     *widget.Button
	hudButton        *widget.Button
	colliderButton   *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewSettingsUI builds the panel for the world in e.
func NewSettingsUI(e *ecs.ECS) *SettingsUI {
	sui := &SettingsUI{ecs: e}
	sui.loadFonts()
	sui.buildUI()
	return sui
}

func (sui *SettingsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	sui.titleFace = &text.GoTextFace{Source: fontSource, Size: 20}
	sui.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
	sui.smallFace = &text.GoTextFace{Source: fontSource, Size: 11}
}

func (sui *SettingsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 10, Bottom: 10, Left: 14, Right: 14}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 40, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("SETTINGS", &sui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	panel.AddChild(sui.buildSensitivityRow())

	sui.invertButton = sui.toggleButton(func() { systems.ToggleInvertY(sui.ecs) })
	panel.AddChild(sui.invertButton)
	sui.coupleButton = sui.toggleButton(func() { systems.ToggleCoupling(sui.ecs) })
	panel.AddChild(sui.coupleButton)
	sui.hudButton = sui.toggleButton(func() { systems.ToggleHUD(sui.ecs) })
	panel.AddChild(sui.hudButton)
	sui.colliderButton = sui.toggleButton(func() { systems.ToggleColliders(sui.ecs) })
	panel.AddChild(sui.colliderButton)

	panel.AddChild(widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 28)),
		widget.ButtonOpts.Image(resumeButtonImage()),
		widget.ButtonOpts.Text("Resume", &sui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			systems.SetPaused(sui.ecs, false)
		}),
	))

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Esc: resume", &sui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{160, 160, 160, 255},
		}),
	))

	rootContainer.AddChild(panel)
	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (sui *SettingsUI) buildSensitivityRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	row.AddChild(sui.stepButton("-", func() { systems.AdjustSensitivity(sui.ecs, -5) }))
	sui.sensitivityLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
	row.AddChild(sui.sensitivityLabel)
	row.AddChild(sui.stepButton("+", func() { systems.AdjustSensitivity(sui.ecs, 5) }))
	return row
}

func (sui *SettingsUI) stepButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(28, 24)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &sui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{200, 200, 200, 255},
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: color.RGBA{150, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			sui.UpdateUI()
		}),
	)
}

func (sui *SettingsUI) toggleButton(onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 24)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text("", &sui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			sui.UpdateUI()
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func resumeButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
	}
}

// UpdateUI refreshes every label from the current settings.
func (sui *SettingsUI) UpdateUI() {
	cfg := systems.GetSettings(sui.ecs).Config
	if sui.sensitivityLabel != nil {
		sui.sensitivityLabel.Label = fmt.Sprintf("Look sensitivity %.0f", cfg.Agent.LookSensitivity)
	}
	setButtonLabel(sui.invertButton, "Invert Y", cfg.Camera.InvertY)
	setButtonLabel(sui.coupleButton, "Body follows camera", cfg.Camera.CoupleModel)
	setButtonLabel(sui.hudButton, "Show HUD", cfg.Debug.ShowHUD)
	setButtonLabel(sui.colliderButton, "Show colliders", cfg.Debug.DrawColliders)
}

func setButtonLabel(b *widget.Button, name string, on bool) {
	if b == nil {
		return
	}
	if textWidget := b.Text(); textWidget != nil {
		state := "off"
		if on {
			state = "on"
		}
		textWidget.Label = fmt.Sprintf("%s: %s", name, state)
	}
}

// Update runs the widgets, then refreshes the labels.
func (sui *SettingsUI) Update() {
	sui.UI.Update()
	sui.UpdateUI()
}
