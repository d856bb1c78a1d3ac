// Package aspen is a retained-mode overlay and dismissal toolkit for
// [Ebitengine].
//
// Aspen provides the small scene tree, pointer event surface, and
// outside-interaction detection that popups, menus, and dialogs need:
// open a panel, and have it told when the user presses and releases
// outside of it.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	stage := aspen.NewStage()
//	// ... add nodes and panels ...
//	aspen.Run(stage, aspen.RunConfig{
//		Title: "My App", Width: 640, Height: 480,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Stage.Update] and [Stage.Draw] directly.
//
// # Scene tree
//
// Every element is a [Node]. Nodes form a tree rooted at [Stage.Root].
// Children inherit their parent's position offset and alpha.
//
//	box := aspen.NewBox("menu", 200, 150, aspen.Color{R: 0.2, G: 0.2, B: 0.3, A: 1})
//	box.Interactable = true
//	stage.Root().AddChild(box)
//
// # Outside-interaction detection
//
// The core of the package is [Detector]: a two-phase press/release state
// machine. A press outside the protected subtree arms a one-shot release
// listener; the release alone decides whether the callback fires, using the
// release's own target. Presses inside the subtree are absorbed — even if
// the matching release lands outside, nothing fires.
//
// Most users never touch [Detector] directly: [Panel] wires it up. A panel
// renders its nested content in a colored box, attaches a detector while
// mounted, and re-synchronizes the subscription whenever its configuration
// or callback changes.
//
//	panel := aspen.NewPanel(stage, aspen.PanelConfig{
//		Width: 220, Height: 140,
//		Color: aspen.Color{R: 0.16, G: 0.16, B: 0.24, A: 1},
//	})
//	panel.SetOnOutside(func(e *aspen.PointerEvent) { panel.Dismiss() })
//	panel.Mount(stage.Root())
//
// Panel fades use tweens (via [gween]).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package aspen
