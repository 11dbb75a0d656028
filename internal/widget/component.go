package widget

// Component receives input and occupies a screen-space rectangle.
type Component interface {
	HandleKeyEvent(event KeyEvent) EventResult
	HandleMouseEvent(event MouseEvent) EventResult
	Bounds() Rect
	SetBounds(bounds Rect)
}

// Widget is a Component rendered as a top-level dashboard panel.
// Draw renders the panel into its current bounds.
type Widget interface {
	Component
	Draw(focused bool) string
}
