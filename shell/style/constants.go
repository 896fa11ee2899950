package style

// Frame layout, in logical pixels. Painters scale these by the canvas.
const (
	TitleTop      = 10
	TitleHeight   = 40
	TitleFontSize = 28

	// Library list
	ListTop        = 80
	ListMarginX    = 100
	ListRowHeight  = 36
	ListRowPitch   = 40
	ListReserved   = 100 // header plus footer, excluded from the visible row count
	ListFontSize   = 20
	EmptyFontSize  = 18
	StatusFontSize = 24

	// Settings
	TabTop       = 60
	TabHeight    = 30
	TabMarginX   = 20
	TabGap       = 5
	TabFontSize  = 16
	ContentTop   = 110
	RowMarginX   = 40
	RowHeight    = 40
	RowPitch     = 50
	LabelOffsetX = 10
	LabelOffsetY = 10
	LabelWidth   = 200
	ValueOffsetX = 250
	ValueWidth   = 300
	FieldHeight  = 20
	RowFontSize  = 18

	// Footer
	FooterMarginX  = 20
	FooterBottom   = 30
	FooterHeight   = 20
	FooterFontSize = 14

	// Notices
	OverlayPadding = 12
	OverlayMargin  = 8
	NoticeFontSize = 16
	NoticeAlpha    = 0xe0
)

// VisibleListRows returns how many library rows fit in a frame of the given
// height. Never less than one.
func VisibleListRows(height int) int {
	n := (height - ListReserved) / ListRowPitch
	if n < 1 {
		return 1
	}
	return n
}
