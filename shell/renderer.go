package shell

import (
	"image/color"

	"github.com/BannedPenta01/Citron-Xbox-WIP/shell/style"
)

// Rect is an axis-aligned rectangle in canvas pixels
type Rect struct {
	X, Y, W, H float64
}

// Align is horizontal text alignment within a rectangle. Text is always
// centred vertically.
type Align int

const (
	AlignCenter Align = iota
	AlignStart
)

// TextStyle describes how a string is drawn
type TextStyle struct {
	Size  float64
	Bold  bool
	Align Align
	Color color.Color
}

// Canvas is the drawing surface a frame is painted onto
type Canvas interface {
	Size() (width, height int)
	Fill(r Rect, c color.Color)
	Text(s string, r Rect, st TextStyle)
}

// NopCanvas accepts and discards all drawing
type NopCanvas struct {
	Width, Height int
}

func (c NopCanvas) Size() (int, int)           { return c.Width, c.Height }
func (NopCanvas) Fill(Rect, color.Color)       {}
func (NopCanvas) Text(string, Rect, TextStyle) {}

// EmptyLibraryMessage is shown in place of the list when no titles exist
const EmptyLibraryMessage = "No games found.\n1. Settings > Add Game Directory\n2. Settings > Install Prod Keys"

// Paint draws one frame from snap. It holds no state between frames.
func Paint(c Canvas, snap Snapshot) {
	w, h := c.Size()
	width, height := float64(w), float64(h)

	c.Fill(Rect{0, 0, width, height}, style.Background)
	c.Text("CITRON", Rect{0, style.TitleTop, width, style.TitleHeight},
		TextStyle{Size: style.TitleFontSize, Bold: true, Color: style.Accent})

	switch {
	case snap.InstallBusy:
		c.Text(snap.InstallStatus, Rect{0, height / 2, width, 50},
			TextStyle{Size: style.StatusFontSize, Color: style.Text})
		return
	case snap.State == StateRunning:
		c.Text("Running "+snap.RunningTitle, Rect{0, height / 2, width, 50},
			TextStyle{Size: style.StatusFontSize, Color: style.Text})
		return
	case snap.State == StateSettings:
		paintSettings(c, snap, width)
	default:
		paintLibrary(c, snap, width, height)
	}

	c.Text(snap.FooterHint(), Rect{style.FooterMarginX, height - style.FooterBottom, width, style.FooterHeight},
		TextStyle{Size: style.FooterFontSize, Align: AlignStart, Color: style.TextDim})

	if snap.HasNotice {
		paintNotice(c, snap.Notice, width, height)
	}
}

// LibraryWindow returns the [start, end) range of titles visible in a frame
// of the given height, keeping the selection centred where possible.
func LibraryWindow(total, selection, height int) (start, end int) {
	return WindowAround(total, selection, style.VisibleListRows(height))
}

// WindowAround returns the [start, end) range of at most visible items that
// starts half a window above the selection
func WindowAround(total, selection, visible int) (start, end int) {
	start = max(0, selection-visible/2)
	end = min(total, start+visible)
	return start, end
}

func paintLibrary(c Canvas, snap Snapshot, width, height float64) {
	if len(snap.Titles) == 0 {
		c.Text(EmptyLibraryMessage, Rect{0, height / 2, width, 40},
			TextStyle{Size: style.EmptyFontSize, Color: style.Text})
		return
	}

	start, end := LibraryWindow(len(snap.Titles), snap.Selection, int(height))
	y := float64(style.ListTop)
	for i := start; i < end; i++ {
		r := Rect{style.ListMarginX, y, width - 2*style.ListMarginX, style.ListRowHeight}
		bg, fg := style.ItemBackground, style.Text
		if i == snap.Selection {
			bg, fg = style.ItemSelected, style.TextSelected
		}
		c.Fill(r, bg)
		c.Text(snap.Titles[i].DisplayName, r, TextStyle{Size: style.ListFontSize, Color: fg})
		y += style.ListRowPitch
	}
}

func paintSettings(c Canvas, snap Snapshot, width float64) {
	tabW := (width - 2*style.TabMarginX) / float64(len(AllTabs))
	for i, tab := range AllTabs {
		r := Rect{style.TabMarginX + float64(i)*tabW, style.TabTop, tabW - style.TabGap, style.TabHeight}
		bg := style.TabInactive
		if tab == snap.Tab {
			bg = style.Accent
		}
		c.Fill(r, bg)
		c.Text(tab.String(), r, TextStyle{Size: style.TabFontSize, Bold: true, Color: style.Text})
	}

	y := float64(style.ContentTop)
	for i, row := range snap.Rows {
		r := Rect{style.RowMarginX, y, width - 2*style.RowMarginX, style.RowHeight}
		selected := i == snap.Cursor

		if row.Kind == RowAction {
			bg := style.TabInactive
			if selected {
				bg = style.Highlight
			}
			c.Fill(r, bg)
			c.Text(row.Label, r, TextStyle{Size: style.RowFontSize, Color: style.Text})
			y += style.RowPitch
			continue
		}

		if selected {
			bg := style.Highlight
			if snap.Editing {
				bg = style.Editing
			}
			c.Fill(r, bg)
		}

		label := Rect{r.X + style.LabelOffsetX, r.Y + style.LabelOffsetY, style.LabelWidth, style.FieldHeight}
		value := Rect{r.X + style.ValueOffsetX, r.Y + style.LabelOffsetY, style.ValueWidth, style.FieldHeight}
		c.Fill(value, style.ItemBackground)

		shown := row.Value
		if selected && snap.Editing {
			shown = "< " + shown + " >"
		}
		c.Text(row.Label, label, TextStyle{Size: style.RowFontSize, Align: AlignStart, Color: style.Text})
		c.Text(shown, value, TextStyle{Size: style.RowFontSize, Align: AlignStart, Color: style.Text})
		y += style.RowPitch
	}
}

func paintNotice(c Canvas, n Notice, width, height float64) {
	boxH := float64(style.NoticeFontSize*3 + style.OverlayPadding*2)
	r := Rect{
		X: style.OverlayMargin,
		Y: height - style.FooterBottom - style.OverlayMargin - boxH,
		W: width - 2*style.OverlayMargin,
		H: boxH,
	}

	bg := style.Overlay
	bg.A = style.NoticeAlpha
	c.Fill(r, bg)

	fg := style.Text
	if n.Level == NoticeError {
		fg = style.Error
	}
	c.Text(n.Message, r, TextStyle{Size: style.NoticeFontSize, Color: fg})
}
