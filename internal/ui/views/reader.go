package views

import (
	"context"
	"fmt"
	"image"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/justyntemme/maktabati-t/internal/assets"
	"github.com/justyntemme/maktabati-t/internal/content"
	"github.com/justyntemme/maktabati-t/internal/layout"
	"github.com/justyntemme/maktabati-t/internal/navigation"
	"github.com/justyntemme/maktabati-t/internal/spread"
	"github.com/justyntemme/maktabati-t/internal/ui/styles"
	"github.com/justyntemme/maktabati-t/internal/ui/terminal"
)

// Zoom levels available
var zoomLevels = []float64{1.0, 1.5, 2.0, 3.0, 4.0}

const (
	// Pan moves in 10% increments.
	panStep = 0.1
	// Full-bleed pages scroll this many rows per key press.
	scrollRows = 3
	// Header and footer lines.
	chromeRows = 2

	loadTimeout = 30 * time.Second
)

// ReaderView shows the current page or spread.
type ReaderView struct {
	s        *Session
	gestures *navigation.Gestures

	// Displayed pages
	spread  spread.Spread
	pages   map[int]image.Image
	loading bool
	err     error

	// Zoom and pan state
	zoomIndex int
	panX      float64
	panY      float64
	scroll    int // full-bleed offset in pixels

	// Encoded image for the last render
	rendered  string
	renderKey renderKey

	// Dimensions
	width  int
	height int
}

type renderKey struct {
	spread     spread.Spread
	mode       layout.Mode
	spreadMode bool
	rotation   int
	width      int
	rows       int
	zoomIndex  int
	panX, panY float64
	scroll     int
}

// PagesLoadedMsg carries the decoded images of a spread. It always goes to
// the reader, whichever view is showing.
type PagesLoadedMsg struct {
	spread spread.Spread
	pages  map[int]image.Image
	err    error
}

// NewReaderView creates the page viewer.
func NewReaderView(s *Session) *ReaderView {
	v := &ReaderView{
		s:        s,
		gestures: navigation.NewGestures(s.Gestures, s.now),
		width:    80,
		height:   24,
	}
	v.resetZoomPan()
	return v
}

// Init implements View
func (v *ReaderView) Init() tea.Cmd {
	return v.Refresh()
}

// Refresh reloads the images when the displayed spread changed.
func (v *ReaderView) Refresh() tea.Cmd {
	sp := v.s.Controller.Spread()
	if sp == v.spread && (v.pages != nil || v.loading) {
		return nil
	}
	v.spread = sp
	v.pages = nil
	v.err = nil
	v.scroll = 0
	v.rendered = ""
	v.resetZoomPan()
	v.gestures.Abort()
	v.loading = true
	return v.loadPages(sp)
}

// Update implements View
func (v *ReaderView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	case tea.MouseMsg:
		return v, v.handleMouseMsg(msg)
	case PagesLoadedMsg:
		if msg.spread != v.spread {
			return v, nil
		}
		v.loading = false
		v.err = msg.err
		v.pages = msg.pages
		v.rendered = ""
	}
	return v, nil
}

// handleKeyMsg processes key presses
func (v *ReaderView) handleKeyMsg(msg tea.KeyMsg) (View, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Escape), key.Matches(msg, Keys.Quit):
		clearImages(v.s.Term)
		return v, SwitchTo(ViewHome)
	case key.Matches(msg, Keys.ZoomIn):
		v.zoomIn()
		return v, nil
	case key.Matches(msg, Keys.ZoomOut):
		v.zoomOut()
		return v, nil
	case key.Matches(msg, Keys.ZoomReset):
		v.resetZoomPan()
		return v, nil
	}

	// When zoomed, arrow keys pan instead of turning pages
	if v.isZoomed() {
		switch msg.String() {
		case "h", "left":
			v.panX = max(0, v.panX-panStep)
			return v, nil
		case "l", "right":
			v.panX = min(1, v.panX+panStep)
			return v, nil
		case "k", "up":
			v.panY = max(0, v.panY-panStep)
			return v, nil
		case "j", "down":
			v.panY = min(1, v.panY+panStep)
			return v, nil
		}
	}

	book, _ := v.s.Store.Current()
	switch {
	case key.Matches(msg, Keys.Next):
		return v, v.turn(navigation.Forward)
	case key.Matches(msg, Keys.Prev):
		return v, v.turn(navigation.Backward)
	case key.Matches(msg, Keys.First):
		return v, v.jump(navigation.Sequential(book, 1))
	case key.Matches(msg, Keys.Last):
		return v, v.jump(navigation.Sequential(book, book.Length()))
	case key.Matches(msg, Keys.Up):
		v.scrollBy(-scrollRows)
	case key.Matches(msg, Keys.Down):
		v.scrollBy(scrollRows)
	case key.Matches(msg, Keys.SwitchBook):
		if err := v.s.Controller.SwitchBook(book.Other()); err != nil {
			return v, SendError(err)
		}
		return v, v.Refresh()
	case key.Matches(msg, Keys.Spread):
		dec := v.s.Controller.ToggleSpread()
		status := "صفحة واحدة"
		if dec.Spread {
			status = "صفحتان متقابلتان"
		}
		return v, tea.Batch(v.Refresh(), SendStatus(status))
	case key.Matches(msg, Keys.Rotate):
		v.s.Store.RotatePage()
	case key.Matches(msg, Keys.Bookmark):
		return v, v.toggleBookmark()
	case key.Matches(msg, Keys.Note):
		id := v.s.Store.Snapshot().CurrentPageID()
		return v, func() tea.Msg { return EditNoteMsg{Page: id} }
	case key.Matches(msg, Keys.ToggleUI):
		v.s.Store.ToggleUI()
	case key.Matches(msg, Keys.Search):
		return v, SwitchTo(ViewSearch)
	case key.Matches(msg, Keys.JuzIndex):
		return v, SwitchTo(ViewIndex)
	case key.Matches(msg, Keys.Bookmarks):
		return v, SwitchTo(ViewBookmarks)
	}
	return v, nil
}

// handleMouseMsg feeds pointer events to the gesture recognizers.
func (v *ReaderView) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	x, y := float64(msg.X), float64(msg.Y)
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		v.scrollBy(-scrollRows)
	case msg.Button == tea.MouseButtonWheelDown:
		v.scrollBy(scrollRows)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		touchSpread := v.s.Pointer == layout.PointerCoarse && v.s.Controller.Layout().Spread
		v.gestures.Press(x, y, touchSpread)
	case msg.Action == tea.MouseActionMotion:
		if dir, ok := v.gestures.Move(x, y); ok {
			return v.turn(dir)
		}
	case msg.Action == tea.MouseActionRelease:
		if dir, ok := v.gestures.Release(x, y, v.s.Controller.Layout().Spread); ok {
			return v.turn(dir)
		}
	}
	return nil
}

func (v *ReaderView) turn(dir navigation.Direction) tea.Cmd {
	if err := v.s.Controller.Paginate(dir); err != nil {
		return SendError(err)
	}
	return v.Refresh()
}

func (v *ReaderView) jump(t navigation.Target) tea.Cmd {
	if err := v.s.Controller.JumpTo(t); err != nil {
		return SendError(err)
	}
	return v.Refresh()
}

func (v *ReaderView) toggleBookmark() tea.Cmd {
	added, err := v.s.Store.ToggleBookmark(v.s.Store.Snapshot().CurrentPageID())
	if err != nil {
		return SendError(err)
	}
	if added {
		return SendStatus("تمت إضافة العلامة")
	}
	return SendStatus("تمت إزالة العلامة")
}

// Zoom methods
func (v *ReaderView) resetZoomPan() {
	v.zoomIndex = 0
	v.panX = 0.5
	v.panY = 0.5
}

func (v *ReaderView) currentZoom() float64 {
	if v.zoomIndex >= 0 && v.zoomIndex < len(zoomLevels) {
		return zoomLevels[v.zoomIndex]
	}
	return 1.0
}

func (v *ReaderView) isZoomed() bool {
	return v.zoomIndex > 0
}

func (v *ReaderView) zoomIn() {
	if v.zoomIndex < len(zoomLevels)-1 {
		v.zoomIndex++
	}
}

func (v *ReaderView) zoomOut() {
	if v.zoomIndex > 0 {
		v.zoomIndex--
		if v.zoomIndex == 0 {
			v.panX, v.panY = 0.5, 0.5
		}
	}
}

func (v *ReaderView) scrollBy(rows int) {
	if v.s.Controller.Layout().Mode != layout.ModeFullBleed {
		return
	}
	v.scroll = max(0, v.scroll+rows*v.s.Cell.Height)
}

// View implements View
func (v *ReaderView) View() string {
	var b strings.Builder

	uiVisible := v.s.Store.Snapshot().UIVisible
	rows := v.height
	if uiVisible {
		rows -= chromeRows
		b.WriteString(v.renderHeader() + "\n")
	}
	rows = max(rows, 1)

	switch {
	case v.err != nil:
		b.WriteString(v.place(rows, styles.ErrorStyle.Render("Error: "+v.err.Error())))
	case v.loading:
		b.WriteString(v.place(rows, styles.MutedText.Render("جار التحميل...")))
	case v.s.Term == terminal.TermModeNone:
		b.WriteString(v.place(rows, v.renderPlaceholder()))
	default:
		b.WriteString(v.renderImage(rows))
	}

	if uiVisible {
		b.WriteString("\n")
		b.WriteString(v.renderFooter())
	}
	return b.String()
}

func (v *ReaderView) place(rows int, s string) string {
	return lipgloss.Place(v.width, rows, lipgloss.Center, lipgloss.Center, s)
}

// primaryPage is the page whose surah and juz the header reports.
func (v *ReaderView) primaryPage() content.PageMetadata {
	i := v.spread.Right
	if i == 0 {
		i = v.spread.Left
	}
	p, _ := v.s.Index.Resolve(v.spread.Book, i)
	return p
}

// renderHeader renders the title line. The title sits on the right, where
// Arabic text begins; indicators sit on the left.
func (v *ReaderView) renderHeader() string {
	book := v.spread.Book
	badge := styles.BadgeQuran
	if book == content.Thoughts {
		badge = styles.BadgeThoughts
	}

	parts := []string{v.spread.Label(v.s.Index)}
	if p := v.primaryPage(); p.Surah != "" {
		parts = append(parts, "سورة "+p.Surah)
		if p.Juz > 0 {
			parts = append(parts, fmt.Sprintf("الجزء %d", p.Juz))
		}
	}
	info := strings.Join(parts, " · ")

	left := v.renderIndicators()
	if v.isZoomed() {
		left += styles.MutedText.Render(fmt.Sprintf(" [%d%%]", int(v.currentZoom()*100)))
	}

	maxInfo := max(v.width-lipgloss.Width(left)-lipgloss.Width(badge.Render(book.Title()))-2, 0)
	right := styles.BookTitle.Render(styles.TruncateText(info, maxInfo)) + " " + badge.Render(book.Title())

	gap := max(v.width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return left + strings.Repeat(" ", gap) + right
}

// renderIndicators marks bookmarked and annotated pages on screen.
func (v *ReaderView) renderIndicators() string {
	var marks []string
	bookmarked, noted := false, false
	for _, i := range v.spread.Pages() {
		id := content.NewPageID(v.spread.Book, i)
		bookmarked = bookmarked || v.s.Store.IsBookmarked(id)
		if _, ok := v.s.Store.Note(id); ok {
			noted = true
		}
	}
	if bookmarked {
		marks = append(marks, styles.BookmarkIndicator.Render("★"))
	}
	if noted {
		marks = append(marks, styles.NoteIndicator.Render("✎"))
	}
	return strings.Join(marks, " ")
}

// renderPlaceholder describes the pages for terminals without images.
func (v *ReaderView) renderPlaceholder() string {
	var lines []string
	for _, i := range v.spread.Pages() {
		p, err := v.s.Index.Resolve(v.spread.Book, i)
		if err != nil {
			continue
		}
		lines = append(lines, styles.BookTitle.Render(p.Label())+"  "+styles.MutedText.Render(p.ImageRef))
	}
	lines = append(lines, "", styles.MutedText.Render("Terminal does not support images.\n\nSupported terminals: Kitty, iTerm2, or Sixel-capable terminals."))
	return strings.Join(lines, "\n")
}

// renderImage renders the displayed pages, reusing the last encoding when
// nothing visible changed.
func (v *ReaderView) renderImage(rows int) string {
	snap := v.s.Store.Snapshot()
	dec := v.s.Controller.Layout()
	k := renderKey{
		spread:     v.spread,
		mode:       dec.Mode,
		spreadMode: snap.SpreadMode,
		rotation:   snap.Rotation,
		width:      v.width,
		rows:       rows,
		zoomIndex:  v.zoomIndex,
		panX:       v.panX,
		panY:       v.panY,
		scroll:     v.scroll,
	}
	if v.rendered != "" && k == v.renderKey {
		return v.rendered
	}

	img := v.compose(snap.SpreadMode)
	if img == nil {
		return v.place(rows, styles.MutedText.Render("No image data"))
	}
	img = assets.Rotate(img, snap.Rotation)
	img = assets.Crop(img, v.currentZoom(), v.panX, v.panY)

	pxW, pxH := v.s.Cell.Pixels(v.width, rows)
	if dec.Mode == layout.ModeFullBleed {
		img = assets.FitWidth(img, pxW)
		img, v.scroll = assets.Slice(img, v.scroll, pxH)
		k.scroll = v.scroll
	} else {
		img = assets.Fit(img, pxW, pxH)
	}

	out, err := terminal.RenderImageToString(img, v.s.Term)
	if err != nil {
		return styles.ErrorStyle.Render("Render error: " + err.Error())
	}
	v.rendered, v.renderKey = out, k
	return out
}

// compose joins the loaded pages. In spread mode a lone page keeps its
// side of the spread.
func (v *ReaderView) compose(spreadMode bool) image.Image {
	if spreadMode {
		return assets.ComposeSpread(v.pages[v.spread.Right], v.pages[v.spread.Left])
	}
	return v.pages[v.spread.Right]
}

// renderFooter renders the footer help with consistent styling
func (v *ReaderView) renderFooter() string {
	var help string
	if v.isZoomed() {
		help = styles.HelpItems(
			"hjkl", "pan",
			"+/-", fmt.Sprintf("zoom (%d%%)", int(v.currentZoom()*100)),
			"0", "reset",
			"q", "back",
		)
	} else {
		help = styles.HelpItems(
			"←/→", "pages",
			"s", "spread",
			"b", "bookmark",
			"a", "note",
			"/", "search",
			"i", "index",
			"?", "help",
		)
	}
	pos := styles.ReaderProgress.Render(fmt.Sprintf("%d/%d", v.spread.First(), v.spread.Book.Length()))
	gap := max(v.width-lipgloss.Width(help)-lipgloss.Width(pos)-2, 1)
	return styles.FooterBar.Render(help + strings.Repeat(" ", gap) + pos)
}

// SetSize implements View. The page area is reported to the layout
// detector in pixels.
func (v *ReaderView) SetSize(width, height int) {
	v.width = width
	v.height = height
	pxW, pxH := v.s.Cell.Pixels(width, max(height-chromeRows, 1))
	v.s.Controller.ObserveViewport(layout.Signals{Width: pxW, Height: pxH, Pointer: v.s.Pointer})
}

// loadPages decodes every page of sp.
func (v *ReaderView) loadPages(sp spread.Spread) tea.Cmd {
	images := v.s.Images
	index := v.s.Index
	return func() tea.Msg {
		pages := make(map[int]image.Image, 2)
		if images == nil {
			return PagesLoadedMsg{spread: sp, pages: pages}
		}
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		for _, i := range sp.Pages() {
			p, err := index.Resolve(sp.Book, i)
			if err != nil {
				return PagesLoadedMsg{spread: sp, err: err}
			}
			img, err := images.Load(ctx, p.ImageRef)
			if err != nil {
				return PagesLoadedMsg{spread: sp, err: err}
			}
			pages[i] = img
		}
		return PagesLoadedMsg{spread: sp, pages: pages}
	}
}

// clearImages removes drawn images before leaving the reader.
func clearImages(mode terminal.TermImageMode) {
	if seq := terminal.ClearImages(mode); seq != "" {
		os.Stdout.WriteString(seq)
	}
}
