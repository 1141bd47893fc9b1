package ui

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/twich/internal/infrastructure/config"
)

const windowTitle = "twich"

const windowCSS = `
.twich-toolbar { padding: 4px 6px; }
.twich-status { padding: 0 8px; opacity: 0.8; }
.twich-player-panel { background-color: #0e0e10; }
`

// mainWindow is the single application window: a toolbar above a split
// of browser (left) and player panel (right).
type mainWindow struct {
	win *gtk.ApplicationWindow

	entry    *gtk.Entry
	panelBtn *gtk.Button
	playBtn  *gtk.Button
	pipBtn   *gtk.Button
	status   *statusLabel

	paned *gtk.Paned
}

func newMainWindow(app *gtk.Application, cfg *config.Config, browser, panel gtk.Widgetter) *mainWindow {
	mw := &mainWindow{}

	mw.win = gtk.NewApplicationWindow(app)
	mw.win.SetTitle(windowTitle)
	mw.win.SetDefaultSize(cfg.Window.Width, cfg.Window.Height)
	mw.win.SetDecorated(cfg.Window.Decorated)
	if cfg.Window.Maximized {
		mw.win.Maximize()
	}

	root := gtk.NewBox(gtk.OrientationVertical, 0)
	root.Append(mw.buildToolbar())

	mw.paned = gtk.NewPaned(gtk.OrientationHorizontal)
	mw.paned.SetVExpand(true)
	mw.paned.SetHExpand(true)
	mw.paned.SetStartChild(browser)
	mw.paned.SetEndChild(panel)
	mw.paned.SetResizeStartChild(true)
	mw.paned.SetResizeEndChild(false)
	mw.paned.SetShrinkEndChild(false)
	root.Append(mw.paned)

	mw.win.SetChild(root)
	applyCSS()
	return mw
}

func (mw *mainWindow) buildToolbar() gtk.Widgetter {
	bar := gtk.NewBox(gtk.OrientationHorizontal, 6)
	bar.AddCSSClass("twich-toolbar")

	mw.entry = gtk.NewEntry()
	mw.entry.SetPlaceholderText("Stream URL for the player panel")
	mw.entry.SetHExpand(true)

	mw.panelBtn = gtk.NewButtonWithLabel("Player")
	mw.panelBtn.SetTooltipText("Show or hide the player panel")
	mw.playBtn = gtk.NewButtonWithLabel("Play")
	mw.playBtn.SetTooltipText("Play the URL in the player panel")
	mw.pipBtn = gtk.NewButtonWithLabel("PiP")
	mw.pipBtn.SetTooltipText("Float the current video")

	mw.status = newStatusLabel()

	bar.Append(mw.entry)
	bar.Append(mw.panelBtn)
	bar.Append(mw.playBtn)
	bar.Append(mw.pipBtn)
	bar.Append(mw.status.Widget())
	return bar
}

func (mw *mainWindow) present() {
	mw.win.Present()
}

func applyCSS() {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return
	}
	provider := gtk.NewCSSProvider()
	provider.LoadFromString(windowCSS)
	gtk.StyleContextAddProviderForDisplay(display, provider, gtk.STYLE_PROVIDER_PRIORITY_APPLICATION)
}
