package media

import (
	"context"
	"errors"
	"fmt"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/twich/internal/application/port"
	"github.com/bnema/twich/internal/logging"
)

var (
	// ErrEngineClosed is returned once Close has been called.
	ErrEngineClosed = errors.New("media engine closed")
	// ErrForeignHandle is returned for handles built by another engine.
	ErrForeignHandle = errors.New("media handle does not belong to this engine")
)

type mediaHandle struct {
	uri    string
	stream *gtk.MediaFile
	owner  *Engine
}

func (h *mediaHandle) URI() string { return h.uri }

// Engine plays media through GtkMediaFile (GStreamer backed). The stream
// is shown by a GtkVideo with controls and mirrored into any number of
// GtkPictures, which all paint the same frames.
// All methods run on the GTK main thread.
type Engine struct {
	video   *gtk.Video
	mirrors []*gtk.Picture
	current *mediaHandle
	closed  bool
}

var _ port.MediaEngine = (*Engine)(nil)

// NewEngine creates the engine and its main video widget.
func NewEngine() *Engine {
	video := gtk.NewVideo()
	video.SetAutoplay(true)
	video.SetHExpand(true)
	video.SetVExpand(true)
	return &Engine{video: video}
}

// Widget returns the main video widget, with playback controls.
func (e *Engine) Widget() gtk.Widgetter {
	return e.video
}

// NewMirror returns a picture painting the current stream. It follows
// every later Play until the engine closes.
func (e *Engine) NewMirror() *gtk.Picture {
	pic := gtk.NewPicture()
	pic.SetCanShrink(true)
	pic.SetHExpand(true)
	pic.SetVExpand(true)
	if e.current != nil {
		pic.SetPaintable(e.current.stream)
	}
	e.mirrors = append(e.mirrors, pic)
	return pic
}

// NewMedia builds a stream for uri without starting it.
func (e *Engine) NewMedia(ctx context.Context, uri string) (port.MediaHandle, error) {
	if e.closed {
		return nil, ErrEngineClosed
	}
	file := gio.NewFileForURI(uri)
	stream := gtk.NewMediaFileForFile(file)
	if stream == nil {
		return nil, fmt.Errorf("create media stream for %s", uri)
	}
	logging.FromContext(ctx).Debug().Str("uri", uri).Msg("media stream created")
	return &mediaHandle{uri: uri, stream: stream, owner: e}, nil
}

// Play swaps h in as the current stream and starts it.
func (e *Engine) Play(ctx context.Context, h port.MediaHandle) error {
	if e.closed {
		return ErrEngineClosed
	}
	handle, ok := h.(*mediaHandle)
	if !ok || handle.owner != e {
		return ErrForeignHandle
	}

	e.stopCurrent()
	e.current = handle

	e.video.SetMediaStream(handle.stream)
	for _, pic := range e.mirrors {
		pic.SetPaintable(handle.stream)
	}
	handle.stream.Play()

	logging.FromContext(ctx).Info().Str("uri", handle.uri).Msg("playback started")
	return nil
}

// Stop halts playback and clears the surfaces.
func (e *Engine) Stop() {
	if e.closed {
		return
	}
	e.stopCurrent()
	e.video.SetMediaStream(nil)
	for _, pic := range e.mirrors {
		pic.SetPaintable(nil)
	}
}

func (e *Engine) stopCurrent() {
	if e.current == nil {
		return
	}
	e.current.stream.Pause()
	e.current.stream.Clear()
	e.current = nil
}

// Close stops playback and drops the mirrors. It is idempotent.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.Stop()
	e.mirrors = nil
	e.closed = true
}
