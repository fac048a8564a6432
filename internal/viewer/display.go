package viewer

import (
	"html/template"
	"sync"
	"time"

	"github.com/jamesprial/dock-status/internal/render"
)

// User-facing status messages.
const (
	MsgLoading         = "Loading data"
	MsgFetchError      = "Error fetching data!"
	MsgNotFound        = "Dock not found"
	MsgNoBattery       = "No Battery Inserted"
	MsgConnectionError = "Error connecting to server!"
	MsgDataFormat      = "Invalid cell data"
)

// FrameKind says what a Frame holds.
type FrameKind string

const (
	FrameEmpty   FrameKind = ""
	FrameLoading FrameKind = "loading"
	FrameWarning FrameKind = "warning"
	FrameTable   FrameKind = "table"
)

// Frame is the content of the display region.
type Frame struct {
	Kind      FrameKind     `json:"kind"`
	Message   string        `json:"message,omitempty"`
	Table     *render.Table `json:"table,omitempty"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func loadingFrame() Frame { return Frame{Kind: FrameLoading, Message: MsgLoading} }
func warningFrame(msg string) Frame { return Frame{Kind: FrameWarning, Message: msg} }
func tableFrame(t *render.Table) Frame { return Frame{Kind: FrameTable, Table: t} }

// HTML renders the frame as the fragment placed in the result region.
func (f Frame) HTML() (template.HTML, error) {
	switch f.Kind {
	case FrameTable:
		return render.TableHTML(f.Table)
	case FrameLoading:
		return render.MessageHTML(render.ClassLoading, f.Message)
	case FrameWarning:
		return render.MessageHTML(render.ClassWarning, f.Message)
	default:
		return "", nil
	}
}

// Display is the shared result region. The last Show wins.
type Display struct {
	mu    sync.RWMutex
	frame Frame
	now   func() time.Time
}

// NewDisplay returns an empty Display.
func NewDisplay() *Display {
	return &Display{now: time.Now}
}

// Show replaces the region content, stamping the frame with the current time.
func (d *Display) Show(f Frame) {
	f.UpdatedAt = d.now()
	d.mu.Lock()
	d.frame = f
	d.mu.Unlock()
}

// Current returns the frame last shown.
func (d *Display) Current() Frame {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.frame
}
