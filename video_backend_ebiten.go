//go:build !headless

// video_backend_ebiten.go - Ebiten windowed surface for NXMock

/*
 ███▄    █ ▒██   ██▒ ███▄ ▄███▓ ▒█████   ▄████▄   ██ ▄█▀
 ██ ▀█   █ ▒▒ █ █ ▒░▓██▒▀█▀ ██▒▒██▒  ██▒▒██▀ ▀█   ██▄█▒
▓██  ▀█ ██▒░░  █   ░▓██    ▓██░▒██░  ██▒▒▓█    ▄ ▓███▄░
▓██▒  ▐▌██▒ ░ █ █ ▒ ▒██    ▒██ ▒██   ██░▒▓▓▄ ▄██▒▓██ █▄
▒██░   ▓██░▒██▒ ▒██▒▒██▒   ░██▒░ ████▓▒░▒ ▓███▀ ░▒██▒ █▄
░ ▒░   ▒ ▒ ▒▒ ░ ░▓ ░░ ▒░   ░  ░░ ▒░▒░▒░ ░ ░▒ ▒  ░▒ ▒▒ ▓▒
░ ░░   ░ ▒░░░   ░▒ ░░  ░      ░░ ░ ▒ ▒░   ░  ▒   ░ ░▒ ▒░
   ░   ░ ░  ░    ░  ░      ░   ░ ░ ░ ▒  ░        ░ ░░ ░
         ░  ░    ░         ░       ░ ░  ░ ░      ░  ░

(c) 2026 The NXMock Authors
https://github.com/nxmock/nxmock
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// EbitenSurface presents the machine's frame buffer in a resizable
// window. ESC quits, F1-F4 select the window scale, F5 takes a
// screenshot, F12 toggles the status bar.
type EbitenSurface struct {
	running     bool
	window      *ebiten.Image
	width       int
	height      int
	scale       int
	frameBuffer []byte
	bufferMutex sync.RWMutex
	frameCount  uint64
	vsyncChan   chan struct{}
	done        chan struct{}

	keyHandler        func(byte)
	screenshotHandler func()
	statusProvider    func() MachineStatus
	showStatusBar     bool
}

// NewEbitenSurface returns a surface sized to the machine's window
// dimensions at 2x scale.
func NewEbitenSurface() (Surface, error) {
	return &EbitenSurface{
		width:       NX_WINDOW_WIDTH,
		height:      NX_WINDOW_HEIGHT,
		scale:       2,
		frameBuffer: make([]byte, NX_WINDOW_WIDTH*NX_WINDOW_HEIGHT*4),
		vsyncChan:   make(chan struct{}, 1),
		done:        make(chan struct{}),
	}, nil
}

func (es *EbitenSurface) Start() error {
	if es.running {
		return nil
	}
	es.bufferMutex.Lock()
	es.done = make(chan struct{})
	es.bufferMutex.Unlock()
	es.running = true
	ebiten.SetWindowSize(es.width*es.scale, es.height*es.scale)
	ebiten.SetWindowTitle("NXMock (c) 2026 The NXMock Authors")
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetVsyncEnabled(true)

	go func() {
		defer func() {
			es.running = false
			es.bufferMutex.RLock()
			done := es.done
			es.bufferMutex.RUnlock()
			select {
			case <-done:
			default:
				close(done)
			}
		}()
		if err := ebiten.RunGame(es); err != nil {
			fmt.Printf("Ebiten error: %v\n", err)
		}
	}()

	// Wait for first Draw call to ensure Ebiten is ready
	<-es.vsyncChan
	return nil
}

func (es *EbitenSurface) Stop() error {
	es.running = false
	return nil
}

func (es *EbitenSurface) Close() error {
	return es.Stop()
}

func (es *EbitenSurface) IsStarted() bool {
	return es.running
}

func (es *EbitenSurface) Done() <-chan struct{} {
	es.bufferMutex.RLock()
	done := es.done
	es.bufferMutex.RUnlock()
	return done
}

func (es *EbitenSurface) SetDisplayConfig(config DisplayConfig) error {
	es.bufferMutex.Lock()
	defer es.bufferMutex.Unlock()
	if config.Width <= 0 || config.Height <= 0 {
		return &VideoError{
			Operation: "display config",
			Details:   fmt.Sprintf("invalid dimensions %dx%d", config.Width, config.Height),
		}
	}
	es.width = config.Width
	es.height = config.Height
	if config.Scale > 0 {
		es.scale = config.Scale
	}
	es.frameBuffer = make([]byte, es.width*es.height*4)
	es.window = nil
	if es.running {
		ebiten.SetWindowSize(es.width*es.scale, es.height*es.scale)
	}
	return nil
}

func (es *EbitenSurface) GetDisplayConfig() DisplayConfig {
	es.bufferMutex.RLock()
	defer es.bufferMutex.RUnlock()
	return DisplayConfig{Width: es.width, Height: es.height, Scale: es.scale, VSync: true}
}

func (es *EbitenSurface) UpdateFrame(buffer []byte) error {
	es.bufferMutex.Lock()
	defer es.bufferMutex.Unlock()
	if len(buffer) != len(es.frameBuffer) {
		return &VideoError{
			Operation: "frame update",
			Details:   fmt.Sprintf("buffer size %d, need %d", len(buffer), len(es.frameBuffer)),
		}
	}
	copy(es.frameBuffer, buffer)
	return nil
}

func (es *EbitenSurface) SetKeyHandler(fn func(byte)) {
	es.bufferMutex.Lock()
	es.keyHandler = fn
	es.bufferMutex.Unlock()
}

func (es *EbitenSurface) SetScreenshotHandler(fn func()) {
	es.bufferMutex.Lock()
	es.screenshotHandler = fn
	es.bufferMutex.Unlock()
}

func (es *EbitenSurface) SetStatusProvider(fn func() MachineStatus) {
	es.bufferMutex.Lock()
	es.statusProvider = fn
	es.bufferMutex.Unlock()
}

func (es *EbitenSurface) setScale(scale int) {
	es.bufferMutex.Lock()
	es.scale = scale
	width, height := es.width, es.height
	es.bufferMutex.Unlock()
	ebiten.SetWindowSize(width*scale, height*scale)
}

func (es *EbitenSurface) Update() error {
	if !es.running {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for i, key := range []ebiten.Key{ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3, ebiten.KeyF4} {
		if inpututil.IsKeyJustPressed(key) {
			es.setScale(i + 1)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		es.bufferMutex.RLock()
		handler := es.screenshotHandler
		es.bufferMutex.RUnlock()
		if handler != nil {
			handler()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		es.bufferMutex.Lock()
		es.showStatusBar = !es.showStatusBar
		es.bufferMutex.Unlock()
	}
	es.handleKeyboardInput()
	return nil
}

func (es *EbitenSurface) handleKeyboardInput() {
	es.bufferMutex.RLock()
	handler := es.keyHandler
	es.bufferMutex.RUnlock()
	if handler == nil {
		return
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		if r < 128 {
			handler(byte(r))
		}
	}
}

func (es *EbitenSurface) Draw(screen *ebiten.Image) {
	if es.window == nil {
		es.window = ebiten.NewImage(es.width, es.height)
	}

	es.bufferMutex.RLock()
	es.window.WritePixels(es.frameBuffer)
	showStatusBar := es.showStatusBar
	statusProvider := es.statusProvider
	es.bufferMutex.RUnlock()
	screen.DrawImage(es.window, nil)
	if showStatusBar && statusProvider != nil {
		es.drawStatusBar(screen, statusProvider())
	}

	es.frameCount++
	select {
	case es.vsyncChan <- struct{}{}:
	default:
	}
}

func (es *EbitenSurface) Layout(_, _ int) (int, int) {
	return es.width, es.height
}

type statusToken struct {
	name    string
	enabled bool
}

func drawStatusLine(screen *ebiten.Image, x, baselineY int, label string, tokens []statusToken) {
	face := basicfont.Face7x13
	labelColor := color.RGBA{190, 190, 190, 255}
	offColor := color.RGBA{120, 120, 120, 255}
	onColor := color.RGBA{0, 220, 90, 255}

	text.Draw(screen, label, face, x, baselineY, labelColor)
	cursorX := x + text.BoundString(face, label).Dx() + 6

	for _, token := range tokens {
		c := offColor
		if token.enabled {
			c = onColor
		}
		text.Draw(screen, token.name, face, cursorX, baselineY, c)
		cursorX += text.BoundString(face, token.name).Dx() + 8
	}
}

func (es *EbitenSurface) drawStatusBar(screen *ebiten.Image, s MachineStatus) {
	top := es.height - 30
	drawStatusLine(screen, 4, top, fmt.Sprintf("MAP:%s", s.Map), []statusToken{
		{fmt.Sprintf("SLOTS:%d/%d/%d/%d", s.Slots[0], s.Slots[1], s.Slots[2], s.Slots[3]), true},
		{fmt.Sprintf("BORDER:%d", s.Border), true},
		{"FLASH", s.Flash},
	})
	drawStatusLine(screen, 4, top+14, fmt.Sprintf("FRAME:%d", s.Frames), []statusToken{
		{fmt.Sprintf("L2:%d", s.Layer2Bank), s.Layer2},
		{"SHADOW", s.Layer2Shadow},
	})
}
