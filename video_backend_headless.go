//go:build headless

package main

import "sync/atomic"

type HeadlessSurface struct {
	started    bool
	config     DisplayConfig
	frameCount uint64
	done       chan struct{}
}

func NewEbitenSurface() (Surface, error) {
	return &HeadlessSurface{
		config: DisplayConfig{Width: NX_WINDOW_WIDTH, Height: NX_WINDOW_HEIGHT, Scale: 1},
		done:   make(chan struct{}),
	}, nil
}

func (h *HeadlessSurface) Start() error {
	h.started = true
	return nil
}

func (h *HeadlessSurface) Stop() error {
	h.started = false
	select {
	case <-h.done:
	default:
		close(h.done)
	}
	return nil
}

func (h *HeadlessSurface) Close() error {
	return h.Stop()
}

func (h *HeadlessSurface) IsStarted() bool {
	return h.started
}

func (h *HeadlessSurface) SetDisplayConfig(config DisplayConfig) error {
	h.config = config
	return nil
}

func (h *HeadlessSurface) GetDisplayConfig() DisplayConfig {
	return h.config
}

func (h *HeadlessSurface) UpdateFrame(buffer []byte) error {
	atomic.AddUint64(&h.frameCount, 1)
	return nil
}

func (h *HeadlessSurface) SetKeyHandler(fn func(byte)) {}

func (h *HeadlessSurface) SetScreenshotHandler(fn func()) {}

func (h *HeadlessSurface) SetStatusProvider(fn func() MachineStatus) {}

func (h *HeadlessSurface) Done() <-chan struct{} {
	return h.done
}
