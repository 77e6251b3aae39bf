// video_compositor.go - Two-layer video compositor for NXMock

/*
 ███▄    █ ▒██   ██▒ ███▄ ▄███▓ ▒█████   ▄████▄   ██ ▄█▀
 ██ ▀█   █ ▒▒ █ █ ▒░▓██▒▀█▀ ██▒▒██▒  ██▒▒██▀ ▀█   ██▄█▒
▓██  ▀█ ██▒░░  █   ░▓██    ▓██░▒██░  ██▒▒▓█    ▄ ▓███▄░
▓██▒  ▐▌██▒ ░ █ █ ▒ ▒██    ▒██ ▒██   ██░▒▓▓▄ ▄██▒▓██ █▄
▒██░   ▓██░▒██▒ ▒██▒▒██▒   ░██▒░ ████▓▒░▒ ▓███▀ ░▒██▒ █▄
░ ▒░   ▒ ▒ ▒▒ ░ ░▓ ░░ ▒░   ░  ░░ ▒░▒░▒░ ░ ░▒ ▒  ░▒ ▒▒ ▓▒
░ ░░   ░ ▒░░░   ░▒ ░░  ░      ░  ░ ▒ ▒░   ░  ▒   ░ ░▒ ▒░
   ░   ░ ░  ░    ░  ░      ░   ░ ░ ░ ▒  ░        ░ ░░ ░
         ░  ░    ░         ░       ░ ░  ░ ░      ░  ░

(c) 2026 The NXMock Authors
https://github.com/nxmock/nxmock
License: GPLv3 or later
*/

/*
video_compositor.go - Two-Layer Video Compositor

The compositor turns memory contents and port-decoded video state into a
pixel buffer. Composition is synchronous and in place: every pass starts
with a full base-layer render (border + attribute cells), then overlays
Layer 2 when it is enabled. There is no double buffering; the frame
buffer is never partially valid because a render always begins with the
clean base pass.

Signal Flow:
  1. Code pokes VRAM through the memory controller
  2. Port writes update border/Layer 2 state in the port decoder
  3. Compose() renders base then overlay into the frame buffer
  4. The host surface presents the frame at its own cadence
*/

package main

// Compositor renders the two display layers into a packed 32-bit frame
// buffer of NX_WINDOW_WIDTH x NX_WINDOW_HEIGHT pixels.
type Compositor struct {
	mem   *MemoryController
	video *VideoState
	frame []uint32
}

// NewCompositor creates a compositor over the given memory and video
// state.
func NewCompositor(mem *MemoryController, video *VideoState) *Compositor {
	return &Compositor{
		mem:   mem,
		video: video,
		frame: make([]uint32, NX_WINDOW_WIDTH*NX_WINDOW_HEIGHT),
	}
}

// Frame returns the frame buffer the compositor renders into.
func (c *Compositor) Frame() []uint32 {
	return c.frame
}

// Compose rebuilds the frame buffer: base layer always, Layer 2 overlay
// when enabled.
func (c *Compositor) Compose() []uint32 {
	c.renderBase()
	if c.video.Layer2.Enable {
		c.renderLayer2()
	}
	return c.frame
}
