// Package host implements the SDL2 host adapter: the frame sink, audio
// pull and input source that keep window, audio device and keyboard
// access out of the emulation core. Audio is pulled on demand through
// sdl.QueueAudio from a timer goroutine, rather than pushed through a
// cgo audio callback, so the pull stays a plain synchronous function
// call.
package host

import (
	"fmt"
	"unsafe"

	"github.com/tobu-wr/CppGB/internal/joypad"
	"github.com/tobu-wr/CppGB/internal/ppu"
	"github.com/tobu-wr/CppGB/internal/types"
	"github.com/veandco/go-sdl2/sdl"
)

// Scale is the window's frame-buffer scale factor.
const Scale = 2

const audioBufferSamples = 512

// Host owns the SDL window, renderer, texture and audio device backing
// the three external-collaborator interfaces.
type Host struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	audioDev sdl.AudioDeviceID

	quit bool
}

// New creates the SDL window, renderer, texture and audio device. The
// caller must call Close when done.
func New(title string) (*Host, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		ppu.ScreenWidth*Scale, ppu.ScreenHeight*Scale, sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_RGB24, sdl.TEXTUREACCESS_STREAMING,
		ppu.ScreenWidth, ppu.ScreenHeight)
	if err != nil {
		return nil, fmt.Errorf("create texture: %w", err)
	}

	dev, err := sdl.OpenAudioDevice("", false, &sdl.AudioSpec{
		Freq:     48000,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  audioBufferSamples,
	}, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	sdl.PauseAudioDevice(dev, false)

	return &Host{window: window, renderer: renderer, texture: texture, audioDev: dev}, nil
}

// Close tears down the SDL resources.
func (h *Host) Close() {
	sdl.CloseAudioDevice(h.audioDev)
	h.texture.Destroy()
	h.renderer.Destroy()
	h.window.Destroy()
	sdl.Quit()
}

// DeliverFrame implements ppu.FrameSink: it blits the pixel buffer
// into the streaming texture and presents it, scaled. model picks
// which of Pixel's two color representations to read, since a CGB
// frame's all-black pixel is a valid color, not an absent one.
func (h *Host) DeliverFrame(frame *[ppu.ScreenHeight][ppu.ScreenWidth]ppu.Pixel, model types.Model) {
	var pixels [ppu.ScreenHeight][ppu.ScreenWidth][3]byte
	for y := 0; y < ppu.ScreenHeight; y++ {
		for x := 0; x < ppu.ScreenWidth; x++ {
			pixels[y][x] = dmgOrCGBColor(frame[y][x], model)
		}
	}
	h.texture.Update(nil, unsafe.Pointer(&pixels[0][0][0]), ppu.ScreenWidth*3)
	h.renderer.Copy(h.texture, nil, nil)
	h.renderer.Present()
}

// dmgShades maps a DMG 2-bit shade to its displayed RGB triple.
var dmgShades = [4][3]byte{
	{0xFF, 0xFF, 0xFF},
	{0xAA, 0xAA, 0xAA},
	{0x55, 0x55, 0x55},
	{0x00, 0x00, 0x00},
}

func dmgOrCGBColor(p ppu.Pixel, model types.Model) [3]byte {
	if model == types.ModelCGB {
		return p.CGBColor
	}
	return dmgShades[p.DMGColor]
}

// PushAudio queues one buffer of audioBufferSamples (512) bytes of PCM
// pulled from gen into the audio device.
func (h *Host) PushAudio(gen func([]byte)) error {
	buf := make([]byte, audioBufferSamples)
	gen(buf)
	return sdl.QueueAudio(h.audioDev, buf)
}

// Poll implements gameboy.InputSource, reading the keyboard state
// using the default binding: arrow keys for direction, Q=A, W=B,
// Space=Select, Return=Start.
func (h *Host) Poll() joypad.State {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if _, ok := event.(*sdl.QuitEvent); ok {
			h.quit = true
		}
	}
	keys := sdl.GetKeyboardState()
	return joypad.State{
		Right:  keys[sdl.SCANCODE_RIGHT] != 0,
		Left:   keys[sdl.SCANCODE_LEFT] != 0,
		Up:     keys[sdl.SCANCODE_UP] != 0,
		Down:   keys[sdl.SCANCODE_DOWN] != 0,
		A:      keys[sdl.SCANCODE_Q] != 0,
		B:      keys[sdl.SCANCODE_W] != 0,
		Select: keys[sdl.SCANCODE_SPACE] != 0,
		Start:  keys[sdl.SCANCODE_RETURN] != 0,
	}
}

// Quit implements gameboy.InputSource.
func (h *Host) Quit() bool {
	return h.quit
}
