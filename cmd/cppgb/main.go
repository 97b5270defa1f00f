// Command cppgb runs the emulation core against an SDL2 window, audio
// device and keyboard.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tobu-wr/CppGB/internal/gameboy"
	"github.com/tobu-wr/CppGB/pkg/host"
	"github.com/tobu-wr/CppGB/pkg/log"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <rom>\n", os.Args[0])
	}
	flag.Parse()

	if flag.NArg() != 1 {
		fatalf("Usage: %s <rom>", os.Args[0])
	}
	romPath := flag.Arg(0)

	logger := log.New()

	rom, err := os.ReadFile(romPath)
	if err != nil {
		fatalf("%s", err)
	}

	savePath := strings.TrimSuffix(romPath, filepath.Ext(romPath)) + ".save"

	h, err := host.New(fmt.Sprintf("cppgb - %s", filepath.Base(romPath)))
	if err != nil {
		fatalf("%s", err)
	}
	defer h.Close()

	gb, err := gameboy.New(rom, logger, h)
	if err != nil {
		fatalf("%s", err)
	}

	if gb.HasBattery() {
		if save, err := os.ReadFile(savePath); err == nil {
			gb.LoadSave(save)
			logger.Infof("loaded save file %s", savePath)
		}
	}

	stopAudio := make(chan struct{})
	go pumpAudio(h, gb, stopAudio)

	gb.Run(h)
	close(stopAudio)

	if gb.HasBattery() {
		ram := gb.SaveRAM()
		if ram != nil {
			if err := os.WriteFile(savePath, ram, 0o644); err != nil {
				logger.Errorf("writing save file: %s", err)
			}
		}
	}

	os.Exit(0)
}

// pumpAudio periodically pulls PCM samples from the sound generator
// and queues them to the host audio device, standing in for the
// hardware's continuous audio stream.
func pumpAudio(h *host.Host, gb *gameboy.GameBoy, stop <-chan struct{}) {
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			h.PushAudio(gb.GenerateAudio)
		}
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "ERROR: %s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}
