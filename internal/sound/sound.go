//go:build !ci

// Package sound plays short effect clips for game events. Clips are
// optional: a missing assets directory or file means silence, never an
// error.
package sound

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

const soundDir = "assets/sounds"

type SoundManager struct {
	buffers map[string]*beep.Buffer
	enabled bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		buffers: make(map[string]*beep.Buffer),
		enabled: false,
	}
}

// Init opens the speaker and loads every clip it can find. Skip this
// call entirely to keep the game silent.
func (sm *SoundManager) Init() error {
	sampleRate := beep.SampleRate(44100)
	// Init speaker with smaller buffer for lower latency
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	sm.enabled = true

	return sm.loadClips(sampleRate)
}

// loadClips reads every mp3/wav file under soundDir into a buffer keyed
// by its basename.
func (sm *SoundManager) loadClips(sampleRate beep.SampleRate) error {
	files, err := os.ReadDir(soundDir)
	if err != nil {
		// It's okay if directory doesn't exist, just no sounds
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read sound directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		name := file.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".mp3" && ext != ".wav" {
			continue
		}

		// Continue loading other clips even if one fails
		_ = sm.loadClip(name, ext, sampleRate)
	}

	return nil
}

// loadClip decodes a single file, resamples it to the speaker rate and
// stores it under the file's basename.
func (sm *SoundManager) loadClip(name, ext string, sampleRate beep.SampleRate) error {
	f, err := os.Open(filepath.Clean(filepath.Join(soundDir, name)))
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	}

	if err != nil {
		return err
	}
	defer func() { _ = streamer.Close() }()

	var resampled beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		resampled = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buffer := beep.NewBuffer(beep.Format{
		SampleRate:  sampleRate,
		NumChannels: 2,
		Precision:   4,
	})
	buffer.Append(resampled)

	sm.buffers[strings.TrimSuffix(name, filepath.Ext(name))] = buffer
	return nil
}

// Play starts the named clip without blocking. Unknown names and an
// uninitialized manager are silently ignored.
func (sm *SoundManager) Play(name string) {
	if !sm.enabled {
		return
	}

	buffer, ok := sm.buffers[name]
	if !ok {
		return
	}

	speaker.Play(buffer.Streamer(0, buffer.Len()))
}

func (sm *SoundManager) Close() {
	sm.enabled = false
}
