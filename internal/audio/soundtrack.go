package audio

import (
	"path/filepath"
	"strings"

	"cinematic-landing/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type AudioStream struct {
	name   string
	music  rl.Music
	data   []byte // raylib streams from this buffer; keep it alive
	active bool
}

// AudioManager plays the page soundtrack. Every call is a no-op in silent
// mode.
type AudioManager struct {
	streams []*AudioStream
}

func NewAudioManager() *AudioManager {
	if !utils.SilentMode && !rl.IsAudioDeviceReady() {
		rl.InitAudioDevice()
	}
	return &AudioManager{}
}

// Play starts a looping stream decoded from data; name supplies the format
// by extension.
func (am *AudioManager) Play(name string, data []byte, vol float64) {
	if utils.SilentMode || len(data) == 0 {
		return
	}
	ext := strings.ToLower(filepath.Ext(name))
	music := rl.LoadMusicStreamFromMemory(ext, data, int32(len(data)))
	if music.Stream.Buffer == nil {
		utils.Warn("Raylib: could not decode soundtrack %s", name)
		return
	}

	music.Looping = true
	rl.SetMusicVolume(music, float32(vol))
	rl.PlayMusicStream(music)

	am.streams = append(am.streams, &AudioStream{name: name, music: music, data: data, active: true})
	utils.Info("Raylib: Playing %s (Vol: %.2f)", name, vol)
}

// Playing lists the names of active streams.
func (am *AudioManager) Playing() []string {
	var names []string
	for _, stream := range am.streams {
		if stream.active {
			names = append(names, stream.name)
		}
	}
	return names
}

func (am *AudioManager) Update() {
	for _, stream := range am.streams {
		if stream.active {
			rl.UpdateMusicStream(stream.music)
		}
	}
}

func (am *AudioManager) Close() {
	for _, stream := range am.streams {
		if stream.active {
			rl.StopMusicStream(stream.music)
			rl.UnloadMusicStream(stream.music)
			stream.active = false
		}
	}
	if rl.IsAudioDeviceReady() {
		rl.CloseAudioDevice()
	}
}
