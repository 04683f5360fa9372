package config

// Asset ids the game looks up in the manifest.
const (
	ImageBird     = "bird"
	ImagePipe     = "pipe"
	ImageGameOver = "gameover"

	AudioMusic = "music"
	AudioCrash = "crash"
)

// Default returns the built-in tuning. data/flappy.yaml mirrors it.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Flappy",
			Width:  480,
			Height: 640,
		},
		Viewport: ViewportConfig{
			Width:  480,
			Height: 640,
			FloorY: 640,
		},
		Bird: BirdConfig{
			X:              80,
			Y:              300,
			Width:          34,
			Height:         24,
			Gravity:        0.45,
			FlapStrength:   -7.5,
			RotationFactor: 0.08,
			MinRotation:    -0.45,
			MaxRotation:    1.2,
		},
		Pipes: PipeConfig{
			Width:         70,
			GapSize:       170,
			MinMargin:     60,
			Speed:         2.5,
			SpawnInterval: 100,
			InitialCount:  3,
			FirstX:        400,
			Spacing:       250,
		},
		Clouds: CloudConfig{
			InitialCount: 5,
			MinSpeed:     0.2,
			MaxSpeed:     0.6,
			MinSize:      30,
			MaxSize:      60,
			MaxY:         260,
			SpawnChance:  0.006,
		},
		Particles: ParticleConfig{
			BurstCount: 6,
			Life:       30,
			Size:       4,
			MinVX:      -2.5,
			MaxVX:      -0.5,
			MinVY:      -1.5,
			MaxVY:      1.5,
			Color:      "#fff8dc",
		},
		Colors: ColorConfig{
			Sky:   "#70c5ce",
			Cloud: "#ffffffe6",
			Panel: "#000000b4",
			Text:  "#ffffff",
		},
		Audio: AudioConfig{
			SampleRate:  48000,
			MusicVolume: 0.6,
			SoundVolume: 0.9,
		},
		Input: InputConfig{
			JumpKey:    "Space",
			RestartKey: "Enter",
		},
		Assets: AssetManifest{
			Root: "assets",
			Images: map[string]string{
				ImageBird:     "images/bird.png",
				ImagePipe:     "images/pipe.png",
				ImageGameOver: "images/gameover.png",
			},
			Audio: map[string]string{
				AudioMusic: "audio/music.ogg",
				AudioCrash: "audio/crash.wav",
			},
		},
	}
}
