package ffmpeg

// AudioMetadata represents metadata extracted from an audio file
type AudioMetadata struct {
	Duration   float64 `json:"duration"`    // seconds, zero when the container does not declare it
	SampleRate int     `json:"sample_rate"` // Hz
	Channels   int     `json:"channels"`
	Bitrate    int     `json:"bitrate"`
	Format     string  `json:"format"` // container, e.g. "matroska,webm"
	Codec      string  `json:"codec"`
	Size       int64   `json:"size"`
}
