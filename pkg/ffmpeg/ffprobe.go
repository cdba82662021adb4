package ffmpeg

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"strconv"
)

// ffprobeOutput represents the JSON structure returned by ffprobe
type ffprobeOutput struct {
	Format struct {
		Duration   string `json:"duration"`
		Size       string `json:"size"`
		Bitrate    string `json:"bit_rate"`
		FormatName string `json:"format_name"`
	} `json:"format"`
	Streams []struct {
		CodecType  string `json:"codec_type"`
		CodecName  string `json:"codec_name"`
		SampleRate string `json:"sample_rate"`
		Channels   int    `json:"channels"`
		Duration   string `json:"duration"`
	} `json:"streams"`
}

// GetMetadata extracts metadata from an audio file using ffprobe
func (f *FFmpeg) GetMetadata(ctx context.Context, filePath string) (*AudioMetadata, error) {
	args := []string{
		"-v", "quiet",
		"-show_format",
		"-show_streams",
		"-select_streams", "a:0",
		"-of", "json",
		filePath,
	}

	cmd := exec.CommandContext(ctx, f.ffprobePath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, NewProcessingError("metadata_extraction", filePath, err, stderr.String())
	}

	return parseMetadata(stdout.Bytes(), filePath)
}

// parseMetadata converts ffprobe output to AudioMetadata.
// Recorder containers often omit the duration, so only an audio stream is required.
func parseMetadata(raw []byte, filePath string) (*AudioMetadata, error) {
	var output ffprobeOutput
	if err := json.Unmarshal(raw, &output); err != nil {
		return nil, NewProcessingError("metadata_parsing", filePath, err, "")
	}

	metadata := &AudioMetadata{Format: output.Format.FormatName}

	if d, err := strconv.ParseFloat(output.Format.Duration, 64); err == nil {
		metadata.Duration = d
	}
	if size, err := strconv.ParseInt(output.Format.Size, 10, 64); err == nil {
		metadata.Size = size
	}
	if bitrate, err := strconv.Atoi(output.Format.Bitrate); err == nil {
		metadata.Bitrate = bitrate
	}

	found := false
	for _, stream := range output.Streams {
		if stream.CodecType != "audio" {
			continue
		}
		found = true
		metadata.Codec = stream.CodecName
		metadata.Channels = stream.Channels
		if rate, err := strconv.Atoi(stream.SampleRate); err == nil {
			metadata.SampleRate = rate
		}
		if metadata.Duration == 0 {
			if d, err := strconv.ParseFloat(stream.Duration, 64); err == nil {
				metadata.Duration = d
			}
		}
		break
	}

	if !found {
		return nil, NewProcessingError("metadata_validation", filePath, ErrInvalidAudioFile, "")
	}

	return metadata, nil
}
