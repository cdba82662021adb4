package transcription

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-audio/wav"
	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oncare/care-report-api/pkg/audio"
	apperrors "github.com/oncare/care-report-api/pkg/errors"
	"github.com/oncare/care-report-api/pkg/tempfile"
)

// fakeDecoder returns a fixed number of seconds of silence at the requested rate
type fakeDecoder struct {
	seconds float64
	fill    func(i, rate int) int16
	err     error
	seen    string
}

func (d *fakeDecoder) Decode(ctx context.Context, path string, rate int) (audio.PCM, error) {
	d.seen = path
	if d.err != nil {
		return audio.PCM{}, d.err
	}
	if _, err := os.Stat(path); err != nil {
		return audio.PCM{}, err
	}
	samples := make([]int16, int(d.seconds*float64(rate)))
	if d.fill != nil {
		for i := range samples {
			samples[i] = d.fill(i, rate)
		}
	}
	return audio.PCM{Samples: samples, SampleRate: rate}, nil
}

// fakeBackend answers per call index, optionally with a delay that scrambles completion order
type fakeBackend struct {
	mu       sync.Mutex
	calls    int
	answer   func(call int) (string, error)
	inFlight atomic.Int32
	peak     atomic.Int32
	paths    []string
}

func (b *fakeBackend) Name() string { return "fake" }

func (b *fakeBackend) Transcribe(ctx context.Context, path, language string) (string, error) {
	n := b.inFlight.Add(1)
	defer b.inFlight.Add(-1)
	for {
		p := b.peak.Load()
		if n <= p || b.peak.CompareAndSwap(p, n) {
			break
		}
	}

	b.mu.Lock()
	call := b.calls
	b.calls++
	b.paths = append(b.paths, path)
	b.mu.Unlock()

	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	return b.answer(call)
}

func newService(t *testing.T, dec Decoder, be Backend, opts Options) (*Service, string) {
	t.Helper()
	dir := t.TempDir()
	m := tempfile.NewManager(dir, zerolog.Nop())
	return NewService(m, dec, be, opts, zerolog.Nop()), dir
}

func assertDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temp files left behind")
}

func TestTranscribeSingleChunk(t *testing.T) {
	be := &fakeBackend{answer: func(int) (string, error) { return "  안녕하세요 반갑습니다 \n", nil }}
	svc, dir := newService(t, &fakeDecoder{seconds: 5}, be, Options{ChunkDuration: 20 * time.Second, SampleRate: 8000})

	text, err := svc.Transcribe(context.Background(), []byte("webm-bytes"), "")
	require.NoError(t, err)
	assert.Equal(t, "안녕하세요 반갑습니다", text)
	assert.Equal(t, 1, be.calls)
	assertDirEmpty(t, dir)
}

func TestTranscribeJoinsInChunkOrder(t *testing.T) {
	// every sample carries its chunk index so the backend can tell which chunk it got
	dec := &fakeDecoder{seconds: 50, fill: func(i, rate int) int16 { return int16(i / (20 * rate)) }}

	svc, dir := newService(t, dec, backendFunc(func(ctx context.Context, path string) (string, error) {
		idx := firstSample(t, path)
		// later chunks finish first
		time.Sleep(time.Duration(3-idx) * 20 * time.Millisecond)
		return fmt.Sprintf("part%d", idx), nil
	}), Options{ChunkDuration: 20 * time.Second, Concurrency: 3, SampleRate: 100})

	text, err := svc.Transcribe(context.Background(), []byte("x"), ".webm")
	require.NoError(t, err)
	assert.Equal(t, "part0 part1 part2", text)
	assertDirEmpty(t, dir)
}

func TestTranscribeSkipsEmptyChunks(t *testing.T) {
	answers := []string{"first", "   ", "third"}
	be := &fakeBackend{answer: func(call int) (string, error) { return answers[call], nil }}
	svc, dir := newService(t, &fakeDecoder{seconds: 3}, be, Options{ChunkDuration: time.Second, SampleRate: 100})

	text, err := svc.Transcribe(context.Background(), []byte("x"), "wav")
	require.NoError(t, err)
	assert.Equal(t, "first third", text)
	assertDirEmpty(t, dir)
}

func TestTranscribeErrors(t *testing.T) {
	tests := []struct {
		name     string
		raw      []byte
		decoder  *fakeDecoder
		answer   func(int) (string, error)
		wantCode apperrors.ErrorCode
	}{
		{
			name:     "empty input",
			raw:      nil,
			decoder:  &fakeDecoder{seconds: 1},
			answer:   func(int) (string, error) { return "x", nil },
			wantCode: apperrors.ErrCodeEmptyInput,
		},
		{
			name:     "all chunks empty",
			raw:      []byte("x"),
			decoder:  &fakeDecoder{seconds: 3},
			answer:   func(int) (string, error) { return " ", nil },
			wantCode: apperrors.ErrCodeEmptyTranscript,
		},
		{
			name:     "decoded to nothing",
			raw:      []byte("x"),
			decoder:  &fakeDecoder{seconds: 0},
			answer:   func(int) (string, error) { return "x", nil },
			wantCode: apperrors.ErrCodeEmptyTranscript,
		},
		{
			name:     "decoder failure",
			raw:      []byte("x"),
			decoder:  &fakeDecoder{err: errors.New("Invalid data found when processing input")},
			answer:   func(int) (string, error) { return "x", nil },
			wantCode: apperrors.ErrCodeTranscription,
		},
		{
			name:    "backend failure on a later chunk",
			raw:     []byte("x"),
			decoder: &fakeDecoder{seconds: 3},
			answer: func(call int) (string, error) {
				if call == 1 {
					return "", errors.New("model crashed")
				}
				return "ok", nil
			},
			wantCode: apperrors.ErrCodeTranscription,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be := &fakeBackend{answer: tt.answer}
			svc, dir := newService(t, tt.decoder, be, Options{ChunkDuration: time.Second, SampleRate: 100})

			text, err := svc.Transcribe(context.Background(), tt.raw, ".webm")
			require.Error(t, err)
			assert.Empty(t, text)
			assert.Equal(t, tt.wantCode, apperrors.GetCode(err))
			assertDirEmpty(t, dir)
		})
	}
}

func TestTranscribeEmptyInputCreatesNoFiles(t *testing.T) {
	dec := &fakeDecoder{seconds: 1}
	be := &fakeBackend{answer: func(int) (string, error) { return "x", nil }}
	svc, dir := newService(t, dec, be, Options{})

	_, err := svc.Transcribe(context.Background(), []byte{}, "")
	require.Error(t, err)
	assert.Empty(t, dec.seen)
	assert.Zero(t, be.calls)
	assertDirEmpty(t, dir)
}

func TestTranscribeRespectsConcurrencyLimit(t *testing.T) {
	be := &fakeBackend{answer: func(int) (string, error) {
		time.Sleep(10 * time.Millisecond)
		return "w", nil
	}}
	svc, _ := newService(t, &fakeDecoder{seconds: 8}, be, Options{ChunkDuration: time.Second, Concurrency: 2, SampleRate: 100})

	text, err := svc.Transcribe(context.Background(), []byte("x"), "")
	require.NoError(t, err)
	assert.Equal(t, "w w w w w w w w", text)
	assert.LessOrEqual(t, be.peak.Load(), int32(2))
}

func TestTranscribeSequentialByDefault(t *testing.T) {
	be := &fakeBackend{answer: func(int) (string, error) { return "w", nil }}
	svc, _ := newService(t, &fakeDecoder{seconds: 4}, be, Options{ChunkDuration: time.Second, SampleRate: 100})

	_, err := svc.Transcribe(context.Background(), []byte("x"), "")
	require.NoError(t, err)
	assert.Equal(t, int32(1), be.peak.Load())
	assert.Len(t, be.paths, 4)
}

func TestFormatFromContentType(t *testing.T) {
	tests := map[string]string{
		"":                         ".webm",
		"audio/webm;codecs=opus":   ".webm",
		"audio/wav":                ".wav",
		"audio/mpeg":               ".mp3",
		"application/octet-stream": ".webm",
		"AUDIO/OGG; codecs=vorbis": ".ogg",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatFromContentType(in), in)
	}
}

func TestNormalizeFormat(t *testing.T) {
	assert.Equal(t, ".webm", normalizeFormat(""))
	assert.Equal(t, ".wav", normalizeFormat("WAV"))
	assert.Equal(t, ".mp3", normalizeFormat(".mp3"))
	assert.Equal(t, ".webm", normalizeFormat("../../etc"))
}

type fakeAudioClient struct {
	req  openai.AudioRequest
	resp openai.AudioResponse
	err  error
}

func (c *fakeAudioClient) CreateTranscription(ctx context.Context, req openai.AudioRequest) (openai.AudioResponse, error) {
	c.req = req
	return c.resp, c.err
}

func TestOpenAIBackend(t *testing.T) {
	client := &fakeAudioClient{resp: openai.AudioResponse{Text: "오늘 컨디션은 좋습니다"}}
	be := NewOpenAIBackend(client, "")

	text, err := be.Transcribe(context.Background(), "/tmp/chunk_0.wav", "ko")
	require.NoError(t, err)
	assert.Equal(t, "오늘 컨디션은 좋습니다", text)
	assert.Equal(t, openai.Whisper1, client.req.Model)
	assert.Equal(t, "/tmp/chunk_0.wav", client.req.FilePath)
	assert.Equal(t, "ko", client.req.Language)

	client.err = errors.New("429 too many requests")
	_, err = be.Transcribe(context.Background(), "/tmp/chunk_0.wav", "ko")
	assert.Error(t, err)
}

func TestCollapseLines(t *testing.T) {
	assert.Equal(t, "첫 줄 둘째 줄", collapseLines("\n 첫 줄\n둘째   줄\n"))
	assert.Equal(t, "", collapseLines("  \n"))
}

// backendFunc adapts a function to Backend
type backendFunc func(ctx context.Context, path string) (string, error)

func (f backendFunc) Name() string { return "func" }

func (f backendFunc) Transcribe(ctx context.Context, path, language string) (string, error) {
	return f(ctx, path)
}

func firstSample(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	buf, err := wav.NewDecoder(f).FullPCMBuffer()
	require.NoError(t, err)
	require.NotEmpty(t, buf.Data)
	return buf.Data[0]
}
