package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
)

// ErrUnsupportedFormat is returned for files whose extension has no decoder.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Patterns lists the file patterns the decoder accepts, for file dialogs.
var Patterns = []string{"*.wav", "*.mp3", "*.flac"}

// Track is a decoded audio file ready for playback.
type Track struct {
	Path     string
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
}

// Open decodes the file at path. The returned Track owns the file handle.
func Open(path string) (*Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	streamer, format, err := decode(f, filepath.Ext(path))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return &Track{Path: path, file: f, streamer: streamer, format: format}, nil
}

func decode(r io.ReadCloser, ext string) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(ext) {
	case ".wav":
		return wav.Decode(r)
	case ".mp3":
		return mp3.Decode(r)
	case ".flac":
		return flac.Decode(r)
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Format returns the decoded stream format.
func (t *Track) Format() beep.Format { return t.format }

// Duration returns the total track length.
func (t *Track) Duration() time.Duration {
	if t.streamer == nil {
		return 0
	}
	return t.format.SampleRate.D(t.streamer.Len())
}

// Name returns the file name without directories.
func (t *Track) Name() string { return filepath.Base(t.Path) }

// Close releases the decoder. Decoders close the file they read from, so the
// file handle is only closed directly when no decoder owns it.
func (t *Track) Close() error {
	var err error
	switch {
	case t.streamer != nil:
		err = t.streamer.Close()
	case t.file != nil:
		err = t.file.Close()
	}
	if errors.Is(err, os.ErrClosed) {
		err = nil
	}
	t.streamer = nil
	t.file = nil
	return err
}
