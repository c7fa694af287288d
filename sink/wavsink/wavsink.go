// Package wavsink implements sink.Audio by buffering PCM samples in
// memory and flushing them to a WAV file on Close, using
// github.com/go-audio/wav for the actual encoding. Grounded on the
// teacher's wavwriter package (buffer-then-flush-on-end shape), adapted
// to go-audio/wav's real encoder API and to sink.Audio's push-per-frame
// contract instead of a television signal-attribute stream.
package wavsink

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	bitDepth  = 16
	numChans  = 1
	pcmFormat = 1
)

// WavSink accumulates every pushed sample in memory and writes a single
// WAV file when Close is called; suitable for test captures, not for
// long unattended runs.
type WavSink struct {
	filename   string
	sampleRate int
	data       []int
}

// New creates a sink that will write to filename at the given sample
// rate once Close is called.
func New(filename string, sampleRate int) *WavSink {
	return &WavSink{filename: filename, sampleRate: sampleRate}
}

// PushSamples implements sink.Audio. It never blocks and never drops:
// the in-memory buffer grows to fit, since this sink is test/capture
// oriented rather than a realtime device.
func (w *WavSink) PushSamples(samples []int16) error {
	for _, s := range samples {
		w.data = append(w.data, int(s))
	}
	return nil
}

// Close encodes the buffered samples to filename. The buffer itself is
// kept.
func (w *WavSink) Close() error {
	f, err := os.Create(w.filename)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, w.sampleRate, bitDepth, numChans, pcmFormat)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numChans, SampleRate: w.sampleRate},
		Data:           w.data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return err
	}
	return enc.Close()
}
