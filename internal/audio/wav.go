// Package audio handles the WAV container plumbing between HTTP payloads
// and Riva's raw PCM16 frames.
package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	riffHeaderSize = 44
	pcmFormat      = 1
	bitsPerSample  = 16
)

// WAV is a decoded RIFF/WAVE payload.
type WAV struct {
	SampleRate int
	Channels   int
	PCM        []byte
}

// DecodeWAV parses a RIFF/WAVE payload holding 16-bit PCM. Payloads that
// lack a RIFF header are returned as raw PCM with zero SampleRate so the
// caller can apply its own default.
func DecodeWAV(data []byte) (WAV, error) {
	if len(data) < 12 || !bytes.Equal(data[0:4], []byte("RIFF")) || !bytes.Equal(data[8:12], []byte("WAVE")) {
		return WAV{PCM: data}, nil
	}

	var out WAV
	sawFormat := false
	offset := 12
	for offset+8 <= len(data) {
		chunkID := string(data[offset : offset+4])
		chunkSize := int(binary.LittleEndian.Uint32(data[offset+4 : offset+8]))
		body := offset + 8
		if chunkSize < 0 || body+chunkSize > len(data) {
			// Streamed files sometimes carry a placeholder size on the
			// final chunk; clamp instead of rejecting.
			chunkSize = len(data) - body
		}
		switch chunkID {
		case "fmt ":
			if chunkSize < 16 {
				return WAV{}, fmt.Errorf("wav: fmt chunk too short (%d bytes)", chunkSize)
			}
			format := binary.LittleEndian.Uint16(data[body : body+2])
			if format != pcmFormat {
				return WAV{}, fmt.Errorf("wav: unsupported format %d, want PCM", format)
			}
			bits := binary.LittleEndian.Uint16(data[body+14 : body+16])
			if bits != bitsPerSample {
				return WAV{}, fmt.Errorf("wav: unsupported sample width %d bits, want 16", bits)
			}
			out.Channels = int(binary.LittleEndian.Uint16(data[body+2 : body+4]))
			out.SampleRate = int(binary.LittleEndian.Uint32(data[body+4 : body+8]))
			sawFormat = true
		case "data":
			out.PCM = data[body : body+chunkSize]
		}
		// Chunks are word aligned.
		offset = body + chunkSize + chunkSize%2
	}

	if !sawFormat {
		return WAV{}, fmt.Errorf("wav: missing fmt chunk")
	}
	if out.PCM == nil {
		return WAV{}, fmt.Errorf("wav: missing data chunk")
	}
	return out, nil
}

// EncodeWAV wraps PCM16 samples in a RIFF header with exact sizes.
func EncodeWAV(pcm []byte, sampleRate, channels int) []byte {
	out := make([]byte, 0, riffHeaderSize+len(pcm))
	out = append(out, header(len(pcm), sampleRate, channels)...)
	return append(out, pcm...)
}

// StreamHeader returns a RIFF header with placeholder sizes, for chunked
// responses where the final length is unknown when the header is written.
// Players treat the maximum size as "read until EOF".
func StreamHeader(sampleRate, channels int) []byte {
	return header(-1, sampleRate, channels)
}

func header(dataLen, sampleRate, channels int) []byte {
	if channels <= 0 {
		channels = 1
	}
	riffSize := uint32(0xFFFFFFFF)
	dataSize := uint32(0xFFFFFFFF)
	if dataLen >= 0 {
		riffSize = uint32(riffHeaderSize - 8 + dataLen)
		dataSize = uint32(dataLen)
	}
	blockAlign := channels * bitsPerSample / 8
	byteRate := sampleRate * blockAlign

	buf := make([]byte, riffHeaderSize)
	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], riffSize)
	copy(buf[8:12], "WAVE")
	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16)
	binary.LittleEndian.PutUint16(buf[20:22], pcmFormat)
	binary.LittleEndian.PutUint16(buf[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(buf[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(buf[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(buf[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(buf[34:36], bitsPerSample)
	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], dataSize)
	return buf
}
