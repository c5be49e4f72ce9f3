package rivapb

import "strconv"

// AudioEncoding mirrors nvidia.riva.AudioEncoding.
type AudioEncoding int32

const (
	AudioEncoding_ENCODING_UNSPECIFIED AudioEncoding = 0
	AudioEncoding_LINEAR_PCM           AudioEncoding = 1
	AudioEncoding_FLAC                 AudioEncoding = 2
	AudioEncoding_MULAW                AudioEncoding = 3
	AudioEncoding_OGGOPUS              AudioEncoding = 4
	AudioEncoding_ALAW                 AudioEncoding = 20
)

var AudioEncoding_name = map[int32]string{
	0:  "ENCODING_UNSPECIFIED",
	1:  "LINEAR_PCM",
	2:  "FLAC",
	3:  "MULAW",
	4:  "OGGOPUS",
	20: "ALAW",
}

var AudioEncoding_value = map[string]int32{
	"ENCODING_UNSPECIFIED": 0,
	"LINEAR_PCM":           1,
	"FLAC":                 2,
	"MULAW":                3,
	"OGGOPUS":              4,
	"ALAW":                 20,
}

func (x AudioEncoding) String() string {
	if name, ok := AudioEncoding_name[int32(x)]; ok {
		return name
	}
	return strconv.Itoa(int(x))
}
