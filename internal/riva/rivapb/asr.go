package rivapb

import "fmt"

// RecognitionConfig mirrors nvidia.riva.asr.RecognitionConfig.
type RecognitionConfig struct {
	Encoding                   AudioEncoding `protobuf:"varint,1,opt,name=encoding,proto3,enum=nvidia.riva.AudioEncoding" json:"encoding,omitempty"`
	SampleRateHertz            int32         `protobuf:"varint,2,opt,name=sample_rate_hertz,json=sampleRateHertz,proto3" json:"sample_rate_hertz,omitempty"`
	LanguageCode               string        `protobuf:"bytes,3,opt,name=language_code,json=languageCode,proto3" json:"language_code,omitempty"`
	MaxAlternatives            int32         `protobuf:"varint,4,opt,name=max_alternatives,json=maxAlternatives,proto3" json:"max_alternatives,omitempty"`
	EnableWordTimeOffsets      bool          `protobuf:"varint,8,opt,name=enable_word_time_offsets,json=enableWordTimeOffsets,proto3" json:"enable_word_time_offsets,omitempty"`
	EnableAutomaticPunctuation bool          `protobuf:"varint,11,opt,name=enable_automatic_punctuation,json=enableAutomaticPunctuation,proto3" json:"enable_automatic_punctuation,omitempty"`
	Model                      string        `protobuf:"bytes,14,opt,name=model,proto3" json:"model,omitempty"`
	VerbatimTranscripts        bool          `protobuf:"varint,15,opt,name=verbatim_transcripts,json=verbatimTranscripts,proto3" json:"verbatim_transcripts,omitempty"`
}

func (m *RecognitionConfig) Reset()         { *m = RecognitionConfig{} }
func (m *RecognitionConfig) String() string { return fmt.Sprintf("%+v", *m) }
func (*RecognitionConfig) ProtoMessage()    {}

func (m *RecognitionConfig) GetEncoding() AudioEncoding {
	if m != nil {
		return m.Encoding
	}
	return AudioEncoding_ENCODING_UNSPECIFIED
}

func (m *RecognitionConfig) GetSampleRateHertz() int32 {
	if m != nil {
		return m.SampleRateHertz
	}
	return 0
}

func (m *RecognitionConfig) GetLanguageCode() string {
	if m != nil {
		return m.LanguageCode
	}
	return ""
}

func (m *RecognitionConfig) GetModel() string {
	if m != nil {
		return m.Model
	}
	return ""
}

// StreamingRecognitionConfig mirrors
// nvidia.riva.asr.StreamingRecognitionConfig.
type StreamingRecognitionConfig struct {
	Config         *RecognitionConfig `protobuf:"bytes,1,opt,name=config,proto3" json:"config,omitempty"`
	InterimResults bool               `protobuf:"varint,2,opt,name=interim_results,json=interimResults,proto3" json:"interim_results,omitempty"`
}

func (m *StreamingRecognitionConfig) Reset()         { *m = StreamingRecognitionConfig{} }
func (m *StreamingRecognitionConfig) String() string { return fmt.Sprintf("%+v", *m) }
func (*StreamingRecognitionConfig) ProtoMessage()    {}

func (m *StreamingRecognitionConfig) GetConfig() *RecognitionConfig {
	if m != nil {
		return m.Config
	}
	return nil
}

func (m *StreamingRecognitionConfig) GetInterimResults() bool {
	if m != nil {
		return m.InterimResults
	}
	return false
}

// RecognizeRequest mirrors nvidia.riva.asr.RecognizeRequest.
type RecognizeRequest struct {
	Config *RecognitionConfig `protobuf:"bytes,1,opt,name=config,proto3" json:"config,omitempty"`
	Audio  []byte             `protobuf:"bytes,2,opt,name=audio,proto3" json:"audio,omitempty"`
}

func (m *RecognizeRequest) Reset()         { *m = RecognizeRequest{} }
func (m *RecognizeRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*RecognizeRequest) ProtoMessage()    {}

func (m *RecognizeRequest) GetConfig() *RecognitionConfig {
	if m != nil {
		return m.Config
	}
	return nil
}

func (m *RecognizeRequest) GetAudio() []byte {
	if m != nil {
		return m.Audio
	}
	return nil
}

// RecognizeResponse mirrors nvidia.riva.asr.RecognizeResponse.
type RecognizeResponse struct {
	Results []*SpeechRecognitionResult `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
}

func (m *RecognizeResponse) Reset()         { *m = RecognizeResponse{} }
func (m *RecognizeResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*RecognizeResponse) ProtoMessage()    {}

func (m *RecognizeResponse) GetResults() []*SpeechRecognitionResult {
	if m != nil {
		return m.Results
	}
	return nil
}

// SpeechRecognitionResult mirrors nvidia.riva.asr.SpeechRecognitionResult.
type SpeechRecognitionResult struct {
	Alternatives   []*SpeechRecognitionAlternative `protobuf:"bytes,1,rep,name=alternatives,proto3" json:"alternatives,omitempty"`
	ChannelTag     int32                           `protobuf:"varint,2,opt,name=channel_tag,json=channelTag,proto3" json:"channel_tag,omitempty"`
	AudioProcessed float32                         `protobuf:"fixed32,3,opt,name=audio_processed,json=audioProcessed,proto3" json:"audio_processed,omitempty"`
}

func (m *SpeechRecognitionResult) Reset()         { *m = SpeechRecognitionResult{} }
func (m *SpeechRecognitionResult) String() string { return fmt.Sprintf("%+v", *m) }
func (*SpeechRecognitionResult) ProtoMessage()    {}

func (m *SpeechRecognitionResult) GetAlternatives() []*SpeechRecognitionAlternative {
	if m != nil {
		return m.Alternatives
	}
	return nil
}

// SpeechRecognitionAlternative mirrors
// nvidia.riva.asr.SpeechRecognitionAlternative.
type SpeechRecognitionAlternative struct {
	Transcript string      `protobuf:"bytes,1,opt,name=transcript,proto3" json:"transcript,omitempty"`
	Confidence float32     `protobuf:"fixed32,2,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Words      []*WordInfo `protobuf:"bytes,3,rep,name=words,proto3" json:"words,omitempty"`
}

func (m *SpeechRecognitionAlternative) Reset()         { *m = SpeechRecognitionAlternative{} }
func (m *SpeechRecognitionAlternative) String() string { return fmt.Sprintf("%+v", *m) }
func (*SpeechRecognitionAlternative) ProtoMessage()    {}

func (m *SpeechRecognitionAlternative) GetTranscript() string {
	if m != nil {
		return m.Transcript
	}
	return ""
}

func (m *SpeechRecognitionAlternative) GetConfidence() float32 {
	if m != nil {
		return m.Confidence
	}
	return 0
}

func (m *SpeechRecognitionAlternative) GetWords() []*WordInfo {
	if m != nil {
		return m.Words
	}
	return nil
}

// WordInfo mirrors nvidia.riva.asr.WordInfo. Times are milliseconds from
// the start of the audio.
type WordInfo struct {
	StartTime  int64   `protobuf:"varint,1,opt,name=start_time,json=startTime,proto3" json:"start_time,omitempty"`
	EndTime    int64   `protobuf:"varint,2,opt,name=end_time,json=endTime,proto3" json:"end_time,omitempty"`
	Word       string  `protobuf:"bytes,3,opt,name=word,proto3" json:"word,omitempty"`
	Confidence float32 `protobuf:"fixed32,4,opt,name=confidence,proto3" json:"confidence,omitempty"`
}

func (m *WordInfo) Reset()         { *m = WordInfo{} }
func (m *WordInfo) String() string { return fmt.Sprintf("%+v", *m) }
func (*WordInfo) ProtoMessage()    {}

// StreamingRecognizeRequest mirrors
// nvidia.riva.asr.StreamingRecognizeRequest. The first request on a stream
// must carry the streaming config; every subsequent request carries audio.
type StreamingRecognizeRequest struct {
	// Types that are valid to be assigned to StreamingRequest:
	//	*StreamingRecognizeRequest_StreamingConfig
	//	*StreamingRecognizeRequest_AudioContent
	StreamingRequest isStreamingRecognizeRequest_StreamingRequest `protobuf_oneof:"streaming_request"`
}

func (m *StreamingRecognizeRequest) Reset()         { *m = StreamingRecognizeRequest{} }
func (m *StreamingRecognizeRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*StreamingRecognizeRequest) ProtoMessage()    {}

type isStreamingRecognizeRequest_StreamingRequest interface {
	isStreamingRecognizeRequest_StreamingRequest()
}

type StreamingRecognizeRequest_StreamingConfig struct {
	StreamingConfig *StreamingRecognitionConfig `protobuf:"bytes,1,opt,name=streaming_config,json=streamingConfig,proto3,oneof"`
}

type StreamingRecognizeRequest_AudioContent struct {
	AudioContent []byte `protobuf:"bytes,2,opt,name=audio_content,json=audioContent,proto3,oneof"`
}

func (*StreamingRecognizeRequest_StreamingConfig) isStreamingRecognizeRequest_StreamingRequest() {}
func (*StreamingRecognizeRequest_AudioContent) isStreamingRecognizeRequest_StreamingRequest()    {}

func (m *StreamingRecognizeRequest) GetStreamingConfig() *StreamingRecognitionConfig {
	if m != nil {
		if req, ok := m.StreamingRequest.(*StreamingRecognizeRequest_StreamingConfig); ok {
			return req.StreamingConfig
		}
	}
	return nil
}

func (m *StreamingRecognizeRequest) GetAudioContent() []byte {
	if m != nil {
		if req, ok := m.StreamingRequest.(*StreamingRecognizeRequest_AudioContent); ok {
			return req.AudioContent
		}
	}
	return nil
}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*StreamingRecognizeRequest) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*StreamingRecognizeRequest_StreamingConfig)(nil),
		(*StreamingRecognizeRequest_AudioContent)(nil),
	}
}

// StreamingRecognizeResponse mirrors
// nvidia.riva.asr.StreamingRecognizeResponse.
type StreamingRecognizeResponse struct {
	Results []*StreamingRecognitionResult `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
}

func (m *StreamingRecognizeResponse) Reset()         { *m = StreamingRecognizeResponse{} }
func (m *StreamingRecognizeResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*StreamingRecognizeResponse) ProtoMessage()    {}

func (m *StreamingRecognizeResponse) GetResults() []*StreamingRecognitionResult {
	if m != nil {
		return m.Results
	}
	return nil
}

// StreamingRecognitionResult mirrors
// nvidia.riva.asr.StreamingRecognitionResult.
type StreamingRecognitionResult struct {
	Alternatives []*SpeechRecognitionAlternative `protobuf:"bytes,1,rep,name=alternatives,proto3" json:"alternatives,omitempty"`
	IsFinal      bool                            `protobuf:"varint,2,opt,name=is_final,json=isFinal,proto3" json:"is_final,omitempty"`
	Stability    float32                         `protobuf:"fixed32,3,opt,name=stability,proto3" json:"stability,omitempty"`
}

func (m *StreamingRecognitionResult) Reset()         { *m = StreamingRecognitionResult{} }
func (m *StreamingRecognitionResult) String() string { return fmt.Sprintf("%+v", *m) }
func (*StreamingRecognitionResult) ProtoMessage()    {}

func (m *StreamingRecognitionResult) GetAlternatives() []*SpeechRecognitionAlternative {
	if m != nil {
		return m.Alternatives
	}
	return nil
}

func (m *StreamingRecognitionResult) GetIsFinal() bool {
	if m != nil {
		return m.IsFinal
	}
	return false
}
