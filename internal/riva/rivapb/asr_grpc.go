package rivapb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	RivaSpeechRecognition_Recognize_FullMethodName          = "/nvidia.riva.asr.RivaSpeechRecognition/Recognize"
	RivaSpeechRecognition_StreamingRecognize_FullMethodName = "/nvidia.riva.asr.RivaSpeechRecognition/StreamingRecognize"
)

// RivaSpeechRecognitionClient is the client API for the
// nvidia.riva.asr.RivaSpeechRecognition service.
type RivaSpeechRecognitionClient interface {
	// Recognize performs offline recognition on a complete audio payload.
	Recognize(ctx context.Context, in *RecognizeRequest, opts ...grpc.CallOption) (*RecognizeResponse, error)
	// StreamingRecognize performs bidirectional streaming recognition. The
	// first request must carry the streaming config.
	StreamingRecognize(ctx context.Context, opts ...grpc.CallOption) (RivaSpeechRecognition_StreamingRecognizeClient, error)
}

type rivaSpeechRecognitionClient struct {
	cc grpc.ClientConnInterface
}

// NewRivaSpeechRecognitionClient builds a client over an existing
// connection.
func NewRivaSpeechRecognitionClient(cc grpc.ClientConnInterface) RivaSpeechRecognitionClient {
	return &rivaSpeechRecognitionClient{cc}
}

func (c *rivaSpeechRecognitionClient) Recognize(ctx context.Context, in *RecognizeRequest, opts ...grpc.CallOption) (*RecognizeResponse, error) {
	out := new(RecognizeResponse)
	err := c.cc.Invoke(ctx, RivaSpeechRecognition_Recognize_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rivaSpeechRecognitionClient) StreamingRecognize(ctx context.Context, opts ...grpc.CallOption) (RivaSpeechRecognition_StreamingRecognizeClient, error) {
	stream, err := c.cc.NewStream(ctx, &RivaSpeechRecognition_ServiceDesc.Streams[0], RivaSpeechRecognition_StreamingRecognize_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	return &rivaSpeechRecognitionStreamingRecognizeClient{stream}, nil
}

// RivaSpeechRecognition_StreamingRecognizeClient is the client side of the
// StreamingRecognize stream.
type RivaSpeechRecognition_StreamingRecognizeClient interface {
	Send(*StreamingRecognizeRequest) error
	Recv() (*StreamingRecognizeResponse, error)
	grpc.ClientStream
}

type rivaSpeechRecognitionStreamingRecognizeClient struct {
	grpc.ClientStream
}

func (x *rivaSpeechRecognitionStreamingRecognizeClient) Send(m *StreamingRecognizeRequest) error {
	return x.ClientStream.SendMsg(m)
}

func (x *rivaSpeechRecognitionStreamingRecognizeClient) Recv() (*StreamingRecognizeResponse, error) {
	m := new(StreamingRecognizeResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// RivaSpeechRecognitionServer is the server API for the
// nvidia.riva.asr.RivaSpeechRecognition service. Implemented by test
// doubles standing in for a Riva server.
type RivaSpeechRecognitionServer interface {
	Recognize(context.Context, *RecognizeRequest) (*RecognizeResponse, error)
	StreamingRecognize(RivaSpeechRecognition_StreamingRecognizeServer) error
}

// UnimplementedRivaSpeechRecognitionServer provides forward-compatible
// default implementations.
type UnimplementedRivaSpeechRecognitionServer struct{}

func (UnimplementedRivaSpeechRecognitionServer) Recognize(context.Context, *RecognizeRequest) (*RecognizeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Recognize not implemented")
}

func (UnimplementedRivaSpeechRecognitionServer) StreamingRecognize(RivaSpeechRecognition_StreamingRecognizeServer) error {
	return status.Error(codes.Unimplemented, "method StreamingRecognize not implemented")
}

// RegisterRivaSpeechRecognitionServer registers the service implementation
// with a gRPC server.
func RegisterRivaSpeechRecognitionServer(s grpc.ServiceRegistrar, srv RivaSpeechRecognitionServer) {
	s.RegisterService(&RivaSpeechRecognition_ServiceDesc, srv)
}

func rivaSpeechRecognitionRecognizeHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecognizeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RivaSpeechRecognitionServer).Recognize(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RivaSpeechRecognition_Recognize_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RivaSpeechRecognitionServer).Recognize(ctx, req.(*RecognizeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func rivaSpeechRecognitionStreamingRecognizeHandler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(RivaSpeechRecognitionServer).StreamingRecognize(&rivaSpeechRecognitionStreamingRecognizeServer{stream})
}

// RivaSpeechRecognition_StreamingRecognizeServer is the server side of the
// StreamingRecognize stream.
type RivaSpeechRecognition_StreamingRecognizeServer interface {
	Send(*StreamingRecognizeResponse) error
	Recv() (*StreamingRecognizeRequest, error)
	grpc.ServerStream
}

type rivaSpeechRecognitionStreamingRecognizeServer struct {
	grpc.ServerStream
}

func (x *rivaSpeechRecognitionStreamingRecognizeServer) Send(m *StreamingRecognizeResponse) error {
	return x.ServerStream.SendMsg(m)
}

func (x *rivaSpeechRecognitionStreamingRecognizeServer) Recv() (*StreamingRecognizeRequest, error) {
	m := new(StreamingRecognizeRequest)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// RivaSpeechRecognition_ServiceDesc is the grpc.ServiceDesc for the
// RivaSpeechRecognition service.
var RivaSpeechRecognition_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "nvidia.riva.asr.RivaSpeechRecognition",
	HandlerType: (*RivaSpeechRecognitionServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Recognize",
			Handler:    rivaSpeechRecognitionRecognizeHandler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "StreamingRecognize",
			Handler:       rivaSpeechRecognitionStreamingRecognizeHandler,
			ServerStreams: true,
			ClientStreams: true,
		},
	},
	Metadata: "riva_asr.proto",
}
