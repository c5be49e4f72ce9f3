package rivapb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	RivaSpeechSynthesis_Synthesize_FullMethodName       = "/nvidia.riva.tts.RivaSpeechSynthesis/Synthesize"
	RivaSpeechSynthesis_SynthesizeOnline_FullMethodName = "/nvidia.riva.tts.RivaSpeechSynthesis/SynthesizeOnline"
)

// RivaSpeechSynthesisClient is the client API for the
// nvidia.riva.tts.RivaSpeechSynthesis service.
type RivaSpeechSynthesisClient interface {
	// Synthesize returns the complete rendered audio in one response.
	Synthesize(ctx context.Context, in *SynthesizeSpeechRequest, opts ...grpc.CallOption) (*SynthesizeSpeechResponse, error)
	// SynthesizeOnline streams audio chunks as they are rendered.
	SynthesizeOnline(ctx context.Context, in *SynthesizeSpeechRequest, opts ...grpc.CallOption) (RivaSpeechSynthesis_SynthesizeOnlineClient, error)
}

type rivaSpeechSynthesisClient struct {
	cc grpc.ClientConnInterface
}

// NewRivaSpeechSynthesisClient builds a client over an existing
// connection.
func NewRivaSpeechSynthesisClient(cc grpc.ClientConnInterface) RivaSpeechSynthesisClient {
	return &rivaSpeechSynthesisClient{cc}
}

func (c *rivaSpeechSynthesisClient) Synthesize(ctx context.Context, in *SynthesizeSpeechRequest, opts ...grpc.CallOption) (*SynthesizeSpeechResponse, error) {
	out := new(SynthesizeSpeechResponse)
	err := c.cc.Invoke(ctx, RivaSpeechSynthesis_Synthesize_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rivaSpeechSynthesisClient) SynthesizeOnline(ctx context.Context, in *SynthesizeSpeechRequest, opts ...grpc.CallOption) (RivaSpeechSynthesis_SynthesizeOnlineClient, error) {
	stream, err := c.cc.NewStream(ctx, &RivaSpeechSynthesis_ServiceDesc.Streams[0], RivaSpeechSynthesis_SynthesizeOnline_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &rivaSpeechSynthesisSynthesizeOnlineClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// RivaSpeechSynthesis_SynthesizeOnlineClient is the client side of the
// SynthesizeOnline stream.
type RivaSpeechSynthesis_SynthesizeOnlineClient interface {
	Recv() (*SynthesizeSpeechResponse, error)
	grpc.ClientStream
}

type rivaSpeechSynthesisSynthesizeOnlineClient struct {
	grpc.ClientStream
}

func (x *rivaSpeechSynthesisSynthesizeOnlineClient) Recv() (*SynthesizeSpeechResponse, error) {
	m := new(SynthesizeSpeechResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// RivaSpeechSynthesisServer is the server API for the
// nvidia.riva.tts.RivaSpeechSynthesis service. Implemented by test doubles
// standing in for a Riva server.
type RivaSpeechSynthesisServer interface {
	Synthesize(context.Context, *SynthesizeSpeechRequest) (*SynthesizeSpeechResponse, error)
	SynthesizeOnline(*SynthesizeSpeechRequest, RivaSpeechSynthesis_SynthesizeOnlineServer) error
}

// UnimplementedRivaSpeechSynthesisServer provides forward-compatible
// default implementations.
type UnimplementedRivaSpeechSynthesisServer struct{}

func (UnimplementedRivaSpeechSynthesisServer) Synthesize(context.Context, *SynthesizeSpeechRequest) (*SynthesizeSpeechResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Synthesize not implemented")
}

func (UnimplementedRivaSpeechSynthesisServer) SynthesizeOnline(*SynthesizeSpeechRequest, RivaSpeechSynthesis_SynthesizeOnlineServer) error {
	return status.Error(codes.Unimplemented, "method SynthesizeOnline not implemented")
}

// RegisterRivaSpeechSynthesisServer registers the service implementation
// with a gRPC server.
func RegisterRivaSpeechSynthesisServer(s grpc.ServiceRegistrar, srv RivaSpeechSynthesisServer) {
	s.RegisterService(&RivaSpeechSynthesis_ServiceDesc, srv)
}

func rivaSpeechSynthesisSynthesizeHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SynthesizeSpeechRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RivaSpeechSynthesisServer).Synthesize(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RivaSpeechSynthesis_Synthesize_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RivaSpeechSynthesisServer).Synthesize(ctx, req.(*SynthesizeSpeechRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func rivaSpeechSynthesisSynthesizeOnlineHandler(srv interface{}, stream grpc.ServerStream) error {
	m := new(SynthesizeSpeechRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(RivaSpeechSynthesisServer).SynthesizeOnline(m, &rivaSpeechSynthesisSynthesizeOnlineServer{stream})
}

// RivaSpeechSynthesis_SynthesizeOnlineServer is the server side of the
// SynthesizeOnline stream.
type RivaSpeechSynthesis_SynthesizeOnlineServer interface {
	Send(*SynthesizeSpeechResponse) error
	grpc.ServerStream
}

type rivaSpeechSynthesisSynthesizeOnlineServer struct {
	grpc.ServerStream
}

func (x *rivaSpeechSynthesisSynthesizeOnlineServer) Send(m *SynthesizeSpeechResponse) error {
	return x.ServerStream.SendMsg(m)
}

// RivaSpeechSynthesis_ServiceDesc is the grpc.ServiceDesc for the
// RivaSpeechSynthesis service.
var RivaSpeechSynthesis_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "nvidia.riva.tts.RivaSpeechSynthesis",
	HandlerType: (*RivaSpeechSynthesisServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Synthesize",
			Handler:    rivaSpeechSynthesisSynthesizeHandler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "SynthesizeOnline",
			Handler:       rivaSpeechSynthesisSynthesizeOnlineHandler,
			ServerStreams: true,
		},
	},
	Metadata: "riva_tts.proto",
}
