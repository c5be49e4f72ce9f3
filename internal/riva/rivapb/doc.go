// Package rivapb holds wire-compatible bindings for the subset of the
// NVIDIA Riva speech API the gateway uses.
//
// The upstream Riva proto tree is large and ships no Go module; these
// types cover only the fields this repository reads or writes. Field
// numbers and method names match the upstream definitions (see
// proto/riva/ for the trimmed sources), so the messages stay
// interoperable with a stock Riva server. Messages follow the legacy
// generated-code contract (struct tags plus Reset/String/ProtoMessage),
// which google.golang.org/protobuf adapts at runtime.
package rivapb
