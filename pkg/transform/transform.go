// Package transform composes reversible payload transformations —
// encryption and compression — into pipelines. It is the caller-side
// framing layer over pkg/aes128: padding, IV handling, and compression
// all live here, never in the cipher core.
package transform

type Transform interface {
	Apply(data []byte) ([]byte, error)
	Reverse(data []byte) ([]byte, error)
}

type noOpTransform struct{}

func NewNoOpTransform() Transform                            { return &noOpTransform{} }
func (n *noOpTransform) Apply(data []byte) ([]byte, error)   { return data, nil }
func (n *noOpTransform) Reverse(data []byte) ([]byte, error) { return data, nil }
