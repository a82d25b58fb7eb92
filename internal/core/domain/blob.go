package domain

import "maps"

// Blob is an opaque JSON object (ad performance, post engagement). Its keys are
// never interpreted.
type Blob map[string]any

// Clone returns a shallow copy; a nil Blob clones to an empty one.
func (b Blob) Clone() Blob {
	if b == nil {
		return Blob{}
	}
	return maps.Clone(b)
}
