package handler

import (
	"bytes"
	"sync"
)

// responseBufferSize covers typical list responses without growing; larger
// payloads (full draw history) reallocate once and the bigger buffer is
// pooled afterwards.
const responseBufferSize = 1024

// bufferPool recycles encode buffers across respondJSON calls
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, responseBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}
