package main

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"io"
)

// Serialization here is the dumbest thing that works: fixed-size values
// written little-endian with encoding/binary, slices prefixed by their
// length. There is no schema and no tags; the InputVersion constant guards
// against reading bytes written by an incompatible layout.

func Serialize(w io.Writer, data any) {
	Check(binary.Write(w, binary.LittleEndian, data))
}

func Deserialize(r io.Reader, data any) {
	Check(binary.Read(r, binary.LittleEndian, data))
}

func SerializeSlice[T any](w io.Writer, s []T) {
	Serialize(w, int64(len(s)))
	Serialize(w, s)
}

func DeserializeSlice[T any](r io.Reader, s *[]T) {
	var n int64
	Deserialize(r, &n)
	*s = make([]T, n)
	Deserialize(r, *s)
}

func Zip(data []byte) []byte {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(data)
	Check(err)
	Check(w.Close())
	return buf.Bytes()
}

func Unzip(data []byte) []byte {
	r, err := gzip.NewReader(bytes.NewReader(data))
	Check(err)
	out, err := io.ReadAll(r)
	Check(err)
	Check(r.Close())
	return out
}
