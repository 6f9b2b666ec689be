// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"fmt"
	"time"

	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the domain types persisted by the storage layer.
// Field order is part of the on-disk format; do not reorder.

// IDMUS serializes IDs as varint-encoded uint64.
var IDMUS = idMUS{}

type idMUS struct{}

func (idMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (idMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	raw, n, err := varint.Uint64.Unmarshal(bs)
	return ID(raw), n, err
}

func (idMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

// DocumentMUS serializes Documents.
// Timestamps are stored as Unix microseconds in UTC.
var DocumentMUS = documentMUS{}

type documentMUS struct{}

func (documentMUS) Marshal(v Document, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += marshalString(v.Content, bs[n:])
	n += varint.Int.Marshal(len(v.Metadata), bs[n:])
	for key, value := range v.Metadata {
		n += marshalString(key, bs[n:])
		n += marshalString(value, bs[n:])
	}
	n += varint.Int.Marshal(len(v.Vector), bs[n:])
	for _, f := range v.Vector {
		n += varint.Float32.Marshal(f, bs[n:])
	}
	n += varint.Int64.Marshal(v.InsertedAt.UTC().UnixMicro(), bs[n:])
	n += varint.Int64.Marshal(v.UpdatedAt.UTC().UnixMicro(), bs[n:])
	return n
}

func (documentMUS) Unmarshal(bs []byte) (v Document, n int, err error) {
	var c int

	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}

	var content string
	content, c, err = unmarshalString(bs[n:])
	n += c
	if err != nil {
		return
	}
	v.Content = content

	var metaLen int
	metaLen, c, err = varint.Int.Unmarshal(bs[n:])
	n += c
	if err != nil {
		return
	}
	if metaLen < 0 {
		err = fmt.Errorf("%w: negative metadata length", ErrMalformedRecord)
		return
	}
	if metaLen > 0 {
		v.Metadata = make(map[string]string, metaLen)
		for range metaLen {
			var key, value string
			key, c, err = unmarshalString(bs[n:])
			n += c
			if err != nil {
				return
			}
			value, c, err = unmarshalString(bs[n:])
			n += c
			if err != nil {
				return
			}
			v.Metadata[key] = value
		}
	}

	var vecLen int
	vecLen, c, err = varint.Int.Unmarshal(bs[n:])
	n += c
	if err != nil {
		return
	}
	if vecLen < 0 {
		err = fmt.Errorf("%w: negative vector length", ErrMalformedRecord)
		return
	}
	if vecLen > 0 {
		v.Vector = make([]float32, vecLen)
		for i := range vecLen {
			v.Vector[i], c, err = varint.Float32.Unmarshal(bs[n:])
			n += c
			if err != nil {
				return
			}
		}
	}

	var micros int64
	micros, c, err = varint.Int64.Unmarshal(bs[n:])
	n += c
	if err != nil {
		return
	}
	v.InsertedAt = timeFromMicros(micros)

	micros, c, err = varint.Int64.Unmarshal(bs[n:])
	n += c
	if err != nil {
		return
	}
	v.UpdatedAt = timeFromMicros(micros)

	return
}

func (documentMUS) Size(v Document) (size int) {
	size = IDMUS.Size(v.Id)
	size += sizeString(v.Content)
	size += varint.Int.Size(len(v.Metadata))
	for key, value := range v.Metadata {
		size += sizeString(key) + sizeString(value)
	}
	size += varint.Int.Size(len(v.Vector))
	for _, f := range v.Vector {
		size += varint.Float32.Size(f)
	}
	size += varint.Int64.Size(v.InsertedAt.UTC().UnixMicro())
	size += varint.Int64.Size(v.UpdatedAt.UTC().UnixMicro())
	return size
}

func timeFromMicros(micros int64) time.Time {
	return time.UnixMicro(micros).UTC()
}

func marshalString(v string, bs []byte) (n int) {
	n = varint.Int.Marshal(len(v), bs)
	n += copy(bs[n:], v)
	return n
}

func unmarshalString(bs []byte) (v string, n int, err error) {
	length, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	if length < 0 {
		err = fmt.Errorf("%w: negative string length", ErrMalformedRecord)
		return
	}
	if len(bs)-n < length {
		err = fmt.Errorf("%w: truncated string", ErrMalformedRecord)
		return
	}
	v = string(bs[n : n+length])
	n += length
	return
}

func sizeString(v string) int {
	return varint.Int.Size(len(v)) + len(v)
}
