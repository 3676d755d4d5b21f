package store

import (
	"encoding/binary"

	"github.com/vmihailenco/msgpack/v4"
)

func msgpackMarshalPanic(val interface{}) []byte {
	buf, err := msgpack.Marshal(val)
	if err != nil {
		panic(err)
	}
	return buf
}

func msgpackUnmarshal(data []byte, val interface{}) error {
	return msgpack.Unmarshal(data, val)
}

func uint64ToBytes(d uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, d)
	return buf
}

func bytesToUint64(b []byte) uint64 {
	if len(b) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(b)
}
