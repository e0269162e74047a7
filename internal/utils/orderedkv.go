package utils

import (
	"bytes"
	"encoding/json"
	"sort"
)

type OrderedKV[T any] struct {
	Value T
	Order int64
}

// OrderedKVMap is a map that encodes as a JSON object with keys in Order.
type OrderedKVMap[T any] map[string]OrderedKV[T]

// AppendGroup appends value to the group at key. A new key is placed after
// every existing one.
func AppendGroup[T any](om OrderedKVMap[[]T], key string, value T) {
	kv, ok := om[key]
	if !ok {
		kv.Order = int64(len(om))
	}
	kv.Value = append(kv.Value, value)
	om[key] = kv
}

// Keys returns the keys in Order.
func (om OrderedKVMap[T]) Keys() []string {
	keys := make([]string, 0, len(om))
	for k := range om {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return om[keys[i]].Order < om[keys[j]].Order
	})
	return keys
}

func (om OrderedKVMap[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range om.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}

		keyBytes, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyBytes)
		buf.WriteByte(':')

		valueBytes, err := json.Marshal(om[key].Value)
		if err != nil {
			return nil, err
		}
		buf.Write(valueBytes)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
