/*
 * SPDX-License-Identifier: Apache-2.0
 */

package transcode

import (
	"sort"

	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
)

// ErrDictionaryIndexOutOfRange is returned on decode when a property triple
// references a key index outside the document's key dictionary.
var ErrDictionaryIndexOutOfRange = errors.New("key index outside dictionary")

// keyDict assigns each distinct property key a stable integer index in
// first-seen order across the whole document. It is built once per encode
// by pre-scanning every feature's property map and is read-only afterwards.
type keyDict struct {
	keys  []string
	index map[string]uint32
}

// buildKeyDict pre-scans the document in traversal order: collection order
// across features, sorted key order within each feature's map (Go maps have
// no insertion order, and encoding must be deterministic).
func buildKeyDict(doc *Document) *keyDict {
	d := &keyDict{index: make(map[string]uint32)}
	switch {
	case doc.Feature != nil:
		d.scan(doc.Feature)
	case doc.FeatureCollection != nil:
		for _, f := range doc.FeatureCollection.Features {
			d.scan(f)
		}
	}
	return d
}

func (d *keyDict) scan(f *geojson.Feature) {
	if f == nil {
		return
	}
	for _, k := range sortedKeys(f.Properties) {
		if _, ok := d.index[k]; !ok {
			d.index[k] = uint32(len(d.keys))
			d.keys = append(d.keys, k)
		}
	}
}

// indexOf cannot miss: the dictionary was pre-built from the same property
// maps being encoded.
func (d *keyDict) indexOf(key string) uint32 {
	return d.index[key]
}

// resolveKey maps a wire key index back to its name.
func resolveKey(keys []string, idx uint32) (string, error) {
	if int(idx) >= len(keys) {
		return "", errors.Wrapf(ErrDictionaryIndexOutOfRange,
			"index %d, dictionary holds %d keys", idx, len(keys))
	}
	return keys[idx], nil
}

func sortedKeys(props map[string]interface{}) []string {
	ks := make([]string, 0, len(props))
	for k := range props {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}
