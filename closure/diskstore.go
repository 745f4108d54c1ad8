package closure

import (
	"encoding/binary"
	"sync"

	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/fs2/bptree"
	"github.com/timtadh/fs2/fmap"
)

// diskStore persists the Index's key -> pattern-ordinal associations in an
// fs2 B+Tree backed block file, so a run over a database with many
// distinct closure keys doesn't have to keep every key's candidate-
// ordinal slice resident in the in-memory hash table Index.byKey otherwise
// uses. Pattern values themselves still live in Index.patterns: this only
// offloads the index structure.
//
// Grounded on stores/itemsets/fs2.go's BpTree wrapper: variable-length
// keys and values (bptree.New(bf, -1, -1)) and the continuation-passing
// KVIterator convention (a nil returned continuation marks exhaustion).
type diskStore struct {
	bf  *fmap.BlockFile
	bpt *bptree.BpTree
	mu  sync.Mutex
}

func newDiskStore(path string) (*diskStore, error) {
	bf, err := fmap.CreateBlockFile(path)
	if err != nil {
		return nil, errors.Errorf("opening closure index cache file %q: %v", path, err)
	}
	bpt, err := bptree.New(bf, -1, -1)
	if err != nil {
		return nil, errors.Errorf("initializing closure index cache file %q: %v", path, err)
	}
	return &diskStore{bf: bf, bpt: bpt}, nil
}

func (d *diskStore) add(key string, ordinal int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	var v [8]byte
	binary.BigEndian.PutUint64(v[:], uint64(ordinal))
	return d.bpt.Add([]byte(key), v[:])
}

func (d *diskStore) find(key string) ([]int, error) {
	d.mu.Lock()
	kvi, err := d.bpt.Find([]byte(key))
	d.mu.Unlock()
	if err != nil {
		return nil, err
	}

	var out []int
	for {
		d.mu.Lock()
		_, v, err, next := kvi()
		d.mu.Unlock()
		if err != nil {
			return nil, err
		}
		if next == nil {
			break
		}
		out = append(out, int(binary.BigEndian.Uint64(v)))
		kvi = next
	}
	return out, nil
}

func (d *diskStore) close() error {
	return d.bf.Close()
}
