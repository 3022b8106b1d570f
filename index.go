// Copyright 2025 Naren Yellavula
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

package main

import (
	"strconv"

	"github.com/cybrota/ranktree/avl"
	"github.com/patrickmn/go-cache"
	"github.com/willf/bloom"
	"go.uber.org/zap"
)

// Index wraps one tree with a bloom filter that answers most misses without
// a descent, and a cache of recent search hits.
type Index struct {
	tree    *avl.Tree
	filter  *bloom.BloomFilter
	lookups *cache.Cache
	config  IndexConfig
	log     *zap.Logger
}

// NewIndex takes ownership of tree and indexes every key it holds.
func NewIndex(tree *avl.Tree, config IndexConfig, log *zap.Logger) *Index {
	ix := &Index{
		tree:    tree,
		filter:  bloom.New(config.BloomSize, config.BloomHashes),
		lookups: NewLookupCache(config.CacheTTL, config.CacheCleanup),
		config:  config,
		log:     log,
	}
	for k := range tree.All() {
		ix.filter.AddString(strconv.Itoa(k))
	}
	return ix
}

func (ix *Index) Tree() *avl.Tree {
	return ix.tree
}

// MayContain is false only for keys that were never inserted.
func (ix *Index) MayContain(key int) bool {
	return ix.filter.TestString(strconv.Itoa(key))
}

func (ix *Index) Insert(key int, value string) (int, error) {
	ops, err := ix.tree.Insert(key, value)
	if err != nil {
		return 0, err
	}
	ix.filter.AddString(strconv.Itoa(key))
	ix.log.Debug("insert", zap.Int("key", key), zap.Int("ops", ops))
	return ops, nil
}

func (ix *Index) Delete(key int) (int, error) {
	ops, err := ix.tree.Delete(key)
	if err != nil {
		return 0, err
	}
	// bloom bits stay set; the key just becomes a false positive
	EvictLookup(ix.lookups, key)
	ix.log.Debug("delete", zap.Int("key", key), zap.Int("ops", ops))
	return ops, nil
}

func (ix *Index) Search(key int) (string, bool) {
	if !ix.MayContain(key) {
		ix.log.Debug("bloom filter miss", zap.Int("key", key))
		return "", false
	}
	if v, ok := GetCachedLookup(ix.lookups, key); ok {
		return v, true
	}
	v, ok := ix.tree.Search(key)
	if ok {
		CacheLookup(ix.lookups, key, v)
	}
	return v, ok
}

// Split cuts the index around key. ix is empty afterwards.
func (ix *Index) Split(key int) (*Index, *Index, error) {
	low, high, err := ix.tree.Split(key)
	if err != nil {
		return nil, nil, err
	}
	ix.reset()
	ix.log.Debug("split", zap.Int("key", key), zap.Int("low", low.Size()), zap.Int("high", high.Size()))
	return NewIndex(low, ix.config, ix.log), NewIndex(high, ix.config, ix.log), nil
}

// Join absorbs other and a new pivot entry into ix. other is empty afterwards.
func (ix *Index) Join(key int, value string, other *Index) (int, error) {
	cost, err := ix.tree.Join(avl.NewNode(key, value), other.tree)
	if err != nil {
		return 0, err
	}

	ix.filter.AddString(strconv.Itoa(key))
	if err := ix.filter.Merge(other.filter); err != nil {
		// filters sized differently, index other's keys one by one
		for k := range ix.tree.All() {
			ix.filter.AddString(strconv.Itoa(k))
		}
	}
	other.reset()
	ix.lookups.Flush()
	ix.log.Debug("join", zap.Int("key", key), zap.Int("cost", cost), zap.Int("size", ix.tree.Size()))
	return cost, nil
}

func (ix *Index) reset() {
	ix.filter.ClearAll()
	ix.lookups.Flush()
}
