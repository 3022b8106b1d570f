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
	"time"

	"github.com/patrickmn/go-cache"
)

// NewLookupCache creates the cache that remembers search hits of one tree.
func NewLookupCache(ttl, cleanup time.Duration) *cache.Cache {
	return cache.New(ttl, cleanup)
}

func CacheLookup(c *cache.Cache, key int, value string) {
	// Use Set instead of Add to allow overwriting
	c.Set(strconv.Itoa(key), value, cache.DefaultExpiration)
}

func GetCachedLookup(c *cache.Cache, key int) (string, bool) {
	val, ok := c.Get(strconv.Itoa(key))
	if !ok {
		return "", false
	}
	return val.(string), true
}

func EvictLookup(c *cache.Cache, key int) {
	c.Delete(strconv.Itoa(key))
}
