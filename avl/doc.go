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

// Package avl implements an ordered map from distinct int keys to string
// values on a rank-balanced AVL tree. Every node carries its rank (height)
// and the size of its subtree, which makes Size O(1) and lets two trees be
// joined around a pivot key, or one tree be split around a key, in
// logarithmic time.
//
// A Tree is not safe for concurrent use. Split and Join move whole
// subtrees between trees; the trees they empty may be reused but never
// share nodes with the result.
package avl

import "errors"

var (
	// ErrKeyExists is returned by Insert when the key is already present.
	ErrKeyExists = errors.New("avl: key already exists")
	// ErrKeyNotFound is returned by Delete and Split when the key is absent.
	ErrKeyNotFound = errors.New("avl: key not found")
	// ErrInvalidPivot is returned by Join when the pivot is nil, the empty
	// marker, or a node that belongs to a tree, including the sole entry of
	// a single-entry tree. Nodes become free again once Delete or Split
	// removes them.
	ErrInvalidPivot = errors.New("avl: pivot must be a detached node")
	// ErrSameTree is returned by Join when the other tree is nil or the
	// receiver itself.
	ErrSameTree = errors.New("avl: join needs two distinct trees")
	// ErrKeyOrder is returned by Join when the pivot does not separate the
	// key ranges of the two trees.
	ErrKeyOrder = errors.New("avl: pivot does not separate the key ranges")
	// ErrInvariant wraps every failure reported by Validate.
	ErrInvariant = errors.New("avl: invariant violated")
)
