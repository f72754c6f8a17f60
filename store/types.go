package store

import "github.com/unichan/unichan"

// Move references for all storage types into this package
// for shorter names everywhere.

type ReadOnlyKVStore = unichan.ReadOnlyKVStore
type KVStore = unichan.KVStore
type SetDeleter = unichan.SetDeleter
type Batch = unichan.Batch
type Iterator = unichan.Iterator
type CacheableKVStore = unichan.CacheableKVStore
type KVCacheWrap = unichan.KVCacheWrap
type Model = unichan.Model
