/*
Package sparse implements a sparse array: an ordered, multi-valued map
keyed by K, where each key holds an append-ordered group of values
rather than a single one. It is a thin wrapper over btree.Tree[K, []V],
composing the core tree's AddOrUpdateFromArg rather than reimplementing
group storage.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package sparse
