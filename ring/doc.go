/*
Package ring provides a circular-buffer slice replacement used as the
storage backing for B+ tree nodes.

A Ring[T] keeps a logical, ordered sequence of T inside a fixed- or
growable-capacity backing array, addressed through a rotating start
index rather than always starting at physical offset 0. This lets
insert/remove at either end run in O(1) and lets an insert/remove
anywhere else shift whichever side (before or after the edit point) is
shorter, instead of always shifting everything after it the way a plain
slice does.

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package ring
