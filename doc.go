// Package statichuffman implements a static Huffman code over a small fixed
// alphabet, by default the 128 ASCII code points.
//
// A ProbabilityTable is turned into a Tree by repeatedly merging the two
// lightest trees, scanning candidates in symbol order so that ties always
// resolve the same way.  A CodeTable is derived from the Tree, and the
// Encoder and Decoder translate between raw bytes and a text stream made of
// the characters '0' and '1'.  Pack and Unpack convert that text stream to
// and from a packed binary form.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package statichuffman
