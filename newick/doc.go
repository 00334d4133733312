/*
Package newick provides facilities for building trees and writing them in the
Newick format. The format used is roughly equivalent to the conventions
established here:
http://evolution.genetics.washington.edu/phylip/newick_doc.html. Although,
branch lengths, comments and quoted labels are not implemented.

An informal description of the Newick format can be found here:
http://evolution.genetics.washington.edu/phylip/newicktree.html.

Output is deterministic: siblings are always written in label order, no
matter the order they were added in. Labels may not contain any of the
characters '(', ')' or ';'.

This package only includes a writer. Reading Newick trees is not supported.
*/
package newick
