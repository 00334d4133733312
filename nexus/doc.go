/*
Package nexus provides a writer for the trees block of the NEXUS format.

Only the subset needed to carry a single Newick tree is produced:

	#NEXUS

	begin trees;
	   tree <label> = <newick>
	end;

The tree itself is rendered by package newick.
*/
package nexus
