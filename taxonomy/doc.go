/*
Package taxonomy builds a classification tree from (taxon, classification)
pairs and writes it as a Newick or NEXUS tree.

A classification is a comma separated list of group names, from the most
inclusive to the least, e.g. "Trans-New Guinea, Ok-Awyu, Ok, Lowland". Each
taxon becomes a leaf below the last group of its classification:

	b, _ := taxonomy.New()
	b.Add("A", "a")
	b.Add("AB1", "a, b")
	b.Add("AB2", "a, b")
	b.Add("C", "c")
	s, _ := b.Serialize(taxonomy.ModeNewick) // ((A,(AB1,AB2)),C);

Input files hold one taxon per line, with the taxon name separated from its
classification by the first run of whitespace. See Reader.

A Builder is not safe for use from multiple goroutines.
*/
package taxonomy
