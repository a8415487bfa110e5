/*
Package unidata ships the reference transliteration tables consumed by
package translit.

The per-block tables in this package are generated from the reference
transliteration corpus by an offline extraction step; they are data, not code,
and are treated as an opaque immutable lookup surface. Replacements follow the
reference corpus exactly, including quirks like the leading space on vulgar
fractions (so "2¼" reads "2 1/4") and the trailing space on CJK readings.

Registry builds the process-wide mapping store on first use and never
mutates it afterwards.
*/
package unidata

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
