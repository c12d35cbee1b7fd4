// Package cycles holds the page and chapter catalogs of the daily study
// cycles and maps a day offset within a cycle to the unit studied that day.
package cycles

import "sort"

// Unit is one day's study in some cycle. The set of implementations is
// closed: Daf, YerushalmiDaf, Chapter and Chapters.
type Unit interface {
	isUnit()
}

// Daf is a folio of the Babylonian Talmud.
type Daf struct {
	Tractate Tractate `json:"tractate"`
	Page     int      `json:"page"`
}

// YerushalmiDaf is a folio of the Jerusalem Talmud, Vilna pagination.
type YerushalmiDaf struct {
	Tractate Tractate `json:"tractate"`
	Page     int      `json:"page"`
}

// Chapter is one chapter of the Mishneh Torah.
type Chapter struct {
	Section Section `json:"section"`
	Number  int     `json:"chapter"`
}

// Chapters is the three-chapter portion of one day.
type Chapters [3]Chapter

func (Daf) isUnit()           {}
func (YerushalmiDaf) isUnit() {}
func (Chapter) isUnit()       {}
func (Chapters) isUnit()      {}

// Tractate names a tractate in English transliteration and Hebrew.
type Tractate struct {
	Name   string `json:"name"`
	Hebrew string `json:"hebrew"`
}

// Section names a set of laws (hilchos) in the Mishneh Torah.
type Section struct {
	Name   string `json:"name"`
	Hebrew string `json:"hebrew"`
}

type pages struct {
	Tractate
	first, last int
}

// catalog is an ordered list of tractates with cumulative page counts.
type catalog struct {
	entries []pages
	ends    []int // ends[i] = pages in entries[0..i]
}

func newCatalog(entries []pages) *catalog {
	c := &catalog{entries: entries, ends: make([]int, len(entries))}
	total := 0
	for i, e := range entries {
		total += e.last - e.first + 1
		c.ends[i] = total
	}
	return c
}

func (c *catalog) len() int {
	return c.ends[len(c.ends)-1]
}

// locate maps a zero-based offset, reduced modulo the catalog length, to a
// tractate and page.
func (c *catalog) locate(offset int) (Tractate, int) {
	offset = mod(offset, c.len())
	i := sort.SearchInts(c.ends, offset+1)
	start := 0
	if i > 0 {
		start = c.ends[i-1]
	}
	e := c.entries[i]
	return e.Tractate, e.first + offset - start
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
