package cycles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogLengths(t *testing.T) {
	assert.Equal(t, BavliFirstLength, bavliFirst.len())
	assert.Equal(t, BavliSecondLength, bavliSecond.len())
	assert.Equal(t, YerushalmiLength, yerushalmi.len())
	assert.Len(t, rambamOne, RambamOneLength)
	assert.Len(t, rambamThree, RambamThreeLength)
}

func TestDafYomi(t *testing.T) {
	tests := []struct {
		name       string
		firstCycle bool
		offset     int
		want       Daf
	}{
		{"start", false, 0, Daf{Tractate{"Berachos", "ברכות"}, 2}},
		{"end of berachos", false, 62, Daf{Tractate{"Berachos", "ברכות"}, 64}},
		{"start of shabbos", false, 63, Daf{Tractate{"Shabbos", "שבת"}, 2}},
		{"kinnim", false, 2711 - 72 - 15, Daf{Tractate{"Kinnim", "קינים"}, 23}},
		{"end", false, 2710, Daf{Tractate{"Niddah", "נדה"}, 73}},
		{"wraps", false, 2711, Daf{Tractate{"Berachos", "ברכות"}, 2}},
		{"first cycle end", true, 2701, Daf{Tractate{"Niddah", "נדה"}, 73}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DafYomi(tt.firstCycle, tt.offset))
		})
	}
}

func TestDafYomi_ShekalimDiffersBetweenCycles(t *testing.T) {
	// offset of the first folio of Shekalim
	shekalimStart := 63 + 156 + 104 + 120
	assert.Equal(t, "Shekalim", DafYomi(true, shekalimStart+11).Tractate.Name)
	assert.Equal(t, "Yoma", DafYomi(true, shekalimStart+12).Tractate.Name)
	assert.Equal(t, "Shekalim", DafYomi(false, shekalimStart+12).Tractate.Name)
}

func TestYerushalmi(t *testing.T) {
	assert.Equal(t, YerushalmiDaf{Tractate{"Berachos", "ברכות"}, 1}, Yerushalmi(0))
	assert.Equal(t, YerushalmiDaf{Tractate{"Peah", "פאה"}, 1}, Yerushalmi(68))
	assert.Equal(t, YerushalmiDaf{Tractate{"Niddah", "נדה"}, 13}, Yerushalmi(YerushalmiLength-1))
	assert.Equal(t, Yerushalmi(0), Yerushalmi(YerushalmiLength))
}

func TestRambam(t *testing.T) {
	first := RambamOne(0)
	assert.Equal(t, "Transmission of the Oral Law", first.Section.Name)
	assert.Equal(t, 1, first.Number)

	yesodei := RambamOne(17)
	assert.Equal(t, "Yesodei HaTorah", yesodei.Section.Name)
	assert.Equal(t, 1, yesodei.Number)

	last := RambamOne(RambamOneLength - 1)
	assert.Equal(t, "Melachim U'Milchamos", last.Section.Name)
	assert.Equal(t, 12, last.Number)

	three := RambamThree(1)
	assert.Equal(t, Chapters{RambamOne(3), RambamOne(4), RambamOne(5)}, three)
	assert.Equal(t, RambamThree(0), RambamThree(RambamThreeLength))
}

func TestMod(t *testing.T) {
	assert.Equal(t, 2, mod(-1, 3))
	assert.Equal(t, 0, mod(6, 3))
	assert.Equal(t, 1, mod(4, 3))
}
