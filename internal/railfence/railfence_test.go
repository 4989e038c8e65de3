package railfence

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"testing/quick"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mobyDick = "Moby-Dick; or, The Whale is an 1851 novel by American writer Herman Melville. The book is the sailor Ishmael's narrative of the obsessive quest of Ahab, captain of the whaling ship Pequod, for revenge on Moby Dick, the giant white sperm whale that on the ship's previous voyage bit off Ahab's leg at the knee. Wikipedia"

const mobyDickRails10 = "M NWIT'EOF GHRH AEOEW O RVL HLSH  FO PPNETEEMTESVHBNEBHH1VNILLSEE TOT  TIEE   P   UOA'K.YTA5EATEEI AN BSANHHQVO,GSWNSOY S  - L8LCEM. SMAFSEHIESUENKI HOHIAF EWD,E1 IR  KAHROEUAA  OR CAEA IVGFLHIIR  BR NTOISR SQBTWGD MINTLTPEEOETKACOINYEHAHOLIAES ,PHN,RODTIEA'R  G IIK SA MEMEBO TVIE AAI OB  H HSPBT TPD; AR RIVCLFYWT IAE"

func TestEncode_Known(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		rails int
		want  string
	}{
		{"hello world", "Hello,World!", 3, "HOREL,OL!LWD"},
		{"single rail", "abc", 1, "ABC"},
		{"rails exceed length", "AB", 5, "AB"},
		{"two rails", "abcdefg", 2, "ACEGBDF"},
		{"four rails", "abcdefghij", 4, "AGBFHCEIDJ"},
		{"empty", "", 3, ""},
		{"empty single rail", "", 1, ""},
		{"spaces and punctuation", "a b.c", 2, "ABC ."},
		{"moby dick", mobyDick, 10, mobyDickRails10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.text, tt.rails)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncode_InvalidRails(t *testing.T) {
	for _, rails := range []int{0, -1, -100} {
		got, err := Encode("test", rails)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidArgument), "rails=%d: %v", rails, err)
		assert.Empty(t, got)
	}
	_, err := Encode("", 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEncode_NonASCII(t *testing.T) {
	got, err := Encode("ñandú", 2)
	require.NoError(t, err)
	assert.Equal(t, "ÑNÚAD", got)

	// dotless i shrinks in bytes when upper-cased but keeps its rune count
	got, err = Encode("ıx", 1)
	require.NoError(t, err)
	assert.Equal(t, "IX", got)
}

func TestPattern(t *testing.T) {
	got, err := Pattern(12, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 1, 0, 1, 2, 1, 0, 1, 2, 1}, got)

	got, err = Pattern(5, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0, 0}, got)

	got, err = Pattern(2, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, got)

	got, err = Pattern(0, 3)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = Pattern(3, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestPattern_EdgeRailsOncePerPeriod(t *testing.T) {
	for rails := 2; rails <= 8; rails++ {
		p := Period(rails)
		pattern, err := Pattern(p*5, rails)
		require.NoError(t, err)
		counts := make([]int, rails)
		for _, j := range pattern {
			counts[j]++
		}
		assert.Equal(t, 5, counts[0], "rails=%d top", rails)
		assert.Equal(t, 5, counts[rails-1], "rails=%d bottom", rails)
		for j := 1; j < rails-1; j++ {
			assert.Equal(t, 10, counts[j], "rails=%d rail %d", rails, j)
		}
	}
}

func TestPeriod(t *testing.T) {
	assert.Equal(t, 1, Period(1))
	assert.Equal(t, 2, Period(2))
	assert.Equal(t, 4, Period(3))
	assert.Equal(t, 18, Period(10))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "HELLO, WORLD!", Normalize("Hello, World!"))
	assert.Equal(t, "", Normalize(""))
}

// Property: rune count is preserved.
func TestProperty_LengthPreserved(t *testing.T) {
	property := func(text string, r uint8) bool {
		rails := int(r%20) + 1
		out, err := Encode(text, rails)
		if err != nil {
			t.Logf("encode failed: %v", err)
			return false
		}
		return utf8.RuneCountInString(out) == utf8.RuneCountInString(text)
	}
	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// Property: output is a permutation of the normalized input.
func TestProperty_Permutation(t *testing.T) {
	property := func(text string, r uint8) bool {
		rails := int(r%20) + 1
		out, err := Encode(text, rails)
		if err != nil {
			return false
		}
		want := []rune(Normalize(text))
		got := []rune(out)
		slices.Sort(want)
		slices.Sort(got)
		return slices.Equal(want, got)
	}
	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// Property: a single rail is the identity on the normalized text.
func TestProperty_SingleRailIdentity(t *testing.T) {
	property := func(text string) bool {
		out, err := Encode(text, 1)
		return err == nil && out == strings.ToUpper(text)
	}
	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// Property: the permutation depends only on length and rails.
func TestProperty_PositionOnly(t *testing.T) {
	property := func(text string, r uint8) bool {
		rails := int(r%20) + 1
		n := utf8.RuneCountInString(text)
		// encode the positions themselves as distinct runes
		idx := make([]rune, n)
		for i := range idx {
			idx[i] = rune(0x4E00 + i)
		}
		perm, err := Encode(string(idx), rails)
		if err != nil {
			return false
		}
		src := []rune(Normalize(text))
		var sb strings.Builder
		for _, c := range perm {
			sb.WriteRune(src[c-0x4E00])
		}
		out, err := Encode(text, rails)
		return err == nil && out == sb.String()
	}
	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

func TestEncode_Deterministic(t *testing.T) {
	first, err := Encode(mobyDick, 7)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Encode(mobyDick, 7)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}
