package keypad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLayout(t *testing.T) {
	m := Default()

	testCases := []struct {
		digit   byte
		letters string
	}{
		{'0', ""},
		{'1', ""},
		{'2', "ABC"},
		{'6', "MNO"},
		{'7', "PQRS"},
		{'9', "WXYZ"},
		{'*', ""},
		{'a', ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.letters, m.Letters(tc.digit), "digit %q", tc.digit)
	}
}

func TestNewOverridesOnlyGivenDigits(t *testing.T) {
	m, err := New(map[byte]string{'7': "prs", '9': "WXY", '1': "Q"})
	require.NoError(t, err)

	assert.Equal(t, "PRS", m.Letters('7'))
	assert.Equal(t, "WXY", m.Letters('9'))
	assert.Equal(t, "Q", m.Letters('1'))
	assert.Equal(t, "ABC", m.Letters('2'), "untouched digit keeps default")

	// Default must not be modified by a remap.
	assert.Equal(t, "PQRS", Default().Letters('7'))
}

func TestNewEmptyOverrideClearsDigit(t *testing.T) {
	m, err := New(map[byte]string{'2': ""})
	require.NoError(t, err)
	assert.Equal(t, "", m.Letters('2'))
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New(map[byte]string{'x': "ABC"})
	assert.ErrorIs(t, err, ErrInvalidDigit)

	_, err = New(map[byte]string{'2': "A1"})
	assert.ErrorIs(t, err, ErrInvalidLetters)
}

func TestSetDropsRepeatedLetters(t *testing.T) {
	m := Default()
	require.NoError(t, m.Set('5', "JJKL"))
	assert.Equal(t, "JKL", m.Letters('5'))
}

func TestParseOverrides(t *testing.T) {
	got, err := ParseOverrides(map[string]string{"7": "PRS", "0": ""})
	require.NoError(t, err)
	assert.Equal(t, map[byte]string{'7': "PRS", '0': ""}, got)

	got, err = ParseOverrides(nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	for _, bad := range []string{"", "12", "x", "-7"} {
		_, err := ParseOverrides(map[string]string{bad: "ABC"})
		assert.ErrorIs(t, err, ErrInvalidDigit, "key %q", bad)
	}
}

func TestEncode(t *testing.T) {
	m := Default()

	digits, ok := m.Encode("CAT")
	require.True(t, ok)
	assert.Equal(t, "228", digits)

	digits, ok = m.Encode("hello")
	require.True(t, ok)
	assert.Equal(t, "43556", digits)

	_, ok = m.Encode("DON'T")
	assert.False(t, ok)
}

func TestEncodings(t *testing.T) {
	assert.Equal(t, []string{"228"}, Default().Encodings("cat"))
	assert.Nil(t, Default().Encodings(""))
	assert.Nil(t, Default().Encodings("DON'T"))

	m, err := New(map[byte]string{'1': "A", '0': "T"})
	require.NoError(t, err)
	assert.Equal(t, "12", m.Digits('a'))
	assert.Equal(t, "08", m.Digits('T'))
	assert.Equal(t, "", m.Digits('-'))
	assert.Equal(t, []string{"210", "218", "220", "228"}, m.Encodings("CAT"))

	digits, ok := m.Encode("CAT")
	require.True(t, ok)
	assert.Equal(t, "210", digits, "Encode picks the lowest key per letter")
}

func TestString(t *testing.T) {
	assert.Equal(t, "2=ABC 3=DEF 4=GHI 5=JKL 6=MNO 7=PQRS 8=TUV 9=WXYZ", Default().String())
}
