package filestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeExtendedFilename(t *testing.T) {
	name, err := DecodeExtendedFilename("attachment; filename*=UTF-8''report%20final.pdf")
	require.NoError(t, err)
	assert.Equal(t, "report final.pdf", name)
}

func TestDecodeExtendedFilename_Cyrillic(t *testing.T) {
	name, err := DecodeExtendedFilename("attachment; filename*=UTF-8''%D0%B4%D0%BE%D0%B3%D0%BE%D0%B2%D0%BE%D1%80.pdf")
	require.NoError(t, err)
	assert.Equal(t, "договор.pdf", name)
}

func TestDecodeExtendedFilename_MissingParameter(t *testing.T) {
	cases := []string{
		"",
		"attachment",
		`attachment; filename="plain.pdf"`,
	}
	for _, header := range cases {
		_, err := DecodeExtendedFilename(header)
		assert.ErrorIs(t, err, ErrMissingFilenameParameter, "header %q", header)
	}
}

func TestDecodeExtendedFilename_DecodeFailure(t *testing.T) {
	_, err := DecodeExtendedFilename("attachment; filename*=UTF-8''bad%ZZencoding.pdf")
	assert.ErrorIs(t, err, ErrFilenameDecode)

	_, err = DecodeExtendedFilename("attachment; filename*=no-charset-delimiter.pdf")
	assert.ErrorIs(t, err, ErrFilenameDecode)
}

func TestNormalizeFilename(t *testing.T) {
	assert.Equal(t, "avery.pdf", NormalizeFilename("averylongname.pdf", 5))
	assert.Equal(t, "short.pdf", NormalizeFilename("short.pdf", 100))
	assert.Equal(t, "noext", NormalizeFilename("noextension", 5))
}

// Основа режется по рунам, кириллица не превращается в битый UTF-8.
func TestNormalizeFilename_Cyrillic(t *testing.T) {
	assert.Equal(t, "догов.pdf", NormalizeFilename("договор аренды.pdf", 5))
}
