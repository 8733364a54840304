package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// FileFormat represents the dictionary file formats understood by the loader.
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatText               // one word per line
	FormatCompiled           // msgpack word list written by Save
)

// compiledVersion is bumped whenever the compiled layout changes.
const compiledVersion = 1

var (
	// ErrUnknownFormat is returned for files that are neither text nor compiled.
	ErrUnknownFormat = errors.New("unknown dictionary format")
	// ErrCompiledVersion is returned for compiled files from another layout.
	ErrCompiledVersion = errors.New("unsupported compiled dictionary version")
)

// FormatInfo contains metadata about a dictionary file format.
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatText: {
		Format:      FormatText,
		Description: "Plain Text Word List",
		Extensions:  []string{"", ".txt", ".dic", ".words"},
	},
	FormatCompiled: {
		Format:      FormatCompiled,
		Description: "Compiled MessagePack Word List",
		Extensions:  []string{".mpk", ".msgpack"},
	},
}

// compiledFile is the on-disk layout of a compiled dictionary. Words are
// already normalized and deduplicated.
type compiledFile struct {
	Version int      `msgpack:"version"`
	Count   int      `msgpack:"count"`
	MaxLen  int      `msgpack:"max_len"`
	Words   []string `msgpack:"words"`
}

// DetectFormat picks the format of a dictionary from its extension.
// System word lists such as /usr/share/dict/words come without one.
func DetectFormat(filename string) (FileFormat, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, format := range []FileFormat{FormatCompiled, FormatText} {
		for _, candidate := range supportedFormats[format].Extensions {
			if ext == candidate {
				return format, nil
			}
		}
	}
	return FormatUnknown, fmt.Errorf("%w: %s", ErrUnknownFormat, filename)
}

// GetFormatInfo returns information about a specific format.
func GetFormatInfo(format FileFormat) (FormatInfo, bool) {
	info, exists := supportedFormats[format]
	return info, exists
}

// Save writes words as a compiled dictionary.
func Save(filename string, words []string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if err := WriteCompiled(w, words); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	log.Debugf("Compiled %d words into %s", len(words), filename)
	return nil
}

// WriteCompiled encodes words in the compiled layout.
func WriteCompiled(w io.Writer, words []string) error {
	maxLen := 0
	for _, word := range words {
		maxLen = max(maxLen, len(word))
	}
	return msgpack.NewEncoder(w).Encode(&compiledFile{
		Version: compiledVersion,
		Count:   len(words),
		MaxLen:  maxLen,
		Words:   words,
	})
}

// ReadCompiled decodes a compiled dictionary.
func ReadCompiled(r io.Reader) ([]string, error) {
	var file compiledFile
	if err := msgpack.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode compiled dictionary: %w", err)
	}
	if file.Version != compiledVersion {
		return nil, fmt.Errorf("%w: %d", ErrCompiledVersion, file.Version)
	}
	if file.Count != len(file.Words) {
		log.Warnf("Compiled dictionary header says %d words, found %d", file.Count, len(file.Words))
	}
	return file.Words, nil
}
