package model

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/seabreak/seabreak/internal/script"
)

// sabin format (this module's own on-disk representation of an otherwise
// externally-provided model blob — spec.md leaves the file format
// unspecified, this is the concrete Go-native choice, modeled directly on
// the teacher's own SafeTensors reader/writer: a length-prefixed JSON
// header followed by raw matrix data):
//
//	[8 bytes: magic "SABREAK1"]
//	[8 bytes: header_size (uint64 LE)]
//	[header_size bytes: JSON header]
//	[matrix data: little-endian float32, ExpectedMatrixLen(...) elements]
const sabinMagic = "SABREAK1"

// fileHeader is the JSON header of a sabin file. Mapping holds only the
// codepoints the training pipeline actually assigned a class to, keyed by
// decimal code point value; every other codepoint maps to NumIndex (the
// reserved out-of-vocabulary index), keeping Mapping total as spec.md
// requires.
type fileHeader struct {
	Script        string         `json:"script"`
	NumIndex      int            `json:"num_index"`
	EmbeddingSize int            `json:"embedding_size"`
	HUnits        int            `json:"hunits"`
	Mapping       map[string]int `json:"mapping"`
}

func scriptFromName(name string) (script.Script, error) {
	switch name {
	case "thai":
		return script.Thai, nil
	case "lao":
		return script.Lao, nil
	case "burmese":
		return script.Burmese, nil
	case "khmer":
		return script.Khmer, nil
	default:
		return script.UNK, fmt.Errorf("%w: %q", ErrUnknownScript, name)
	}
}

func scriptName(s script.Script) (string, error) {
	switch s {
	case script.Thai:
		return "thai", nil
	case script.Lao:
		return "lao", nil
	case script.Burmese:
		return "burmese", nil
	case script.Khmer:
		return "khmer", nil
	default:
		return "", fmt.Errorf("%w: %v", ErrUnknownScript, s)
	}
}

func buildMapping(table map[string]int, numIndex int) Mapping {
	byCodepoint := make(map[rune]int, len(table))
	for key, idx := range table {
		cp, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		byCodepoint[rune(cp)] = idx
	}
	return func(codepoint rune) int {
		if idx, ok := byCodepoint[codepoint]; ok {
			return idx
		}
		return numIndex
	}
}

// LoadFile reads a sabin model file from disk.
func LoadFile(path string) (*Model, error) {
	//nolint:gosec // model path is supplied by the caller, same as loader.OpenModel
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("model: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	magic := make([]byte, len(sabinMagic))
	if _, err := io.ReadFull(f, magic); err != nil {
		return nil, fmt.Errorf("model: read magic: %w", err)
	}
	if string(magic) != sabinMagic {
		return nil, ErrBadMagic
	}

	var headerSize uint64
	if err := binary.Read(f, binary.LittleEndian, &headerSize); err != nil {
		return nil, fmt.Errorf("model: read header size: %w", err)
	}

	headerBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(f, headerBytes); err != nil {
		return nil, fmt.Errorf("model: read header: %w", err)
	}

	var h fileHeader
	if err := json.Unmarshal(headerBytes, &h); err != nil {
		return nil, fmt.Errorf("model: parse header: %w", err)
	}

	sc, err := scriptFromName(h.Script)
	if err != nil {
		return nil, err
	}

	want := ExpectedMatrixLen(h.NumIndex, h.EmbeddingSize, h.HUnits)
	matrices := make([]float32, want)
	if err := binary.Read(f, binary.LittleEndian, matrices); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, ErrTruncated
		}
		return nil, fmt.Errorf("model: read matrices: %w", err)
	}

	m := &Model{
		Script:        sc,
		NumIndex:      h.NumIndex,
		EmbeddingSize: h.EmbeddingSize,
		HUnits:        h.HUnits,
		Mapping:       buildMapping(h.Mapping, h.NumIndex),
		Matrices:      matrices,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// SaveFile writes m to path in sabin format. mapping supplies the sparse
// codepoint→index table to persist; m.Mapping itself is a function and
// cannot be serialized directly, so callers that round-trip a Model built
// in memory must keep the table they built the mapping from.
func SaveFile(path string, m *Model, mapping map[rune]int) error {
	if err := m.Validate(); err != nil {
		return err
	}
	name, err := scriptName(m.Script)
	if err != nil {
		return err
	}

	table := make(map[string]int, len(mapping))
	for cp, idx := range mapping {
		table[strconv.Itoa(int(cp))] = idx
	}

	h := fileHeader{
		Script:        name,
		NumIndex:      m.NumIndex,
		EmbeddingSize: m.EmbeddingSize,
		HUnits:        m.HUnits,
		Mapping:       table,
	}
	headerBytes, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("model: encode header: %w", err)
	}

	//nolint:gosec // G304: path is supplied by the caller, same as the teacher's writer
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("model: create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write([]byte(sabinMagic)); err != nil {
		return fmt.Errorf("model: write magic: %w", err)
	}
	if err := binary.Write(f, binary.LittleEndian, uint64(len(headerBytes))); err != nil {
		return fmt.Errorf("model: write header size: %w", err)
	}
	if _, err := f.Write(headerBytes); err != nil {
		return fmt.Errorf("model: write header: %w", err)
	}
	if err := binary.Write(f, binary.LittleEndian, m.Matrices); err != nil {
		return fmt.Errorf("model: write matrices: %w", err)
	}
	return nil
}
