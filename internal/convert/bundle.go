package convert

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pierrec/lz4/v4"

	"cinematic-landing/internal/utils"
)

// BundleMagic prefixes the version string of every page bundle.
const BundleMagic = "PKGV"

type FileEntry struct {
	Name   string
	Offset uint32
	Size   uint32
}

// Bundle is a PKGV archive held in memory: a length-prefixed version string,
// an entry count, the entry table, then the concatenated file data. Entries
// whose name ends in .lz4 are LZ4 frames and are decompressed on Open.
type Bundle struct {
	Version string
	entries map[string]FileEntry
	data    []byte
}

func readPkgString(r io.Reader) (string, error) {
	var size uint32
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return "", err
	}
	if size > 1<<16 {
		return "", fmt.Errorf("string length %d too large", size)
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func OpenBundle(path string) (*Bundle, error) {
	utils.Debug("Bundle: opening %s", path)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bundle: %w", err)
	}
	b, err := ParseBundle(raw)
	if err != nil {
		return nil, fmt.Errorf("bundle %s: %w", path, err)
	}
	return b, nil
}

func ParseBundle(raw []byte) (*Bundle, error) {
	r := bytes.NewReader(raw)

	version, err := readPkgString(r)
	if err != nil {
		return nil, fmt.Errorf("version: %w", err)
	}
	if !strings.HasPrefix(version, BundleMagic) {
		return nil, fmt.Errorf("invalid magic: %q", version)
	}

	var fileCount uint32
	if err := binary.Read(r, binary.LittleEndian, &fileCount); err != nil {
		return nil, fmt.Errorf("file count: %w", err)
	}
	utils.Debug("Bundle: version %s, %d files", version, fileCount)

	// an entry is at least a name length, an offset and a size
	if fileCount > uint32(r.Len()/12) {
		return nil, fmt.Errorf("file count %d exceeds data", fileCount)
	}

	entries := make(map[string]FileEntry, fileCount)
	for i := uint32(0); i < fileCount; i++ {
		name, err := readPkgString(r)
		if err != nil {
			return nil, fmt.Errorf("entry %d name: %w", i, err)
		}
		var e FileEntry
		e.Name = filepath.ToSlash(name)
		if err := binary.Read(r, binary.LittleEndian, &e.Offset); err != nil {
			return nil, fmt.Errorf("entry %s offset: %w", name, err)
		}
		if err := binary.Read(r, binary.LittleEndian, &e.Size); err != nil {
			return nil, fmt.Errorf("entry %s size: %w", name, err)
		}
		entries[e.Name] = e
	}

	dataStart := len(raw) - r.Len()
	data := raw[dataStart:]
	for _, e := range entries {
		if uint64(e.Offset)+uint64(e.Size) > uint64(len(data)) {
			return nil, fmt.Errorf("entry %s runs past end of data", e.Name)
		}
	}

	return &Bundle{Version: version, entries: entries, data: data}, nil
}

// Names lists the entries in lexical order.
func (b *Bundle) Names() []string {
	names := make([]string, 0, len(b.entries))
	for n := range b.entries {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Lookup finds name as stored or with an .lz4 suffix.
func (b *Bundle) Lookup(name string) (FileEntry, bool) {
	name = filepath.ToSlash(name)
	if e, ok := b.entries[name]; ok {
		return e, true
	}
	e, ok := b.entries[name+".lz4"]
	return e, ok
}

// Open returns the decompressed contents of name.
func (b *Bundle) Open(name string) ([]byte, error) {
	e, ok := b.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("bundle entry %s: %w", name, os.ErrNotExist)
	}
	raw := b.data[e.Offset : e.Offset+e.Size]
	if !strings.HasSuffix(e.Name, ".lz4") {
		return raw, nil
	}
	out, err := DecompressLZ4(raw)
	if err != nil {
		return nil, fmt.Errorf("bundle entry %s: %w", e.Name, err)
	}
	return out, nil
}

// Extract writes every entry, decompressed, below outputDir.
func (b *Bundle) Extract(outputDir string) error {
	names := b.Names()
	for i, name := range names {
		if i%10 == 0 || i == len(names)-1 {
			utils.Debug("Bundle: extracting file %d/%d: %s", i+1, len(names), name)
		}
		data, err := b.Open(name)
		if err != nil {
			return err
		}
		destPath := filepath.Join(outputDir, filepath.FromSlash(strings.TrimSuffix(name, ".lz4")))
		if !strings.HasPrefix(destPath, filepath.Clean(outputDir)+string(os.PathSeparator)) {
			return fmt.Errorf("bundle entry %s escapes %s", name, outputDir)
		}
		if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(destPath, data, 0644); err != nil {
			return err
		}
	}
	utils.Info("Bundle: extracted %d files to %s", len(names), outputDir)
	return nil
}

// DecompressLZ4 reads a complete LZ4 frame.
func DecompressLZ4(data []byte) ([]byte, error) {
	out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("lz4: %w", err)
	}
	return out, nil
}
