// Package checksum computes the identity checksums the provider matches
// games by: CRC32, MD5 and SHA1 plus the exact byte size and file name.
package checksum

import (
	"archive/zip"
	"crypto/md5"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"hash"
	"hash/crc32"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Record holds the checksums identifying one ROM file
type Record struct {
	CRC  string `json:"crc"`
	MD5  string `json:"md5"`
	SHA1 string `json:"sha1"`
	Size int64  `json:"size"`
	Name string `json:"name"`
}

// ComputeFile calculates the checksum record for a ROM file. If the file
// is a ZIP archive containing exactly one member, the checksums are
// computed over the decompressed member and the member's name is used;
// a multi-member or broken archive falls back to the whole file.
func ComputeFile(path string) (*Record, error) {
	base := filepath.Base(path)

	if strings.EqualFold(filepath.Ext(base), ".zip") {
		if record, ok := computeZipMember(path); ok {
			return record, nil
		}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	record, err := computeStream(file)
	if err != nil {
		return nil, err
	}
	record.Name = base
	return record, nil
}

// computeZipMember computes checksums over the single member of a ZIP
// archive. Returns false when the archive is invalid or holds more than
// one file.
func computeZipMember(path string) (*Record, bool) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, false
	}
	defer reader.Close()

	if len(reader.File) != 1 {
		return nil, false
	}

	member := reader.File[0]
	rc, err := member.Open()
	if err != nil {
		return nil, false
	}
	defer rc.Close()

	record, err := computeStream(rc)
	if err != nil {
		return nil, false
	}
	record.Name = member.Name
	return record, true
}

// computeStream calculates all three checksums and the size in one pass
func computeStream(r io.Reader) (*Record, error) {
	crcHash := crc32.NewIEEE()
	md5Hash := md5.New()
	sha1Hash := sha1.New()

	size, err := io.Copy(io.MultiWriter(crcHash, md5Hash, sha1Hash), r)
	if err != nil {
		return nil, fmt.Errorf("failed to read data: %w", err)
	}

	return &Record{
		CRC:  strings.ToUpper(hex.EncodeToString(crcHash.Sum(nil))),
		MD5:  hexDigest(md5Hash),
		SHA1: hexDigest(sha1Hash),
		Size: size,
	}, nil
}

func hexDigest(h hash.Hash) string {
	return hex.EncodeToString(h.Sum(nil))
}
