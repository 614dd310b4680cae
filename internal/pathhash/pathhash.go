// Package pathhash maps an RDF term's N3 rendering to its sharded
// on-disk quad file path: root/h[0:2]/h.nqo, where h is the lowercase
// hex SHA-1 of the term's N3 form.
package pathhash

import (
	"crypto/sha1"
	"encoding/hex"
	"path/filepath"
)

// NQOutExt is the extension for subject-indexed quad shard files.
const NQOutExt = ".nqo"

// Hash returns the lowercase hex SHA-1 digest of n3.
func Hash(n3 string) string {
	sum := sha1.Sum([]byte(n3))
	return hex.EncodeToString(sum[:])
}

// SubjectPath returns the shard file path for a subject term's N3
// rendering under root.
func SubjectPath(root, subjectN3 string) string {
	h := Hash(subjectN3)
	return filepath.Join(root, h[:2], h+NQOutExt)
}
