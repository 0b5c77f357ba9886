package unit

import (
	"encoding/binary"

	"github.com/minio/highwayhash"
)

var fingerprintKey = []byte("lintrule/unit-fingerprint-key-32")

func sum64(data []byte) (uint64, error) {
	hasher, err := highwayhash.New64(fingerprintKey)
	if err != nil {
		return 0, err
	}
	if _, err = hasher.Write(data); err != nil {
		return 0, err
	}
	return hasher.Sum64(), nil
}

// fingerprint hashes the unit identity together with the shape of its root node,
// the source content itself is not hashed.
func fingerprint(u *Unit) uint64 {
	buf := make([]byte, 0, 64)
	buf = binary.LittleEndian.AppendUint64(buf, u.ID)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(u.Source)))
	if root := u.Root(); root != nil {
		buf = append(buf, root.Type()...)
		buf = binary.LittleEndian.AppendUint32(buf, root.StartByte())
		buf = binary.LittleEndian.AppendUint32(buf, root.EndByte())
		buf = binary.LittleEndian.AppendUint32(buf, root.ChildCount())
	}
	value, err := sum64(buf)
	if err != nil {
		return u.ID
	}
	return value
}
