// Package export writes track meshes to interchange formats.
package export

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/marbleworks/halfpipe/pkg/math"
	"github.com/marbleworks/halfpipe/pkg/track"
)

// WriteOBJ writes the mesh to w in Wavefront OBJ format. Indices convert
// from zero-based to OBJ's one-based numbering. Texture coordinates and
// normals are emitted only when the mesh carries one per position, and the
// face references follow suit.
func WriteOBJ(w io.Writer, m *track.Mesh) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("o track\n")

	hasTexco := len(m.Positions) > 0 && len(m.TexCoords) == len(m.Positions)
	hasNormals := len(m.Positions) > 0 && len(m.Normals) == len(m.Positions)

	buf := make([]byte, 0, 128)
	for _, p := range m.Positions {
		buf = appendVec3(buf[:0], "v ", p)
		bw.Write(buf)
	}
	if hasTexco {
		for _, t := range m.TexCoords {
			buf = append(buf[:0], "vt "...)
			buf = appendFloat(buf, t.X)
			buf = append(buf, ' ')
			buf = appendFloat(buf, t.Y)
			buf = append(buf, '\n')
			bw.Write(buf)
		}
	}
	if hasNormals {
		for _, n := range m.Normals {
			buf = appendVec3(buf[:0], "vn ", n)
			bw.Write(buf)
		}
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		buf = append(buf[:0], 'f')
		for k := 0; k < 3; k++ {
			buf = append(buf, ' ')
			buf = appendRef(buf, m.Indices[i+k]+1, hasTexco, hasNormals)
		}
		buf = append(buf, '\n')
		bw.Write(buf)
	}

	// bufio keeps the first write error; Flush surfaces it.
	return bw.Flush()
}

// WriteOBJFile writes the mesh to path, creating parent directories.
func WriteOBJFile(path string, m *track.Mesh) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteOBJ(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func appendFloat(b []byte, f float32) []byte {
	return strconv.AppendFloat(b, float64(f), 'g', -1, 32)
}

func appendVec3(b []byte, prefix string, v math.Vec3) []byte {
	b = append(b, prefix...)
	b = appendFloat(b, v.X)
	b = append(b, ' ')
	b = appendFloat(b, v.Y)
	b = append(b, ' ')
	b = appendFloat(b, v.Z)
	return append(b, '\n')
}

// appendRef appends one face vertex reference: "p", "p/t", "p//n" or
// "p/t/n" depending on which attributes the mesh carries. Position,
// texture and normal always share an index here.
func appendRef(b []byte, idx uint32, withTexco, withNormal bool) []byte {
	b = strconv.AppendUint(b, uint64(idx), 10)
	if withTexco {
		b = append(b, '/')
		b = strconv.AppendUint(b, uint64(idx), 10)
	}
	if withNormal {
		if !withTexco {
			b = append(b, '/')
		}
		b = append(b, '/')
		b = strconv.AppendUint(b, uint64(idx), 10)
	}
	return b
}
