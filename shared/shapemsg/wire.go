package shapemsg

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Wire format. Every message is a sequence of tagged protobuf fields; unknown
// fields are skipped on decode so the schema can grow.
//
//	SolidPrimitive: 1 = type (varint), 2 = dimensions (packed double)
//	Plane:          1 = coef (packed double, 4 entries)
//	Point:          1 = x, 2 = y, 3 = z (double)
//	MeshTriangle:   1 = vertex_indices (packed uint32, 3 entries)
//	Mesh:           1 = vertices (repeated Point), 2 = triangles (repeated MeshTriangle)
//	envelope:       1 = solid_primitive | 2 = plane | 3 = mesh (oneof, submessage)

var errTruncated = errors.New("shapemsg: truncated message")

func appendPackedDoubles(buf []byte, num protowire.Number, values []float64) []byte {
	if len(values) == 0 {
		return buf
	}
	packed := make([]byte, 0, 8*len(values))
	for _, v := range values {
		packed = protowire.AppendFixed64(packed, math.Float64bits(v))
	}
	buf = protowire.AppendTag(buf, num, protowire.BytesType)
	return protowire.AppendBytes(buf, packed)
}

func consumePackedDoubles(data []byte) ([]float64, error) {
	var out []float64
	for len(data) > 0 {
		v, n := protowire.ConsumeFixed64(data)
		if n < 0 {
			return nil, errTruncated
		}
		out = append(out, math.Float64frombits(v))
		data = data[n:]
	}
	return out, nil
}

// Marshal encodes the primitive in wire format.
func (m *SolidPrimitive) Marshal() ([]byte, error) {
	var buf []byte
	buf = protowire.AppendTag(buf, 1, protowire.VarintType)
	buf = protowire.AppendVarint(buf, uint64(m.Type))
	buf = appendPackedDoubles(buf, 2, m.Dimensions)
	return buf, nil
}

// Unmarshal decodes the primitive from wire format.
func (m *SolidPrimitive) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return errTruncated
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return errTruncated
			}
			m.Type = uint8(v)
			data = data[n:]
		case num == 2 && typ == protowire.BytesType:
			b, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return errTruncated
			}
			dims, err := consumePackedDoubles(b)
			if err != nil {
				return err
			}
			m.Dimensions = dims
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return errTruncated
			}
			data = data[n:]
		}
	}
	return nil
}

// Marshal encodes the plane in wire format.
func (m *Plane) Marshal() ([]byte, error) {
	return appendPackedDoubles(nil, 1, m.Coef[:]), nil
}

// Unmarshal decodes the plane from wire format.
func (m *Plane) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return errTruncated
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			b, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return errTruncated
			}
			coef, err := consumePackedDoubles(b)
			if err != nil {
				return err
			}
			if len(coef) != 4 {
				return fmt.Errorf("shapemsg: plane wants 4 coefficients, got %d", len(coef))
			}
			copy(m.Coef[:], coef)
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return errTruncated
			}
			data = data[n:]
		}
	}
	return nil
}

func appendPoint(buf []byte, num protowire.Number, p Point) []byte {
	var sub []byte
	sub = protowire.AppendTag(sub, 1, protowire.Fixed64Type)
	sub = protowire.AppendFixed64(sub, math.Float64bits(p.X))
	sub = protowire.AppendTag(sub, 2, protowire.Fixed64Type)
	sub = protowire.AppendFixed64(sub, math.Float64bits(p.Y))
	sub = protowire.AppendTag(sub, 3, protowire.Fixed64Type)
	sub = protowire.AppendFixed64(sub, math.Float64bits(p.Z))
	buf = protowire.AppendTag(buf, num, protowire.BytesType)
	return protowire.AppendBytes(buf, sub)
}

func consumePoint(data []byte) (Point, error) {
	var p Point
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return p, errTruncated
		}
		data = data[n:]
		if typ == protowire.Fixed64Type && num >= 1 && num <= 3 {
			v, n := protowire.ConsumeFixed64(data)
			if n < 0 {
				return p, errTruncated
			}
			f := math.Float64frombits(v)
			switch num {
			case 1:
				p.X = f
			case 2:
				p.Y = f
			case 3:
				p.Z = f
			}
			data = data[n:]
			continue
		}
		n = protowire.ConsumeFieldValue(num, typ, data)
		if n < 0 {
			return p, errTruncated
		}
		data = data[n:]
	}
	return p, nil
}

func appendTriangle(buf []byte, num protowire.Number, t MeshTriangle) []byte {
	var packed []byte
	for _, idx := range t.VertexIndices {
		packed = protowire.AppendVarint(packed, uint64(idx))
	}
	var sub []byte
	sub = protowire.AppendTag(sub, 1, protowire.BytesType)
	sub = protowire.AppendBytes(sub, packed)
	buf = protowire.AppendTag(buf, num, protowire.BytesType)
	return protowire.AppendBytes(buf, sub)
}

func consumeTriangle(data []byte) (MeshTriangle, error) {
	var t MeshTriangle
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return t, errTruncated
		}
		data = data[n:]
		if num == 1 && typ == protowire.BytesType {
			b, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return t, errTruncated
			}
			for i := 0; len(b) > 0 && i < 3; i++ {
				v, n := protowire.ConsumeVarint(b)
				if n < 0 {
					return t, errTruncated
				}
				t.VertexIndices[i] = uint32(v)
				b = b[n:]
			}
			data = data[n:]
			continue
		}
		n = protowire.ConsumeFieldValue(num, typ, data)
		if n < 0 {
			return t, errTruncated
		}
		data = data[n:]
	}
	return t, nil
}

// Marshal encodes the mesh message in wire format.
func (m *Mesh) Marshal() ([]byte, error) {
	var buf []byte
	for _, p := range m.Vertices {
		buf = appendPoint(buf, 1, p)
	}
	for _, t := range m.Triangles {
		buf = appendTriangle(buf, 2, t)
	}
	return buf, nil
}

// Unmarshal decodes the mesh message from wire format.
func (m *Mesh) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return errTruncated
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			b, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return errTruncated
			}
			p, err := consumePoint(b)
			if err != nil {
				return err
			}
			m.Vertices = append(m.Vertices, p)
			data = data[n:]
		case num == 2 && typ == protowire.BytesType:
			b, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return errTruncated
			}
			t, err := consumeTriangle(b)
			if err != nil {
				return err
			}
			m.Triangles = append(m.Triangles, t)
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return errTruncated
			}
			data = data[n:]
		}
	}
	return nil
}

// Marshal encodes any message kind wrapped in the oneof envelope.
func Marshal(msg ShapeMsg) ([]byte, error) {
	var num protowire.Number
	var body []byte
	var err error
	switch m := msg.(type) {
	case *SolidPrimitive:
		num = 1
		body, err = m.Marshal()
	case *Plane:
		num = 2
		body, err = m.Marshal()
	case *Mesh:
		num = 3
		body, err = m.Marshal()
	default:
		return nil, fmt.Errorf("shapemsg: cannot marshal message of type %T", msg)
	}
	if err != nil {
		return nil, err
	}
	var buf []byte
	buf = protowire.AppendTag(buf, num, protowire.BytesType)
	return protowire.AppendBytes(buf, body), nil
}

// Unmarshal decodes an envelope produced by Marshal and returns the concrete
// message kind.
func Unmarshal(data []byte) (ShapeMsg, error) {
	num, typ, n := protowire.ConsumeTag(data)
	if n < 0 || typ != protowire.BytesType {
		return nil, errTruncated
	}
	body, bn := protowire.ConsumeBytes(data[n:])
	if bn < 0 {
		return nil, errTruncated
	}
	switch num {
	case 1:
		m := new(SolidPrimitive)
		return m, m.Unmarshal(body)
	case 2:
		m := new(Plane)
		return m, m.Unmarshal(body)
	case 3:
		m := new(Mesh)
		return m, m.Unmarshal(body)
	}
	return nil, fmt.Errorf("shapemsg: unknown envelope field %d", num)
}
