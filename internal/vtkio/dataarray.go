package vtkio

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"strings"
)

// writeFloatArray appends one Float64 DataArray element to b. In ascii mode
// values are written as a whitespace-separated text body (matching the
// format VTK's own ascii writers emit); in binary mode the body is a
// base64-encoded block prefixed by its byte-length header, per VTK's
// inline-binary DataArray convention.
func writeFloatArray(b *strings.Builder, name string, data []float64, numComponents int, ascii bool) {
	fmt.Fprintf(b, `<DataArray type="Float64" Name=%q NumberOfComponents="%d" format="%s">`+"\n",
		name, numComponents, formatAttr(ascii))
	if ascii {
		for i, v := range data {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(b, "%g", v)
		}
		b.WriteByte('\n')
	} else {
		b.WriteString(base64Float64Block(data))
		b.WriteByte('\n')
	}
	b.WriteString("</DataArray>\n")
}

// writeIntArray appends one Int64 (or UInt8 when asUInt8 is true) DataArray.
func writeIntArray(b *strings.Builder, name string, data []int, asUInt8, ascii bool) {
	typ := "Int64"
	if asUInt8 {
		typ = "UInt8"
	}
	if name == "" {
		fmt.Fprintf(b, `<DataArray type=%q format="%s">`+"\n", typ, formatAttr(ascii))
	} else {
		fmt.Fprintf(b, `<DataArray type=%q Name=%q format="%s">`+"\n", typ, name, formatAttr(ascii))
	}
	if ascii {
		for i, v := range data {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(b, "%d", v)
		}
		b.WriteByte('\n')
	} else {
		b.WriteString(base64IntBlock(data, asUInt8))
		b.WriteByte('\n')
	}
	b.WriteString("</DataArray>\n")
}

func formatAttr(ascii bool) string {
	if ascii {
		return "ascii"
	}
	return "binary"
}

func base64Float64Block(data []float64) string {
	payload := new(bytes.Buffer)
	binary.Write(payload, binary.LittleEndian, data)
	return base64InlineBlock(payload.Bytes())
}

func base64IntBlock(data []int, asUInt8 bool) string {
	payload := new(bytes.Buffer)
	if asUInt8 {
		for _, v := range data {
			payload.WriteByte(byte(v))
		}
	} else {
		vals := make([]int64, len(data))
		for i, v := range data {
			vals[i] = int64(v)
		}
		binary.Write(payload, binary.LittleEndian, vals)
	}
	return base64InlineBlock(payload.Bytes())
}

// base64InlineBlock builds a VTK inline-binary block: an 8-byte
// little-endian header giving the payload length, followed by the payload,
// all base64-encoded together.
func base64InlineBlock(payload []byte) string {
	header := new(bytes.Buffer)
	binary.Write(header, binary.LittleEndian, uint64(len(payload)))
	full := append(header.Bytes(), payload...)
	return base64.StdEncoding.EncodeToString(full)
}
