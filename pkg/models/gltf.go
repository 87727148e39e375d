package models

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/wireclip/pkg/math3d"
)

// GLTFLoader loads GLTF/GLB files into wireframe meshes.
type GLTFLoader struct {
	// Options
	IncludeLines bool // Keep LINES, LINE_STRIP and LINE_LOOP primitives
}

// NewGLTFLoader creates a new GLTF loader with default options.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		IncludeLines: true,
	}
}

// LoadGLB loads a binary GLTF (.glb) file.
func LoadGLB(path string) (*Mesh, error) {
	loader := NewGLTFLoader()
	return loader.Load(path)
}

// Load loads a GLTF or GLB file and returns a wireframe Mesh.
func (l *GLTFLoader) Load(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	mesh, err := l.FromDocument(filepath.Base(path), doc)
	if err != nil {
		return nil, err
	}
	return mesh, nil
}

// FromDocument converts every mesh in doc into one wireframe.
func (l *GLTFLoader) FromDocument(name string, doc *gltf.Document) (*Mesh, error) {
	mesh := NewMesh(name)

	for _, m := range doc.Meshes {
		if err := l.processMesh(doc, m, mesh); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}

	mesh.CalculateBounds()

	return mesh, nil
}

// processMesh extracts vertices and edges from a GLTF mesh.
func (l *GLTFLoader) processMesh(doc *gltf.Document, m *gltf.Mesh, mesh *Mesh) error {
	for _, prim := range m.Primitives {
		isLine := prim.Mode == gltf.PrimitiveLines ||
			prim.Mode == gltf.PrimitiveLineStrip ||
			prim.Mode == gltf.PrimitiveLineLoop
		if prim.Mode != gltf.PrimitiveTriangles && !(isLine && l.IncludeLines) {
			// Skip points, strips and fans
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}

		positions, err := readVec3Accessor(doc, posIdx)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		// Base vertex index for this primitive
		baseVertex := len(mesh.Vertices)
		for _, p := range positions {
			mesh.Vertices = append(mesh.Vertices, math3d.Point(p))
		}

		var indices []int
		if prim.Indices != nil {
			indices, err = readIndices(doc, *prim.Indices)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
			for _, i := range indices {
				if i < 0 || i >= len(positions) {
					return fmt.Errorf("index %d out of range for %d positions", i, len(positions))
				}
			}
		} else {
			// No indices, vertices are used in order
			indices = sequence(len(positions))
		}

		switch prim.Mode {
		case gltf.PrimitiveLines:
			mesh.Edges = append(mesh.Edges, lineEdges(indices, baseVertex)...)
		case gltf.PrimitiveLineStrip:
			mesh.Edges = append(mesh.Edges, stripEdge(indices, baseVertex, false)...)
		case gltf.PrimitiveLineLoop:
			mesh.Edges = append(mesh.Edges, stripEdge(indices, baseVertex, true)...)
		default:
			mesh.Edges = append(mesh.Edges, triangleEdges(indices, baseVertex)...)
		}
	}

	return nil
}

// readVec3Accessor reads Vec3 data from a GLTF accessor.
func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]math3d.Vec3, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}

	data, err := readAccessorData(doc, accessor)
	if err != nil {
		return nil, err
	}

	floats, ok := data.([][3]float32)
	if !ok {
		return nil, fmt.Errorf("unexpected data type for VEC3")
	}

	result := make([]math3d.Vec3, len(floats))
	for i, f := range floats {
		result[i] = math3d.V3(float64(f[0]), float64(f[1]), float64(f[2]))
	}

	return result, nil
}

// readIndices reads index data from a GLTF accessor.
func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]

	data, err := readAccessorData(doc, accessor)
	if err != nil {
		return nil, err
	}

	switch v := data.(type) {
	case []uint8:
		return widen(v), nil
	case []uint16:
		return widen(v), nil
	case []uint32:
		return widen(v), nil
	default:
		return nil, fmt.Errorf("unexpected index type: %T", data)
	}
}

func widen[T uint8 | uint16 | uint32](v []T) []int {
	result := make([]int, len(v))
	for i, x := range v {
		result[i] = int(x)
	}
	return result
}

// readAccessorData reads raw data from a GLTF accessor.
func readAccessorData(doc *gltf.Document, accessor *gltf.Accessor) (any, error) {
	if accessor.BufferView == nil {
		return nil, fmt.Errorf("accessor has no buffer view")
	}

	if *accessor.BufferView < 0 || *accessor.BufferView >= len(doc.BufferViews) {
		return nil, fmt.Errorf("buffer view %d out of range", *accessor.BufferView)
	}
	bufferView := doc.BufferViews[*accessor.BufferView]
	if bufferView.Buffer < 0 || bufferView.Buffer >= len(doc.Buffers) {
		return nil, fmt.Errorf("buffer %d out of range", bufferView.Buffer)
	}
	buffer := doc.Buffers[bufferView.Buffer]

	// gltf.Open resolves GLB chunks, data URIs and external files into Data
	bufData := buffer.Data
	if bufData == nil {
		return nil, fmt.Errorf("buffer has no data")
	}

	start := bufferView.ByteOffset + accessor.ByteOffset
	stride := bufferView.ByteStride
	count := accessor.Count
	if start < 0 || stride < 0 || count < 0 {
		return nil, fmt.Errorf("negative accessor layout: offset %d, stride %d, count %d", start, stride, count)
	}

	switch accessor.Type {
	case gltf.AccessorVec3:
		if accessor.ComponentType != gltf.ComponentFloat {
			return nil, fmt.Errorf("unsupported VEC3 component type: %v", accessor.ComponentType)
		}
		if stride == 0 {
			stride = 12 // 3 floats * 4 bytes
		}
		if count > 0 && start+(count-1)*stride+12 > len(bufData) {
			return nil, fmt.Errorf("accessor exceeds buffer length %d", len(bufData))
		}
		result := make([][3]float32, count)
		for i := range count {
			offset := start + i*stride
			for j := range 3 {
				result[i][j] = readFloat32(bufData[offset+j*4:])
			}
		}
		return result, nil

	case gltf.AccessorScalar:
		size := 0
		switch accessor.ComponentType {
		case gltf.ComponentUbyte:
			size = 1
		case gltf.ComponentUshort:
			size = 2
		case gltf.ComponentUint:
			size = 4
		default:
			return nil, fmt.Errorf("unsupported index component type: %v", accessor.ComponentType)
		}
		if stride == 0 {
			stride = size
		}
		if count > 0 && start+(count-1)*stride+size > len(bufData) {
			return nil, fmt.Errorf("accessor exceeds buffer length %d", len(bufData))
		}

		switch accessor.ComponentType {
		case gltf.ComponentUbyte:
			result := make([]uint8, count)
			for i := range count {
				result[i] = bufData[start+i*stride]
			}
			return result, nil
		case gltf.ComponentUshort:
			result := make([]uint16, count)
			for i := range count {
				offset := start + i*stride
				result[i] = uint16(bufData[offset]) | uint16(bufData[offset+1])<<8
			}
			return result, nil
		default:
			result := make([]uint32, count)
			for i := range count {
				offset := start + i*stride
				result[i] = uint32(bufData[offset]) |
					uint32(bufData[offset+1])<<8 |
					uint32(bufData[offset+2])<<16 |
					uint32(bufData[offset+3])<<24
			}
			return result, nil
		}
	}

	return nil, fmt.Errorf("unsupported accessor type: %v / %v", accessor.Type, accessor.ComponentType)
}

// readFloat32 reads a little-endian float32.
func readFloat32(b []byte) float32 {
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return math.Float32frombits(bits)
}
