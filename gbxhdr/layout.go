package gbxhdr

const (
	// OffsetCompression is the absolute offset of the body compression byte.
	OffsetCompression = 7

	// OffsetPatchField is the absolute offset of the field that is zeroed.
	OffsetPatchField = 13
	PatchFieldLength = 4

	// CompressionSentinel ('U') marks a body that needs the patch.
	CompressionSentinel = 85

	// MinPatchLength covers the indicator through the end of the patch field.
	MinPatchLength = OffsetPatchField + PatchFieldLength
)

type FieldNameType string

const (
	FieldSignature       FieldNameType = "SIGNATURE"
	FieldVersion         FieldNameType = "VERSION"
	FieldFormat          FieldNameType = "FORMAT"
	FieldRefCompression  FieldNameType = "REFCOMPRESSION"
	FieldBodyCompression FieldNameType = "BODYCOMPRESSION"
	FieldUnknown         FieldNameType = "UNKNOWN"
	FieldClassID         FieldNameType = "CLASSID"
	FieldPatch           FieldNameType = "PATCH"
)

type Field struct {
	Name     FieldNameType
	Offset   int
	Length   int
	Writable bool
}

func (f Field) End() int {
	return f.Offset + f.Length
}

// Contains reports whether the absolute offset falls inside the field.
func (f Field) Contains(offset int) bool {
	return offset >= f.Offset && offset < f.End()
}

var layout = []Field{
	{Name: FieldSignature, Offset: 0, Length: 3},
	{Name: FieldVersion, Offset: 3, Length: 2},
	{Name: FieldFormat, Offset: 5, Length: 1},
	{Name: FieldRefCompression, Offset: 6, Length: 1},
	{Name: FieldBodyCompression, Offset: OffsetCompression, Length: 1},
	{Name: FieldUnknown, Offset: 8, Length: 1},
	{Name: FieldClassID, Offset: 9, Length: 4},
	{Name: FieldPatch, Offset: OffsetPatchField, Length: PatchFieldLength, Writable: true},
}

// Layout returns the fixed header prefix. Only FieldBodyCompression and
// FieldPatch are used by the patcher; the rest is informational.
func Layout() []Field {
	out := make([]Field, len(layout))
	copy(out, layout)
	return out
}

func LayoutGet(name FieldNameType) (Field, bool) {
	for _, m := range layout {
		if m.Name == name {
			return m, true
		}
	}
	return Field{}, false
}
