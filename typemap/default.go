package typemap

import "github.com/fwojciec/bpyschema"

// Canonical tags of the Blender node settings vocabulary.
const (
	BakeItems           bpyschema.TypeTag = "BAKE_ITEMS"
	Bool                bpyschema.TypeTag = "BOOL"
	Color               bpyschema.TypeTag = "COLOR"
	ColorRamp           bpyschema.TypeTag = "COLOR_RAMP"
	CryptomatteEntries  bpyschema.TypeTag = "CRYPTOMATTE_ENTRIES"
	CurveMapping        bpyschema.TypeTag = "CURVE_MAPPING"
	Enum                bpyschema.TypeTag = "ENUM"
	EnumDefinition      bpyschema.TypeTag = "ENUM_DEFINITION"
	EnumSet             bpyschema.TypeTag = "ENUM_SET"
	FileSlots           bpyschema.TypeTag = "FILE_SLOTS"
	Float               bpyschema.TypeTag = "FLOAT"
	Font                bpyschema.TypeTag = "FONT"
	Image               bpyschema.TypeTag = "IMAGE"
	ImageFormatSettings bpyschema.TypeTag = "IMAGE_FORMAT_SETTINGS"
	ImageUser           bpyschema.TypeTag = "IMAGE_USER"
	IndexSwitchItems    bpyschema.TypeTag = "INDEX_SWITCH_ITEMS"
	Int                 bpyschema.TypeTag = "INT"
	LayerSlots          bpyschema.TypeTag = "LAYER_SLOTS"
	Mask                bpyschema.TypeTag = "MASK"
	Material            bpyschema.TypeTag = "MATERIAL"
	MovieClip           bpyschema.TypeTag = "MOVIE_CLIP"
	NodeTree            bpyschema.TypeTag = "NODE_TREE"
	Object              bpyschema.TypeTag = "OBJECT"
	ParticleSystem      bpyschema.TypeTag = "PARTICLE_SYSTEM"
	RepeatOutputItems   bpyschema.TypeTag = "REPEAT_OUTPUT_ITEMS"
	Scene               bpyschema.TypeTag = "SCENE"
	SimOutputItems      bpyschema.TypeTag = "SIM_OUTPUT_ITEMS"
	String              bpyschema.TypeTag = "STRING"
	Text                bpyschema.TypeTag = "TEXT"
	Texture             bpyschema.TypeTag = "TEXTURE"
	Vec1                bpyschema.TypeTag = "VEC1"
	Vec2                bpyschema.TypeTag = "VEC2"
	Vec3                bpyschema.TypeTag = "VEC3"
	Vec4                bpyschema.TypeTag = "VEC4"
)

// DefaultTags maps documentation type prefixes to canonical tags.
func DefaultTags() map[string]bpyschema.TypeTag {
	return map[string]bpyschema.TypeTag{
		"bpy_prop_collection of CryptomatteEntry": CryptomatteEntries,
		"boolean":                            Bool,
		"ColorMapping":                       Excluded, // always read-only
		"ColorRamp":                          ColorRamp,
		"CompositorNodeOutputFileFileSlots":  FileSlots,
		"CompositorNodeOutputFileLayerSlots": LayerSlots,
		"CurveMapping":                       CurveMapping,
		"enum":                               Enum,
		"enum set":                           EnumSet,
		"float":                              Float,
		"float array of 1":                   Vec1,
		"float array of 2":                   Vec2,
		"float array of 3":                   Vec3,
		"float array of 4":                   Vec4,
		"Image":                              Image,
		"ImageFormatSettings":                ImageFormatSettings,
		"ImageUser":                          ImageUser,
		"int":                                Int,
		"Mask":                               Mask,
		"Material":                           Material,
		"mathutils.Color":                    Color,
		"mathutils.Vector of 3":              Vec3,
		"MovieClip":                          MovieClip,
		"Node":                               Excluded, // zone pairing is handled outside the attribute table
		"NodeEnumDefinition":                 EnumDefinition,
		"NodeGeometryBakeItems":              BakeItems,
		"NodeGeometryRepeatOutputItems":      RepeatOutputItems,
		"NodeGeometrySimulationOutputItems":  SimOutputItems,
		"NodeIndexSwitchItems":               IndexSwitchItems,
		"NodeTree":                           NodeTree,
		"Object":                             Object,
		"ParticleSystem":                     ParticleSystem,
		"PropertyGroup":                      Excluded, // always read-only
		"RepeatItem":                         Excluded, // set with an index
		"Scene":                              Scene,
		"SimulationStateItem":                Excluded, // set with an index
		"string":                             String,
		"TexMapping":                         Excluded, // always read-only
		"Text":                               Text,
		"Texture":                            Texture,
		"VectorFont":                         Font,
	}
}

// DefaultReadOnly lists collection-valued tags that are documented as
// read-only but are still configured through their own API.
func DefaultReadOnly() []bpyschema.TypeTag {
	return []bpyschema.TypeTag{
		BakeItems,
		ColorRamp,
		CryptomatteEntries,
		CurveMapping,
		EnumDefinition,
		FileSlots,
		ImageFormatSettings,
		ImageUser,
		LayerSlots,
		RepeatOutputItems,
		SimOutputItems,
		IndexSwitchItems,
	}
}

// Default returns a Resolver for the Blender node settings vocabulary.
func Default() *Resolver {
	return New(DefaultTags(), DefaultReadOnly())
}
