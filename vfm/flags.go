package vfm

// NumFlagFields is the number of fields packed into one classification word.
const NumFlagFields = 7

// FlagField identifies one of the seven fields packed into a 16-bit
// Feature_Classification_Flags word.
type FlagField int

const (
	FeatureTypeField FlagField = iota
	FeatureTypeQAField
	IceWaterPhaseField
	IceWaterPhaseQAField
	FeatureSubtypeField
	SubtypeQAField
	HorizontalAveragingField
)

// Bit position and width of each field within the packed word, per the VFM
// data summary.
var (
	flagShifts = [NumFlagFields]uint{0, 3, 5, 7, 9, 12, 13}
	flagWidths = [NumFlagFields]uint{3, 2, 2, 2, 3, 1, 3}
)

// FieldValues holds the seven decoded fields of one altitude bin, indexed by
// FlagField.
type FieldValues [NumFlagFields]uint8

// Field returns the decoded value of f.
func (v FieldValues) Field(f FlagField) uint8 {
	return v[f]
}

// FeatureType returns the decoded feature type field.
func (v FieldValues) FeatureType() FeatureType {
	return FeatureType(v[FeatureTypeField])
}

// IceWaterPhase returns the decoded ice/water phase field.
func (v FieldValues) IceWaterPhase() IceWaterPhase {
	return IceWaterPhase(v[IceWaterPhaseField])
}

// HorizontalAveraging returns the decoded horizontal averaging field.
func (v FieldValues) HorizontalAveraging() HorizontalAveraging {
	return HorizontalAveraging(v[HorizontalAveragingField])
}

// DecodeWord unpacks a 16-bit classification word into its seven fields.
// Each field is (w >> shift) & (1<<width - 1).
func DecodeWord(w uint16) FieldValues {
	var out FieldValues
	for i := range out {
		mask := uint16(1)<<flagWidths[i] - 1
		out[i] = uint8(w >> flagShifts[i] & mask)
	}
	return out
}

// The raw Feature_Classification_Flags dataset is 5515 columns wide per
// record: three vertical-resolution bands stored side by side, each holding
// 15, 5, or 1 along-track profiles. Only the first profile of each band is
// kept, giving one representative 5-km profile per record. Within the raw
// layout bins run high altitude to low altitude.
const (
	flagColumns = 5515

	band3Lo, band3Hi = 0, 55      // 0.18 km bins, 20.2 to 30.1 km
	band2Lo, band2Hi = 165, 365   // 0.06 km bins, 8.2 to 20.2 km
	band1Lo, band1Hi = 1165, 1455 // 0.03 km bins, -0.5 to 8.2 km
)

// decodeProfile assembles the representative 545-bin profile from one raw
// record and decodes each word, reversing bin order so the result ascends in
// altitude like AltitudeGrid.
func decodeProfile(row []uint16) []FieldValues {
	packed := make([]uint16, 0, ProfileBins)
	packed = append(packed, row[band3Lo:band3Hi]...)
	packed = append(packed, row[band2Lo:band2Hi]...)
	packed = append(packed, row[band1Lo:band1Hi]...)

	out := make([]FieldValues, ProfileBins)
	for i, w := range packed {
		out[ProfileBins-1-i] = DecodeWord(w)
	}
	return out
}
