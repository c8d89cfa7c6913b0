package vfm

import "fmt"

// FeatureType is the decoded value of the feature type field.
type FeatureType uint8

const (
	FeatureInvalid FeatureType = iota
	FeatureClearAir
	FeatureCloud
	FeatureTroposphericAerosol
	FeatureStratosphericAerosol
	FeatureSurface
	FeatureSubsurface
	FeatureNoSignal
)

var featureTypeNames = [...]string{
	"invalid",
	"clear air",
	"cloud",
	"tropospheric aerosol",
	"stratospheric aerosol",
	"surface",
	"subsurface",
	"no signal",
}

func (t FeatureType) String() string {
	if int(t) < len(featureTypeNames) {
		return featureTypeNames[t]
	}
	return fmt.Sprintf("feature type %d", uint8(t))
}

// QA is the decoded value of the feature type QA field.
type QA uint8

const (
	QANone QA = iota
	QALow
	QAMedium
	QAHigh
)

var qaNames = [...]string{"none", "low", "medium", "high"}

func (q QA) String() string {
	if int(q) < len(qaNames) {
		return qaNames[q]
	}
	return fmt.Sprintf("QA %d", uint8(q))
}

// IceWaterPhase is the decoded value of the ice/water phase field.
type IceWaterPhase uint8

const (
	PhaseUnknown IceWaterPhase = iota
	PhaseIce
	PhaseWater
	PhaseOrientedIce
)

var phaseNames = [...]string{"unknown", "ice", "water", "oriented ice"}

func (p IceWaterPhase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("phase %d", uint8(p))
}

// HorizontalAveraging is the decoded value of the horizontal averaging
// field: the along-track distance averaged to detect the feature.
type HorizontalAveraging uint8

const (
	AveragingNone HorizontalAveraging = iota
	AveragingThirdKm
	Averaging1Km
	Averaging5Km
	Averaging20Km
	Averaging80Km
)

var averagingNames = [...]string{"n/a", "1/3 km", "1 km", "5 km", "20 km", "80 km"}

func (a HorizontalAveraging) String() string {
	if int(a) < len(averagingNames) {
		return averagingNames[a]
	}
	return fmt.Sprintf("averaging %d", uint8(a))
}
