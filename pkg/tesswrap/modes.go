package tesswrap

// PageSegMode selects how Tesseract partitions an image into text regions.
// The values mirror the engine's PSM ordinals.
type PageSegMode int

const (
	PSMOsdOnly PageSegMode = iota
	PSMAutoOsd
	PSMAutoOnly
	PSMAuto
	PSMSingleColumn
	PSMSingleBlockVertText
	PSMSingleBlock
	PSMSingleLine
	PSMSingleWord
	PSMCircleWord
	PSMSingleChar
	PSMSparseText
	PSMSparseTextOsd
	PSMRawLine
)

func (m PageSegMode) Valid() bool {
	return m >= PSMOsdOnly && m <= PSMRawLine
}

// EngineMode selects the recognition algorithm. The values mirror the
// engine's OEM ordinals.
type EngineMode int

const (
	OEMTesseractOnly EngineMode = iota
	OEMLstmOnly
	OEMTesseractLstmCombined
	OEMDefault
)

func (m EngineMode) Valid() bool {
	return m >= OEMTesseractOnly && m <= OEMDefault
}
