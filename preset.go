package textwarp

// Warp preset identifiers, matching the DrawingML prstTxWarp vocabulary.
// The classifier emits these directly so that the XML emission layer needs
// no second mapping hop.
const (
	PresetPlain = "textPlain"

	PresetArchUp       = "textArchUp"
	PresetArchDown     = "textArchDown"
	PresetArchUpPour   = "textArchUpPour"
	PresetArchDownPour = "textArchDownPour"
	PresetCurveUp      = "textCurveUp"
	PresetCurveDown    = "textCurveDown"

	PresetCircle     = "textCircle"
	PresetCirclePour = "textCirclePour"
	PresetButton     = "textButton"
	PresetButtonPour = "textButtonPour"

	PresetWave1       = "textWave1"
	PresetWave2       = "textWave2"
	PresetWave4       = "textWave4"
	PresetDoubleWave1 = "textDoubleWave1"

	PresetInflate               = "textInflate"
	PresetInflateTop            = "textInflateTop"
	PresetInflateBottom         = "textInflateBottom"
	PresetDeflate               = "textDeflate"
	PresetDeflateTop            = "textDeflateTop"
	PresetDeflateBottom         = "textDeflateBottom"
	PresetDeflateInflate        = "textDeflateInflate"
	PresetDeflateInflateDeflate = "textDeflateInflateDeflate"

	PresetCanUp   = "textCanUp"
	PresetCanDown = "textCanDown"

	PresetSlantUp     = "textSlantUp"
	PresetSlantDown   = "textSlantDown"
	PresetCascadeUp   = "textCascadeUp"
	PresetCascadeDown = "textCascadeDown"

	PresetChevron          = "textChevron"
	PresetChevronInverted  = "textChevronInverted"
	PresetTriangle         = "textTriangle"
	PresetTriangleInverted = "textTriangleInverted"
	PresetStop             = "textStop"

	PresetFadeUp    = "textFadeUp"
	PresetFadeDown  = "textFadeDown"
	PresetFadeLeft  = "textFadeLeft"
	PresetFadeRight = "textFadeRight"
)
