package beanvalidator

// Parameter names used in constraint tags, message templates and schema output.
const (
	// NumberString
	ParamMin = "min"
	ParamMax = "max"

	// Katakana, Hiragana
	ParamSpace     = "space"
	ParamHalfSpace = "halfSpace"
	ParamLongMarks = "longMarks"

	// TelNo, ZipCode, DateFormat
	ParamPattern = "pattern"

	// Pattern
	ParamRegexp = "regexp"

	// Every kind
	ParamMessage = "message"
)
