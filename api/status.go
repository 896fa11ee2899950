package emucore

// ResultStatus is the outcome of Core.Load.
type ResultStatus int

const (
	StatusSuccess ResultStatus = iota
	StatusErrorNotInitialized
	StatusErrorGetLoader
	StatusErrorSystemFiles
	StatusErrorSharedFont
	StatusErrorVideoCore
	StatusErrorUnknown
	StatusErrorLoader
)

// String returns the display name of the status.
func (s ResultStatus) String() string {
	switch s {
	case StatusSuccess:
		return "Success"
	case StatusErrorNotInitialized:
		return "ErrorNotInitialized"
	case StatusErrorGetLoader:
		return "ErrorGetLoader"
	case StatusErrorSystemFiles:
		return "ErrorSystemFiles"
	case StatusErrorSharedFont:
		return "ErrorSharedFont"
	case StatusErrorVideoCore:
		return "ErrorVideoCore"
	case StatusErrorUnknown:
		return "ErrorUnknown"
	case StatusErrorLoader:
		return "ErrorLoader"
	default:
		return "Unknown"
	}
}

// OK reports whether the status is StatusSuccess.
func (s ResultStatus) OK() bool {
	return s == StatusSuccess
}
