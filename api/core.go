package emucore

// Core is the boundary to the emulation core. The front-end calls exactly
// these three operations, in order, to boot a title.
type Core interface {
	// Initialize prepares the core for loading content. It may be called
	// once per boot attempt.
	Initialize() error

	// Load loads the title at path with the given launch parameters. A
	// non-success status is a recoverable boot failure.
	Load(path string, params LaunchParams) ResultStatus

	// Run executes the loaded title and returns when the core hands
	// control back to the front-end.
	Run() error
}

// Closer is implemented by cores that hold resources across boots.
type Closer interface {
	Close() error
}

// LaunchType describes who initiated the boot.
type LaunchType int

const (
	LaunchFrontendInitiated LaunchType = iota
	LaunchApplicationInitiated
)

// String returns the display name of the launch type.
func (t LaunchType) String() string {
	switch t {
	case LaunchFrontendInitiated:
		return "FrontendInitiated"
	case LaunchApplicationInitiated:
		return "ApplicationInitiated"
	default:
		return "Unknown"
	}
}

// LaunchParams carries boot parameters and the system options the core must
// honour for this session.
type LaunchParams struct {
	Type         LaunchType
	Language     int
	Region       int
	CustomRTC    bool
	MultiCore    bool
	MemoryLayout int
}
