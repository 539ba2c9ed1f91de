package tui

// ViewMode determines which screen to render.
type ViewMode int

const (
	ViewLibrary ViewMode = iota
	ViewEditor
	ViewPlayer
	ViewConfirm
	ViewHelp
)

// confirmAction identifies the destructive operation awaiting a yes/no
// answer.
type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmDeleteCard
	confirmResetProgress
)

// ItemsGeneratedMsg delivers a successful generator response. Seq ties the
// response to the generation request that produced it; a stale sequence
// means the user navigated away and the result is discarded on arrival.
type ItemsGeneratedMsg struct {
	Seq   int
	Items []string
}

// GenerateFailedMsg delivers a generator failure.
type GenerateFailedMsg struct {
	Seq int
	Err error
}

// WinBannerClearMsg hides the celebratory banner after its fixed delay.
type WinBannerClearMsg struct{}

// ClearErrorMsg requests error banner dismissal.
type ClearErrorMsg struct{}
