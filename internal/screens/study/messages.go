package study

import (
	"time"

	"github.com/nmehta/studysnap/internal/study"
)

// analysisDoneMsg is sent when the analysis call finishes. The attempt
// token ties it to the submission that started it; stale completions
// are dropped by the session controller.
type analysisDoneMsg struct {
	Attempt string
	Result  *study.AnalysisResult
	Err     error
}

// imageLoadedMsg is sent when an image file has been read and sniffed.
type imageLoadedMsg struct {
	Data     []byte
	MIMEType string
	Err      error
}

// spinnerTickMsg is sent at short intervals to animate the analyzing spinner.
type spinnerTickMsg time.Time
