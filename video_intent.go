package intentsdk

import "strings"

// ──────────────────────────────────────────────
// Video-Intent Detector — cheap keyword pre-filter
// ──────────────────────────────────────────────

const (
	// VideoIntentCinematic marks a message as a cinematic video request.
	VideoIntentCinematic = "cinematic_video"
	// VideoIntentNone marks a message with no video intent.
	VideoIntentNone = "none"

	// ToolGenerateVideo is the tool name forwarded to the video
	// generation collaborator.
	ToolGenerateVideo = "generate_video"
)

// VideoIntent is the detector output.
type VideoIntent struct {
	Type string `json:"type"`
	Tool string `json:"tool,omitempty"`
}

// VideoIntentDetector is a deliberately coarse keyword test. Video
// generation is gated behind an explicit product affordance, so this is a
// low-cost pre-filter, not the sole gate; it stays a boolean keyword scan
// and must not grow scoring machinery.
type VideoIntentDetector struct {
	keywords []string
}

// NewVideoIntentDetector creates a detector. With no keywords it uses the
// default vocabulary. Keywords are lowercased before matching.
func NewVideoIntentDetector(keywords ...string) *VideoIntentDetector {
	if len(keywords) == 0 {
		keywords = DefaultVideoKeywords()
	}
	lowered := make([]string, len(keywords))
	for i, kw := range keywords {
		lowered[i] = strings.ToLower(kw)
	}
	return &VideoIntentDetector{keywords: lowered}
}

// Detect reports cinematic video intent via case-insensitive substring
// match anywhere in the message.
func (d *VideoIntentDetector) Detect(message string) VideoIntent {
	lower := strings.ToLower(message)
	for _, kw := range d.keywords {
		if strings.Contains(lower, kw) {
			return VideoIntent{Type: VideoIntentCinematic, Tool: ToolGenerateVideo}
		}
	}
	return VideoIntent{Type: VideoIntentNone}
}
