package domain

// AnalysisRequest is one submission from the page, the API or the CLI.
type AnalysisRequest struct {
	JobDescription string
	Document       []byte // raw PDF bytes, read-only
	Filename       string
}

// AnalysisResult is the payload displayed after a successful pass.
type AnalysisResult struct {
	Analysis   string `json:"analysis"`
	ResumeText string `json:"-"` // normalized text that went into the prompt
}

// Stage is a step of the request pipeline.
type Stage string

const (
	StageIdle        Stage = "idle"
	StageValidating  Stage = "validating"
	StageExtracting  Stage = "extracting"
	StageNormalizing Stage = "normalizing"
	StagePrompting   Stage = "prompting"
	StageGenerating  Stage = "generating"
	StageDone        Stage = "done"
)
