package domain

import "errors"

// Domain errors
var (
	ErrMissingCredential   = errors.New("api key not configured")
	ErrMissingDocument     = errors.New("no document uploaded")
	ErrNotPDF              = errors.New("document is not a pdf")
	ErrDocumentTooLarge    = errors.New("document exceeds size limit")
	ErrBlankJobDescription = errors.New("job description is blank")
	ErrExtractionFailed    = errors.New("pdf text extraction failed")
	ErrNoExtractableText   = errors.New("pdf contains no extractable text")
	ErrTemplate            = errors.New("prompt template could not be rendered")
	ErrEmptyResponse       = errors.New("empty response from model")
)

// User-facing messages for each failure.
const (
	MsgMissingCredential   = "API Key not configured. Unable to proceed."
	MsgMissingCredentialUI = "Google API Key is missing. Please add it to your .env file."
	MsgMissingDocument     = "Please upload a PDF file to proceed."
	MsgDocumentTooLarge    = "The uploaded file is too large."
	MsgBlankJobDescription = "Please enter the job description to proceed."
	MsgExtractionFailed    = "Failed to extract text from the uploaded PDF file. Please try again with a different file."
	MsgTemplateFailed      = "Failed to build the analysis prompt."
	MsgGenerationFailed    = "Error generating response"
)
