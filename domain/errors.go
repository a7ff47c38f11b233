package domain

import "errors"

var (
	ErrContentUnavailable     = errors.New("content unavailable")
	ErrSizeLimitExceeded      = errors.New("segment exceeds the request size limit")
	ErrTemplateNotFound       = errors.New("speech template not found")
	ErrInvalidDirective       = errors.New("invalid template directive")
	ErrSegmentSynthesisFailed = errors.New("segment synthesis failed")
	ErrArtifactNotFound       = errors.New("audio not found")
	ErrRunInProgress          = errors.New("audio generation already running for this content")
	ErrInvalidKey             = errors.New("invalid content key")
)

// UserMessage maps a run error to the text shown to whoever started the run.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return "Audio generated successfully"
	case errors.Is(err, ErrSizeLimitExceeded):
		return "This content exceeds the 5000 characters limit of the speech service. Reduce the content or split it with a speech template."
	case errors.Is(err, ErrContentUnavailable):
		return "The content could not be fetched for speech."
	case errors.Is(err, ErrTemplateNotFound):
		return "The speech template does not exist."
	case errors.Is(err, ErrInvalidDirective):
		return "The speech template is malformed."
	case errors.Is(err, ErrRunInProgress):
		return "Audio for this content is already being generated."
	case errors.Is(err, ErrInvalidKey):
		return "Invalid content id."
	case errors.Is(err, ErrArtifactNotFound):
		return "No audio for this content."
	default:
		return "Audio generation failed: " + err.Error()
	}
}
