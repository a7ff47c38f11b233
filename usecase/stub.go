package usecase

import (
	"context"
	"errors"
	"sync"

	"speaker/domain"
)

var errStubFailure = errors.New("stub synthesizer failure")

// StubSynthesizer returns the request input as audio. Fail, when set,
// picks requests that should fail instead.
type StubSynthesizer struct {
	Fail func(req domain.SynthesisRequest) bool

	mu    sync.Mutex
	calls []domain.SynthesisRequest
}

func NewStubSynthesizer() *StubSynthesizer {
	return &StubSynthesizer{}
}

func (s *StubSynthesizer) Synthesize(ctx context.Context, req domain.SynthesisRequest) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.calls = append(s.calls, req)
	s.mu.Unlock()

	if s.Fail != nil && s.Fail(req) {
		return nil, errStubFailure
	}
	return []byte(req.Input), nil
}

func (s *StubSynthesizer) Calls() []domain.SynthesisRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.SynthesisRequest(nil), s.calls...)
}
