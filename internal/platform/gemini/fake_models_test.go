package gemini

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"
)

type fakeCall struct {
	Model    string
	Contents []*genai.Content
	Config   *genai.GenerateContentConfig
}

// Text returns the concatenated text parts of the call.
func (c fakeCall) Text() string {
	var b strings.Builder
	for _, content := range c.Contents {
		for _, p := range content.Parts {
			b.WriteString(p.Text)
		}
	}
	return b.String()
}

// fakeModels is a scripted ContentGenerator. Respond receives the call and
// its zero-based index.
type fakeModels struct {
	mu      sync.Mutex
	calls   []fakeCall
	Respond func(call fakeCall, n int) (*genai.GenerateContentResponse, error)
}

func (f *fakeModels) GenerateContent(
	_ context.Context,
	model string,
	contents []*genai.Content,
	config *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	call := fakeCall{Model: model, Contents: contents, Config: config}
	n := len(f.calls)
	f.calls = append(f.calls, call)
	f.mu.Unlock()

	if f.Respond == nil {
		return nil, fmt.Errorf("no response scripted")
	}
	return f.Respond(call, n)
}

func (f *fakeModels) Calls() []fakeCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]fakeCall(nil), f.calls...)
}

type fakeSaver struct {
	mu    sync.Mutex
	saved [][]byte
	err   error
}

func (s *fakeSaver) SaveImage(data []byte, mimeType string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	s.saved = append(s.saved, data)
	return fmt.Sprintf("/images/generated/generated_%d%s", len(s.saved), extFor(mimeType)), nil
}

func extFor(mimeType string) string {
	if mimeType == "image/jpeg" {
		return ".jpg"
	}
	return ".png"
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content:      &genai.Content{Role: "model", Parts: []*genai.Part{{Text: text}}},
			FinishReason: genai.FinishReasonStop,
		}},
	}
}

func imageResponse(data []byte, mimeType string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Role: "model", Parts: []*genai.Part{
				{Text: "Here is your image"},
				{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}},
			}},
			FinishReason: genai.FinishReasonStop,
		}},
	}
}

func safetyResponse() *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonSafety}},
	}
}
