package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_FIFOResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"answer":"4"}`), Usage: Usage{InputTokens: 12, OutputTokens: 6, TotalTokens: 18}},
		MockResponse{Content: json.RawMessage(`{"answer":"9"}`)},
	)

	resp, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"answer":"4"}` {
		t.Fatalf("content = %s", resp.Content)
	}
	if resp.Usage.InputTokens != 12 {
		t.Fatalf("input tokens = %d, want 12", resp.Usage.InputTokens)
	}
	if resp.StopReason != "end" {
		t.Fatalf("stop reason = %q, want end", resp.StopReason)
	}

	resp, err = mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "second"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"answer":"9"}` {
		t.Fatalf("content = %s", resp.Content)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})

	req := Request{
		System:   "quiz master",
		Messages: []Message{{Role: RoleUser, Content: "generate"}},
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("call count = %d, want 1", mock.CallCount())
	}
	if mock.Calls[0].System != "quiz master" {
		t.Fatalf("recorded system = %q", mock.Calls[0].System)
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	boom := errors.New("boom")
	mock := NewMockProvider(MockResponse{Err: boom})

	_, err := mock.Generate(context.Background(), Request{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected configured error, got %v", err)
	}
}

func TestMockProvider_ModelID(t *testing.T) {
	if got := NewMockProvider().ModelID(); got != "mock" {
		t.Fatalf("model ID = %q, want mock", got)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if got := PurposeFrom(ctx); got != "unknown" {
		t.Fatalf("purpose on bare context = %q, want unknown", got)
	}

	ctx = WithPurpose(ctx, "question-gen")
	if got := PurposeFrom(ctx); got != "question-gen" {
		t.Fatalf("purpose = %q, want question-gen", got)
	}
}

func TestSessionContext(t *testing.T) {
	ctx := context.Background()
	if got := SessionFrom(ctx); got != "" {
		t.Fatalf("session on bare context = %q, want empty", got)
	}

	ctx = WithSession(ctx, "sess-42")
	if got := SessionFrom(ctx); got != "sess-42" {
		t.Fatalf("session = %q, want sess-42", got)
	}
}
