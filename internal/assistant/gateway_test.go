package assistant

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"hospital-dashboard/internal/llm"

	"github.com/sirupsen/logrus"
)

const essentialsText = "Patient : Omar Belhamid\nÂge : 40 ans"

type fakeSummaries struct {
	full         string
	fullErr      error
	essentialErr error
}

func (f *fakeSummaries) BuildFull(ctx context.Context, patientID int64) (string, error) {
	return f.full, f.fullErr
}

func (f *fakeSummaries) BuildEssential(ctx context.Context, patientID int64) (string, error) {
	return essentialsText, f.essentialErr
}

type fakeClient struct {
	reply string
	err   error
	calls int
	last  llm.ChatRequest
}

func (f *fakeClient) Chat(ctx context.Context, req llm.ChatRequest) (string, error) {
	f.calls++
	f.last = req
	return f.reply, f.err
}

type fakeMonitor struct {
	mu       sync.Mutex
	cooling  bool
	started  int
	outcomes []Reason
}

func (m *fakeMonitor) CoolingDown(context.Context) bool { return m.cooling }

func (m *fakeMonitor) StartCooldown(context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.started++
}

func (m *fakeMonitor) Record(_ context.Context, _ int64, r *Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, r.Reason)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestAnswer_BlankMessageIsInvalid(t *testing.T) {
	client := &fakeClient{reply: "ok"}
	g := NewGateway(&fakeSummaries{}, client, nil, quietLogger(), Options{})

	for _, msg := range []string{"", "   ", "\n\t"} {
		if _, err := g.Answer(context.Background(), 42, msg); !errors.Is(err, ErrMessageRequired) {
			t.Errorf("Answer(%q): expected ErrMessageRequired, got %v", msg, err)
		}
	}
	if client.calls != 0 {
		t.Errorf("expected no provider call, got %d", client.calls)
	}
}

func TestAnswer_NoCredentialReturnsEssentials(t *testing.T) {
	monitor := &fakeMonitor{}
	g := NewGateway(&fakeSummaries{full: "full record"}, nil, monitor, quietLogger(), Options{})

	res, err := g.Answer(context.Background(), 1, "resume")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Reply != essentialsText || res.State != StateEssentials || res.Reason != ReasonNoCredential {
		t.Errorf("unexpected result %+v", res)
	}
	if len(monitor.outcomes) != 1 || monitor.outcomes[0] != ReasonNoCredential {
		t.Errorf("expected outcome to be recorded, got %v", monitor.outcomes)
	}
}

func TestAnswer_Reply(t *testing.T) {
	client := &fakeClient{reply: "  Groupe sanguin O+.  "}
	g := NewGateway(&fakeSummaries{full: "Patient: Omar Belhamid"}, client, nil, quietLogger(), Options{})

	res, err := g.Answer(context.Background(), 1, "  Quel est son groupe sanguin ?  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Reply != "Groupe sanguin O+." || res.State != StateReply || res.Reason != ReasonNone {
		t.Errorf("unexpected result %+v", res)
	}

	req := client.last
	if req.MaxTokens != defaultMaxTokens || req.Temperature != defaultTemperature {
		t.Errorf("unexpected request limits: %+v", req)
	}
	if len(req.Messages) != 2 {
		t.Fatalf("expected system and user messages, got %d", len(req.Messages))
	}
	if !strings.Contains(req.Messages[0].Content, "Patient: Omar Belhamid") {
		t.Error("expected system prompt to embed the record")
	}
	if !strings.Contains(req.Messages[0].Content, "en français") {
		t.Error("expected system prompt to pin the language")
	}
	if req.Messages[1].Content != "Quel est son groupe sanguin ?" {
		t.Errorf("expected trimmed user message, got %q", req.Messages[1].Content)
	}
}

func TestAnswer_Fallbacks(t *testing.T) {
	tests := []struct {
		name       string
		client     *fakeClient
		wantReason Reason
		wantCool   int
	}{
		{"empty reply", &fakeClient{reply: "   "}, ReasonEmptyReply, 0},
		{"http 429", &fakeClient{err: &llm.Error{StatusCode: http.StatusTooManyRequests}}, ReasonQuotaExceeded, 1},
		{"quota code", &fakeClient{err: &llm.Error{StatusCode: http.StatusForbidden, Code: llm.CodeInsufficientQuota}}, ReasonQuotaExceeded, 1},
		{"server error", &fakeClient{err: &llm.Error{StatusCode: http.StatusInternalServerError}}, ReasonServiceError, 0},
		{"timeout", &fakeClient{err: context.DeadlineExceeded}, ReasonServiceError, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monitor := &fakeMonitor{}
			g := NewGateway(&fakeSummaries{full: "record"}, tt.client, monitor, quietLogger(), Options{})

			res, err := g.Answer(context.Background(), 1, "question")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Reply != essentialsText {
				t.Errorf("expected essentials reply, got %q", res.Reply)
			}
			if res.State != StateEssentials || res.Reason != tt.wantReason {
				t.Errorf("got %s/%s, want essentials/%s", res.State, res.Reason, tt.wantReason)
			}
			if monitor.started != tt.wantCool {
				t.Errorf("expected %d cooldown starts, got %d", tt.wantCool, monitor.started)
			}
		})
	}
}

func TestAnswer_CooldownSkipsProvider(t *testing.T) {
	client := &fakeClient{reply: "should not be used"}
	g := NewGateway(&fakeSummaries{full: "record"}, client, &fakeMonitor{cooling: true}, quietLogger(), Options{})

	res, err := g.Answer(context.Background(), 1, "question")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Reason != ReasonCooldown || res.Reply != essentialsText {
		t.Errorf("unexpected result %+v", res)
	}
	if client.calls != 0 {
		t.Errorf("expected no provider call during cooldown, got %d", client.calls)
	}
}

func TestAnswer_RecordUnavailable(t *testing.T) {
	summaries := &fakeSummaries{fullErr: errors.New("db down"), essentialErr: errors.New("db down")}
	client := &fakeClient{reply: "ok"}
	g := NewGateway(summaries, client, nil, quietLogger(), Options{})

	res, err := g.Answer(context.Background(), 1, "question")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Reply != UnavailableText || res.Reason != ReasonRecordUnavailable {
		t.Errorf("unexpected result %+v", res)
	}
	if client.calls != 0 {
		t.Errorf("expected no provider call without a record, got %d", client.calls)
	}
}

func TestNewGateway_Options(t *testing.T) {
	client := &fakeClient{reply: "ok"}
	g := NewGateway(&fakeSummaries{}, client, nil, quietLogger(), Options{MaxTokens: 256, Language: "anglais"})

	if _, err := g.Answer(context.Background(), 1, "hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.last.MaxTokens != 256 {
		t.Errorf("expected max tokens 256, got %d", client.last.MaxTokens)
	}
	if !strings.Contains(client.last.Messages[0].Content, "en anglais") {
		t.Error("expected configured language in prompt")
	}
}
