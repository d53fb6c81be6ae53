package bot

import (
	"context"
	"dialogbot/internal/cache"
	"strings"
	"testing"
)

// fakeModel считает обращения и запоминает последний запрос.
type fakeModel struct {
	calls      int
	lastPrompt string
	reply      string
}

func (f *fakeModel) Complete(ctx context.Context, chatID int64, prompt string) string {
	f.calls++
	f.lastPrompt = prompt
	return f.reply
}

func testTextHandler(t *testing.T) (*TextHandler, *fakeModel, *cache.ResponseCache) {
	t.Helper()
	c, err := cache.New(500)
	if err != nil {
		t.Fatal(err)
	}
	model := &fakeModel{reply: "ответ модели"}
	return NewTextHandler(model, c), model, c
}

func TestReply_GreetingShortcut(t *testing.T) {
	h, model, c := testTextHandler(t)

	for _, text := range []string{"привет", "Привет", "  здравствуй  ", "ЗДРАВСТВУЙ"} {
		if got := h.reply(context.Background(), 1, text); got != greetingReplyText {
			t.Fatalf("reply(%q) = %q, want greeting", text, got)
		}
	}
	if model.calls != 0 {
		t.Fatalf("greeting must not reach the model, got %d calls", model.calls)
	}
	if c.Len() != 0 {
		t.Fatalf("greeting must not touch the cache, got %d entries", c.Len())
	}
}

func TestReply_GreetingInsideSentenceGoesToModel(t *testing.T) {
	h, model, _ := testTextHandler(t)

	if got := h.reply(context.Background(), 1, "привет, как дела?"); got != "ответ модели" {
		t.Fatalf("expected model reply, got %q", got)
	}
	if model.calls != 1 {
		t.Fatalf("expected 1 model call, got %d", model.calls)
	}
}

func TestReply_TooLongRejected(t *testing.T) {
	h, model, c := testTextHandler(t)

	long := strings.Repeat("а", maxMessageRunes+1)
	if got := h.reply(context.Background(), 1, long); got != tooLongReply {
		t.Fatalf("expected rejection, got %q", got)
	}
	if model.calls != 0 {
		t.Fatalf("rejected message must not reach the model, got %d calls", model.calls)
	}
	if c.Len() != 0 {
		t.Fatalf("rejected message must not touch the cache, got %d entries", c.Len())
	}
}

func TestReply_ExactLimitAccepted(t *testing.T) {
	h, model, _ := testTextHandler(t)

	exact := strings.Repeat("б", maxMessageRunes)
	if got := h.reply(context.Background(), 1, exact); got != "ответ модели" {
		t.Fatalf("expected model reply for %d-rune message, got %q", maxMessageRunes, got)
	}
	if model.calls != 1 {
		t.Fatalf("expected 1 model call, got %d", model.calls)
	}
	if want := strings.Repeat("б", promptRuneLimit); model.lastPrompt != want {
		t.Fatalf("expected prompt truncated to %d runes, got %d", promptRuneLimit, len([]rune(model.lastPrompt)))
	}
}

func TestReply_CachesByTruncatedPrompt(t *testing.T) {
	h, model, _ := testTextHandler(t)
	ctx := context.Background()

	base := strings.Repeat("в", promptRuneLimit)
	// разные хвосты за пределом обрезки дают один ключ кеша
	h.reply(ctx, 1, base+" один хвост")
	h.reply(ctx, 1, base+" другой хвост")

	if model.calls != 1 {
		t.Fatalf("expected a single model call for identical truncated prompts, got %d", model.calls)
	}
}

func TestReply_RepeatedQuestionServedFromCache(t *testing.T) {
	h, model, _ := testTextHandler(t)
	ctx := context.Background()

	h.reply(ctx, 1, "сколько будет дважды два?")
	h.reply(ctx, 1, "сколько будет дважды два?")
	if model.calls != 1 {
		t.Fatalf("expected cached reply, got %d model calls", model.calls)
	}

	// другой чат — отдельная запись
	h.reply(ctx, 2, "сколько будет дважды два?")
	if model.calls != 2 {
		t.Fatalf("expected per-chat cache keys, got %d model calls", model.calls)
	}
}

func TestNeedsCompletion(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"привет", false},
		{strings.Repeat("г", maxMessageRunes+1), false},
		{"обычный вопрос", true},
	}
	for _, tt := range tests {
		if got := needsCompletion(tt.text); got != tt.want {
			t.Errorf("needsCompletion(%.20q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := truncateRunes("короткий", 300); got != "короткий" {
		t.Fatalf("short text must pass through, got %q", got)
	}
	long := strings.Repeat("д", 400)
	got := truncateRunes(long, 300)
	if n := len([]rune(got)); n != 300 {
		t.Fatalf("expected 300 runes, got %d", n)
	}
}
