package yandex

import "testing"

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "phrase at start",
			in:   "как искусственный интеллект я не могу ответить",
			want: "я не могу ответить",
		},
		{
			name: "phrase in the middle",
			in:   "Отвечу, но насколько я понимаю вопрос сложный",
			want: "Отвечу, но  вопрос сложный",
		},
		{
			name: "several phrases",
			in:   "я обученная модель и как языковая модель отвечаю кратко",
			want: "и  отвечаю кратко",
		},
		{
			name: "clean text untouched",
			in:   "Столица Франции — Париж.",
			want: "Столица Франции — Париж.",
		},
		{
			name: "case sensitive",
			in:   "Как искусственный интеллект скажу",
			want: "Как искусственный интеллект скажу",
		},
		{
			name: "surrounding whitespace trimmed",
			in:   "  вот развернутый ответ  ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Filter(tt.in); got != tt.want {
				t.Fatalf("Filter(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	inputs := []string{
		"как искусственный интеллект отвечаю",
		"обычный текст",
		"  с пробелами  ",
	}
	for _, in := range inputs {
		once := Filter(in)
		if twice := Filter(once); twice != once {
			t.Fatalf("filtering is not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
