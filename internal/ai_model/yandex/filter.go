package yandex

import "strings"

// Фразы-паразиты, которые модель любит вставлять в ответы.
// Сравнение посимвольное, с учётом регистра.
var unwantedPhrases = []string{
	"как искусственный интеллект",
	"я обученная модель",
	"насколько я понимаю",
	"вот развернутый ответ",
	"как языковая модель",
}

// Filter вырезает нежелательные фразы и обрезает пробелы по краям.
// Повторная фильтрация уже отфильтрованного текста ничего не меняет.
func Filter(text string) string {
	for _, phrase := range unwantedPhrases {
		text = strings.ReplaceAll(text, phrase, "")
	}
	return strings.TrimSpace(text)
}
