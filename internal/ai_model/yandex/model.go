package yandex

import (
	"bytes"
	"context"
	"dialogbot/internal/db/message"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const completionURL = "https://llm.api.cloud.yandex.net/foundationModels/v1/completion"

const (
	clientTimeout    = 15 * time.Second
	modelTemperature = 0.2
	maxOutputTokens  = 400
	historyLimit     = 7
)

// MaxPromptLen — предел длины запроса в символах. Обрезка до этого
// предела лежит на вызывающей стороне, Complete её не выполняет.
const MaxPromptLen = 300

const systemPrompt = "Ты - точный AI-ассистент. Отвечай кратко и по делу. Избегай вводных фраз."

const (
	failureRequestReply = "⚠️ Ошибка обработки запроса"
	failureSystemReply  = "⚠️ Системная ошибка"
)

type AiModelYandex struct {
	ApiKey     string
	FolderID   string
	Repository message.Repository

	url        string
	httpClient *http.Client
}

func NewAiModelYandex(apiKey string, folderID string, r message.Repository) *AiModelYandex {
	return &AiModelYandex{
		ApiKey:     apiKey,
		FolderID:   folderID,
		Repository: r,
		url:        completionURL,
		httpClient: &http.Client{Timeout: clientTimeout},
	}
}

// Complete собирает контекст из истории, спрашивает YandexGPT и сохраняет
// обмен в историю. Любой сбой превращается в запасной ответ, история при
// этом не пополняется.
func (a *AiModelYandex) Complete(ctx context.Context, chatID int64, prompt string) string {
	if !a.checkAuthorizationInfo() {
		log.Printf("[AiModelYandex.Complete] ApiKey or FolderID is empty chatID=%d", chatID)
		return failureRequestReply
	}

	history, err := a.Repository.Recent(ctx, chatID, historyLimit)
	if err != nil {
		log.Printf("[AiModelYandex.Complete] failed to read history chatID=%d err=%v", chatID, err)
		return failureSystemReply
	}

	reqBody, err := a.prepareModelRequest(history, prompt)
	if err != nil {
		log.Printf("[AiModelYandex.Complete] failed to prepare request chatID=%d err=%v", chatID, err)
		return failureRequestReply
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, a.url, bytes.NewReader(reqBody))
	a.prepareHttpRequest(req)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		log.Printf("[AiModelYandex.Complete] request error chatID=%d err=%v", chatID, err)
		return failureRequestReply
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			log.Println("[AiModelYandex.Complete] Body.Close():", cerr)
		}
	}(resp.Body)

	if !isRequestSuccessful(resp.StatusCode) {
		log.Printf("[AiModelYandex.Complete] request failed chatID=%d status=%d", chatID, resp.StatusCode)
		return failureRequestReply
	}

	rawResp, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[AiModelYandex.Complete] error reading body chatID=%d err=%v", chatID, err)
		return failureSystemReply
	}

	var yr yaResponse
	if err := json.Unmarshal(rawResp, &yr); err != nil {
		log.Printf("[AiModelYandex.Complete] decode response chatID=%d err=%v", chatID, err)
		return failureSystemReply
	}
	if len(yr.Result.Alternatives) == 0 {
		log.Printf("[AiModelYandex.Complete] no alternatives in response chatID=%d", chatID)
		return failureSystemReply
	}

	reply := Filter(yr.Result.Alternatives[0].Message.Text)

	if err := a.Repository.Append(ctx, chatID, message.RoleUser, prompt); err != nil {
		log.Printf("[AiModelYandex.Complete] save user message chatID=%d err=%v", chatID, err)
		return failureSystemReply
	}
	if err := a.Repository.Append(ctx, chatID, message.RoleAssistant, reply); err != nil {
		log.Printf("[AiModelYandex.Complete] save assistant message chatID=%d err=%v", chatID, err)
		return failureSystemReply
	}

	return reply
}

// --- private ---

func (a *AiModelYandex) checkAuthorizationInfo() bool {
	return a.ApiKey != "" && a.FolderID != ""
}

func (a *AiModelYandex) prepareModelRequest(history []message.Message, prompt string) ([]byte, error) {
	dst := make([]MessageYandexGpt, 0, len(history)+2)
	dst = append(dst, MessageYandexGpt{Role: message.RoleSystem, Text: systemPrompt})
	for _, m := range history {
		dst = append(dst, MessageYandexGpt{Role: m.Role, Text: m.Content})
	}
	dst = append(dst, MessageYandexGpt{Role: message.RoleUser, Text: prompt})

	r := request{
		ModelURI: fmt.Sprintf("gpt://%s/yandexgpt", a.FolderID),
		Messages: dst,
	}
	r.CompletionOptions.Stream = false
	r.CompletionOptions.Temperature = modelTemperature
	r.CompletionOptions.MaxTokens = maxOutputTokens

	return json.Marshal(r)
}

func (a *AiModelYandex) prepareHttpRequest(req *http.Request) {
	req.Header.Set("Authorization", "Api-Key "+a.ApiKey)
	req.Header.Set("x-folder-id", a.FolderID)
	req.Header.Set("Content-Type", "application/json")
}

func isRequestSuccessful(status int) bool {
	return status >= 200 && status < 300
}
