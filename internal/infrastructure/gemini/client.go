package gemini

import (
	"context"
	"fmt"

	"gemimage/internal/infrastructure/config"

	"google.golang.org/genai"
)

// GeminiImageClient は、Gemini APIとの画像生成の通信を行うクライアントです
type GeminiImageClient struct {
	client *genai.Client
	config *config.GeminiConfig
}

// NewGeminiImageClient は新しいGeminiImageClientインスタンスを作成します
// 認証方式はconfigのCredentialModeに従って決定されます
func NewGeminiImageClient(ctx context.Context, geminiConfig *config.GeminiConfig) (*GeminiImageClient, error) {
	if geminiConfig == nil {
		return nil, fmt.Errorf("Gemini設定が指定されていません")
	}

	clientConfig, err := createClientConfig(geminiConfig)
	if err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("Gemini APIクライアントの作成に失敗: %w", err)
	}

	return &GeminiImageClient{
		client: client,
		config: geminiConfig,
	}, nil
}

// createClientConfig は、認証方式に応じたgenai.ClientConfigを作成します
func createClientConfig(geminiConfig *config.GeminiConfig) (*genai.ClientConfig, error) {
	switch geminiConfig.CredentialMode {
	case config.CredentialModeAPIKey:
		return &genai.ClientConfig{
			APIKey:  geminiConfig.APIKey,
			Backend: genai.BackendGeminiAPI,
		}, nil
	case config.CredentialModeVertexAI:
		return &genai.ClientConfig{
			Project:  geminiConfig.ProjectID,
			Location: geminiConfig.Location,
			Backend:  genai.BackendVertexAI,
		}, nil
	default:
		return nil, fmt.Errorf("認証方式が解決されていません: %s", geminiConfig.CredentialMode)
	}
}

// createSafetySettings は、安全フィルターの設定を作成します
func (g *GeminiImageClient) createSafetySettings() []*genai.SafetySetting {
	// 安全フィルターの設定を調整（中程度の制限）
	return []*genai.SafetySetting{
		{
			Category:  genai.HarmCategoryHarassment,
			Threshold: genai.HarmBlockThresholdBlockMediumAndAbove,
		},
		{
			Category:  genai.HarmCategoryHateSpeech,
			Threshold: genai.HarmBlockThresholdBlockMediumAndAbove,
		},
		{
			Category:  genai.HarmCategorySexuallyExplicit,
			Threshold: genai.HarmBlockThresholdBlockMediumAndAbove,
		},
		{
			Category:  genai.HarmCategoryDangerousContent,
			Threshold: genai.HarmBlockThresholdBlockMediumAndAbove,
		},
	}
}

// createImageGenerateConfig は、画像生成用の設定を作成します
// テキストと画像の両方のモダリティを常にリクエストします
func (g *GeminiImageClient) createImageGenerateConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
		MaxOutputTokens:    g.config.MaxTokens,
		Temperature:        &g.config.Temperature,
		TopP:               &g.config.TopP,
		SafetySettings:     g.createSafetySettings(),
	}
}

// Close は、Gemini APIクライアントを閉じます
func (g *GeminiImageClient) Close() error {
	// genai.ClientにはCloseメソッドがないため、何もしない
	return nil
}
