package configs

import (
	"fmt"
	"os"
	"strconv"

	"gemimage/internal/infrastructure/config"

	"github.com/joho/godotenv"
)

// Config は、アプリケーション全体の設定を定義します
type Config struct {
	Gemini config.GeminiConfig
	Output config.OutputConfig
}

// LoadConfig は、環境変数から設定を読み込みます
func LoadConfig() (*Config, error) {
	// .envファイルを読み込み（ファイルが存在しない場合は無視）
	if err := godotenv.Load(); err != nil {
		// .envファイルが存在しない場合は警告のみ出力（エラーにはしない）
		if !os.IsNotExist(err) {
			fmt.Printf("警告: .envファイルの読み込みに失敗しました: %v\n", err)
		}
	}

	config := &Config{
		Gemini: config.GeminiConfig{
			APIKey:      getEnvOrDefault("GEMINI_API_KEY", ""),
			ProjectID:   getEnvOrDefault("GOOGLE_CLOUD_PROJECT", ""),
			Location:    getEnvOrDefault("GOOGLE_CLOUD_LOCATION", "global"),
			ModelName:   getEnvOrDefault("GEMINI_MODEL_NAME", "gemini-2.5-flash-image-preview"),
			MaxTokens:   int32(getEnvAsIntOrDefault("GEMINI_MAX_TOKENS", 2000)),
			Temperature: float32(getEnvAsFloatOrDefault("GEMINI_TEMPERATURE", 0.7)),
			TopP:        float32(getEnvAsFloatOrDefault("GEMINI_TOP_P", 0.9)),
		},
		Output: config.OutputConfig{
			CreateDefaultPath: getEnvOrDefault("GEMIMAGE_CREATE_OUTPUT", "output/generated_image.png"),
			EditDefaultPath:   getEnvOrDefault("GEMIMAGE_EDIT_OUTPUT", "output/edited_image.png"),
		},
	}

	// 認証方式を解決
	if err := config.resolveCredentialMode(); err != nil {
		return nil, err
	}

	// 必須設定の検証
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// resolveCredentialMode は、環境変数から認証方式を決定します
// APIキーが設定されている場合はAPIキー認証を優先し、
// そうでない場合はGOOGLE_CLOUD_PROJECTによるVertex AI認証を使用します
func (c *Config) resolveCredentialMode() error {
	useVertexAI := getEnvAsBoolOrDefault("GOOGLE_GENAI_USE_VERTEXAI", false)

	if c.Gemini.APIKey != "" {
		c.Gemini.CredentialMode = config.CredentialModeAPIKey
		return nil
	}

	if useVertexAI && c.Gemini.ProjectID == "" {
		return fmt.Errorf("GOOGLE_GENAI_USE_VERTEXAI が有効な場合は GOOGLE_CLOUD_PROJECT を設定する必要があります")
	}

	if c.Gemini.ProjectID != "" {
		c.Gemini.CredentialMode = config.CredentialModeVertexAI
		return nil
	}

	c.Gemini.CredentialMode = config.CredentialModeUnknown
	return nil
}

// Validate は、設定の妥当性を検証します
func (c *Config) Validate() error {
	if c.Gemini.CredentialMode == config.CredentialModeUnknown {
		return fmt.Errorf("GEMINI_API_KEY または GOOGLE_CLOUD_PROJECT が設定されていません")
	}

	if c.Gemini.CredentialMode == config.CredentialModeVertexAI && c.Gemini.Location == "" {
		return fmt.Errorf("GOOGLE_CLOUD_LOCATION が設定されていません")
	}

	if c.Gemini.ModelName == "" {
		return fmt.Errorf("GEMINI_MODEL_NAME が設定されていません")
	}

	if c.Gemini.MaxTokens <= 0 {
		return fmt.Errorf("GEMINI_MAX_TOKENS は正の整数である必要があります")
	}

	if c.Gemini.Temperature < 0 || c.Gemini.Temperature > 2 {
		return fmt.Errorf("GEMINI_TEMPERATURE は0から2の範囲である必要があります")
	}

	if c.Gemini.TopP < 0 || c.Gemini.TopP > 1 {
		return fmt.Errorf("GEMINI_TOP_P は0から1の範囲である必要があります")
	}

	if c.Output.CreateDefaultPath == "" || c.Output.EditDefaultPath == "" {
		return fmt.Errorf("デフォルトの出力パスが設定されていません")
	}

	return nil
}

// getEnvOrDefault は、環境変数を取得し、存在しない場合はデフォルト値を返します
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault は、環境変数を整数として取得し、存在しない場合はデフォルト値を返します
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault は、環境変数を浮動小数点数として取得し、存在しない場合はデフォルト値を返します
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault は、環境変数を真偽値として取得し、存在しない場合はデフォルト値を返します
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
