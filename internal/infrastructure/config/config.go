package config

// CredentialMode は、Gemini APIへの認証方式を表す定数です
type CredentialMode int

const (
	// CredentialModeUnknown は、認証方式が解決できなかった状態です
	CredentialModeUnknown CredentialMode = iota

	// CredentialModeAPIKey は、GEMINI_API_KEYによる直接認証です
	CredentialModeAPIKey

	// CredentialModeVertexAI は、プロジェクト/ロケーションによるVertex AI認証です
	CredentialModeVertexAI
)

// String はCredentialModeの文字列表現を返します
func (m CredentialMode) String() string {
	switch m {
	case CredentialModeAPIKey:
		return "api_key"
	case CredentialModeVertexAI:
		return "vertex_ai"
	default:
		return "unknown"
	}
}

// GeminiConfig は、Gemini API関連の設定を定義します
type GeminiConfig struct {
	CredentialMode CredentialMode
	APIKey         string
	ProjectID      string
	Location       string  // Vertex AIのロケーション（デフォルト: global）
	ModelName      string  // 画像生成用モデル名
	MaxTokens      int32
	Temperature    float32
	TopP           float32
}

// OutputConfig は、生成物の出力関連の設定を定義します
type OutputConfig struct {
	CreateDefaultPath string // createコマンドのデフォルト出力先
	EditDefaultPath   string // editコマンドのデフォルト出力先
}

// AppConfig は、アプリケーション全体の設定を定義します
type AppConfig struct {
	Gemini GeminiConfig
	Output OutputConfig
}
