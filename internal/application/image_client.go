package application

import (
	"context"

	"gemimage/internal/domain"
)

// ImageGenerationClient は、Gemini APIとの画像生成の通信を行うクライアントのインターフェースです
type ImageGenerationClient interface {
	// GenerateImage は、リクエストを受け取ってGemini APIから画像を生成します
	GenerateImage(ctx context.Context, request domain.ImageGenerationRequest) (*domain.GeneratedImage, error)
}

// ImageStore は、生成画像とベース画像の永続化を行うストアのインターフェースです
type ImageStore interface {
	// SaveImage は、生成画像を指定されたパスに保存します
	SaveImage(image *domain.GeneratedImage, outputPath string) error

	// LoadBaseImage は、編集対象のベース画像をファイルから読み込みます
	LoadBaseImage(path string) (*domain.BaseImage, error)
}
