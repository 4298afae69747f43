package domain

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"time"
)

// ImageGenerationRequest は、画像生成のリクエストを表すドメインオブジェクトです
type ImageGenerationRequest struct {
	Prompt    string
	BaseImage *BaseImage // nilの場合は新規生成
	Model     string     // 空の場合は設定のデフォルトモデルを使用
}

// BaseImage は、編集の元になる入力画像を表す値オブジェクトです
type BaseImage struct {
	Data     []byte
	MIMEType string
}

// GeneratedImage は、Gemini APIから取得した生成画像を表すドメインオブジェクトです
type GeneratedImage struct {
	Data        []byte
	MIMEType    string
	Size        int64
	GeneratedAt time.Time
}

// NewImageGenerationRequest は、新規生成用のImageGenerationRequestを作成します
func NewImageGenerationRequest(prompt string) ImageGenerationRequest {
	return ImageGenerationRequest{
		Prompt: prompt,
	}
}

// NewImageEditRequest は、画像編集用のImageGenerationRequestを作成します
func NewImageEditRequest(prompt string, baseImage *BaseImage) ImageGenerationRequest {
	return ImageGenerationRequest{
		Prompt:    prompt,
		BaseImage: baseImage,
	}
}

// Validate は、リクエストの妥当性を検証します
func (r ImageGenerationRequest) Validate() error {
	if strings.TrimSpace(r.Prompt) == "" {
		return ErrInvalidPrompt
	}
	return nil
}

// DetectImageMIMEType は、ファイル名の拡張子から画像のMIMEタイプを決定します
// 拡張子が解決できない場合、または画像以外のタイプの場合はエラーを返します
func DetectImageMIMEType(path string) (string, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: 拡張子がありません: %s", ErrUnsupportedImageType, path)
	}

	mimeType := mime.TypeByExtension(strings.ToLower(ext))
	if mimeType == "" {
		return "", fmt.Errorf("%w: 拡張子 %s からMIMEタイプを決定できません", ErrUnsupportedImageType, ext)
	}

	if !strings.HasPrefix(mimeType, "image/") {
		return "", fmt.Errorf("%w: %s は画像タイプではありません", ErrUnsupportedImageType, mimeType)
	}

	return mimeType, nil
}
