package application

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gemimage/internal/domain"
)

// ImageApplicationService は、画像の生成・編集に関するビジネスロジックを担当するサービスです
type ImageApplicationService struct {
	client ImageGenerationClient
	store  ImageStore
}

// NewImageApplicationService は新しいImageApplicationServiceインスタンスを作成します
func NewImageApplicationService(client ImageGenerationClient, store ImageStore) *ImageApplicationService {
	return &ImageApplicationService{
		client: client,
		store:  store,
	}
}

// CreateImage は、プロンプトから画像を生成して指定されたパスに保存します
// レスポンスに画像が含まれていない場合は警告のみ出力し、ファイルは作成しません
func (s *ImageApplicationService) CreateImage(ctx context.Context, prompt string, outputPath string) error {
	log.Printf("画像を生成中: プロンプト=%q", prompt)

	request := domain.NewImageGenerationRequest(prompt)
	if err := request.Validate(); err != nil {
		return fmt.Errorf("プロンプトの検証に失敗: %w", err)
	}

	return s.generateAndSave(ctx, request, outputPath)
}

// CreateImageWithModel は、モデル名を指定して画像を生成します
func (s *ImageApplicationService) CreateImageWithModel(ctx context.Context, prompt string, model string, outputPath string) error {
	log.Printf("画像を生成中: プロンプト=%q, モデル=%s", prompt, model)

	request := domain.NewImageGenerationRequest(prompt)
	request.Model = model
	if err := request.Validate(); err != nil {
		return fmt.Errorf("プロンプトの検証に失敗: %w", err)
	}

	return s.generateAndSave(ctx, request, outputPath)
}

// EditImage は、ベース画像とプロンプトから編集済み画像を生成して保存します
func (s *ImageApplicationService) EditImage(ctx context.Context, prompt string, baseImagePath string, outputPath string) error {
	return s.EditImageWithModel(ctx, prompt, baseImagePath, "", outputPath)
}

// EditImageWithModel は、モデル名を指定して画像を編集します
func (s *ImageApplicationService) EditImageWithModel(ctx context.Context, prompt string, baseImagePath string, model string, outputPath string) error {
	log.Printf("画像を編集中: ベース画像=%s, プロンプト=%q", baseImagePath, prompt)

	baseImage, err := s.store.LoadBaseImage(baseImagePath)
	if err != nil {
		return fmt.Errorf("ベース画像の読み込みに失敗: %w", err)
	}

	request := domain.NewImageEditRequest(prompt, baseImage)
	request.Model = model
	if err := request.Validate(); err != nil {
		return fmt.Errorf("プロンプトの検証に失敗: %w", err)
	}

	return s.generateAndSave(ctx, request, outputPath)
}

// generateAndSave は、リクエストを送信してレスポンスの画像を保存します
func (s *ImageApplicationService) generateAndSave(ctx context.Context, request domain.ImageGenerationRequest, outputPath string) error {
	image, err := s.client.GenerateImage(ctx, request)
	if errors.Is(err, domain.ErrNoImageData) {
		// モデルがテキストのみを返すことがあるため、警告に留めて正常終了する
		log.Printf("警告: レスポンスに画像データが見つかりませんでした")
		return nil
	}
	if err != nil {
		return fmt.Errorf("画像生成に失敗: %w", err)
	}

	if err := s.store.SaveImage(image, outputPath); err != nil {
		return fmt.Errorf("画像の保存に失敗: %w", err)
	}

	log.Printf("画像を保存しました: %s (%dバイト)", outputPath, image.Size)
	return nil
}
