package gemini

import (
	"context"
	"fmt"
	"log"
	"time"

	"gemimage/internal/domain"

	"google.golang.org/genai"
)

// GenerateImage は、リクエストを受け取ってGemini APIから画像を生成します
// ベース画像が指定されている場合は編集リクエストとして送信します
func (g *GeminiImageClient) GenerateImage(ctx context.Context, request domain.ImageGenerationRequest) (*domain.GeneratedImage, error) {
	contents := g.createContents(request)
	generateConfig := g.createImageGenerateConfig()

	// モデル名を決定（リクエストで指定されていない場合はデフォルトを使用）
	modelName := g.config.ModelName
	if request.Model != "" {
		modelName = request.Model
	}

	log.Printf("Gemini APIに画像生成をリクエスト中: モデル=%s, プロンプト=%d文字", modelName, len(request.Prompt))

	resp, err := g.client.Models.GenerateContent(ctx, modelName, contents, generateConfig)
	if err != nil {
		return nil, fmt.Errorf("Gemini APIからの応答取得に失敗: %w", err)
	}

	return extractInlineImage(resp)
}

// createContents は、リクエストからgenaiのコンテンツリストを作成します
func (g *GeminiImageClient) createContents(request domain.ImageGenerationRequest) []*genai.Content {
	if request.BaseImage == nil {
		return genai.Text(request.Prompt)
	}

	// 編集の場合は、プロンプトとベース画像を1つのユーザーコンテンツにまとめる
	parts := []*genai.Part{
		genai.NewPartFromText(request.Prompt),
		{
			InlineData: &genai.Blob{
				MIMEType: request.BaseImage.MIMEType,
				Data:     request.BaseImage.Data,
			},
		},
	}
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
}

// extractInlineImage は、レスポンスの最初の候補から最初のインライン画像データを抽出します
// テキスト部分は無視されます。画像が含まれていない場合はErrNoImageDataを返します
func extractInlineImage(resp *genai.GenerateContentResponse) (*domain.GeneratedImage, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("%w: 候補が空です", domain.ErrNoImageData)
	}

	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return nil, fmt.Errorf("%w: 候補にContentが含まれていません", domain.ErrNoImageData)
	}

	log.Printf("Gemini APIレスポンス: FinishReason=%s, Parts数=%d", candidate.FinishReason, len(candidate.Content.Parts))

	for i, part := range candidate.Content.Parts {
		if part == nil {
			continue
		}
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			log.Printf("Part[%d]から画像データを取得: MIMEType=%s, %dバイト", i, part.InlineData.MIMEType, len(part.InlineData.Data))
			return &domain.GeneratedImage{
				Data:        part.InlineData.Data,
				MIMEType:    part.InlineData.MIMEType,
				Size:        int64(len(part.InlineData.Data)),
				GeneratedAt: time.Now(),
			}, nil
		}
		if part.Text != "" {
			log.Printf("Part[%d]はテキストのためスキップ: %d文字", i, len(part.Text))
		}
	}

	return nil, fmt.Errorf("%w: FinishReason=%s", domain.ErrNoImageData, candidate.FinishReason)
}
