package storage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // 生成画像の形式確認用にデコーダを登録
	_ "image/jpeg" // 同上
	_ "image/png"  // 同上
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gemimage/internal/domain"
)

// FileImageStore は、生成画像とプロンプトをローカルファイルに保存するストアです
type FileImageStore struct{}

// NewFileImageStore は新しいFileImageStoreインスタンスを作成します
func NewFileImageStore() *FileImageStore {
	return &FileImageStore{}
}

// SaveImage は、生成画像を指定されたパスに保存します
// 親ディレクトリが存在しない場合は作成します
func (s *FileImageStore) SaveImage(img *domain.GeneratedImage, outputPath string) error {
	if img == nil || len(img.Data) == 0 {
		return fmt.Errorf("保存する画像データがありません")
	}

	// 形式の確認のみ行い、バイト列はそのまま書き込む
	if cfg, format, err := image.DecodeConfig(bytes.NewReader(img.Data)); err == nil {
		log.Printf("画像形式: %s, サイズ: %dx%d", format, cfg.Width, cfg.Height)
	} else {
		log.Printf("警告: 画像形式を確認できませんでした (MIMEType=%s): %v", img.MIMEType, err)
	}

	if err := ensureParentDir(outputPath); err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, img.Data, 0644); err != nil {
		return fmt.Errorf("画像ファイルの書き込みに失敗: %w", err)
	}

	return nil
}

// LoadBaseImage は、編集対象のベース画像をファイルから読み込みます
// ファイルが存在しない場合はErrBaseImageNotFoundを返します
func (s *FileImageStore) LoadBaseImage(path string) (*domain.BaseImage, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrBaseImageNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("ベース画像の読み込みに失敗: %w", err)
	}

	mimeType, err := domain.DetectImageMIMEType(path)
	if err != nil {
		return nil, err
	}

	return &domain.BaseImage{
		Data:     data,
		MIMEType: mimeType,
	}, nil
}

// SavePromptSidecar は、プロンプトのテキストを出力画像のサイドカーファイルに保存します
// 既存のファイルは上書きされます
func (s *FileImageStore) SavePromptSidecar(outputPath string, prompt string) (string, error) {
	sidecarPath := PromptSidecarPath(outputPath)

	if err := ensureParentDir(sidecarPath); err != nil {
		return "", err
	}

	if err := os.WriteFile(sidecarPath, []byte(prompt), 0644); err != nil {
		return "", fmt.Errorf("プロンプトファイルの書き込みに失敗: %w", err)
	}

	return sidecarPath, nil
}

// PromptSidecarPath は、出力パスの拡張子を.prompt.txtに置き換えたサイドカーパスを返します
func PromptSidecarPath(outputPath string) string {
	ext := filepath.Ext(outputPath)
	return strings.TrimSuffix(outputPath, ext) + ".prompt.txt"
}

// ensureParentDir は、指定されたパスの親ディレクトリを作成します
func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("出力ディレクトリの作成に失敗: %w", err)
	}
	return nil
}
