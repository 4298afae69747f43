package domain

import "errors"

// ドメイン固有のエラー型を定義
var (
	// ErrInvalidPrompt は、無効なプロンプトの場合のエラーです
	ErrInvalidPrompt = errors.New("無効なプロンプトです")

	// ErrNoImageData は、レスポンスに画像データが含まれていなかった場合のエラーです
	ErrNoImageData = errors.New("レスポンスに画像データが含まれていません")

	// ErrBaseImageNotFound は、編集対象のベース画像が見つからない場合のエラーです
	ErrBaseImageNotFound = errors.New("ベース画像が見つかりません")

	// ErrUnsupportedImageType は、画像として扱えないMIMEタイプの場合のエラーです
	ErrUnsupportedImageType = errors.New("サポートされていない画像タイプです")
)
