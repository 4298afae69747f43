package main

import (
	"context"
	"log"

	"gemimage/configs"
	"gemimage/internal/application"
	"gemimage/internal/infrastructure/gemini"
	"gemimage/internal/infrastructure/storage"
	"gemimage/internal/presentation/cli"
)

func main() {
	// 設定を読み込み
	config, err := configs.LoadConfig()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}

	ctx := context.Background()

	// Gemini APIクライアントを作成
	geminiClient, err := gemini.NewGeminiImageClient(ctx, &config.Gemini)
	if err != nil {
		log.Fatalf("Gemini APIクライアントの作成に失敗: %v", err)
	}
	defer geminiClient.Close()

	// ストアとアプリケーションサービスを作成
	store := storage.NewFileImageStore()
	imageService := application.NewImageApplicationService(geminiClient, store)

	// CLIハンドラを作成して実行
	handler := cli.NewCLIHandler(imageService, store, &config.Output)
	rootCmd := handler.NewRootCommand()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// 失敗しても終了コードでは区別しない
		log.Printf("コマンドの実行に失敗しました: %v", err)
	}
}
