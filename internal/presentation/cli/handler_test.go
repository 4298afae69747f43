package cli

import (
	"context"
	"errors"
	"testing"

	"gemimage/internal/infrastructure/config"
)

// fakeImageService は、テスト用のImageService実装です
type fakeImageService struct {
	createCalled  bool
	editCalled    bool
	prompt        string
	baseImagePath string
	model         string
	outputPath    string
	err           error
}

func (f *fakeImageService) CreateImageWithModel(ctx context.Context, prompt string, model string, outputPath string) error {
	f.createCalled = true
	f.prompt = prompt
	f.model = model
	f.outputPath = outputPath
	return f.err
}

func (f *fakeImageService) EditImageWithModel(ctx context.Context, prompt string, baseImagePath string, model string, outputPath string) error {
	f.editCalled = true
	f.prompt = prompt
	f.baseImagePath = baseImagePath
	f.model = model
	f.outputPath = outputPath
	return f.err
}

// fakePromptStore は、テスト用のPromptStore実装です
type fakePromptStore struct {
	saved      map[string]string
	lastOutput string
}

func newFakePromptStore() *fakePromptStore {
	return &fakePromptStore{saved: make(map[string]string)}
}

func (f *fakePromptStore) SavePromptSidecar(outputPath string, prompt string) (string, error) {
	f.lastOutput = outputPath
	f.saved[outputPath] = prompt
	return outputPath + ".prompt.txt", nil
}

func testOutputConfig() *config.OutputConfig {
	return &config.OutputConfig{
		CreateDefaultPath: "output/generated_image.png",
		EditDefaultPath:   "output/edited_image.png",
	}
}

func TestCLIHandler_CreateCommand(t *testing.T) {
	service := &fakeImageService{}
	prompts := newFakePromptStore()
	handler := NewCLIHandler(service, prompts, testOutputConfig())

	rootCmd := handler.NewRootCommand()
	rootCmd.SetArgs([]string{"create", "富士山の水彩画", "-o", "out/custom.png"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("エラーが期待されていませんが、発生しました: %v", err)
	}

	if !service.createCalled {
		t.Fatal("createサービスが呼び出されていません")
	}
	if service.prompt != "富士山の水彩画" {
		t.Errorf("期待されるプロンプト: 富士山の水彩画, 実際: %s", service.prompt)
	}
	if service.outputPath != "out/custom.png" {
		t.Errorf("期待される出力パス: out/custom.png, 実際: %s", service.outputPath)
	}

	// サイドカーが同じ出力パスに対して保存されていることを確認
	if saved, ok := prompts.saved["out/custom.png"]; !ok || saved != "富士山の水彩画" {
		t.Errorf("サイドカーに保存されたプロンプトが一致しません: %q", saved)
	}
}

func TestCLIHandler_CreateCommand_DefaultOutput(t *testing.T) {
	service := &fakeImageService{}
	prompts := newFakePromptStore()
	handler := NewCLIHandler(service, prompts, testOutputConfig())

	rootCmd := handler.NewRootCommand()
	rootCmd.SetArgs([]string{"create", "富士山の水彩画"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("エラーが期待されていませんが、発生しました: %v", err)
	}

	if service.outputPath != "output/generated_image.png" {
		t.Errorf("期待されるデフォルト出力パス: output/generated_image.png, 実際: %s", service.outputPath)
	}
}

func TestCLIHandler_CreateCommand_ServiceError(t *testing.T) {
	service := &fakeImageService{err: errors.New("APIエラー")}
	prompts := newFakePromptStore()
	handler := NewCLIHandler(service, prompts, testOutputConfig())

	rootCmd := handler.NewRootCommand()
	rootCmd.SetArgs([]string{"create", "富士山の水彩画"})

	// サービスが失敗してもコマンドはエラーを返さない
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("エラーが期待されていませんが、発生しました: %v", err)
	}

	// 生成に失敗してもサイドカーは保存される
	if _, ok := prompts.saved["output/generated_image.png"]; !ok {
		t.Error("生成に失敗した場合もサイドカーが保存される必要があります")
	}
}

func TestCLIHandler_EditCommand(t *testing.T) {
	service := &fakeImageService{}
	prompts := newFakePromptStore()
	handler := NewCLIHandler(service, prompts, testOutputConfig())

	rootCmd := handler.NewRootCommand()
	rootCmd.SetArgs([]string{"edit", "背景を夕焼けにして", "base.png"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("エラーが期待されていませんが、発生しました: %v", err)
	}

	if !service.editCalled {
		t.Fatal("editサービスが呼び出されていません")
	}
	if service.baseImagePath != "base.png" {
		t.Errorf("期待されるベース画像パス: base.png, 実際: %s", service.baseImagePath)
	}
	if service.outputPath != "output/edited_image.png" {
		t.Errorf("期待されるデフォルト出力パス: output/edited_image.png, 実際: %s", service.outputPath)
	}
	if _, ok := prompts.saved["output/edited_image.png"]; !ok {
		t.Error("サイドカーが保存されていません")
	}
}

func TestCLIHandler_EditCommand_MissingArgs(t *testing.T) {
	service := &fakeImageService{}
	prompts := newFakePromptStore()
	handler := NewCLIHandler(service, prompts, testOutputConfig())

	rootCmd := handler.NewRootCommand()
	rootCmd.SetArgs([]string{"edit", "プロンプトのみ"})

	if err := rootCmd.Execute(); err == nil {
		t.Error("引数不足でエラーが期待されましたが、nilが返されました")
	}
	if service.editCalled {
		t.Error("引数不足なのにeditサービスが呼び出されました")
	}
}
