package cli

import (
	"context"
	"fmt"
	"log"

	"gemimage/internal/infrastructure/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ImageService は、CLIから呼び出す画像生成サービスのインターフェースです
type ImageService interface {
	// CreateImageWithModel は、プロンプトから画像を生成して保存します
	CreateImageWithModel(ctx context.Context, prompt string, model string, outputPath string) error

	// EditImageWithModel は、ベース画像とプロンプトから編集済み画像を生成して保存します
	EditImageWithModel(ctx context.Context, prompt string, baseImagePath string, model string, outputPath string) error
}

// PromptStore は、プロンプトのサイドカーファイルを保存するストアのインターフェースです
type PromptStore interface {
	// SavePromptSidecar は、プロンプトをサイドカーファイルに保存し、そのパスを返します
	SavePromptSidecar(outputPath string, prompt string) (string, error)
}

// CLIHandler は、create/editサブコマンドを処理するハンドラです
type CLIHandler struct {
	service ImageService
	prompts PromptStore
	output  *config.OutputConfig
}

// NewCLIHandler は新しいCLIHandlerインスタンスを作成します
func NewCLIHandler(service ImageService, prompts PromptStore, output *config.OutputConfig) *CLIHandler {
	return &CLIHandler{
		service: service,
		prompts: prompts,
		output:  output,
	}
}

// NewRootCommand は、ルートコマンドとサブコマンドを構築します
func (h *CLIHandler) NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gemimage",
		Short:         "Geminiで画像を生成・編集するCLIツール",
		Long:          "Gemini APIを使ってテキストプロンプトから画像を生成し、既存の画像を編集するコマンドラインツールです。",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("model", "", "使用するモデル名（未指定の場合はGEMINI_MODEL_NAMEの値）")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		log.Printf("警告: フラグのバインドに失敗: %v", err)
	}

	rootCmd.AddCommand(h.newCreateCommand())
	rootCmd.AddCommand(h.newEditCommand())

	return rootCmd
}

// newCreateCommand は、createサブコマンドを構築します
func (h *CLIHandler) newCreateCommand() *cobra.Command {
	var output string

	createCmd := &cobra.Command{
		Use:   "create <prompt>",
		Short: "プロンプトから画像を生成します",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := args[0]

			if err := h.service.CreateImageWithModel(cmd.Context(), prompt, viper.GetString("model"), output); err != nil {
				fmt.Printf("画像の生成に失敗しました: %v\n", err)
			}

			// 生成の成否にかかわらずプロンプトを保存する
			h.savePromptSidecar(output, prompt)
			return nil
		},
	}

	createCmd.Flags().StringVarP(&output, "output", "o", h.output.CreateDefaultPath, "生成画像の出力パス")

	return createCmd
}

// newEditCommand は、editサブコマンドを構築します
func (h *CLIHandler) newEditCommand() *cobra.Command {
	var output string

	editCmd := &cobra.Command{
		Use:   "edit <prompt> <image_path>",
		Short: "既存の画像をプロンプトに基づいて編集します",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := args[0]
			baseImagePath := args[1]

			if err := h.service.EditImageWithModel(cmd.Context(), prompt, baseImagePath, viper.GetString("model"), output); err != nil {
				fmt.Printf("画像の編集に失敗しました: %v\n", err)
			}

			// 生成の成否にかかわらずプロンプトを保存する
			h.savePromptSidecar(output, prompt)
			return nil
		},
	}

	editCmd.Flags().StringVarP(&output, "output", "o", h.output.EditDefaultPath, "編集画像の出力パス")

	return editCmd
}

// savePromptSidecar は、プロンプトをサイドカーファイルに保存します
func (h *CLIHandler) savePromptSidecar(outputPath string, prompt string) {
	sidecarPath, err := h.prompts.SavePromptSidecar(outputPath, prompt)
	if err != nil {
		fmt.Printf("プロンプトの保存に失敗しました: %v\n", err)
		return
	}
	fmt.Printf("プロンプトを保存しました: %s\n", sidecarPath)
}
