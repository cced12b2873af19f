package main

import (
	"fmt"
	"strings"

	"ats-resume-optimizer/internal/config"
	"ats-resume-optimizer/internal/domain"
	"ats-resume-optimizer/internal/service"

	"github.com/spf13/cobra"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the prompt that would be sent to the model",
	Long:  "prompt extracts and normalizes the resume, fills the ATS template and prints it. The model is not called and no API key is needed.",
	RunE:  runPrompt,
}

func init() {
	rootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	req, err := buildRequest()
	if err != nil {
		return err
	}
	if !service.IsPDF(req.Filename, req.Document) {
		return domain.ErrNotPDF
	}

	raw, err := config.NewExtractor(cfg, setupLogger(cfg)).Extract(cmd.Context(), req.Document)
	if err != nil {
		return err
	}
	if strings.TrimSpace(raw) == "" {
		return domain.ErrNoExtractableText
	}

	prompt, err := service.NewPromptBuilder(nil).Build(service.NormalizeText(raw), req.JobDescription)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), prompt)
	return nil
}
