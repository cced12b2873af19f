package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"ats-resume-optimizer/internal/config"
	"ats-resume-optimizer/internal/domain"
	apperrors "ats-resume-optimizer/pkg/errors"

	"github.com/spf13/cobra"
)

var (
	resumePath string
	jdPath     string
	jdText     string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume PDF against a job description",
	RunE:  runAnalyze,
}

func init() {
	for _, cmd := range []*cobra.Command{analyzeCmd, promptCmd} {
		cmd.Flags().StringVarP(&resumePath, "resume", "r", "", "path to the resume PDF")
		cmd.Flags().StringVar(&jdPath, "jd", "", "path to a file holding the job description")
		cmd.Flags().StringVar(&jdText, "jd-text", "", "job description text")
		_ = cmd.MarkFlagRequired("resume")
	}
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container, err := config.NewContainerFromConfig(ctx, cfg, setupLogger(cfg))
	if err != nil {
		return err
	}

	req, err := buildRequest()
	if err != nil {
		return err
	}

	result, err := container.GetAnalysisService().Analyze(ctx, req)
	if err != nil {
		if appErr, ok := apperrors.As(err); ok {
			return errors.New(appErr.UserMessage())
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Analysis)
	return nil
}

func buildRequest() (domain.AnalysisRequest, error) {
	jd, err := readJobDescription(jdText, jdPath)
	if err != nil {
		return domain.AnalysisRequest{}, err
	}
	document, err := os.ReadFile(resumePath)
	if err != nil {
		return domain.AnalysisRequest{}, fmt.Errorf("read resume: %w", err)
	}
	return domain.AnalysisRequest{
		JobDescription: jd,
		Document:       document,
		Filename:       filepath.Base(resumePath),
	}, nil
}
