package service

import "ats-resume-optimizer/internal/testutil"

func buildTestPDF(pages ...string) []byte {
	return testutil.BuildPDF(pages...)
}
