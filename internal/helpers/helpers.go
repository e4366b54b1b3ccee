package helpers

import (
	"strings"

	"github.com/cofipei/chart-api/internal/constants"
)

// Stage constants define the possible deployment/runtime environments.
const (
	StageProd  = constants.ProdEnvironment
	StageDev   = "dev"
	StageLocal = "local"
)

// IsValidStage checks if the provided stage string is one of the defined valid stages.
func IsValidStage(stage string) bool {
	switch stage {
	case StageProd, StageDev, StageLocal:
		return true
	default:
		return false
	}
}

// NormalizeStage lowercases and trims a raw STAGE value. An empty value maps to local.
func NormalizeStage(raw string) string {
	stage := strings.ToLower(strings.TrimSpace(raw))
	if stage == "" {
		return StageLocal
	}
	return stage
}

// SplitCSV splits a comma separated list, dropping blanks.
func SplitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
