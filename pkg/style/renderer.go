package style

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/dotstow/pkg/types"
)

// RenderStowResult renders the outcome of a stow run
func RenderStowResult(result *types.StowResult) string {
	var b strings.Builder

	for _, entry := range result.Stowed {
		b.WriteString(SuccessStyle.Sprintf("✓ %s -> %s\n", entry.LinkPath, entry.StowPath))
	}
	for _, orphan := range result.Orphaned {
		b.WriteString(WarningStyle.Sprintf("! %s relocated but not linked: %v\n", orphan.Path, orphan.Err))
		b.WriteString(Indent(MutedStyle.Sprint("recover the file from the location above\n"), 1))
	}
	b.WriteString(renderFailures(result.Failures))

	if len(result.Stowed) > 0 {
		b.WriteString(fmt.Sprintf("\n%d file(s) stowed.\n", len(result.Stowed)))
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderDeployResult renders the outcome of a deploy run
func RenderDeployResult(result *types.DeployResult) string {
	var b strings.Builder

	for _, entry := range result.Deployed {
		b.WriteString(SuccessStyle.Sprintf("✓ %s -> %s\n", entry.LinkPath, entry.StowPath))
	}
	b.WriteString(renderFailures(result.Failures))

	if len(result.Deployed) > 0 {
		b.WriteString(fmt.Sprintf("\n%d link(s) deployed.\n", len(result.Deployed)))
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderRestoreResult renders the outcome of a restore run
func RenderRestoreResult(result *types.RestoreResult) string {
	var b strings.Builder

	for _, entry := range result.Restored {
		b.WriteString(SuccessStyle.Sprintf("✓ %s restored\n", entry.LinkPath))
	}
	b.WriteString(renderFailures(result.Failures))

	if len(result.Restored) > 0 {
		b.WriteString(fmt.Sprintf("\n%d file(s) restored.\n", len(result.Restored)))
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderError renders a fatal command error
func RenderError(err error) string {
	return ErrorStyle.Sprintf("Error: %v", err)
}

func renderFailures(failures []types.FileFailure) string {
	var b strings.Builder
	for _, failure := range failures {
		b.WriteString(ErrorStyle.Sprintf("✗ %s: %v\n", failure.Path, failure.Err))
	}
	return b.String()
}
