package domain

import "fmt"

// ValidateSource validates a task source
func ValidateSource(source string) error {
	switch Source(source) {
	case SourceGitHub, SourceManual:
		return nil
	default:
		return fmt.Errorf("invalid source: must be one of: GitHub, 手動")
	}
}

// ValidateProjectType validates a project billing type
func ValidateProjectType(projectType string) error {
	switch ProjectType(projectType) {
	case ProjectTypeContract, ProjectTypeInternal, ProjectTypePersonal:
		return nil
	default:
		return fmt.Errorf("invalid project type: must be one of: 受託, 自社, 個人")
	}
}
