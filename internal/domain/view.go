package domain

import (
	"fmt"
	"strings"
)

// WorkspaceView names one of the three workspace panels.
type WorkspaceView string

const (
	ViewDocuments WorkspaceView = "documents"
	ViewApproval  WorkspaceView = "approval"
	ViewTeam      WorkspaceView = "team"
)

var WorkspaceViews = []WorkspaceView{ViewDocuments, ViewApproval, ViewTeam}

func ParseWorkspaceView(s string) (WorkspaceView, error) {
	for _, v := range WorkspaceViews {
		if strings.EqualFold(string(v), strings.TrimSpace(s)) {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown view %q", s)
}

func (v WorkspaceView) Label() string {
	switch v {
	case ViewDocuments:
		return "Documents"
	case ViewApproval:
		return "Approval"
	case ViewTeam:
		return "Team"
	}
	return string(v)
}

// Next cycles documents → approval → team → documents.
func (v WorkspaceView) Next() WorkspaceView {
	for i, w := range WorkspaceViews {
		if w == v {
			return WorkspaceViews[(i+1)%len(WorkspaceViews)]
		}
	}
	return ViewDocuments
}
