package cli

import (
	"strings"

	"github.com/alexanderramin/docspace/internal/domain"
	"github.com/spf13/pflag"
)

// statusFlag is a pflag.Value accepting an idea status or "all".
type statusFlag struct {
	filter domain.IdeaFilter
}

var _ pflag.Value = (*statusFlag)(nil)

func (f *statusFlag) String() string {
	if f.filter.IsAll() {
		return "all"
	}
	return string(f.filter.Status)
}

func (f *statusFlag) Set(s string) error {
	if strings.EqualFold(strings.TrimSpace(s), "all") {
		f.filter = domain.IdeaFilter{}
		return nil
	}
	st, err := domain.ParseIdeaStatus(s)
	if err != nil {
		return err
	}
	f.filter = domain.IdeaFilter{Status: st}
	return nil
}

func (f *statusFlag) Type() string { return "status" }

// decisionFlag is a pflag.Value accepting approve, partial or disapprove.
type decisionFlag struct {
	decision domain.Decision
}

var _ pflag.Value = (*decisionFlag)(nil)

func (f *decisionFlag) String() string { return string(f.decision) }

func (f *decisionFlag) Set(s string) error {
	d, err := domain.ParseDecision(s)
	if err != nil {
		return err
	}
	f.decision = d
	return nil
}

func (f *decisionFlag) Type() string { return "decision" }

// viewFlag is a pflag.Value accepting a workspace view name.
type viewFlag struct {
	view domain.WorkspaceView
}

var _ pflag.Value = (*viewFlag)(nil)

func (f *viewFlag) String() string { return string(f.view) }

func (f *viewFlag) Set(s string) error {
	v, err := domain.ParseWorkspaceView(s)
	if err != nil {
		return err
	}
	f.view = v
	return nil
}

func (f *viewFlag) Type() string { return "view" }
