// Package seed loads the demo workspace fixture into a fresh database.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/alexanderramin/docspace/internal/db"
	"github.com/alexanderramin/docspace/internal/domain"
	"github.com/alexanderramin/docspace/internal/repository"
	"gopkg.in/yaml.v3"
)

// DemoName is the seeds-table key for the embedded demo fixture.
const DemoName = "demo-workspace"

//go:embed demo.yaml
var demoYAML []byte

type fixture struct {
	Ideas     []ideaFixture     `yaml:"ideas"`
	Approvals []approvalFixture `yaml:"approvals"`
	Members   []memberFixture   `yaml:"members"`
	Tasks     []taskFixture     `yaml:"tasks"`
}

type ideaFixture struct {
	ID          string           `yaml:"id"`
	Name        string           `yaml:"name"`
	Status      string           `yaml:"status"`
	Description string           `yaml:"description"`
	Documents   []string         `yaml:"documents"`
	UpdatedAgo  time.Duration    `yaml:"updated_ago"`
	Sections    []sectionFixture `yaml:"sections"`
}

type sectionFixture struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Status   string `yaml:"status"`
	Comments int    `yaml:"comments"`
	Body     string `yaml:"body"`
}

type approvalFixture struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Submitter   string `yaml:"submitter"`
	Due         string `yaml:"due"`
	Priority    string `yaml:"priority"`
	Type        string `yaml:"type"`
	Status      string `yaml:"status"`
	Description string `yaml:"description"`
}

type memberFixture struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Role         string   `yaml:"role"`
	Skills       []string `yaml:"skills"`
	Workload     int      `yaml:"workload"`
	Capacity     int      `yaml:"capacity"`
	Initials     string   `yaml:"initials"`
	Availability string   `yaml:"availability"`
}

type taskFixture struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Type     string `yaml:"type"`
	Hours    int    `yaml:"hours"`
	Priority string `yaml:"priority"`
	Assignee string `yaml:"assignee"`
	Status   string `yaml:"status"`
}

// Workspace is the decoded demo fixture in domain form.
type Workspace struct {
	Ideas     []*domain.Idea
	Sections  []*domain.DocumentSection
	Approvals []*domain.ApprovalItem
	Members   []*domain.TeamMember
	Tasks     []*domain.Task
}

// Demo decodes the embedded fixture. Relative idea timestamps resolve
// against now.
func Demo(now time.Time) (*Workspace, error) {
	return Parse(demoYAML, now)
}

// Parse decodes a fixture document.
func Parse(data []byte, now time.Time) (*Workspace, error) {
	var f fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding fixture: %w", err)
	}

	ws := &Workspace{}
	for _, fi := range f.Ideas {
		status, err := domain.ParseIdeaStatus(fi.Status)
		if err != nil {
			return nil, fmt.Errorf("idea %s: %w", fi.ID, err)
		}
		updated := now.Add(-fi.UpdatedAgo).UTC().Truncate(time.Second)
		ws.Ideas = append(ws.Ideas, &domain.Idea{
			ID:          fi.ID,
			Name:        fi.Name,
			Status:      status,
			Description: fi.Description,
			Documents:   fi.Documents,
			CreatedAt:   updated,
			UpdatedAt:   updated,
		})
		for pos, fs := range fi.Sections {
			ws.Sections = append(ws.Sections, &domain.DocumentSection{
				IdeaID:   fi.ID,
				ID:       fs.ID,
				Position: pos,
				Title:    fs.Title,
				Body:     fs.Body,
				Status:   domain.SectionStatus(fs.Status),
				Comments: fs.Comments,
			})
		}
	}

	for _, fa := range f.Approvals {
		due, err := time.Parse("2006-01-02", fa.Due)
		if err != nil {
			return nil, fmt.Errorf("approval %s due date: %w", fa.ID, err)
		}
		ws.Approvals = append(ws.Approvals, &domain.ApprovalItem{
			ID:          fa.ID,
			Title:       fa.Title,
			Submitter:   fa.Submitter,
			DueDate:     due,
			Priority:    domain.Priority(fa.Priority),
			Type:        domain.ApprovalType(fa.Type),
			Description: fa.Description,
			Status:      domain.ApprovalStatus(fa.Status),
		})
	}

	for _, fm := range f.Members {
		ws.Members = append(ws.Members, &domain.TeamMember{
			ID:            fm.ID,
			Name:          fm.Name,
			Role:          fm.Role,
			Skills:        fm.Skills,
			WorkloadHours: fm.Workload,
			CapacityHours: fm.Capacity,
			Initials:      fm.Initials,
			Availability:  domain.Availability(fm.Availability),
		})
	}

	for _, ft := range f.Tasks {
		t := &domain.Task{
			ID:             ft.ID,
			Title:          ft.Title,
			Type:           domain.TaskType(ft.Type),
			EstimatedHours: ft.Hours,
			Priority:       domain.Priority(ft.Priority),
			Status:         domain.TaskStatus(ft.Status),
		}
		if ft.Assignee != "" {
			assignee := ft.Assignee
			t.AssigneeID = &assignee
		}
		ws.Tasks = append(ws.Tasks, t)
	}
	return ws, nil
}

// Apply writes the demo workspace once. It reports whether anything was
// written; a database that already carries the seed marker is left alone.
func Apply(ctx context.Context, uow db.UnitOfWork, now time.Time) (bool, error) {
	ws, err := Demo(now)
	if err != nil {
		return false, err
	}

	applied := false
	err = uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		seeds := repository.NewSQLiteSeedRepo(tx)
		done, err := seeds.Applied(ctx, DemoName)
		if err != nil || done {
			return err
		}
		if err := ws.write(ctx, tx); err != nil {
			return err
		}
		applied = true
		return seeds.MarkApplied(ctx, DemoName)
	})
	if err != nil {
		return false, fmt.Errorf("seeding demo workspace: %w", err)
	}
	return applied, nil
}

func (ws *Workspace) write(ctx context.Context, tx db.DBTX) error {
	ideas := repository.NewSQLiteIdeaRepo(tx)
	sections := repository.NewSQLiteSectionRepo(tx)
	approvals := repository.NewSQLiteApprovalRepo(tx)
	members := repository.NewSQLiteMemberRepo(tx)
	tasks := repository.NewSQLiteTaskRepo(tx)

	for _, i := range ws.Ideas {
		if err := ideas.Create(ctx, i); err != nil {
			return err
		}
	}
	for _, s := range ws.Sections {
		if err := sections.Create(ctx, s); err != nil {
			return err
		}
	}
	for _, a := range ws.Approvals {
		if err := approvals.Create(ctx, a); err != nil {
			return err
		}
	}
	for _, m := range ws.Members {
		if err := members.Create(ctx, m); err != nil {
			return err
		}
	}
	for _, t := range ws.Tasks {
		if err := tasks.Create(ctx, t); err != nil {
			return err
		}
	}
	return nil
}
